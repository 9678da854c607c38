package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventboard/internal/app/models"
	"eventboard/internal/pkg/apperrors"
	"eventboard/internal/pkg/dberrors"
)

// usersUsernameConstraint is the unique constraint guarding usernames.
// Uniqueness is enforced by the database, not by a pre-check query.
const usersUsernameConstraint = "users_username_key"

var userColumns = []string{
	"id", "username", "password", "roles",
	"account_expired", "account_locked", "credentials_expired", "created_at",
}

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new account and returns its generated ID.
// A username collision is reported as apperrors.ErrUsernameTaken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := squirrel.Insert("users").
		Columns("username", "password", "roles",
			"account_expired", "account_locked", "credentials_expired").
		Values(user.Username, user.Password, user.Roles.Strings(),
			user.AccountExpired, user.AccountLocked, user.CredentialsExpired).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, usersUsernameConstraint) {
			return 0, apperrors.ErrUsernameTaken
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetByID retrieves an account by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetByUsername retrieves an account by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, squirrel.Eq{"username": username})
}

func (r *UserRepository) getBy(ctx context.Context, filter squirrel.Eq) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where(filter).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return user, nil
}

// GetAll retrieves a page of accounts ordered by username
func (r *UserRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]models.User, int64, error) {
	countQuery := squirrel.Select("COUNT(*)").From("users")

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error executing count query: %w", err)
	}

	query := squirrel.Select(userColumns...).
		From("users").
		OrderBy("username ASC").
		Limit(uint64(limit)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return users, total, nil
}

// UpdateRoles replaces an account's role set wholesale
func (r *UserRepository) UpdateRoles(ctx context.Context, id int64, roles models.Roles) error {
	query := squirrel.Update("users").
		Set("roles", roles.Strings()).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces an account's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	query := squirrel.Update("users").
		Set("password", hashedPassword).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// CountAll returns the total number of accounts
func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	sql, args, err := squirrel.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return total, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var roles []string

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&roles,
		&user.AccountExpired,
		&user.AccountLocked,
		&user.CredentialsExpired,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Roles = models.RolesFromStrings(roles)

	return &user, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventboard/internal/app/models"
	"eventboard/internal/pkg/apperrors"
)

// eventPostSortColumns maps API sort keys to table columns.
// Unknown keys fall back to the posting timestamp.
var eventPostSortColumns = map[string]string{
	"postedAt": "posted_at",
	"title":    "title",
	"startDay": "start_day",
	"location": "location",
}

var eventPostColumns = []string{
	"id", "title", "content", "location", "enrollment_link", "image_link",
	"start_day", "end_day", "start_time", "end_time", "posted_by", "posted_at",
}

// EventPostRepository handles database operations for event posts
type EventPostRepository struct {
	db *pgxpool.Pool
}

// NewEventPostRepository creates a new EventPostRepository
func NewEventPostRepository(db *pgxpool.Pool) *EventPostRepository {
	return &EventPostRepository{db: db}
}

// Create inserts a new event post and returns its generated ID
func (r *EventPostRepository) Create(ctx context.Context, post *models.EventPost) (int64, error) {
	query := squirrel.Insert("event_posts").
		Columns("title", "content", "location", "enrollment_link", "image_link",
			"start_day", "end_day", "start_time", "end_time", "posted_by", "posted_at").
		Values(post.Title, post.Content, post.Location, post.EnrollmentLink, post.ImageLink,
			post.StartDay.Time, post.EndDay.Time,
			pgTime(post.StartTime), pgTime(post.EndTime),
			post.PostedBy, post.PostedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetByID retrieves an event post by ID
func (r *EventPostRepository) GetByID(ctx context.Context, id int64) (*models.EventPost, error) {
	query := squirrel.Select(eventPostColumns...).
		From("event_posts").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	post, err := scanEventPost(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return post, nil
}

// GetAll retrieves a page of event posts sorted by the given key
func (r *EventPostRepository) GetAll(ctx context.Context, offset uint64, limit int, sortBy, sortOrder string) ([]models.EventPost, int64, error) {
	return r.list(ctx, nil, offset, limit, sortBy, sortOrder)
}

// GetByPostedBy retrieves a page of event posts owned by the given username
func (r *EventPostRepository) GetByPostedBy(ctx context.Context, username string, offset uint64, limit int, sortBy, sortOrder string) ([]models.EventPost, int64, error) {
	filter := squirrel.Eq{"posted_by": username}
	return r.list(ctx, filter, offset, limit, sortBy, sortOrder)
}

func (r *EventPostRepository) list(ctx context.Context, filter squirrel.Sqlizer, offset uint64, limit int, sortBy, sortOrder string) ([]models.EventPost, int64, error) {
	countQuery := squirrel.Select("COUNT(*)").
		From("event_posts").
		PlaceholderFormat(squirrel.Dollar)
	if filter != nil {
		countQuery = countQuery.Where(filter)
	}

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error executing count query: %w", err)
	}

	query := squirrel.Select(eventPostColumns...).
		From("event_posts").
		OrderBy(eventPostOrderClause(sortBy, sortOrder)).
		Limit(uint64(limit)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)
	if filter != nil {
		query = query.Where(filter)
	}

	sql, args, err = query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var posts []models.EventPost
	for rows.Next() {
		post, err := scanEventPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return posts, total, nil
}

// Update replaces the mutable fields of an existing event post
func (r *EventPostRepository) Update(ctx context.Context, post *models.EventPost) error {
	query := squirrel.Update("event_posts").
		Set("title", post.Title).
		Set("content", post.Content).
		Set("location", post.Location).
		Set("enrollment_link", post.EnrollmentLink).
		Set("start_day", post.StartDay.Time).
		Set("end_day", post.EndDay.Time).
		Set("start_time", pgTime(post.StartTime)).
		Set("end_time", pgTime(post.EndTime)).
		Where("id = ?", post.ID).
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
		return apperrors.ErrPostNotFound
	}

	return nil
}

// UpdateImageLink sets the image link of an event post
func (r *EventPostRepository) UpdateImageLink(ctx context.Context, id int64, imageLink string) error {
	query := squirrel.Update("event_posts").
		Set("image_link", imageLink).
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
		return apperrors.ErrPostNotFound
	}

	return nil
}

// Delete removes an event post
func (r *EventPostRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("event_posts").
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
		return apperrors.ErrPostNotFound
	}

	return nil
}

func eventPostOrderClause(sortBy, sortOrder string) string {
	column, ok := eventPostSortColumns[sortBy]
	if !ok {
		column = "posted_at"
	}

	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}

	return column + " " + direction
}

func pgTime(t models.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Microseconds(), Valid: true}
}

func scanEventPost(row pgx.Row) (*models.EventPost, error) {
	var post models.EventPost
	var startDay, endDay time.Time
	var startTime, endTime pgtype.Time

	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Location,
		&post.EnrollmentLink,
		&post.ImageLink,
		&startDay,
		&endDay,
		&startTime,
		&endTime,
		&post.PostedBy,
		&post.PostedAt,
	)
	if err != nil {
		return nil, err
	}

	post.StartDay = models.DateOf(startDay)
	post.EndDay = models.DateOf(endDay)
	post.StartTime = models.TimeOfDayFromMicroseconds(startTime.Microseconds)
	post.EndTime = models.TimeOfDayFromMicroseconds(endTime.Microseconds)

	return &post, nil
}

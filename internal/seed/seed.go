package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "eventboard/internal/app/models"
	appRepos "eventboard/internal/app/repositories"
	"eventboard/internal/config"
)

// CreateDefaultData creates the default admin account when the users table
// is empty, so a fresh deployment has a way in.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")

	total, err := userRepo.CountAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting accounts")
		return err
	}

	if total > 0 {
		lgr.Info().Msg("Accounts already exist, skipping admin creation")
		return nil
	}

	lgr.Info().Msg("Creating default admin account...")

	adminPassword := config.GetEnv("ADMIN_PASSWORD", "Admin123!")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Username: config.GetEnv("ADMIN_USERNAME", "admin"),
		Password: string(hashedPassword),
		Roles:    appModels.Roles{appModels.RoleAdmin, appModels.RoleUser},
	}

	adminID, err := userRepo.Create(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return errors.Join(errors.New("failed to create default admin"), err)
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin account created successfully")
	return nil
}

package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/repositories"
	"github.com/atlasmedia/newsdesk/internal/config"
	"github.com/atlasmedia/newsdesk/internal/pkg/auth"
	"github.com/atlasmedia/newsdesk/internal/pkg/dberrors"
)

// CreateDefaultAdmin ensures the configured admin account exists. It is safe
// to call on every startup: an existing admin with the same email is left
// untouched.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Info().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}

	adminRepo := repositories.NewAdminRepository(dbPool)

	existing, err := adminRepo.FindByEmail(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}
	if existing != nil {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Admin account already exists")
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.Admin{
		Email:    cfg.Admin.Email,
		Password: hashed,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		// A concurrent instance may have created it first.
		if dberrors.IsUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	lgr.Info().Str("email", admin.Email).Msg("Default admin account created")
	return nil
}

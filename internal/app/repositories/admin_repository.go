package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminRepository handles database operations for Admin accounts.
type AdminRepository struct {
	DB *pgxpool.Pool
}

// NewAdminRepository creates a new instance of AdminRepository.
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) selectAdminQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "email", "password", "created_at", "updated_at").
		From("admins").
		PlaceholderFormat(squirrel.Dollar)
}

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var a models.Admin
	err := row.Scan(&a.ID, &a.Email, &a.Password, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Msg("Error scanning admin row")
		return nil, err
	}
	return &a, nil
}

// Create inserts a new admin account.
func (r *AdminRepository) Create(ctx context.Context, a *models.Admin) error {
	sql, args, err := squirrel.Insert("admins").
		Columns("email", "password").
		Values(a.Email, a.Password).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create admin query")
		return err
	}

	return nil
}

// GetByID retrieves a single admin by its ID.
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	sqlStr, args, err := r.selectAdminQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanAdmin(r.DB.QueryRow(ctx, sqlStr, args...))
}

// FindByEmail returns the admin with the given email, or nil if none exists.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	sqlStr, args, err := r.selectAdminQuery().Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		return nil, err
	}

	a, err := scanAdmin(r.DB.QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil
	}
	return a, err
}

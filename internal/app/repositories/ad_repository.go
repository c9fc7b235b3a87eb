package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/helpers"
	"github.com/atlasmedia/newsdesk/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdRepository handles database operations for Ad.
type AdRepository struct {
	DB *pgxpool.Pool
}

// NewAdRepository creates a new instance of AdRepository.
func NewAdRepository(db *pgxpool.Pool) *AdRepository {
	return &AdRepository{DB: db}
}

func (r *AdRepository) selectAdQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "title", "timestamp", "frequency", "media", "created_at", "updated_at").
		From("ads").
		PlaceholderFormat(squirrel.Dollar)
}

func scanAd(row pgx.Row) (*models.Ad, error) {
	var a models.Ad
	err := row.Scan(&a.ID, &a.Title, &a.Timestamp, &a.Frequency, &a.Media, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdNotFound
		}
		logger.Error().Err(err).Msg("Error scanning ad row")
		return nil, err
	}
	return &a, nil
}

// Create inserts a new ad and fills in the generated id and timestamps.
func (r *AdRepository) Create(ctx context.Context, a *models.Ad) error {
	sql, args, err := squirrel.Insert("ads").
		Columns("title", "timestamp", "frequency", "media").
		Values(a.Title, a.Timestamp, a.Frequency, a.Media).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create ad query")
		return err
	}

	return nil
}

// GetByID retrieves a single ad by its ID.
func (r *AdRepository) GetByID(ctx context.Context, id int64) (*models.Ad, error) {
	sqlStr, args, err := r.selectAdQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanAd(r.DB.QueryRow(ctx, sqlStr, args...))
}

// FindByTitle returns the ad with the given title, or nil if none exists.
func (r *AdRepository) FindByTitle(ctx context.Context, title string) (*models.Ad, error) {
	sqlStr, args, err := r.selectAdQuery().Where(squirrel.Eq{"title": title}).ToSql()
	if err != nil {
		return nil, err
	}

	a, err := scanAd(r.DB.QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil
	}
	return a, err
}

// Update persists all fields of the ad.
func (r *AdRepository) Update(ctx context.Context, a *models.Ad) error {
	sql, args, err := squirrel.Update("ads").
		Set("title", a.Title).
		Set("timestamp", a.Timestamp).
		Set("frequency", a.Frequency).
		Set("media", a.Media).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAdNotFound
		}
		logger.Error().Err(err).Msg("Error executing update ad query")
		return err
	}

	return nil
}

// Delete deletes an ad by its ID.
func (r *AdRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("ads").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete ad query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdNotFound
	}

	return nil
}

// GetAll retrieves every ad, newest first.
func (r *AdRepository) GetAll(ctx context.Context) ([]*models.Ad, error) {
	sqlStr, args, err := r.selectAdQuery().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all ads query")
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.Ad, 0)
	for rows.Next() {
		a, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}

	return items, rows.Err()
}

// List retrieves a paginated page of ads, optionally filtered by a
// case-insensitive title match.
func (r *AdRepository) List(ctx context.Context, query string, page, size int) ([]*models.Ad, dto.PaginationInfo, error) {
	sqlBuilder := r.selectAdQuery()
	countBuilder := squirrel.Select("count(*)").From("ads").PlaceholderFormat(squirrel.Dollar)

	if query != "" {
		like := squirrel.ILike{"title": "%" + query + "%"}
		sqlBuilder = sqlBuilder.Where(like)
		countBuilder = countBuilder.Where(like)
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	if err := r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count ads query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.Ad{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list ads query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	items := make([]*models.Ad, 0)
	for rows.Next() {
		a, err := scanAd(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		items = append(items, a)
	}

	return items, pagination, rows.Err()
}

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

// AdvertisementRepository handles database operations for Advertisement.
type AdvertisementRepository struct {
	DB *pgxpool.Pool
}

// NewAdvertisementRepository creates a new instance of AdvertisementRepository.
func NewAdvertisementRepository(db *pgxpool.Pool) *AdvertisementRepository {
	return &AdvertisementRepository{DB: db}
}

func (r *AdvertisementRepository) selectAdvertisementQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "advertisement_type", "banner_type", "content", "post_type", "status", "image", "created_at", "updated_at").
		From("advertisements").
		PlaceholderFormat(squirrel.Dollar)
}

func scanAdvertisement(row pgx.Row) (*models.Advertisement, error) {
	var a models.Advertisement
	err := row.Scan(&a.ID, &a.AdvertisementType, &a.BannerType, &a.Content, &a.PostType, &a.Status, &a.Image, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdvertisementNotFound
		}
		logger.Error().Err(err).Msg("Error scanning advertisement row")
		return nil, err
	}
	return &a, nil
}

// Create inserts a new advertisement and fills in the generated id and timestamps.
func (r *AdvertisementRepository) Create(ctx context.Context, a *models.Advertisement) error {
	sql, args, err := squirrel.Insert("advertisements").
		Columns("advertisement_type", "banner_type", "content", "post_type", "status", "image").
		Values(a.AdvertisementType, a.BannerType, a.Content, a.PostType, a.Status, a.Image).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create advertisement query")
		return err
	}

	return nil
}

// GetByID retrieves a single advertisement by its ID.
func (r *AdvertisementRepository) GetByID(ctx context.Context, id int64) (*models.Advertisement, error) {
	sqlStr, args, err := r.selectAdvertisementQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanAdvertisement(r.DB.QueryRow(ctx, sqlStr, args...))
}

// Update persists all fields of the advertisement.
func (r *AdvertisementRepository) Update(ctx context.Context, a *models.Advertisement) error {
	sql, args, err := squirrel.Update("advertisements").
		Set("advertisement_type", a.AdvertisementType).
		Set("banner_type", a.BannerType).
		Set("content", a.Content).
		Set("post_type", a.PostType).
		Set("status", a.Status).
		Set("image", a.Image).
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
			return apperrors.ErrAdvertisementNotFound
		}
		logger.Error().Err(err).Msg("Error executing update advertisement query")
		return err
	}

	return nil
}

// Delete deletes an advertisement by its ID.
func (r *AdvertisementRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("advertisements").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete advertisement query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdvertisementNotFound
	}

	return nil
}

// GetAll retrieves every advertisement, newest first.
func (r *AdvertisementRepository) GetAll(ctx context.Context) ([]*models.Advertisement, error) {
	sqlStr, args, err := r.selectAdvertisementQuery().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all advertisements query")
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.Advertisement, 0)
	for rows.Next() {
		a, err := scanAdvertisement(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}

	return items, rows.Err()
}

// List retrieves a paginated page of advertisements, optionally filtered by a
// case-insensitive match on content or advertisement type.
func (r *AdvertisementRepository) List(ctx context.Context, query string, page, size int) ([]*models.Advertisement, dto.PaginationInfo, error) {
	sqlBuilder := r.selectAdvertisementQuery()
	countBuilder := squirrel.Select("count(*)").From("advertisements").PlaceholderFormat(squirrel.Dollar)

	if query != "" {
		like := squirrel.Or{
			squirrel.ILike{"content": "%" + query + "%"},
			squirrel.ILike{"advertisement_type": "%" + query + "%"},
		}
		sqlBuilder = sqlBuilder.Where(like)
		countBuilder = countBuilder.Where(like)
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	if err := r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count advertisements query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.Advertisement{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list advertisements query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	items := make([]*models.Advertisement, 0)
	for rows.Next() {
		a, err := scanAdvertisement(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		items = append(items, a)
	}

	return items, pagination, rows.Err()
}

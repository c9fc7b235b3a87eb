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

// LiveNewsRepository handles database operations for LiveNews.
type LiveNewsRepository struct {
	DB *pgxpool.Pool
}

// NewLiveNewsRepository creates a new instance of LiveNewsRepository.
func NewLiveNewsRepository(db *pgxpool.Pool) *LiveNewsRepository {
	return &LiveNewsRepository{DB: db}
}

func (r *LiveNewsRepository) selectLiveNewsQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "name", "uri", "media", "created_at", "updated_at").
		From("live_news").
		PlaceholderFormat(squirrel.Dollar)
}

func scanLiveNews(row pgx.Row) (*models.LiveNews, error) {
	var l models.LiveNews
	err := row.Scan(&l.ID, &l.Name, &l.URI, &l.Media, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLiveNewsNotFound
		}
		logger.Error().Err(err).Msg("Error scanning live news row")
		return nil, err
	}
	return &l, nil
}

// Create inserts a new live news entry and fills in the generated id and timestamps.
func (r *LiveNewsRepository) Create(ctx context.Context, l *models.LiveNews) error {
	sql, args, err := squirrel.Insert("live_news").
		Columns("name", "uri", "media").
		Values(l.Name, l.URI, l.Media).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create live news query")
		return err
	}

	return nil
}

// GetByID retrieves a single live news entry by its ID.
func (r *LiveNewsRepository) GetByID(ctx context.Context, id int64) (*models.LiveNews, error) {
	sqlStr, args, err := r.selectLiveNewsQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanLiveNews(r.DB.QueryRow(ctx, sqlStr, args...))
}

// FindByName returns the live news entry with the given name, or nil if none exists.
func (r *LiveNewsRepository) FindByName(ctx context.Context, name string) (*models.LiveNews, error) {
	sqlStr, args, err := r.selectLiveNewsQuery().Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return nil, err
	}

	l, err := scanLiveNews(r.DB.QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil
	}
	return l, err
}

// Update persists all fields of the live news entry.
func (r *LiveNewsRepository) Update(ctx context.Context, l *models.LiveNews) error {
	sql, args, err := squirrel.Update("live_news").
		Set("name", l.Name).
		Set("uri", l.URI).
		Set("media", l.Media).
		Where(squirrel.Eq{"id": l.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrLiveNewsNotFound
		}
		logger.Error().Err(err).Msg("Error executing update live news query")
		return err
	}

	return nil
}

// Delete deletes a live news entry by its ID.
func (r *LiveNewsRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("live_news").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete live news query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLiveNewsNotFound
	}

	return nil
}

// GetAll retrieves every live news entry, newest first.
func (r *LiveNewsRepository) GetAll(ctx context.Context) ([]*models.LiveNews, error) {
	sqlStr, args, err := r.selectLiveNewsQuery().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all live news query")
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.LiveNews, 0)
	for rows.Next() {
		l, err := scanLiveNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}

	return items, rows.Err()
}

// List retrieves a paginated page of live news, optionally filtered by a
// case-insensitive name match.
func (r *LiveNewsRepository) List(ctx context.Context, query string, page, size int) ([]*models.LiveNews, dto.PaginationInfo, error) {
	sqlBuilder := r.selectLiveNewsQuery()
	countBuilder := squirrel.Select("count(*)").From("live_news").PlaceholderFormat(squirrel.Dollar)

	if query != "" {
		like := squirrel.ILike{"name": "%" + query + "%"}
		sqlBuilder = sqlBuilder.Where(like)
		countBuilder = countBuilder.Where(like)
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	if err := r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count live news query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.LiveNews{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list live news query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	items := make([]*models.LiveNews, 0)
	for rows.Next() {
		l, err := scanLiveNews(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		items = append(items, l)
	}

	return items, pagination, rows.Err()
}

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

// RSSFeedRepository handles database operations for RSSFeed.
type RSSFeedRepository struct {
	DB *pgxpool.Pool
}

// NewRSSFeedRepository creates a new instance of RSSFeedRepository.
func NewRSSFeedRepository(db *pgxpool.Pool) *RSSFeedRepository {
	return &RSSFeedRepository{DB: db}
}

func (r *RSSFeedRepository) selectRSSFeedQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "name", "title", "url", "category", "language", "image", "created_at", "updated_at").
		From("rss_feeds").
		PlaceholderFormat(squirrel.Dollar)
}

func scanRSSFeed(row pgx.Row) (*models.RSSFeed, error) {
	var f models.RSSFeed
	err := row.Scan(&f.ID, &f.Name, &f.Title, &f.URL, &f.Category, &f.Language, &f.Image, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRSSFeedNotFound
		}
		logger.Error().Err(err).Msg("Error scanning rss feed row")
		return nil, err
	}
	return &f, nil
}

// Create inserts a new rss feed and fills in the generated id and timestamps.
func (r *RSSFeedRepository) Create(ctx context.Context, f *models.RSSFeed) error {
	sql, args, err := squirrel.Insert("rss_feeds").
		Columns("name", "title", "url", "category", "language", "image").
		Values(f.Name, f.Title, f.URL, f.Category, f.Language, f.Image).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create rss feed query")
		return err
	}

	return nil
}

// GetByID retrieves a single rss feed by its ID.
func (r *RSSFeedRepository) GetByID(ctx context.Context, id int64) (*models.RSSFeed, error) {
	sqlStr, args, err := r.selectRSSFeedQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanRSSFeed(r.DB.QueryRow(ctx, sqlStr, args...))
}

// FindByName returns the rss feed with the given name, or nil if none exists.
func (r *RSSFeedRepository) FindByName(ctx context.Context, name string) (*models.RSSFeed, error) {
	sqlStr, args, err := r.selectRSSFeedQuery().Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return nil, err
	}

	f, err := scanRSSFeed(r.DB.QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil
	}
	return f, err
}

// Update persists all fields of the rss feed.
func (r *RSSFeedRepository) Update(ctx context.Context, f *models.RSSFeed) error {
	sql, args, err := squirrel.Update("rss_feeds").
		Set("name", f.Name).
		Set("title", f.Title).
		Set("url", f.URL).
		Set("category", f.Category).
		Set("language", f.Language).
		Set("image", f.Image).
		Where(squirrel.Eq{"id": f.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrRSSFeedNotFound
		}
		logger.Error().Err(err).Msg("Error executing update rss feed query")
		return err
	}

	return nil
}

// Delete deletes an rss feed by its ID.
func (r *RSSFeedRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("rss_feeds").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete rss feed query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRSSFeedNotFound
	}

	return nil
}

// GetAll retrieves every rss feed, newest first.
func (r *RSSFeedRepository) GetAll(ctx context.Context) ([]*models.RSSFeed, error) {
	sqlStr, args, err := r.selectRSSFeedQuery().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all rss feeds query")
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.RSSFeed, 0)
	for rows.Next() {
		f, err := scanRSSFeed(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}

	return items, rows.Err()
}

// List retrieves a paginated page of rss feeds, optionally filtered by a
// case-insensitive match on name or title.
func (r *RSSFeedRepository) List(ctx context.Context, query string, page, size int) ([]*models.RSSFeed, dto.PaginationInfo, error) {
	sqlBuilder := r.selectRSSFeedQuery()
	countBuilder := squirrel.Select("count(*)").From("rss_feeds").PlaceholderFormat(squirrel.Dollar)

	if query != "" {
		like := squirrel.Or{
			squirrel.ILike{"name": "%" + query + "%"},
			squirrel.ILike{"title": "%" + query + "%"},
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
		logger.Error().Err(err).Msg("Error executing count rss feeds query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.RSSFeed{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list rss feeds query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	items := make([]*models.RSSFeed, 0)
	for rows.Next() {
		f, err := scanRSSFeed(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		items = append(items, f)
	}

	return items, pagination, rows.Err()
}

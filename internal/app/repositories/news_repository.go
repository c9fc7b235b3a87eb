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

// NewsRepository handles database operations for News.
type NewsRepository struct {
	DB *pgxpool.Pool
}

// NewNewsRepository creates a new instance of NewsRepository.
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{DB: db}
}

func (r *NewsRepository) selectNewsQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "title", "image", "created_at", "updated_at").
		From("news").
		PlaceholderFormat(squirrel.Dollar)
}

func scanNews(row pgx.Row) (*models.News, error) {
	var n models.News
	err := row.Scan(&n.ID, &n.Title, &n.Image, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNewsNotFound
		}
		logger.Error().Err(err).Msg("Error scanning news row")
		return nil, err
	}
	return &n, nil
}

// Create inserts a new news item and fills in the generated id and timestamps.
func (r *NewsRepository) Create(ctx context.Context, n *models.News) error {
	sql, args, err := squirrel.Insert("news").
		Columns("title", "image").
		Values(n.Title, n.Image).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create news query")
		return err
	}

	return nil
}

// GetByID retrieves a single news item by its ID.
func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	sqlStr, args, err := r.selectNewsQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanNews(r.DB.QueryRow(ctx, sqlStr, args...))
}

// FindByTitle returns the news item with the given title, or nil if none exists.
func (r *NewsRepository) FindByTitle(ctx context.Context, title string) (*models.News, error) {
	sqlStr, args, err := r.selectNewsQuery().Where(squirrel.Eq{"title": title}).ToSql()
	if err != nil {
		return nil, err
	}

	n, err := scanNews(r.DB.QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil
	}
	return n, err
}

// Update persists all fields of the news item.
func (r *NewsRepository) Update(ctx context.Context, n *models.News) error {
	sql, args, err := squirrel.Update("news").
		Set("title", n.Title).
		Set("image", n.Image).
		// updated_at is set by trigger and read back below
		Where(squirrel.Eq{"id": n.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNewsNotFound
		}
		logger.Error().Err(err).Msg("Error executing update news query")
		return err
	}

	return nil
}

// Delete deletes a news item by its ID.
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("news").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete news query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}

	return nil
}

// GetAll retrieves every news item, newest first.
func (r *NewsRepository) GetAll(ctx context.Context) ([]*models.News, error) {
	sqlStr, args, err := r.selectNewsQuery().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all news query")
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.News, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}

	return items, rows.Err()
}

// List retrieves a paginated page of news, optionally filtered by a
// case-insensitive title match.
func (r *NewsRepository) List(ctx context.Context, query string, page, size int) ([]*models.News, dto.PaginationInfo, error) {
	sqlBuilder := r.selectNewsQuery()
	countBuilder := squirrel.Select("count(*)").From("news").PlaceholderFormat(squirrel.Dollar)

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
		logger.Error().Err(err).Msg("Error executing count news query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.News{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list news query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	items := make([]*models.News, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		items = append(items, n)
	}

	return items, pagination, rows.Err()
}

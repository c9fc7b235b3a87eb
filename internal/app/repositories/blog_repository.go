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

// BlogRepository handles database operations for Blog.
type BlogRepository struct {
	DB *pgxpool.Pool
}

// NewBlogRepository creates a new instance of BlogRepository.
func NewBlogRepository(db *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{DB: db}
}

func (r *BlogRepository) selectBlogQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "title", "visibility", "publish_date_time", "status", "type", "image", "created_at", "updated_at").
		From("blogs").
		PlaceholderFormat(squirrel.Dollar)
}

func scanBlog(row pgx.Row) (*models.Blog, error) {
	var b models.Blog
	err := row.Scan(&b.ID, &b.Title, &b.Visibility, &b.PublishDateTime, &b.Status, &b.Type, &b.Image, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBlogNotFound
		}
		logger.Error().Err(err).Msg("Error scanning blog row")
		return nil, err
	}
	return &b, nil
}

// Create inserts a new blog and fills in the generated id and timestamps.
func (r *BlogRepository) Create(ctx context.Context, b *models.Blog) error {
	sql, args, err := squirrel.Insert("blogs").
		Columns("title", "visibility", "publish_date_time", "status", "type", "image").
		Values(b.Title, b.Visibility, b.PublishDateTime, b.Status, b.Type, b.Image).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create blog query")
		return err
	}

	return nil
}

// GetByID retrieves a single blog by its ID.
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	sqlStr, args, err := r.selectBlogQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanBlog(r.DB.QueryRow(ctx, sqlStr, args...))
}

// FindByTitle returns the blog with the given title, or nil if none exists.
func (r *BlogRepository) FindByTitle(ctx context.Context, title string) (*models.Blog, error) {
	sqlStr, args, err := r.selectBlogQuery().Where(squirrel.Eq{"title": title}).ToSql()
	if err != nil {
		return nil, err
	}

	b, err := scanBlog(r.DB.QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil
	}
	return b, err
}

// Update persists all fields of the blog.
func (r *BlogRepository) Update(ctx context.Context, b *models.Blog) error {
	sql, args, err := squirrel.Update("blogs").
		Set("title", b.Title).
		Set("visibility", b.Visibility).
		Set("publish_date_time", b.PublishDateTime).
		Set("status", b.Status).
		Set("type", b.Type).
		Set("image", b.Image).
		Where(squirrel.Eq{"id": b.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrBlogNotFound
		}
		logger.Error().Err(err).Msg("Error executing update blog query")
		return err
	}

	return nil
}

// Delete deletes a blog by its ID.
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("blogs").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete blog query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBlogNotFound
	}

	return nil
}

// GetAll retrieves every blog, newest first.
func (r *BlogRepository) GetAll(ctx context.Context) ([]*models.Blog, error) {
	sqlStr, args, err := r.selectBlogQuery().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all blogs query")
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.Blog, 0)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}

	return items, rows.Err()
}

// List retrieves a paginated page of blogs, optionally filtered by a
// case-insensitive match on title or type.
func (r *BlogRepository) List(ctx context.Context, query string, page, size int) ([]*models.Blog, dto.PaginationInfo, error) {
	sqlBuilder := r.selectBlogQuery()
	countBuilder := squirrel.Select("count(*)").From("blogs").PlaceholderFormat(squirrel.Dollar)

	if query != "" {
		like := squirrel.Or{
			squirrel.ILike{"title": "%" + query + "%"},
			squirrel.ILike{"type": "%" + query + "%"},
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
		logger.Error().Err(err).Msg("Error executing count blogs query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.Blog{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list blogs query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	items := make([]*models.Blog, 0)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		items = append(items, b)
	}

	return items, pagination, rows.Err()
}

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

// CategoryRepository handles database operations for Category.
type CategoryRepository struct {
	DB *pgxpool.Pool
}

// NewCategoryRepository creates a new instance of CategoryRepository.
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) selectCategoryQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "name", "main_category", "image", "created_at", "updated_at").
		From("categories").
		PlaceholderFormat(squirrel.Dollar)
}

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.MainCategory, &c.Image, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		logger.Error().Err(err).Msg("Error scanning category row")
		return nil, err
	}
	return &c, nil
}

// Create inserts a new category and fills in the generated id and timestamps.
func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	sql, args, err := squirrel.Insert("categories").
		Columns("name", "main_category", "image").
		Values(c.Name, c.MainCategory, c.Image).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create category query")
		return err
	}

	return nil
}

// GetByID retrieves a single category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	sqlStr, args, err := r.selectCategoryQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanCategory(r.DB.QueryRow(ctx, sqlStr, args...))
}

// FindByName returns the category with the given name, or nil if none exists.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	sqlStr, args, err := r.selectCategoryQuery().Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return nil, err
	}

	c, err := scanCategory(r.DB.QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil
	}
	return c, err
}

// Update persists all fields of the category.
func (r *CategoryRepository) Update(ctx context.Context, c *models.Category) error {
	sql, args, err := squirrel.Update("categories").
		Set("name", c.Name).
		Set("main_category", c.MainCategory).
		Set("image", c.Image).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCategoryNotFound
		}
		logger.Error().Err(err).Msg("Error executing update category query")
		return err
	}

	return nil
}

// Delete deletes a category by its ID.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("categories").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete category query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

// GetAll retrieves every category, newest first.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.Category, error) {
	sqlStr, args, err := r.selectCategoryQuery().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all categories query")
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}

	return items, rows.Err()
}

// List retrieves a paginated page of categories, optionally filtered by a
// case-insensitive match on name or main category.
func (r *CategoryRepository) List(ctx context.Context, query string, page, size int) ([]*models.Category, dto.PaginationInfo, error) {
	sqlBuilder := r.selectCategoryQuery()
	countBuilder := squirrel.Select("count(*)").From("categories").PlaceholderFormat(squirrel.Dollar)

	if query != "" {
		like := squirrel.Or{
			squirrel.ILike{"name": "%" + query + "%"},
			squirrel.ILike{"main_category": "%" + query + "%"},
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
		logger.Error().Err(err).Msg("Error executing count categories query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.Category{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list categories query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	items := make([]*models.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		items = append(items, c)
	}

	return items, pagination, rows.Err()
}

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

// CMSPageRepository handles database operations for CMSPage.
type CMSPageRepository struct {
	DB *pgxpool.Pool
}

// NewCMSPageRepository creates a new instance of CMSPageRepository.
func NewCMSPageRepository(db *pgxpool.Pool) *CMSPageRepository {
	return &CMSPageRepository{DB: db}
}

func (r *CMSPageRepository) selectCMSPageQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "title", "description", "media", "created_at", "updated_at").
		From("cms_pages").
		PlaceholderFormat(squirrel.Dollar)
}

func scanCMSPage(row pgx.Row) (*models.CMSPage, error) {
	var p models.CMSPage
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Media, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCMSPageNotFound
		}
		logger.Error().Err(err).Msg("Error scanning cms page row")
		return nil, err
	}
	return &p, nil
}

// Create inserts a new cms page and fills in the generated id and timestamps.
func (r *CMSPageRepository) Create(ctx context.Context, p *models.CMSPage) error {
	sql, args, err := squirrel.Insert("cms_pages").
		Columns("title", "description", "media").
		Values(p.Title, p.Description, p.Media).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create cms page query")
		return err
	}

	return nil
}

// GetByID retrieves a single cms page by its ID.
func (r *CMSPageRepository) GetByID(ctx context.Context, id int64) (*models.CMSPage, error) {
	sqlStr, args, err := r.selectCMSPageQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanCMSPage(r.DB.QueryRow(ctx, sqlStr, args...))
}

// FindByTitle returns the cms page with the given title, or nil if none exists.
func (r *CMSPageRepository) FindByTitle(ctx context.Context, title string) (*models.CMSPage, error) {
	sqlStr, args, err := r.selectCMSPageQuery().Where(squirrel.Eq{"title": title}).ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanCMSPage(r.DB.QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil
	}
	return p, err
}

// Update persists all fields of the cms page.
func (r *CMSPageRepository) Update(ctx context.Context, p *models.CMSPage) error {
	sql, args, err := squirrel.Update("cms_pages").
		Set("title", p.Title).
		Set("description", p.Description).
		Set("media", p.Media).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCMSPageNotFound
		}
		logger.Error().Err(err).Msg("Error executing update cms page query")
		return err
	}

	return nil
}

// Delete deletes a cms page by its ID.
func (r *CMSPageRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("cms_pages").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete cms page query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCMSPageNotFound
	}

	return nil
}

// GetAll retrieves every cms page, newest first.
func (r *CMSPageRepository) GetAll(ctx context.Context) ([]*models.CMSPage, error) {
	sqlStr, args, err := r.selectCMSPageQuery().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all cms pages query")
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.CMSPage, 0)
	for rows.Next() {
		p, err := scanCMSPage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}

	return items, rows.Err()
}

// List retrieves a paginated page of cms pages, optionally filtered by a
// case-insensitive title match.
func (r *CMSPageRepository) List(ctx context.Context, query string, page, size int) ([]*models.CMSPage, dto.PaginationInfo, error) {
	sqlBuilder := r.selectCMSPageQuery()
	countBuilder := squirrel.Select("count(*)").From("cms_pages").PlaceholderFormat(squirrel.Dollar)

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
		logger.Error().Err(err).Msg("Error executing count cms pages query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.CMSPage{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list cms pages query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	items := make([]*models.CMSPage, 0)
	for rows.Next() {
		p, err := scanCMSPage(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		items = append(items, p)
	}

	return items, pagination, rows.Err()
}

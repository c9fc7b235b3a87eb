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

// EPaperRepository handles database operations for EPaper.
type EPaperRepository struct {
	DB *pgxpool.Pool
}

// NewEPaperRepository creates a new instance of EPaperRepository.
func NewEPaperRepository(db *pgxpool.Pool) *EPaperRepository {
	return &EPaperRepository{DB: db}
}

func (r *EPaperRepository) selectEPaperQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "name", "media", "pdf", "created_at", "updated_at").
		From("epapers").
		PlaceholderFormat(squirrel.Dollar)
}

func scanEPaper(row pgx.Row) (*models.EPaper, error) {
	var e models.EPaper
	err := row.Scan(&e.ID, &e.Name, &e.Media, &e.PDF, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEPaperNotFound
		}
		logger.Error().Err(err).Msg("Error scanning epaper row")
		return nil, err
	}
	return &e, nil
}

// Create inserts a new epaper and fills in the generated id and timestamps.
func (r *EPaperRepository) Create(ctx context.Context, e *models.EPaper) error {
	sql, args, err := squirrel.Insert("epapers").
		Columns("name", "media", "pdf").
		Values(e.Name, e.Media, e.PDF).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create epaper query")
		return err
	}

	return nil
}

// GetByID retrieves a single epaper by its ID.
func (r *EPaperRepository) GetByID(ctx context.Context, id int64) (*models.EPaper, error) {
	sqlStr, args, err := r.selectEPaperQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanEPaper(r.DB.QueryRow(ctx, sqlStr, args...))
}

// FindByName returns the epaper with the given name, or nil if none exists.
func (r *EPaperRepository) FindByName(ctx context.Context, name string) (*models.EPaper, error) {
	sqlStr, args, err := r.selectEPaperQuery().Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return nil, err
	}

	e, err := scanEPaper(r.DB.QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil
	}
	return e, err
}

// Update persists all fields of the epaper.
func (r *EPaperRepository) Update(ctx context.Context, e *models.EPaper) error {
	sql, args, err := squirrel.Update("epapers").
		Set("name", e.Name).
		Set("media", e.Media).
		Set("pdf", e.PDF).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrEPaperNotFound
		}
		logger.Error().Err(err).Msg("Error executing update epaper query")
		return err
	}

	return nil
}

// Delete deletes an epaper by its ID.
func (r *EPaperRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("epapers").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete epaper query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEPaperNotFound
	}

	return nil
}

// GetAll retrieves every epaper, newest first.
func (r *EPaperRepository) GetAll(ctx context.Context) ([]*models.EPaper, error) {
	sqlStr, args, err := r.selectEPaperQuery().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all epapers query")
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.EPaper, 0)
	for rows.Next() {
		e, err := scanEPaper(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}

	return items, rows.Err()
}

// List retrieves a paginated page of epapers, optionally filtered by a
// case-insensitive name match.
func (r *EPaperRepository) List(ctx context.Context, query string, page, size int) ([]*models.EPaper, dto.PaginationInfo, error) {
	sqlBuilder := r.selectEPaperQuery()
	countBuilder := squirrel.Select("count(*)").From("epapers").PlaceholderFormat(squirrel.Dollar)

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
		logger.Error().Err(err).Msg("Error executing count epapers query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.EPaper{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list epapers query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	items := make([]*models.EPaper, 0)
	for rows.Next() {
		e, err := scanEPaper(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		items = append(items, e)
	}

	return items, pagination, rows.Err()
}

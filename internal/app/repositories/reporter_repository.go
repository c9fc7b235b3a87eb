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

// ReporterRepository handles database operations for Reporter.
type ReporterRepository struct {
	DB *pgxpool.Pool
}

// NewReporterRepository creates a new instance of ReporterRepository.
func NewReporterRepository(db *pgxpool.Pool) *ReporterRepository {
	return &ReporterRepository{DB: db}
}

func (r *ReporterRepository) selectReporterQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "name", "state", "district", "constituency", "mandal", "status", "user_id", "image", "created_at", "updated_at").
		From("reporters").
		PlaceholderFormat(squirrel.Dollar)
}

func scanReporter(row pgx.Row) (*models.Reporter, error) {
	var rep models.Reporter
	err := row.Scan(&rep.ID, &rep.Name, &rep.State, &rep.District, &rep.Constituency, &rep.Mandal, &rep.Status, &rep.UserID, &rep.Image, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReporterNotFound
		}
		logger.Error().Err(err).Msg("Error scanning reporter row")
		return nil, err
	}
	return &rep, nil
}

// Create inserts a new reporter application and fills in the generated id and timestamps.
func (r *ReporterRepository) Create(ctx context.Context, rep *models.Reporter) error {
	sql, args, err := squirrel.Insert("reporters").
		Columns("name", "state", "district", "constituency", "mandal", "status", "user_id", "image").
		Values(rep.Name, rep.State, rep.District, rep.Constituency, rep.Mandal, rep.Status, rep.UserID, rep.Image).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create reporter query")
		return err
	}

	return nil
}

// GetByID retrieves a single reporter by its ID.
func (r *ReporterRepository) GetByID(ctx context.Context, id int64) (*models.Reporter, error) {
	sqlStr, args, err := r.selectReporterQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanReporter(r.DB.QueryRow(ctx, sqlStr, args...))
}

// FindByUserID returns the reporter application tied to the given user account,
// or nil if none exists.
func (r *ReporterRepository) FindByUserID(ctx context.Context, userID int64) (*models.Reporter, error) {
	sqlStr, args, err := r.selectReporterQuery().Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return nil, err
	}

	rep, err := scanReporter(r.DB.QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil
	}
	return rep, err
}

// ImagePathsByUser returns the stored image paths of the user's reporter
// application, for file cleanup when the owning account goes away.
func (r *ReporterRepository) ImagePathsByUser(ctx context.Context, userID int64) ([]string, error) {
	sqlStr, args, err := squirrel.Select("image").
		From("reporters").
		Where(squirrel.And{squirrel.Eq{"user_id": userID}, squirrel.NotEq{"image": ""}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing reporter image paths query")
		return nil, err
	}
	defer rows.Close()

	paths := make([]string, 0)
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, rows.Err()
}

// Update persists all fields of the reporter.
func (r *ReporterRepository) Update(ctx context.Context, rep *models.Reporter) error {
	sql, args, err := squirrel.Update("reporters").
		Set("name", rep.Name).
		Set("state", rep.State).
		Set("district", rep.District).
		Set("constituency", rep.Constituency).
		Set("mandal", rep.Mandal).
		Set("status", rep.Status).
		Set("image", rep.Image).
		Where(squirrel.Eq{"id": rep.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&rep.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrReporterNotFound
		}
		logger.Error().Err(err).Msg("Error executing update reporter query")
		return err
	}

	return nil
}

// Delete deletes a reporter by its ID.
func (r *ReporterRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("reporters").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete reporter query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReporterNotFound
	}

	return nil
}

// List retrieves a paginated page of reporters, optionally filtered by a
// case-insensitive match on name or district.
func (r *ReporterRepository) List(ctx context.Context, query string, page, size int) ([]*models.Reporter, dto.PaginationInfo, error) {
	sqlBuilder := r.selectReporterQuery()
	countBuilder := squirrel.Select("count(*)").From("reporters").PlaceholderFormat(squirrel.Dollar)

	if query != "" {
		like := squirrel.Or{
			squirrel.ILike{"name": "%" + query + "%"},
			squirrel.ILike{"district": "%" + query + "%"},
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
		logger.Error().Err(err).Msg("Error executing count reporters query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.Reporter{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list reporters query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	items := make([]*models.Reporter, 0)
	for rows.Next() {
		rep, err := scanReporter(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		items = append(items, rep)
	}

	return items, pagination, rows.Err()
}

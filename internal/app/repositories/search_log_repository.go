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

// SearchLogRepository handles database operations for SearchLog.
type SearchLogRepository struct {
	DB *pgxpool.Pool
}

// NewSearchLogRepository creates a new instance of SearchLogRepository.
func NewSearchLogRepository(db *pgxpool.Pool) *SearchLogRepository {
	return &SearchLogRepository{DB: db}
}

func (r *SearchLogRepository) selectSearchLogQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "term", "count", "searched_at", "created_at", "updated_at").
		From("search_logs").
		PlaceholderFormat(squirrel.Dollar)
}

func scanSearchLog(row pgx.Row) (*models.SearchLog, error) {
	var s models.SearchLog
	err := row.Scan(&s.ID, &s.Term, &s.Count, &s.SearchedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSearchLogNotFound
		}
		logger.Error().Err(err).Msg("Error scanning search log row")
		return nil, err
	}
	return &s, nil
}

// Upsert inserts a search log row, or accumulates the count and refreshes the
// search date of the existing row for the same term. The increment happens in
// the database, so concurrent searches never lose counts. The model is updated
// with the row as stored.
func (r *SearchLogRepository) Upsert(ctx context.Context, s *models.SearchLog) error {
	sql, args, err := squirrel.Insert("search_logs").
		Columns("term", "count", "searched_at").
		Values(s.Term, s.Count, s.SearchedAt).
		Suffix("ON CONFLICT (term) DO UPDATE SET count = search_logs.count + EXCLUDED.count, searched_at = EXCLUDED.searched_at RETURNING id, count, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.Count, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing upsert search log query")
		return err
	}

	return nil
}

// GetByID retrieves a single search log by its ID.
func (r *SearchLogRepository) GetByID(ctx context.Context, id int64) (*models.SearchLog, error) {
	sqlStr, args, err := r.selectSearchLogQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanSearchLog(r.DB.QueryRow(ctx, sqlStr, args...))
}

// FindByTerm returns the search log for the given term, or nil if none exists.
func (r *SearchLogRepository) FindByTerm(ctx context.Context, term string) (*models.SearchLog, error) {
	sqlStr, args, err := r.selectSearchLogQuery().Where(squirrel.Eq{"term": term}).ToSql()
	if err != nil {
		return nil, err
	}

	s, err := scanSearchLog(r.DB.QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil
	}
	return s, err
}

// Update persists all fields of the search log.
func (r *SearchLogRepository) Update(ctx context.Context, s *models.SearchLog) error {
	sql, args, err := squirrel.Update("search_logs").
		Set("term", s.Term).
		Set("count", s.Count).
		Set("searched_at", s.SearchedAt).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrSearchLogNotFound
		}
		logger.Error().Err(err).Msg("Error executing update search log query")
		return err
	}

	return nil
}

// Delete deletes a search log by its ID.
func (r *SearchLogRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("search_logs").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete search log query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSearchLogNotFound
	}

	return nil
}

// List retrieves a paginated page of search logs ordered by count, optionally
// filtered by a case-insensitive term match.
func (r *SearchLogRepository) List(ctx context.Context, query string, page, size int) ([]*models.SearchLog, dto.PaginationInfo, error) {
	sqlBuilder := r.selectSearchLogQuery()
	countBuilder := squirrel.Select("count(*)").From("search_logs").PlaceholderFormat(squirrel.Dollar)

	if query != "" {
		like := squirrel.ILike{"term": "%" + query + "%"}
		sqlBuilder = sqlBuilder.Where(like)
		countBuilder = countBuilder.Where(like)
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	if err := r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count search logs query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.SearchLog{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("count DESC", "searched_at DESC").Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list search logs query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	items := make([]*models.SearchLog, 0)
	for rows.Next() {
		s, err := scanSearchLog(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		items = append(items, s)
	}

	return items, pagination, rows.Err()
}

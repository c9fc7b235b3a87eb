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

// PostRepository handles database operations for Post, including the
// per-post view and reaction relations.
type PostRepository struct {
	DB *pgxpool.Pool
}

// NewPostRepository creates a new instance of PostRepository.
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{DB: db}
}

// View and reaction counts are always derived from the relation tables in the
// same query that loads the post.
func (r *PostRepository) selectPostQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"p.id", "p.type", "p.description", "p.status", "p.user_id", "p.image", "p.created_at", "p.updated_at",
		"(SELECT count(*) FROM post_views v WHERE v.post_id = p.id) AS views",
		"(SELECT count(*) FROM post_reactions pr WHERE pr.post_id = p.id AND pr.reaction = 'LIKE') AS likes",
		"(SELECT count(*) FROM post_reactions pr WHERE pr.post_id = p.id AND pr.reaction = 'DISLIKE') AS dislikes",
	).
		From("posts p").
		PlaceholderFormat(squirrel.Dollar)
}

func scanPost(row pgx.Row) (*dto.PostResponse, error) {
	var p models.Post
	var resp dto.PostResponse
	err := row.Scan(&p.ID, &p.Type, &p.Description, &p.Status, &p.UserID, &p.Image, &p.CreatedAt, &p.UpdatedAt,
		&resp.Views, &resp.Likes, &resp.Dislikes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		logger.Error().Err(err).Msg("Error scanning post row")
		return nil, err
	}
	resp.Post = &p
	return &resp, nil
}

// Create inserts a new post and fills in the generated id and timestamps.
func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	sql, args, err := squirrel.Insert("posts").
		Columns("type", "description", "status", "user_id", "image").
		Values(p.Type, p.Description, p.Status, p.UserID, p.Image).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create post query")
		return err
	}

	return nil
}

// GetByID retrieves a single post with its derived counters.
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*dto.PostResponse, error) {
	sqlStr, args, err := r.selectPostQuery().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanPost(r.DB.QueryRow(ctx, sqlStr, args...))
}

// Update persists all mutable fields of the post.
func (r *PostRepository) Update(ctx context.Context, p *models.Post) error {
	sql, args, err := squirrel.Update("posts").
		Set("type", p.Type).
		Set("description", p.Description).
		Set("status", p.Status).
		Set("image", p.Image).
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
			return apperrors.ErrPostNotFound
		}
		logger.Error().Err(err).Msg("Error executing update post query")
		return err
	}

	return nil
}

// ImagePathsByUser returns the stored image paths of all posts owned by the
// user, for file cleanup when the owning account goes away.
func (r *PostRepository) ImagePathsByUser(ctx context.Context, userID int64) ([]string, error) {
	sqlStr, args, err := squirrel.Select("image").
		From("posts").
		Where(squirrel.And{squirrel.Eq{"user_id": userID}, squirrel.NotEq{"image": ""}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing post image paths query")
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

// Delete deletes a post by its ID. Views and reactions go with it via
// ON DELETE CASCADE.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("posts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete post query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// List retrieves a paginated page of posts with derived counters, optionally
// restricted to a post type and/or moderation status, optionally filtered by
// a case-insensitive description match.
func (r *PostRepository) List(ctx context.Context, postType string, status models.ModerationStatus, query string, page, size int) ([]*dto.PostResponse, dto.PaginationInfo, error) {
	sqlBuilder := r.selectPostQuery()
	countBuilder := squirrel.Select("count(*)").From("posts p").PlaceholderFormat(squirrel.Dollar)

	if postType != "" {
		cond := squirrel.Eq{"p.type": postType}
		sqlBuilder = sqlBuilder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}
	if status != "" {
		cond := squirrel.Eq{"p.status": status}
		sqlBuilder = sqlBuilder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}
	if query != "" {
		like := squirrel.ILike{"p.description": "%" + query + "%"}
		sqlBuilder = sqlBuilder.Where(like)
		countBuilder = countBuilder.Where(like)
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	if err := r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count posts query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*dto.PostResponse{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("p.created_at DESC").Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list posts query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	items := make([]*dto.PostResponse, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		items = append(items, p)
	}

	return items, pagination, rows.Err()
}

// AddView records a view for the post. Repeat views by the same user are
// ignored, so the derived counter stays a distinct-user count.
func (r *PostRepository) AddView(ctx context.Context, postID, userID int64) error {
	sql, args, err := squirrel.Insert("post_views").
		Columns("post_id", "user_id").
		Values(postID, userID).
		Suffix("ON CONFLICT (post_id, user_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing add post view query")
		return err
	}

	return nil
}

// GetReaction returns the user's current reaction on the post, or nil when
// the user has not reacted.
func (r *PostRepository) GetReaction(ctx context.Context, postID, userID int64) (*models.PostReaction, error) {
	sqlStr, args, err := squirrel.Select("id", "post_id", "user_id", "reaction", "created_at").
		From("post_reactions").
		Where(squirrel.Eq{"post_id": postID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var pr models.PostReaction
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&pr.ID, &pr.PostID, &pr.UserID, &pr.Reaction, &pr.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Msg("Error executing get post reaction query")
		return nil, err
	}
	return &pr, nil
}

// SetReaction inserts the user's reaction on the post, replacing an existing
// one of the opposite kind.
func (r *PostRepository) SetReaction(ctx context.Context, postID, userID int64, reaction models.ReactionType) error {
	sql, args, err := squirrel.Insert("post_reactions").
		Columns("post_id", "user_id", "reaction").
		Values(postID, userID, reaction).
		Suffix("ON CONFLICT (post_id, user_id) DO UPDATE SET reaction = EXCLUDED.reaction").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing set post reaction query")
		return err
	}

	return nil
}

// RemoveReaction deletes the user's reaction on the post, if any.
func (r *PostRepository) RemoveReaction(ctx context.Context, postID, userID int64) error {
	sql, args, err := squirrel.Delete("post_reactions").
		Where(squirrel.Eq{"post_id": postID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing remove post reaction query")
		return err
	}

	return nil
}

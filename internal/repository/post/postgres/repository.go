package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/metrics"
	"blog-platform-service/internal/model"
	"blog-platform-service/internal/repository/postgres/db"
)

const foreignKeyViolationCode = "23503"

type PostRepository struct {
	db      db.PgDB
	log     *logger.Logger
	metrics metrics.Provider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()

	args := pgx.NamedArgs{
		"user_id":    post.UserID,
		"title":      post.Title,
		"content":    post.Content,
		"category":   post.Category,
		"created_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `
		INSERT INTO posts (user_id, title, content, category, created_at)
		VALUES (@user_id, @title, @content, @category, @created_at)
		RETURNING id, user_id, title, content, category, created_at`

	var createdPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.UserID,
		&createdPost.Title,
		&createdPost.Content,
		&createdPost.Category,
		&createdPost.CreatedAt,
	)
	p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))

	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_create", false)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			p.log.Debug("Author does not exist", slog.Int64("user_id", post.UserID))
			return nil, custom_errors.ErrUserNotFound
		}
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_create", true)
	return &createdPost, nil
}

func (p *PostRepository) GetByIDWithAuthor(ctx context.Context, id int64) (*model.PostWithAuthor, error) {
	args := pgx.NamedArgs{"id": id}
	query := `
		SELECT p.id, p.user_id, p.title, p.content, p.category, p.created_at, u.username, u.email
		FROM posts p
		INNER JOIN users u ON p.user_id = u.id
		WHERE p.id = @id`

	post := &model.PostWithAuthor{}
	err := p.db.QueryRow(ctx, query, args).Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Content,
		&post.Category,
		&post.CreatedAt,
		&post.Username,
		&post.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

func (p *PostRepository) ListWithAuthor(ctx context.Context) ([]*model.PostWithAuthor, error) {
	start := time.Now()
	query := `
		SELECT p.id, p.user_id, p.title, p.content, p.category, p.created_at, u.username, u.email
		FROM posts p
		INNER JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC`

	rows, err := p.db.Query(ctx, query)
	p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts, err := p.scanPostsWithAuthor(rows)
	if err != nil {
		return nil, err
	}

	p.metrics.IncrementDatabaseQueries("post_list", true)
	return posts, nil
}

func (p *PostRepository) GetByAuthor(ctx context.Context, userID int64) ([]*model.Post, error) {
	args := pgx.NamedArgs{"user_id": userID}
	query := `SELECT id, user_id, title, content, category, created_at
				FROM posts WHERE user_id = @user_id ORDER BY created_at DESC`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.log.Error("Error getting posts by author", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Title,
			&post.Content,
			&post.Category,
			&post.CreatedAt,
		)
		if err != nil {
			p.log.Error("Error scanning post during GetByAuthor", slog.Int64("user_id", userID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating rows during GetByAuthor", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}

func (p *PostRepository) GetByAuthorWithAuthor(ctx context.Context, userID int64) ([]*model.PostWithAuthor, error) {
	args := pgx.NamedArgs{"user_id": userID}
	query := `
		SELECT p.id, p.user_id, p.title, p.content, p.category, p.created_at, u.username, u.email
		FROM posts p
		INNER JOIN users u ON p.user_id = u.id
		WHERE p.user_id = @user_id
		ORDER BY p.created_at DESC`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.log.Error("Error getting posts with author", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	return p.scanPostsWithAuthor(rows)
}

func (p *PostRepository) scanPostsWithAuthor(rows pgx.Rows) ([]*model.PostWithAuthor, error) {
	var posts []*model.PostWithAuthor
	for rows.Next() {
		var post model.PostWithAuthor
		err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Title,
			&post.Content,
			&post.Category,
			&post.CreatedAt,
			&post.Username,
			&post.Email,
		)
		if err != nil {
			p.log.Error("Error scanning post with author", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		p.log.Error("Error iterating post rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}

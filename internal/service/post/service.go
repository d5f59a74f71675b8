package post_service

import (
	"context"
	"errors"
	"log/slog"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/metrics"
	"blog-platform-service/internal/model"
	post_repository "blog-platform-service/internal/repository/post"
)

type PostService struct {
	postRepo post_repository.Repository
	log      *logger.Logger
	metrics  metrics.Provider
}

func NewPostService(postRepo post_repository.Repository, log *logger.Logger, metrics metrics.Provider) *PostService {
	return &PostService{
		postRepo: postRepo,
		log:      log,
		metrics:  metrics,
	}
}

func (s *PostService) List(ctx context.Context) ([]*model.PostWithAuthor, error) {
	posts, err := s.postRepo.ListWithAuthor(ctx)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("list", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("list", true)
	return posts, nil
}

// Create inserts the post and re-reads the joined row so the response
// carries the author identity.
func (s *PostService) Create(ctx context.Context, dto *model.CreatePostDTO) (*model.PostWithAuthor, error) {
	created, err := s.postRepo.Create(ctx, &model.Post{
		UserID:   dto.UserID,
		Title:    dto.Title,
		Content:  dto.Content,
		Category: dto.Category,
	})
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Author not found for post create", slog.Int64("user_id", dto.UserID))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	post, err := s.postRepo.GetByIDWithAuthor(ctx, created.ID)
	if err != nil {
		s.log.Error("Failed to read back created post", slog.Int64("id", created.ID), slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.log.Info("Post created", slog.Int64("id", post.ID), slog.Int64("user_id", post.UserID))
	s.metrics.IncrementPostOperations("create", true)
	return post, nil
}

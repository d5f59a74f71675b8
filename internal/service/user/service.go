package user_service

import (
	"context"
	"errors"
	"log/slog"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/metrics"
	"blog-platform-service/internal/model"
	post_repository "blog-platform-service/internal/repository/post"
	user_repository "blog-platform-service/internal/repository/user"
)

type UserService struct {
	userRepo user_repository.Repository
	postRepo post_repository.Repository
	log      *logger.Logger
	metrics  metrics.Provider
}

func NewUserService(userRepo user_repository.Repository, postRepo post_repository.Repository, log *logger.Logger, metrics metrics.Provider) *UserService {
	return &UserService{
		userRepo: userRepo,
		postRepo: postRepo,
		log:      log,
		metrics:  metrics,
	}
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list users", slog.String("error", err.Error()))
		s.metrics.IncrementUserOperations("list", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementUserOperations("list", true)
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			s.log.Debug("User not found", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		default:
			s.log.Error("Failed to get user by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, dto *model.CreateUserDTO) (*model.User, error) {
	user, err := s.userRepo.Create(ctx, &model.User{
		Username: dto.Username,
		Email:    dto.Email,
	})
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserAlreadyExists) {
			s.metrics.IncrementUserOperations("create", false)
			return nil, custom_errors.ErrUserAlreadyExists
		}
		s.log.Error("Failed to create user", slog.String("error", err.Error()))
		s.metrics.IncrementUserOperations("create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.log.Info("User created", slog.Int64("id", user.ID))
	s.metrics.IncrementUserOperations("create", true)
	return user, nil
}

func (s *UserService) Replace(ctx context.Context, id int64, dto *model.CreateUserDTO) (*model.User, error) {
	user, err := s.userRepo.Replace(ctx, id, dto)
	if err != nil {
		s.metrics.IncrementUserOperations("replace", false)
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			s.log.Debug("User not found for replace", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		case errors.Is(err, custom_errors.ErrUserAlreadyExists):
			return nil, custom_errors.ErrUserAlreadyExists
		default:
			s.log.Error("Failed to replace user", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementUserOperations("replace", true)
	return user, nil
}

// UpdatePartial mutates only the fields present in dto. A caller may only
// update their own account.
func (s *UserService) UpdatePartial(ctx context.Context, callerID, id int64, dto *model.UpdateUserDTO) (*model.User, error) {
	if callerID != id {
		s.log.Debug("Cross-user update rejected", slog.Int64("caller_id", callerID), slog.Int64("id", id))
		s.metrics.IncrementUserOperations("update", false)
		return nil, custom_errors.ErrForbidden
	}

	user, err := s.userRepo.UpdatePartial(ctx, id, dto)
	if err != nil {
		s.metrics.IncrementUserOperations("update", false)
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			s.log.Debug("User not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		case errors.Is(err, custom_errors.ErrNoUpdateRows):
			return nil, custom_errors.ErrNoUpdateRows
		case errors.Is(err, custom_errors.ErrUserAlreadyExists):
			return nil, custom_errors.ErrUserAlreadyExists
		default:
			s.log.Error("Failed to update user", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementUserOperations("update", true)
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.userRepo.Delete(ctx, id)
	if err != nil {
		s.metrics.IncrementUserOperations("delete", false)
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("User not found for delete", slog.Int64("id", id))
			return custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to delete user", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	s.log.Info("User deleted", slog.Int64("id", id))
	s.metrics.IncrementUserOperations("delete", true)
	return nil
}

func (s *UserService) GetPosts(ctx context.Context, userID int64) ([]*model.Post, error) {
	posts, err := s.postRepo.GetByAuthor(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get posts by author", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return posts, nil
}

func (s *UserService) GetPostsWithAuthor(ctx context.Context, userID int64) ([]*model.PostWithAuthor, error) {
	posts, err := s.postRepo.GetByAuthorWithAuthor(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get posts with author", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return posts, nil
}

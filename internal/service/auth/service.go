package auth_service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/metrics"
	"blog-platform-service/internal/model"
	user_repository "blog-platform-service/internal/repository/user"
)

// TokenIssuer issues a signed identity token for a user id.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

type AuthService struct {
	userRepo user_repository.Repository
	tokens   TokenIssuer
	log      *logger.Logger
	metrics  metrics.Provider
}

func NewAuthService(userRepo user_repository.Repository, tokens TokenIssuer, log *logger.Logger, metrics metrics.Provider) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
		metrics:  metrics,
	}
}

func (s *AuthService) Register(ctx context.Context, dto *model.RegisterDTO) (*model.User, error) {
	exists, err := s.userRepo.ExistsByEmailOrUsername(ctx, dto.Email, dto.Username)
	if err != nil {
		s.log.Error("Failed to check user existence", slog.String("error", err.Error()))
		s.metrics.IncrementAuthOperations("register", false)
		return nil, custom_errors.ErrDatabaseQuery
	}
	if exists {
		s.log.Debug("Duplicate registration attempt", slog.String("email", dto.Email))
		s.metrics.IncrementAuthOperations("register", false)
		return nil, custom_errors.ErrUserAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		s.metrics.IncrementAuthOperations("register", false)
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &model.User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserAlreadyExists) {
			s.metrics.IncrementAuthOperations("register", false)
			return nil, custom_errors.ErrUserAlreadyExists
		}
		s.log.Error("Failed to create user", slog.String("error", err.Error()))
		s.metrics.IncrementAuthOperations("register", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.log.Info("User registered", slog.Int64("id", user.ID))
	s.metrics.IncrementAuthOperations("register", true)
	return user, nil
}

// Login deliberately returns the same failure for an unknown email and a
// wrong password so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, dto *model.LoginDTO) (*model.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Login attempt for unknown email", slog.String("email", dto.Email))
			s.metrics.IncrementAuthOperations("login", false)
			return nil, "", custom_errors.ErrInvalidCredentials
		}
		s.log.Error("Failed to get user by email", slog.String("error", err.Error()))
		s.metrics.IncrementAuthOperations("login", false)
		return nil, "", custom_errors.ErrDatabaseQuery
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		s.log.Debug("Password mismatch", slog.Int64("id", user.ID))
		s.metrics.IncrementAuthOperations("login", false)
		return nil, "", custom_errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", slog.String("error", err.Error()))
		s.metrics.IncrementAuthOperations("login", false)
		return nil, "", err
	}

	s.log.Info("User logged in", slog.Int64("id", user.ID))
	s.metrics.IncrementAuthOperations("login", true)
	return user, token, nil
}

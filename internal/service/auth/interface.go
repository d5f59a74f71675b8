package auth_service

import (
	"context"

	"blog-platform-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/auth --outpkg mockauth --filename Service.go
type Service interface {
	Register(ctx context.Context, dto *model.RegisterDTO) (*model.User, error)
	Login(ctx context.Context, dto *model.LoginDTO) (*model.User, string, error)
}

package user_service

import (
	"context"

	"blog-platform-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/user --outpkg mockuser --filename Service.go
type Service interface {
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, dto *model.CreateUserDTO) (*model.User, error)
	Replace(ctx context.Context, id int64, dto *model.CreateUserDTO) (*model.User, error)
	UpdatePartial(ctx context.Context, callerID, id int64, dto *model.UpdateUserDTO) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	GetPosts(ctx context.Context, userID int64) ([]*model.Post, error)
	GetPostsWithAuthor(ctx context.Context, userID int64) ([]*model.PostWithAuthor, error)
}

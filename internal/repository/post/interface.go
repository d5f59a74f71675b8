package post_repository

import (
	"context"

	"blog-platform-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg mockpost --filename Repository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByIDWithAuthor(ctx context.Context, id int64) (*model.PostWithAuthor, error)
	ListWithAuthor(ctx context.Context) ([]*model.PostWithAuthor, error)
	GetByAuthor(ctx context.Context, userID int64) ([]*model.Post, error)
	GetByAuthorWithAuthor(ctx context.Context, userID int64) ([]*model.PostWithAuthor, error)
}

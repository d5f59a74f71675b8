package post_service

import (
	"context"

	"blog-platform-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mockpost --filename Service.go
type Service interface {
	List(ctx context.Context) ([]*model.PostWithAuthor, error)
	Create(ctx context.Context, dto *model.CreatePostDTO) (*model.PostWithAuthor, error)
}

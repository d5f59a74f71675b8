package user_repository

import (
	"context"

	"blog-platform-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/user --outpkg mockuser --filename Repository.go
type Repository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
	Replace(ctx context.Context, id int64, update *model.CreateUserDTO) (*model.User, error)
	UpdatePartial(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

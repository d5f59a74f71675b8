package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/model"
)

type UserRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	users  map[int64]*model.User
	nextID int64
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:    log,
		users:  make(map[int64]*model.User),
		nextID: 1,
	}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, existing := range u.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return nil, custom_errors.ErrUserAlreadyExists
		}
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	newUser := &model.User{
		ID:           u.nextID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	u.nextID++

	u.users[newUser.ID] = newUser

	result := *newUser
	return &result, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[id]
	if !exists {
		u.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (u *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, user := range u.users {
		if user.Email == email {
			result := *user
			return &result, nil
		}
	}

	u.log.Debug("User not found by email", slog.String("email", email))
	return nil, custom_errors.ErrUserNotFound
}

func (u *UserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, user := range u.users {
		if user.Email == email || user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (u *UserRepository) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	all := make([]*model.User, 0, len(u.users))
	for _, user := range u.users {
		userCopy := *user
		all = append(all, &userCopy)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (u *UserRepository) Replace(ctx context.Context, id int64, update *model.CreateUserDTO) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, exists := u.users[id]
	if !exists {
		return nil, custom_errors.ErrUserNotFound
	}

	user.Username = update.Username
	user.Email = update.Email
	user.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *user
	return &result, nil
}

func (u *UserRepository) UpdatePartial(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if update.Username == nil && update.Email == nil {
		return nil, custom_errors.ErrNoUpdateRows
	}

	user, exists := u.users[id]
	if !exists {
		return nil, custom_errors.ErrUserNotFound
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	user.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *user
	return &result, nil
}

func (u *UserRepository) Delete(ctx context.Context, id int64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.users[id]; !exists {
		return custom_errors.ErrUserNotFound
	}

	delete(u.users, id)
	return nil
}

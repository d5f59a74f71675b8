package user_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/logger"
	prometheus_metrics "blog-platform-service/internal/metrics/prometheus"
	"blog-platform-service/internal/model"
	post_memory "blog-platform-service/internal/repository/post/memory"
	user_memory "blog-platform-service/internal/repository/user/memory"
	user_service "blog-platform-service/internal/service/user"
)

func setupUserTest(t *testing.T) (*user_service.UserService, *user_memory.UserRepository, *post_memory.PostRepository) {
	log := logger.New("test")
	userRepo := user_memory.NewUserRepository(log)
	postRepo := post_memory.NewPostRepository(log, userRepo)
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	return user_service.NewUserService(userRepo, postRepo, log, metrics), userRepo, postRepo
}

func seedUser(t *testing.T, repo *user_memory.UserRepository, username, email string) *model.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &model.User{
		Username: username,
		Email:    email,
	})
	require.NoError(t, err)
	return user
}

func TestUserService_List(t *testing.T) {
	svc, userRepo, _ := setupUserTest(t)

	seedUser(t, userRepo, "alice", "alice@example.com")
	seedUser(t, userRepo, "bob", "bob@example.com")
	seedUser(t, userRepo, "carol", "carol@example.com")

	users, err := svc.List(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)

	users, err = svc.List(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "carol", users[0].Username)
}

func TestUserService_GetByID(t *testing.T) {
	svc, userRepo, _ := setupUserTest(t)
	alice := seedUser(t, userRepo, "alice", "alice@example.com")

	got, err := svc.GetByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.Username, got.Username)

	_, err = svc.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
}

func TestUserService_Create(t *testing.T) {
	svc, _, _ := setupUserTest(t)

	user, err := svc.Create(context.Background(), &model.CreateUserDTO{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	_, err = svc.Create(context.Background(), &model.CreateUserDTO{
		Username: "alice",
		Email:    "other@example.com",
	})
	assert.ErrorIs(t, err, custom_errors.ErrUserAlreadyExists)
}

func TestUserService_Replace(t *testing.T) {
	svc, userRepo, _ := setupUserTest(t)
	alice := seedUser(t, userRepo, "alice", "alice@example.com")

	updated, err := svc.Replace(context.Background(), alice.ID, &model.CreateUserDTO{
		Username: "alice2",
		Email:    "alice2@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice2@example.com", updated.Email)

	_, err = svc.Replace(context.Background(), 9999, &model.CreateUserDTO{
		Username: "ghost",
		Email:    "ghost@example.com",
	})
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
}

func TestUserService_UpdatePartial(t *testing.T) {
	svc, userRepo, _ := setupUserTest(t)
	alice := seedUser(t, userRepo, "alice", "alice@example.com")
	bob := seedUser(t, userRepo, "bob", "bob@example.com")

	newUsername := "alice-renamed"

	t.Run("owner can update", func(t *testing.T) {
		updated, err := svc.UpdatePartial(context.Background(), alice.ID, alice.ID, &model.UpdateUserDTO{
			Username: &newUsername,
		})
		require.NoError(t, err)
		assert.Equal(t, "alice-renamed", updated.Username)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		_, err := svc.UpdatePartial(context.Background(), bob.ID, alice.ID, &model.UpdateUserDTO{
			Username: &newUsername,
		})
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
	})

	t.Run("no fields provided", func(t *testing.T) {
		_, err := svc.UpdatePartial(context.Background(), alice.ID, alice.ID, &model.UpdateUserDTO{})
		assert.ErrorIs(t, err, custom_errors.ErrNoUpdateRows)
	})
}

func TestUserService_Delete(t *testing.T) {
	svc, userRepo, _ := setupUserTest(t)
	alice := seedUser(t, userRepo, "alice", "alice@example.com")

	require.NoError(t, svc.Delete(context.Background(), alice.ID))

	_, err := svc.GetByID(context.Background(), alice.ID)
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)

	err = svc.Delete(context.Background(), alice.ID)
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
}

func TestUserService_GetPosts(t *testing.T) {
	svc, userRepo, postRepo := setupUserTest(t)
	alice := seedUser(t, userRepo, "alice", "alice@example.com")
	bob := seedUser(t, userRepo, "bob", "bob@example.com")

	_, err := postRepo.Create(context.Background(), &model.Post{
		UserID:   alice.ID,
		Title:    "Alice post",
		Content:  "content",
		Category: model.CategoryNews,
	})
	require.NoError(t, err)
	_, err = postRepo.Create(context.Background(), &model.Post{
		UserID:   bob.ID,
		Title:    "Bob post",
		Content:  "content",
		Category: model.CategorySports,
	})
	require.NoError(t, err)

	posts, err := svc.GetPosts(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Alice post", posts[0].Title)

	withAuthor, err := svc.GetPostsWithAuthor(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, withAuthor, 1)
	assert.Equal(t, "alice", withAuthor[0].Username)
	assert.Equal(t, "alice@example.com", withAuthor[0].Email)
}

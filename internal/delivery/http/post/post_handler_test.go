package post_handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/delivery/http/middleware"
	post_handler "blog-platform-service/internal/delivery/http/post"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/model"
	mockpost "blog-platform-service/mocks/post"
)

func TestListPostsHandler_List(t *testing.T) {
	testLogger := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewPostHandler(mockPostService, testLogger)

		mockPostService.On("List", mock.Anything).Return([]*model.PostWithAuthor{
			{
				Post:     model.Post{ID: 2, UserID: 1, Title: "Newer", Content: "b", Category: model.CategorySports},
				Username: "alice",
				Email:    "alice@example.com",
			},
			{
				Post:     model.Post{ID: 1, UserID: 1, Title: "Older", Content: "a", Category: model.CategoryNews},
				Username: "alice",
				Email:    "alice@example.com",
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
		mockPostService.AssertExpectations(t)
	})

	t.Run("EmptyList", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewPostHandler(mockPostService, testLogger)

		mockPostService.On("List", mock.Anything).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestCreatePostHandler_Create(t *testing.T) {
	testLogger := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewPostHandler(mockPostService, testLogger)

		mockPostService.On("Create", mock.Anything, &model.CreatePostDTO{
			UserID:   7,
			Title:    "First post",
			Content:  "hello",
			Category: model.CategoryTechnology,
		}).Return(&model.PostWithAuthor{
			Post:     model.Post{ID: 1, UserID: 7, Title: "First post", Content: "hello", Category: model.CategoryTechnology},
			Username: "alice",
			Email:    "alice@example.com",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/posts",
			strings.NewReader(`{"title":"First post","content":"hello","category":"technology"}`))
		req = req.WithContext(middleware.ContextWithUserID(req.Context(), 7))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
		mockPostService.AssertExpectations(t)
	})

	t.Run("NoToken", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewPostHandler(mockPostService, testLogger)

		req := httptest.NewRequest(http.MethodPost, "/posts",
			strings.NewReader(`{"title":"First post","content":"hello","category":"technology"}`))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Authorization token required")
		mockPostService.AssertNotCalled(t, "Create")
	})

	t.Run("InvalidCategory", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewPostHandler(mockPostService, testLogger)

		req := httptest.NewRequest(http.MethodPost, "/posts",
			strings.NewReader(`{"title":"First post","content":"hello","category":"gossip"}`))
		req = req.WithContext(middleware.ContextWithUserID(req.Context(), 7))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Validation failed")
		assert.Contains(t, rec.Body.String(), "Category must be one of: news, sports, culture or technology")
		mockPostService.AssertNotCalled(t, "Create")
	})

	t.Run("UnknownAuthor", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewPostHandler(mockPostService, testLogger)

		mockPostService.On("Create", mock.Anything, mock.Anything).
			Return(nil, custom_errors.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodPost, "/posts",
			strings.NewReader(`{"title":"Orphan","content":"hello","category":"news"}`))
		req = req.WithContext(middleware.ContextWithUserID(req.Context(), 999))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "User not found")
	})
}

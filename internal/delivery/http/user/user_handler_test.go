package user_handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/delivery/http/middleware"
	user_handler "blog-platform-service/internal/delivery/http/user"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/model"
	mockuser "blog-platform-service/mocks/user"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

func newHandler(mockUserService *mockuser.Service) *user_handler.UserHandler {
	return user_handler.NewUserHandler(mockUserService, logger.New("test"), defaultLimit, maxLimit)
}

func withPathID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestListUsersHandler_List(t *testing.T) {
	users := []*model.User{
		{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "secret-hash"},
		{ID: 2, Username: "bob", Email: "bob@example.com", PasswordHash: "secret-hash"},
	}

	tests := []struct {
		name          string
		query         string
		expectedLimit int
		expectedPage  int
	}{
		{name: "defaults", query: "", expectedLimit: defaultLimit, expectedPage: 1},
		{name: "explicit page and limit", query: "?page=3&limit=5", expectedLimit: 5, expectedPage: 3},
		{name: "limit clamped to max", query: "?limit=5000", expectedLimit: maxLimit, expectedPage: 1},
		{name: "malformed values fall back", query: "?page=abc&limit=-4", expectedLimit: defaultLimit, expectedPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserService := new(mockuser.Service)
			handler := newHandler(mockUserService)

			offset := (tt.expectedPage - 1) * tt.expectedLimit
			mockUserService.On("List", mock.Anything, tt.expectedLimit, offset).Return(users, nil)

			req := httptest.NewRequest(http.MethodGet, "/users"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotContains(t, rec.Body.String(), "secret-hash")

			var body struct {
				Users []*model.UserResponse `json:"users"`
				Page  int                   `json:"page"`
				Limit int                   `json:"limit"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Len(t, body.Users, 2)
			assert.Equal(t, tt.expectedPage, body.Page)
			assert.Equal(t, tt.expectedLimit, body.Limit)
			mockUserService.AssertExpectations(t)
		})
	}
}

func TestGetUserHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		mockUserService.On("GetByID", mock.Anything, int64(42)).
			Return(&model.User{ID: 42, Username: "alice", Email: "alice@example.com", PasswordHash: "secret-hash"}, nil)

		req := withPathID(httptest.NewRequest(http.MethodGet, "/users/42", nil), "42")
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret-hash")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		mockUserService.On("GetByID", mock.Anything, int64(999)).
			Return(nil, custom_errors.ErrUserNotFound)

		req := withPathID(httptest.NewRequest(http.MethodGet, "/users/999", nil), "999")
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "User not found")
	})
}

func TestCreateUserHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		mockUserService.On("Create", mock.Anything, &model.CreateUserDTO{
			Username: "alice",
			Email:    "alice@example.com",
		}).Return(&model.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/users",
			strings.NewReader(`{"username":"alice","email":"alice@example.com"}`))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		mockUserService.On("Create", mock.Anything, mock.Anything).
			Return(nil, custom_errors.ErrUserAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/users",
			strings.NewReader(`{"username":"alice","email":"alice@example.com"}`))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "User with this email or username already exists")
	})
}

func TestReplaceUserHandler_Replace(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		mockUserService.On("Replace", mock.Anything, int64(999), mock.Anything).
			Return(nil, custom_errors.ErrUserNotFound)

		req := withPathID(httptest.NewRequest(http.MethodPut, "/users/999",
			strings.NewReader(`{"username":"ghost","email":"ghost@example.com"}`)), "999")
		rec := httptest.NewRecorder()

		handler.Replace(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Success", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		mockUserService.On("Replace", mock.Anything, int64(1), &model.CreateUserDTO{
			Username: "alice2",
			Email:    "alice2@example.com",
		}).Return(&model.User{ID: 1, Username: "alice2", Email: "alice2@example.com"}, nil)

		req := withPathID(httptest.NewRequest(http.MethodPut, "/users/1",
			strings.NewReader(`{"username":"alice2","email":"alice2@example.com"}`)), "1")
		rec := httptest.NewRecorder()

		handler.Replace(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice2")
	})
}

func TestUpdateUserHandler_Update(t *testing.T) {
	t.Run("OwnAccount", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		username := "alice-renamed"
		mockUserService.On("UpdatePartial", mock.Anything, int64(1), int64(1), &model.UpdateUserDTO{
			Username: &username,
		}).Return(&model.User{ID: 1, Username: "alice-renamed", Email: "alice@example.com"}, nil)

		req := withPathID(httptest.NewRequest(http.MethodPatch, "/users/1",
			strings.NewReader(`{"username":"alice-renamed"}`)), "1")
		req = req.WithContext(middleware.ContextWithUserID(req.Context(), 1))
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice-renamed")
	})

	t.Run("OtherAccountForbidden", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		mockUserService.On("UpdatePartial", mock.Anything, int64(2), int64(1), mock.Anything).
			Return(nil, custom_errors.ErrForbidden)

		req := withPathID(httptest.NewRequest(http.MethodPatch, "/users/1",
			strings.NewReader(`{"username":"hijacked"}`)), "1")
		req = req.WithContext(middleware.ContextWithUserID(req.Context(), 2))
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Users can only update their own account")
	})

	t.Run("NoToken", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		req := withPathID(httptest.NewRequest(http.MethodPatch, "/users/1",
			strings.NewReader(`{"username":"alice"}`)), "1")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockUserService.AssertNotCalled(t, "UpdatePartial")
	})
}

func TestDeleteUserHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		mockUserService.On("Delete", mock.Anything, int64(1)).Return(nil)

		req := withPathID(httptest.NewRequest(http.MethodDelete, "/users/1", nil), "1")
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		mockUserService.On("Delete", mock.Anything, int64(1)).Return(custom_errors.ErrUserNotFound)

		req := withPathID(httptest.NewRequest(http.MethodDelete, "/users/1", nil), "1")
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUserPostsHandler(t *testing.T) {
	t.Run("PostsEmptyForUnknownAuthor", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		mockUserService.On("GetPosts", mock.Anything, int64(999)).Return(nil, nil)

		req := withPathID(httptest.NewRequest(http.MethodGet, "/users/999/posts", nil), "999")
		rec := httptest.NewRecorder()

		handler.Posts(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("PostsWithUser", func(t *testing.T) {
		mockUserService := new(mockuser.Service)
		handler := newHandler(mockUserService)

		mockUserService.On("GetPostsWithAuthor", mock.Anything, int64(1)).Return([]*model.PostWithAuthor{
			{
				Post:     model.Post{ID: 1, UserID: 1, Title: "Hello", Content: "World", Category: model.CategoryNews},
				Username: "alice",
				Email:    "alice@example.com",
			},
		}, nil)

		req := withPathID(httptest.NewRequest(http.MethodGet, "/users/1/posts-with-user", nil), "1")
		rec := httptest.NewRecorder()

		handler.PostsWithUser(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	})
}

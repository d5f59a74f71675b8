package user_handler

import (
	"context"
	"log/slog"
	"net/http"

	"blog-platform-service/internal/delivery/http/response"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/model"
)

type UserPostsReader interface {
	GetPosts(ctx context.Context, userID int64) ([]*model.Post, error)
	GetPostsWithAuthor(ctx context.Context, userID int64) ([]*model.PostWithAuthor, error)
}

type UserPostsHandler struct {
	userService UserPostsReader
	log         *logger.Logger
}

func NewUserPostsHandler(userService UserPostsReader, log *logger.Logger) *UserPostsHandler {
	return &UserPostsHandler{
		userService: userService,
		log:         log,
	}
}

// Posts returns the bare posts of one author. An unknown author yields an
// empty list, not a 404.
func (h *UserPostsHandler) Posts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	posts, err := h.userService.GetPosts(r.Context(), id)
	if err != nil {
		h.log.Error("Failed to fetch user posts", slog.Int64("user_id", id), slog.String("error", err.Error()))
		response.Error(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	if posts == nil {
		posts = []*model.Post{}
	}
	response.JSON(w, http.StatusOK, posts)
}

func (h *UserPostsHandler) PostsWithUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	posts, err := h.userService.GetPostsWithAuthor(r.Context(), id)
	if err != nil {
		h.log.Error("Failed to fetch user posts with author", slog.Int64("user_id", id), slog.String("error", err.Error()))
		response.Error(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	if posts == nil {
		posts = []*model.PostWithAuthor{}
	}
	response.JSON(w, http.StatusOK, posts)
}

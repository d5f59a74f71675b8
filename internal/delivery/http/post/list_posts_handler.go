package post_handler

import (
	"context"
	"log/slog"
	"net/http"

	"blog-platform-service/internal/delivery/http/response"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/model"
)

type PostsLister interface {
	List(ctx context.Context) ([]*model.PostWithAuthor, error)
}

type ListPostsHandler struct {
	postService PostsLister
	log         *logger.Logger
}

func NewListPostsHandler(postService PostsLister, log *logger.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		log:         log,
	}
}

func (h *ListPostsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		h.log.Error("Failed to list posts", slog.String("error", err.Error()))
		response.Error(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	if posts == nil {
		posts = []*model.PostWithAuthor{}
	}
	response.JSON(w, http.StatusOK, posts)
}

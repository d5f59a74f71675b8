package post_handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/delivery/http/middleware"
	"blog-platform-service/internal/delivery/http/response"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/model"
)

type PostCreator interface {
	Create(ctx context.Context, dto *model.CreatePostDTO) (*model.PostWithAuthor, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log *logger.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=255"`
	Content  string `json:"content" validate:"required,min=1"`
	Category string `json:"category" validate:"required,oneof=news sports culture technology"`
}

// Create inserts a post authored by the authenticated caller and responds
// with the joined author projection.
func (h *CreatePostHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		response.ValidationError(w, err)
		return
	}

	post, err := h.postService.Create(r.Context(), &model.CreatePostDTO{
		UserID:   callerID,
		Title:    req.Title,
		Content:  req.Content,
		Category: model.Category(req.Category),
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			response.Error(w, http.StatusNotFound, "User not found")
		default:
			h.log.Error("Failed to create post", slog.Int64("user_id", callerID), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to create post")
		}
		return
	}

	response.JSON(w, http.StatusCreated, post)
}

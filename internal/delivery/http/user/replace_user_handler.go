package user_handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/delivery/http/response"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/model"
)

type UserReplacer interface {
	Replace(ctx context.Context, id int64, dto *model.CreateUserDTO) (*model.User, error)
}

type ReplaceUserHandler struct {
	userService UserReplacer
	validate    *validator.Validate
	log         *logger.Logger
}

func NewReplaceUserHandler(userService UserReplacer, validate *validator.Validate, log *logger.Logger) *ReplaceUserHandler {
	return &ReplaceUserHandler{
		userService: userService,
		validate:    validate,
		log:         log,
	}
}

type ReplaceUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
}

func (h *ReplaceUserHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req ReplaceUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		response.ValidationError(w, err)
		return
	}

	user, err := h.userService.Replace(r.Context(), id, &model.CreateUserDTO{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			response.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, custom_errors.ErrUserAlreadyExists):
			response.Error(w, http.StatusBadRequest, "User with this email or username already exists")
		default:
			h.log.Error("Failed to replace user", slog.Int64("id", id), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	response.JSON(w, http.StatusOK, user.ToResponse())
}

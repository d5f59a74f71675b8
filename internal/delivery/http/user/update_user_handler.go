package user_handler

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

type UserUpdater interface {
	UpdatePartial(ctx context.Context, callerID, id int64, dto *model.UpdateUserDTO) (*model.User, error)
}

type UpdateUserHandler struct {
	userService UserUpdater
	validate    *validator.Validate
	log         *logger.Logger
}

func NewUpdateUserHandler(userService UserUpdater, validate *validator.Validate, log *logger.Logger) *UpdateUserHandler {
	return &UpdateUserHandler{
		userService: userService,
		validate:    validate,
		log:         log,
	}
}

type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=2,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

func (h *UpdateUserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		response.ValidationError(w, err)
		return
	}

	user, err := h.userService.UpdatePartial(r.Context(), callerID, id, &model.UpdateUserDTO{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrForbidden):
			response.Error(w, http.StatusForbidden, "Users can only update their own account")
		case errors.Is(err, custom_errors.ErrUserNotFound):
			response.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, custom_errors.ErrNoUpdateRows):
			response.Error(w, http.StatusBadRequest, "No fields to update")
		case errors.Is(err, custom_errors.ErrUserAlreadyExists):
			response.Error(w, http.StatusBadRequest, "User with this email or username already exists")
		default:
			h.log.Error("Failed to update user", slog.Int64("id", id), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	response.JSON(w, http.StatusOK, user.ToResponse())
}

package user_handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/delivery/http/response"
	"blog-platform-service/internal/logger"
)

type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

type DeleteUserHandler struct {
	userService UserDeleter
	log         *logger.Logger
}

func NewDeleteUserHandler(userService UserDeleter, log *logger.Logger) *DeleteUserHandler {
	return &DeleteUserHandler{
		userService: userService,
		log:         log,
	}
}

func (h *DeleteUserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			response.Error(w, http.StatusNotFound, "User not found")
		default:
			h.log.Error("Failed to delete user", slog.Int64("id", id), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to delete user")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

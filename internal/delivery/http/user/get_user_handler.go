package user_handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/delivery/http/response"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/model"
)

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

type GetUserHandler struct {
	userService UserGetter
	log         *logger.Logger
}

func NewGetUserHandler(userService UserGetter, log *logger.Logger) *GetUserHandler {
	return &GetUserHandler{
		userService: userService,
		log:         log,
	}
}

func (h *GetUserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			response.Error(w, http.StatusNotFound, "User not found")
		default:
			h.log.Error("Failed to get user", slog.Int64("id", id), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to fetch user")
		}
		return
	}

	response.JSON(w, http.StatusOK, user.ToResponse())
}

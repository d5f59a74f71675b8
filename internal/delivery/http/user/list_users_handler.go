package user_handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"blog-platform-service/internal/delivery/http/response"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/model"
)

type UsersLister interface {
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
}

type ListUsersHandler struct {
	userService  UsersLister
	log          *logger.Logger
	defaultLimit int
	maxLimit     int
}

func NewListUsersHandler(userService UsersLister, log *logger.Logger, defaultLimit, maxLimit int) *ListUsersHandler {
	return &ListUsersHandler{
		userService:  userService,
		log:          log,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

type ListUsersResponse struct {
	Users []*model.UserResponse `json:"users"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

func (h *ListUsersHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := h.pagination(r)

	users, err := h.userService.List(r.Context(), limit, (page-1)*limit)
	if err != nil {
		h.log.Error("Failed to list users", slog.String("error", err.Error()))
		response.Error(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	result := make([]*model.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, user.ToResponse())
	}

	response.JSON(w, http.StatusOK, ListUsersResponse{Users: result, Page: page, Limit: limit})
}

// pagination falls back to defaults on absent or malformed values and
// clamps limit to the configured maximum.
func (h *ListUsersHandler) pagination(r *http.Request) (page, limit int) {
	page = 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit = h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}
	return page, limit
}

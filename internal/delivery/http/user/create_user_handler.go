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

type UserCreator interface {
	Create(ctx context.Context, dto *model.CreateUserDTO) (*model.User, error)
}

type CreateUserHandler struct {
	userService UserCreator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreateUserHandler(userService UserCreator, validate *validator.Validate, log *logger.Logger) *CreateUserHandler {
	return &CreateUserHandler{
		userService: userService,
		validate:    validate,
		log:         log,
	}
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
}

func (h *CreateUserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		response.ValidationError(w, err)
		return
	}

	user, err := h.userService.Create(r.Context(), &model.CreateUserDTO{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserAlreadyExists):
			response.Error(w, http.StatusBadRequest, "User with this email or username already exists")
		default:
			h.log.Error("Failed to create user", slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	response.JSON(w, http.StatusCreated, user.ToResponse())
}

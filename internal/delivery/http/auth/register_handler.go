package auth_handler

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

type Registrar interface {
	Register(ctx context.Context, dto *model.RegisterDTO) (*model.User, error)
}

type RegisterHandler struct {
	authService Registrar
	validate    *validator.Validate
	log         *logger.Logger
}

func NewRegisterHandler(authService Registrar, validate *validator.Validate, log *logger.Logger) *RegisterHandler {
	return &RegisterHandler{
		authService: authService,
		validate:    validate,
		log:         log,
	}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponse struct {
	Message string              `json:"message"`
	User    *model.UserResponse `json:"user"`
}

func (h *RegisterHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		response.ValidationError(w, err)
		return
	}

	user, err := h.authService.Register(r.Context(), &model.RegisterDTO{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserAlreadyExists):
			response.Error(w, http.StatusBadRequest, "User with this email or username already exists")
		default:
			h.log.Error("Failed to register user", slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	response.JSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		User:    user.ToResponse(),
	})
}

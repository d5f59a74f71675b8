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

type Authenticator interface {
	Login(ctx context.Context, dto *model.LoginDTO) (*model.User, string, error)
}

type LoginHandler struct {
	authService Authenticator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewLoginHandler(authService Authenticator, validate *validator.Validate, log *logger.Logger) *LoginHandler {
	return &LoginHandler{
		authService: authService,
		validate:    validate,
		log:         log,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string              `json:"message"`
	Token   string              `json:"token"`
	User    *model.UserResponse `json:"user"`
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		response.ValidationError(w, err)
		return
	}

	user, token, err := h.authService.Login(r.Context(), &model.LoginDTO{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrInvalidCredentials):
			response.Error(w, http.StatusUnauthorized, "Invalid email or password")
		default:
			h.log.Error("Failed to log in user", slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	response.JSON(w, http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.ToResponse(),
	})
}

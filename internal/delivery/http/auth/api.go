package auth_handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"blog-platform-service/internal/logger"
	auth_service "blog-platform-service/internal/service/auth"
)

var validate = validator.New()

type AuthHandler struct {
	authService     auth_service.Service
	log             *logger.Logger
	registerHandler *RegisterHandler
	loginHandler    *LoginHandler
}

func NewAuthHandler(authService auth_service.Service, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		log:             log,
		registerHandler: NewRegisterHandler(authService, validate, log),
		loginHandler:    NewLoginHandler(authService, validate, log),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.registerHandler.Register(w, r)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.loginHandler.Login(w, r)
}

package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	auth_handler "blog-platform-service/internal/delivery/http/auth"
	"blog-platform-service/internal/delivery/http/middleware"
	post_handler "blog-platform-service/internal/delivery/http/post"
	"blog-platform-service/internal/delivery/http/response"
	user_handler "blog-platform-service/internal/delivery/http/user"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/metrics"
)

type Server struct {
	server  *http.Server
	address string
	port    int
	log     *logger.Logger
}

func NewServer(
	authHandler *auth_handler.AuthHandler,
	userHandler *user_handler.UserHandler,
	postHandler *post_handler.PostHandler,
	tokens middleware.TokenVerifier,
	metricsProvider metrics.Provider,
	address string,
	port int,
	log *logger.Logger,
) *Server {
	router := mux.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS)
	router.Use(middleware.Metrics(metricsProvider))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	router.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	router.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}", userHandler.Get).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}", userHandler.Replace).Methods(http.MethodPut)
	router.HandleFunc("/users/{id:[0-9]+}", userHandler.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/users/{id:[0-9]+}/posts", userHandler.Posts).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}/posts-with-user", userHandler.PostsWithUser).Methods(http.MethodGet)

	router.HandleFunc("/posts", postHandler.List).Methods(http.MethodGet)

	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.Auth(tokens))
	protected.HandleFunc("/users", userHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id:[0-9]+}", userHandler.Update).Methods(http.MethodPatch)
	protected.HandleFunc("/posts", postHandler.Create).Methods(http.MethodPost)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", address, port),
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		address: address,
		port:    port,
		log:     log,
	}
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

package post_handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"blog-platform-service/internal/logger"
	post_service "blog-platform-service/internal/service/post"
)

var validate = validator.New()

type PostHandler struct {
	postService   post_service.Service
	log           *logger.Logger
	listHandler   *ListPostsHandler
	createHandler *CreatePostHandler
}

func NewPostHandler(postService post_service.Service, log *logger.Logger) *PostHandler {
	return &PostHandler{
		postService:   postService,
		log:           log,
		listHandler:   NewListPostsHandler(postService, log),
		createHandler: NewCreatePostHandler(postService, validate, log),
	}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	h.listHandler.List(w, r)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.createHandler.Create(w, r)
}

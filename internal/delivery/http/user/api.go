package user_handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"blog-platform-service/internal/logger"
	user_service "blog-platform-service/internal/service/user"
)

var validate = validator.New()

type UserHandler struct {
	userService       user_service.Service
	log               *logger.Logger
	listHandler       *ListUsersHandler
	getHandler        *GetUserHandler
	createHandler     *CreateUserHandler
	replaceHandler    *ReplaceUserHandler
	updateHandler     *UpdateUserHandler
	deleteHandler     *DeleteUserHandler
	userPostsHandler  *UserPostsHandler
}

func NewUserHandler(userService user_service.Service, log *logger.Logger, defaultLimit, maxLimit int) *UserHandler {
	return &UserHandler{
		userService:      userService,
		log:              log,
		listHandler:      NewListUsersHandler(userService, log, defaultLimit, maxLimit),
		getHandler:       NewGetUserHandler(userService, log),
		createHandler:    NewCreateUserHandler(userService, validate, log),
		replaceHandler:   NewReplaceUserHandler(userService, validate, log),
		updateHandler:    NewUpdateUserHandler(userService, validate, log),
		deleteHandler:    NewDeleteUserHandler(userService, log),
		userPostsHandler: NewUserPostsHandler(userService, log),
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	h.listHandler.List(w, r)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.getHandler.Get(w, r)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.createHandler.Create(w, r)
}

func (h *UserHandler) Replace(w http.ResponseWriter, r *http.Request) {
	h.replaceHandler.Replace(w, r)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.updateHandler.Update(w, r)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.deleteHandler.Delete(w, r)
}

func (h *UserHandler) Posts(w http.ResponseWriter, r *http.Request) {
	h.userPostsHandler.Posts(w, r)
}

func (h *UserHandler) PostsWithUser(w http.ResponseWriter, r *http.Request) {
	h.userPostsHandler.PostsWithUser(w, r)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

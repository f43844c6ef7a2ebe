package user

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/kinotek/internal/platform/request"
	"github.com/taibuivan/kinotek/internal/platform/respond"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listUsers)
	router.Post("/", handler.createUser)
	router.Put("/", handler.updateUser)
	router.Get("/{id}", handler.getUser)

	router.Put("/{id}/friends/{friendId}", handler.addFriend)
	router.Delete("/{id}/friends/{friendId}", handler.deleteFriend)
	router.Get("/{id}/friends", handler.listFriends)
	router.Get("/{id}/friends/common/{otherId}", handler.listCommonFriends)

	return router
}

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, users)
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.GetUser(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	var payload User
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.CreateUser(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	var payload User
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.UpdateUser(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

func (handler *Handler) addFriend(writer http.ResponseWriter, request *http.Request) {
	userID, friendID, err := friendPair(request, "friendId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddFriend(request.Context(), userID, friendID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, struct{}{})
}

func (handler *Handler) deleteFriend(writer http.ResponseWriter, request *http.Request) {
	userID, friendID, err := friendPair(request, "friendId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFriend(request.Context(), userID, friendID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, struct{}{})
}

func (handler *Handler) listFriends(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	friends, err := handler.service.ListFriends(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, friends)
}

func (handler *Handler) listCommonFriends(writer http.ResponseWriter, request *http.Request) {
	userID, otherID, err := friendPair(request, "otherId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	friends, err := handler.service.ListCommonFriends(request.Context(), userID, otherID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, friends)
}

// friendPair extracts the {id} segment plus a second user id segment.
func friendPair(request *http.Request, second string) (int64, int64, error) {
	userID, err := requestutil.ID(request, "id")
	if err != nil {
		return 0, 0, err
	}
	otherID, err := requestutil.ID(request, second)
	if err != nil {
		return 0, 0, err
	}
	return userID, otherID, nil
}

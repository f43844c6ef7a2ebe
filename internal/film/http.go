package film

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kinotek/internal/platform/constants"
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

	router.Get("/", handler.listFilms)
	router.Post("/", handler.createFilm)
	router.Put("/", handler.updateFilm)
	// Register before /{id} so "popular" is never parsed as an id.
	router.Get("/popular", handler.listPopular)
	router.Get("/{id}", handler.getFilm)

	router.Put("/{id}/like/{userId}", handler.addLike)
	router.Delete("/{id}/like/{userId}", handler.deleteLike)

	return router
}

func (handler *Handler) listFilms(writer http.ResponseWriter, request *http.Request) {
	films, err := handler.service.ListFilms(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, films)
}

func (handler *Handler) getFilm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	film, err := handler.service.GetFilm(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, film)
}

func (handler *Handler) createFilm(writer http.ResponseWriter, request *http.Request) {
	var payload Film
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	film, err := handler.service.CreateFilm(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, film)
}

func (handler *Handler) updateFilm(writer http.ResponseWriter, request *http.Request) {
	var payload Film
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	film, err := handler.service.UpdateFilm(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, film)
}

func (handler *Handler) listPopular(writer http.ResponseWriter, request *http.Request) {
	count, err := requestutil.QueryInt(request, "count", constants.DefaultPopularCount)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	films, err := handler.service.ListPopular(request.Context(), count)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, films)
}

func (handler *Handler) addLike(writer http.ResponseWriter, request *http.Request) {
	filmID, userID, err := likePair(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddLike(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, struct{}{})
}

func (handler *Handler) deleteLike(writer http.ResponseWriter, request *http.Request) {
	filmID, userID, err := likePair(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteLike(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, struct{}{})
}

func likePair(request *http.Request) (int64, int64, error) {
	filmID, err := requestutil.ID(request, "id")
	if err != nil {
		return 0, 0, err
	}
	userID, err := requestutil.ID(request, "userId")
	if err != nil {
		return 0, 0, err
	}
	return filmID, userID, nil
}

package mpa

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
	router.Get("/", handler.listRatings)
	router.Get("/{id}", handler.getRating)
	return router
}

func (handler *Handler) listRatings(writer http.ResponseWriter, request *http.Request) {
	ratings, err := handler.service.ListRatings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ratings)
}

func (handler *Handler) getRating(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rating, err := handler.service.GetRating(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, rating)
}

package film

import (
	"context"
	"log/slog"

	"github.com/taibuivan/kinotek/internal/genre"
	"github.com/taibuivan/kinotek/internal/platform/apperr"
	"github.com/taibuivan/kinotek/internal/platform/validate"
)

type Service struct {
	repo      Repository
	likes     LikeRepository
	genres    GenreCatalog
	users     UserProbe
	validator *Validator
	logger    *slog.Logger
}

func NewService(
	repo Repository,
	likes LikeRepository,
	genres GenreCatalog,
	ratings RatingCatalog,
	users UserProbe,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:      repo,
		likes:     likes,
		genres:    genres,
		users:     users,
		validator: NewValidator(ratings, genres),
		logger:    logger,
	}
}

func (service *Service) ListFilms(context context.Context) ([]*Film, error) {
	films, err := service.repo.ListFilms(context)
	if err != nil {
		return nil, err
	}
	return service.hydrateGenres(context, films)
}

// GetFilm returns a single film with genres and likes hydrated. Likes are
// loaded on single-film reads only to keep listings cheap.
func (service *Service) GetFilm(context context.Context, id int64) (*Film, error) {
	film, err := service.repo.GetFilmByID(context, id)
	if err != nil {
		return nil, err
	}

	genres, err := service.genres.FindByFilmID(context, id)
	if err != nil {
		return nil, err
	}
	film.Genres = nonNil(genres)

	likes, err := service.likes.ListLikes(context, id)
	if err != nil {
		return nil, err
	}
	film.Likes = likes

	return film, nil
}

func (service *Service) CreateFilm(context context.Context, film *Film) (*Film, error) {
	if err := service.validator.Validate(context, film); err != nil {
		return nil, err
	}

	if err := service.repo.CreateFilm(context, film); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "film_created",
		slog.Int64("film_id", film.ID),
		slog.String("name", film.Name),
	)
	return service.GetFilm(context, film.ID)
}

func (service *Service) UpdateFilm(context context.Context, film *Film) (*Film, error) {
	if err := service.validator.Validate(context, film); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateFilm(context, film); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "film_updated", slog.Int64("film_id", film.ID))
	return service.GetFilm(context, film.ID)
}

// ListPopular returns at most count films ordered by like count descending.
func (service *Service) ListPopular(context context.Context, count int) ([]*Film, error) {
	if count <= 0 {
		return nil, validate.RequiredError("count", "Must be a positive integer")
	}

	films, err := service.repo.ListPopular(context, count)
	if err != nil {
		return nil, err
	}
	return service.hydrateGenres(context, films)
}

// # Likes

func (service *Service) AddLike(context context.Context, filmID, userID int64) error {
	if err := service.ensureEndpointsExist(context, filmID, userID); err != nil {
		return err
	}

	if err := service.likes.AddLike(context, filmID, userID); err != nil {
		return err
	}

	service.logger.InfoContext(context, "like_added",
		slog.Int64("film_id", filmID),
		slog.Int64("user_id", userID),
	)
	return nil
}

func (service *Service) DeleteLike(context context.Context, filmID, userID int64) error {
	if err := service.ensureEndpointsExist(context, filmID, userID); err != nil {
		return err
	}

	return service.likes.DeleteLike(context, filmID, userID)
}

// ensureEndpointsExist probes both ends of a like edge before it is written.
func (service *Service) ensureEndpointsExist(context context.Context, filmID, userID int64) error {
	exists, err := service.repo.FilmExists(context, filmID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Film")
	}

	exists, err = service.users.UserExists(context, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("User")
	}

	return nil
}

// hydrateGenres fills the genre sets of many films with one batched lookup.
func (service *Service) hydrateGenres(context context.Context, films []*Film) ([]*Film, error) {
	ids := make([]int64, len(films))
	for i, film := range films {
		ids[i] = film.ID
	}

	byFilm, err := service.genres.FindByFilmIDs(context, ids)
	if err != nil {
		return nil, err
	}

	for _, film := range films {
		film.Genres = nonNil(byFilm[film.ID])
	}
	return films, nil
}

func nonNil(genres []genre.Genre) []genre.Genre {
	if genres == nil {
		return []genre.Genre{}
	}
	return genres
}

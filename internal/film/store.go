package film

import (
	"context"

	"github.com/taibuivan/kinotek/internal/genre"
	"github.com/taibuivan/kinotek/internal/mpa"
)

// Repository defines the data access contract for films.
//
// Rows come back with the MPA reference already resolved; genre and like
// hydration is layered on top by the service.
type Repository interface {
	ListFilms(context context.Context) ([]*Film, error)
	GetFilmByID(context context.Context, id int64) (*Film, error)
	CreateFilm(context context.Context, film *Film) error
	UpdateFilm(context context.Context, film *Film) error
	ListPopular(context context.Context, count int) ([]*Film, error)
	FilmExists(context context.Context, id int64) (bool, error)
}

// LikeRepository maintains the user-to-film like edges.
type LikeRepository interface {
	AddLike(context context.Context, filmID, userID int64) error
	DeleteLike(context context.Context, filmID, userID int64) error
	ListLikes(context context.Context, filmID int64) ([]int64, error)
}

// GenreCatalog is the slice of the genre store the film package consumes:
// existence probes for validation and junction lookups for hydration.
type GenreCatalog interface {
	GetGenreByID(context context.Context, id int64) (*genre.Genre, error)
	FindByFilmID(context context.Context, filmID int64) ([]genre.Genre, error)
	FindByFilmIDs(context context.Context, filmIDs []int64) (map[int64][]genre.Genre, error)
}

// RatingCatalog resolves MPA references during validation.
type RatingCatalog interface {
	GetRatingByID(context context.Context, id int64) (*mpa.MPA, error)
}

// UserProbe checks that a user id exists before a like edge is written.
type UserProbe interface {
	UserExists(context context.Context, id int64) (bool, error)
}

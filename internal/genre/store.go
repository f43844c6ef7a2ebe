package genre

import "context"

// Repository defines the data access contract.
//
// FindByFilmID and FindByFilmIDs back film payload hydration; list results
// are ordered by genre id.
type Repository interface {
	ListGenres(context context.Context) ([]*Genre, error)
	GetGenreByID(context context.Context, id int64) (*Genre, error)
	FindByFilmID(context context.Context, filmID int64) ([]Genre, error)
	FindByFilmIDs(context context.Context, filmIDs []int64) (map[int64][]Genre, error)
}

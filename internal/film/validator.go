package film

import (
	"context"
	"time"

	"github.com/taibuivan/kinotek/internal/platform/apperr"
	"github.com/taibuivan/kinotek/internal/platform/constants"
	"github.com/taibuivan/kinotek/internal/platform/validate"
	"github.com/taibuivan/kinotek/pkg/date"
)

// minReleaseDate is the day cinema was born: the first public screening by
// the Lumière brothers. No film can predate it.
var minReleaseDate = date.New(1895, time.December, 28)

// Validator checks film write payloads, consulting the reference catalogues
// for MPA and genre existence.
type Validator struct {
	ratings RatingCatalog
	genres  GenreCatalog
}

func NewValidator(ratings RatingCatalog, genres GenreCatalog) *Validator {
	return &Validator{ratings: ratings, genres: genres}
}

// Validate applies the payload rules. A reference to a missing MPA or genre
// is a client mistake, so catalogue misses surface as field errors rather
// than 404s.
func (validator *Validator) Validate(context context.Context, film *Film) error {
	v := &validate.Validator{}
	v.Required("name", film.Name).
		MaxLen("description", film.Description, constants.FilmDescriptionLimit).
		DateRequired("releaseDate", film.ReleaseDate).
		DateNotBefore("releaseDate", film.ReleaseDate, minReleaseDate).
		Custom("duration", film.Duration < 0, "Must not be negative")

	if film.MPA != nil {
		if _, err := validator.ratings.GetRatingByID(context, film.MPA.ID); err != nil {
			if !apperr.IsNotFound(err) {
				return err
			}
			v.Custom("mpa", true, "Unknown MPA rating id")
		}
	}

	for _, id := range film.GenreIDs() {
		if _, err := validator.genres.GetGenreByID(context, id); err != nil {
			if !apperr.IsNotFound(err) {
				return err
			}
			v.Custom("genres", true, "Unknown genre id")
			break
		}
	}

	return v.Err()
}

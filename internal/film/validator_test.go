package film

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinotek/internal/genre"
	"github.com/taibuivan/kinotek/internal/mpa"
	"github.com/taibuivan/kinotek/internal/platform/apperr"
	"github.com/taibuivan/kinotek/pkg/date"
)

func newTestValidator() *Validator {
	return NewValidator(mpa.NewMemoryRepository(), genre.NewMemoryRepository())
}

func validFilm() *Film {
	return &Film{
		Name:        "nisi eiusmod",
		Description: "adipisicing",
		ReleaseDate: date.New(1967, time.March, 25),
		Duration:    100,
		MPA:         &mpa.MPA{ID: 1},
		Genres:      []genre.Genre{{ID: 1}},
	}
}

func TestValidator_Validate(t *testing.T) {
	validator := newTestValidator()
	ctx := context.Background()

	t.Run("valid film passes", func(t *testing.T) {
		assert.NoError(t, validator.Validate(ctx, validFilm()))
	})

	t.Run("boundaries accepted", func(t *testing.T) {
		film := validFilm()
		film.Description = strings.Repeat("x", 200)
		film.ReleaseDate = date.New(1895, time.December, 28)
		film.Duration = 0
		film.MPA = nil
		film.Genres = nil

		assert.NoError(t, validator.Validate(ctx, film))
	})

	cases := []struct {
		name   string
		mutate func(*Film)
		field  string
	}{
		{"blank name", func(f *Film) { f.Name = "  " }, "name"},
		{"description over 200 characters", func(f *Film) { f.Description = strings.Repeat("x", 201) }, "description"},
		{"missing release date", func(f *Film) { f.ReleaseDate = date.Date{} }, "releaseDate"},
		{"release date before cinema", func(f *Film) { f.ReleaseDate = date.New(1895, time.December, 27) }, "releaseDate"},
		{"negative duration", func(f *Film) { f.Duration = -1 }, "duration"},
		{"unknown mpa id", func(f *Film) { f.MPA = &mpa.MPA{ID: 42} }, "mpa"},
		{"unknown genre id", func(f *Film) { f.Genres = []genre.Genre{{ID: 1}, {ID: 42}} }, "genres"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			film := validFilm()
			tc.mutate(film)

			err := validator.Validate(ctx, film)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			require.NotEmpty(t, appError.Details)
			assert.Equal(t, tc.field, appError.Details[0].Field)
		})
	}
}

func TestFilm_GenreIDs(t *testing.T) {
	film := &Film{Genres: []genre.Genre{{ID: 2}, {ID: 1}, {ID: 2}}}
	assert.Equal(t, []int64{2, 1}, film.GenreIDs())

	assert.Empty(t, (&Film{}).GenreIDs())
}

package film

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinotek/internal/genre"
	"github.com/taibuivan/kinotek/internal/mpa"
	"github.com/taibuivan/kinotek/internal/platform/apperr"
	"github.com/taibuivan/kinotek/internal/user"
)

func newTestService(t *testing.T) (*Service, *user.MemoryRepository) {
	t.Helper()

	genres := genre.NewMemoryRepository()
	ratings := mpa.NewMemoryRepository()
	users := user.NewMemoryRepository()
	repository := NewMemoryRepository(genres, ratings)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewService(repository, repository, genres, ratings, users, logger), users
}

func mustCreateFilm(t *testing.T, service *Service, mutate func(*Film)) *Film {
	t.Helper()

	payload := validFilm()
	if mutate != nil {
		mutate(payload)
	}

	film, err := service.CreateFilm(context.Background(), payload)
	require.NoError(t, err)
	return film
}

func mustCreateUser(t *testing.T, users *user.MemoryRepository, login string) *user.User {
	t.Helper()

	created := &user.User{Email: login + "@mail.test", Login: login, Name: login}
	require.NoError(t, users.CreateUser(context.Background(), created))
	return created
}

func TestService_CreateFilm(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	t.Run("returns the hydrated film", func(t *testing.T) {
		film := mustCreateFilm(t, service, func(f *Film) {
			f.Genres = []genre.Genre{{ID: 1}, {ID: 2}, {ID: 1}}
		})

		assert.Equal(t, int64(1), film.ID)
		require.NotNil(t, film.MPA)
		assert.Equal(t, "G", film.MPA.Name)

		require.Len(t, film.Genres, 2)
		assert.Equal(t, "Comedy", film.Genres[0].Name)
		assert.Equal(t, "Drama", film.Genres[1].Name)
	})

	t.Run("no mpa stays empty", func(t *testing.T) {
		film := mustCreateFilm(t, service, func(f *Film) { f.MPA = nil })
		assert.Nil(t, film.MPA)

		fetched, err := service.GetFilm(ctx, film.ID)
		require.NoError(t, err)
		assert.Nil(t, fetched.MPA)
	})

	t.Run("invalid payload rejected", func(t *testing.T) {
		payload := validFilm()
		payload.Name = ""

		_, err := service.CreateFilm(ctx, payload)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

func TestService_UpdateFilm(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	film := mustCreateFilm(t, service, func(f *Film) {
		f.Genres = []genre.Genre{{ID: 1}, {ID: 2}}
	})

	t.Run("genre set is resynchronised", func(t *testing.T) {
		film.Genres = []genre.Genre{{ID: 2}, {ID: 3}}

		updated, err := service.UpdateFilm(ctx, film)
		require.NoError(t, err)

		require.Len(t, updated.Genres, 2)
		assert.Equal(t, int64(2), updated.Genres[0].ID)
		assert.Equal(t, int64(3), updated.Genres[1].ID)
	})

	t.Run("clearing genres yields empty array", func(t *testing.T) {
		film.Genres = nil

		updated, err := service.UpdateFilm(ctx, film)
		require.NoError(t, err)
		require.NotNil(t, updated.Genres)
		assert.Empty(t, updated.Genres)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		missing := validFilm()
		missing.ID = 404

		_, err := service.UpdateFilm(ctx, missing)
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestService_Likes(t *testing.T) {
	service, users := newTestService(t)
	ctx := context.Background()

	film := mustCreateFilm(t, service, nil)
	alice := mustCreateUser(t, users, "alice")

	t.Run("add and read back", func(t *testing.T) {
		require.NoError(t, service.AddLike(ctx, film.ID, alice.ID))

		fetched, err := service.GetFilm(ctx, film.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{alice.ID}, fetched.Likes)
	})

	t.Run("liking twice is idempotent", func(t *testing.T) {
		require.NoError(t, service.AddLike(ctx, film.ID, alice.ID))

		fetched, err := service.GetFilm(ctx, film.ID)
		require.NoError(t, err)
		assert.Len(t, fetched.Likes, 1)
	})

	t.Run("unknown film is not found", func(t *testing.T) {
		err := service.AddLike(ctx, 404, alice.ID)
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		err := service.AddLike(ctx, film.ID, 404)
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("delete is silent when missing", func(t *testing.T) {
		require.NoError(t, service.DeleteLike(ctx, film.ID, alice.ID))
		require.NoError(t, service.DeleteLike(ctx, film.ID, alice.ID))

		fetched, err := service.GetFilm(ctx, film.ID)
		require.NoError(t, err)
		assert.Empty(t, fetched.Likes)
	})
}

func TestService_ListPopular(t *testing.T) {
	service, users := newTestService(t)
	ctx := context.Background()

	first := mustCreateFilm(t, service, func(f *Film) { f.Name = "first" })
	second := mustCreateFilm(t, service, func(f *Film) { f.Name = "second" })
	third := mustCreateFilm(t, service, func(f *Film) { f.Name = "third" })

	alice := mustCreateUser(t, users, "alice")
	bob := mustCreateUser(t, users, "bob")
	carol := mustCreateUser(t, users, "carol")

	require.NoError(t, service.AddLike(ctx, first.ID, alice.ID))
	require.NoError(t, service.AddLike(ctx, first.ID, bob.ID))
	require.NoError(t, service.AddLike(ctx, second.ID, carol.ID))

	t.Run("ordered by like count", func(t *testing.T) {
		popular, err := service.ListPopular(ctx, 2)
		require.NoError(t, err)

		require.Len(t, popular, 2)
		assert.Equal(t, first.ID, popular[0].ID)
		assert.Equal(t, second.ID, popular[1].ID)
	})

	t.Run("zero-like films included", func(t *testing.T) {
		popular, err := service.ListPopular(ctx, 10)
		require.NoError(t, err)

		require.Len(t, popular, 3)
		assert.Equal(t, third.ID, popular[2].ID)
	})

	t.Run("non-positive count rejected", func(t *testing.T) {
		_, err := service.ListPopular(ctx, 0)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

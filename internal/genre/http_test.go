package genre

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(repository Repository) *Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewHandler(NewService(repository, logger), logger)
}

func TestListGenres(t *testing.T) {
	server := httptest.NewServer(newTestHandler(NewMemoryRepository()).Routes())
	defer server.Close()

	response, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusOK, response.StatusCode)

	var genres []Genre
	require.NoError(t, json.NewDecoder(response.Body).Decode(&genres))
	require.Len(t, genres, 6)
	assert.Equal(t, "Comedy", genres[0].Name)
	assert.Equal(t, "Action", genres[5].Name)
}

func TestGetGenre(t *testing.T) {
	server := httptest.NewServer(newTestHandler(NewMemoryRepository()).Routes())
	defer server.Close()

	t.Run("found", func(t *testing.T) {
		response, err := http.Get(server.URL + "/2")
		require.NoError(t, err)
		defer response.Body.Close()

		require.Equal(t, http.StatusOK, response.StatusCode)

		var genre Genre
		require.NoError(t, json.NewDecoder(response.Body).Decode(&genre))
		assert.Equal(t, "Drama", genre.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		response, err := http.Get(server.URL + "/42")
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})
}

func TestFindByFilmIDs(t *testing.T) {
	repository := NewMemoryRepository()
	repository.SyncFilm(1, []int64{3, 1})
	repository.SyncFilm(2, []int64{2})

	byFilm, err := repository.FindByFilmIDs(context.Background(), []int64{1, 2, 99})
	require.NoError(t, err)

	require.Len(t, byFilm[1], 2)
	assert.Equal(t, int64(1), byFilm[1][0].ID)
	assert.Equal(t, int64(3), byFilm[1][1].ID)
	require.Len(t, byFilm[2], 1)
	assert.Equal(t, "Drama", byFilm[2][0].Name)
	assert.Empty(t, byFilm[99])
}

package mpa

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewHandler(NewService(NewMemoryRepository(), logger), logger)
}

func TestListRatings(t *testing.T) {
	server := httptest.NewServer(newTestHandler().Routes())
	defer server.Close()

	response, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusOK, response.StatusCode)

	var ratings []MPA
	require.NoError(t, json.NewDecoder(response.Body).Decode(&ratings))
	require.Len(t, ratings, 5)
	assert.Equal(t, "G", ratings[0].Name)
	assert.Equal(t, "NC-17", ratings[4].Name)
}

func TestGetRating(t *testing.T) {
	server := httptest.NewServer(newTestHandler().Routes())
	defer server.Close()

	t.Run("found", func(t *testing.T) {
		response, err := http.Get(server.URL + "/3")
		require.NoError(t, err)
		defer response.Body.Close()

		require.Equal(t, http.StatusOK, response.StatusCode)

		var rating MPA
		require.NoError(t, json.NewDecoder(response.Body).Decode(&rating))
		assert.Equal(t, int64(3), rating.ID)
		assert.Equal(t, "PG-13", rating.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		response, err := http.Get(server.URL + "/999")
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})

	t.Run("non numeric id", func(t *testing.T) {
		response, err := http.Get(server.URL + "/abc")
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}

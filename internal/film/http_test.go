package film

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinotek/internal/genre"
	"github.com/taibuivan/kinotek/internal/mpa"
	"github.com/taibuivan/kinotek/internal/user"
)

func newTestServer(t *testing.T) (*httptest.Server, *user.MemoryRepository) {
	t.Helper()

	genres := genre.NewMemoryRepository()
	ratings := mpa.NewMemoryRepository()
	users := user.NewMemoryRepository()
	repository := NewMemoryRepository(genres, ratings)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	service := NewService(repository, repository, genres, ratings, users, logger)
	server := httptest.NewServer(NewHandler(service, logger).Routes())
	t.Cleanup(server.Close)
	return server, users
}

func postFilm(t *testing.T, url string, payload map[string]any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	response, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return response
}

func do(t *testing.T, method, url string) *http.Response {
	t.Helper()

	request, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	return response
}

func decodeFilm(t *testing.T, response *http.Response) Film {
	t.Helper()
	defer response.Body.Close()

	var film Film
	require.NoError(t, json.NewDecoder(response.Body).Decode(&film))
	return film
}

func filmPayload() map[string]any {
	return map[string]any{
		"name":        "A",
		"description": "d",
		"releaseDate": "2000-01-01",
		"duration":    100,
		"mpa":         map[string]any{"id": 1},
		"genres":      []map[string]any{{"id": 1}, {"id": 2}},
	}
}

func TestHandler_CreateFilm(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("created with 200 and hydrated references", func(t *testing.T) {
		response := postFilm(t, server.URL+"/", filmPayload())
		require.Equal(t, http.StatusOK, response.StatusCode)

		film := decodeFilm(t, response)
		assert.Equal(t, int64(1), film.ID)
		require.NotNil(t, film.MPA)
		assert.Equal(t, "G", film.MPA.Name)

		ids := make([]int64, 0, len(film.Genres))
		for _, g := range film.Genres {
			ids = append(ids, g.ID)
		}
		assert.ElementsMatch(t, []int64{1, 2}, ids)
	})

	t.Run("round trip through get", func(t *testing.T) {
		response := do(t, http.MethodGet, server.URL+"/1")
		require.Equal(t, http.StatusOK, response.StatusCode)

		film := decodeFilm(t, response)
		assert.Equal(t, "A", film.Name)
		assert.Equal(t, "2000-01-01", film.ReleaseDate.String())
		assert.Len(t, film.Genres, 2)
	})

	t.Run("release date before cinema is 400", func(t *testing.T) {
		payload := filmPayload()
		payload["releaseDate"] = "1895-12-27"

		response := postFilm(t, server.URL+"/", payload)
		defer response.Body.Close()

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("unknown film is 404", func(t *testing.T) {
		response := do(t, http.MethodGet, server.URL+"/404")
		defer response.Body.Close()

		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})
}

func TestHandler_UpdateFilm(t *testing.T) {
	server, _ := newTestServer(t)

	created := decodeFilm(t, postFilm(t, server.URL+"/", filmPayload()))

	t.Run("genres replaced as a set", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{
			"id":          created.ID,
			"name":        "A",
			"description": "d",
			"releaseDate": "2000-01-01",
			"duration":    100,
			"mpa":         map[string]any{"id": 2},
			"genres":      []map[string]any{{"id": 3}},
		})
		require.NoError(t, err)

		request, err := http.NewRequest(http.MethodPut, server.URL+"/", bytes.NewReader(body))
		require.NoError(t, err)

		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, response.StatusCode)

		film := decodeFilm(t, response)
		require.NotNil(t, film.MPA)
		assert.Equal(t, "PG", film.MPA.Name)
		require.Len(t, film.Genres, 1)
		assert.Equal(t, "Cartoon", film.Genres[0].Name)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		payload := filmPayload()
		payload["id"] = 9999

		body, err := json.Marshal(payload)
		require.NoError(t, err)

		request, err := http.NewRequest(http.MethodPut, server.URL+"/", bytes.NewReader(body))
		require.NoError(t, err)

		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})
}

func TestHandler_Popular(t *testing.T) {
	server, users := newTestServer(t)

	for _, name := range []string{"first", "second"} {
		payload := filmPayload()
		payload["name"] = name
		response := postFilm(t, server.URL+"/", payload)
		require.Equal(t, http.StatusOK, response.StatusCode)
		response.Body.Close()
	}
	for _, login := range []string{"alice", "bob", "carol"} {
		mustCreateUser(t, users, login)
	}

	for _, edge := range [][2]string{{"1", "1"}, {"1", "2"}, {"2", "3"}} {
		response := do(t, http.MethodPut, server.URL+"/"+edge[0]+"/like/"+edge[1])
		response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)
	}

	t.Run("ranked by like count", func(t *testing.T) {
		response := do(t, http.MethodGet, server.URL+"/popular?count=2")
		defer response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)

		var films []Film
		require.NoError(t, json.NewDecoder(response.Body).Decode(&films))
		require.Len(t, films, 2)
		assert.Equal(t, "first", films[0].Name)
		assert.Equal(t, "second", films[1].Name)
	})

	t.Run("default count without query", func(t *testing.T) {
		response := do(t, http.MethodGet, server.URL+"/popular")
		defer response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)

		var films []Film
		require.NoError(t, json.NewDecoder(response.Body).Decode(&films))
		assert.Len(t, films, 2)
	})

	t.Run("non-positive count is 400", func(t *testing.T) {
		response := do(t, http.MethodGet, server.URL+"/popular?count=0")
		defer response.Body.Close()

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("malformed count is 400", func(t *testing.T) {
		response := do(t, http.MethodGet, server.URL+"/popular?count=abc")
		defer response.Body.Close()

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}

func TestHandler_Likes(t *testing.T) {
	server, users := newTestServer(t)

	response := postFilm(t, server.URL+"/", filmPayload())
	require.Equal(t, http.StatusOK, response.StatusCode)
	response.Body.Close()
	mustCreateUser(t, users, "alice")

	t.Run("like then unlike", func(t *testing.T) {
		response := do(t, http.MethodPut, server.URL+"/1/like/1")
		response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)

		film := decodeFilm(t, do(t, http.MethodGet, server.URL+"/1"))
		assert.Equal(t, []int64{1}, film.Likes)

		response = do(t, http.MethodDelete, server.URL+"/1/like/1")
		response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)

		film = decodeFilm(t, do(t, http.MethodGet, server.URL+"/1"))
		assert.Empty(t, film.Likes)
	})

	t.Run("like by unknown user is 404", func(t *testing.T) {
		response := do(t, http.MethodPut, server.URL+"/1/like/404")
		defer response.Body.Close()

		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})
}

package user

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
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repository := NewMemoryRepository()
	friendships := NewMemoryFriendshipRepository(repository)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	handler := NewHandler(NewService(repository, friendships, logger), logger)

	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	response, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return response
}

func doRequest(t *testing.T, method, url string) *http.Response {
	t.Helper()

	request, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	return response
}

func decodeUser(t *testing.T, response *http.Response) User {
	t.Helper()
	defer response.Body.Close()

	var user User
	require.NoError(t, json.NewDecoder(response.Body).Decode(&user))
	return user
}

func TestHandler_CreateUser(t *testing.T) {
	server := newTestServer(t)

	t.Run("created with 201", func(t *testing.T) {
		response := postJSON(t, server.URL+"/", map[string]any{
			"email":    "dolore@mail.test",
			"login":    "dolore",
			"name":     "",
			"birthday": "1946-08-20",
		})
		require.Equal(t, http.StatusCreated, response.StatusCode)

		user := decodeUser(t, response)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "dolore", user.Name)
		assert.Equal(t, "1946-08-20", user.Birthday.String())
	})

	t.Run("validation failure is 400", func(t *testing.T) {
		response := postJSON(t, server.URL+"/", map[string]any{
			"email": "not-an-email",
			"login": "dolore ullamco",
		})
		defer response.Body.Close()

		require.Equal(t, http.StatusBadRequest, response.StatusCode)

		var envelope struct {
			Error   string `json:"error"`
			Code    string `json:"code"`
			Details []struct {
				Field string `json:"field"`
			} `json:"details"`
		}
		require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))
		assert.Equal(t, "VALIDATION_ERROR", envelope.Code)
		assert.NotEmpty(t, envelope.Details)
	})

	t.Run("malformed JSON is 400", func(t *testing.T) {
		response, err := http.Post(server.URL+"/", "application/json", bytes.NewBufferString("{no"))
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}

func TestHandler_UpdateUser(t *testing.T) {
	server := newTestServer(t)

	created := decodeUser(t, postJSON(t, server.URL+"/", map[string]any{
		"email":    "dolore@mail.test",
		"login":    "dolore",
		"birthday": "1946-08-20",
	}))

	t.Run("updated with 200", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{
			"id":       created.ID,
			"email":    "dolore@mail.test",
			"login":    "doloreUpdate",
			"name":     "est adipisicing",
			"birthday": "1976-09-20",
		})
		require.NoError(t, err)

		request, err := http.NewRequest(http.MethodPut, server.URL+"/", bytes.NewReader(body))
		require.NoError(t, err)

		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, response.StatusCode)

		user := decodeUser(t, response)
		assert.Equal(t, "doloreUpdate", user.Login)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{
			"id":       9999,
			"email":    "ghost@mail.test",
			"login":    "ghost",
			"birthday": "1980-01-01",
		})
		require.NoError(t, err)

		request, err := http.NewRequest(http.MethodPut, server.URL+"/", bytes.NewReader(body))
		require.NoError(t, err)

		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})
}

func TestHandler_Friends(t *testing.T) {
	server := newTestServer(t)

	for _, login := range []string{"alice", "bob", "carol"} {
		response := postJSON(t, server.URL+"/", map[string]any{
			"email":    login + "@mail.test",
			"login":    login,
			"birthday": "1980-01-01",
		})
		require.Equal(t, http.StatusCreated, response.StatusCode)
		response.Body.Close()
	}

	t.Run("add and list", func(t *testing.T) {
		response := doRequest(t, http.MethodPut, server.URL+"/1/friends/2")
		response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)

		response = doRequest(t, http.MethodGet, server.URL+"/1/friends")
		defer response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)

		var friends []User
		require.NoError(t, json.NewDecoder(response.Body).Decode(&friends))
		require.Len(t, friends, 1)
		assert.Equal(t, "bob", friends[0].Login)
	})

	t.Run("common friends", func(t *testing.T) {
		response := doRequest(t, http.MethodPut, server.URL+"/1/friends/3")
		response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)

		response = doRequest(t, http.MethodPut, server.URL+"/2/friends/3")
		response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)

		response = doRequest(t, http.MethodGet, server.URL+"/1/friends/common/2")
		defer response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)

		var common []User
		require.NoError(t, json.NewDecoder(response.Body).Decode(&common))
		require.Len(t, common, 1)
		assert.Equal(t, "carol", common[0].Login)
	})

	t.Run("self friendship is 400", func(t *testing.T) {
		response := doRequest(t, http.MethodPut, server.URL+"/1/friends/1")
		defer response.Body.Close()

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("unknown user is 404", func(t *testing.T) {
		response := doRequest(t, http.MethodPut, server.URL+"/1/friends/404")
		defer response.Body.Close()

		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})

	t.Run("delete friend", func(t *testing.T) {
		response := doRequest(t, http.MethodDelete, server.URL+"/1/friends/2")
		response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)

		response = doRequest(t, http.MethodGet, server.URL+"/1/friends")
		defer response.Body.Close()

		var friends []User
		require.NoError(t, json.NewDecoder(response.Body).Decode(&friends))
		require.Len(t, friends, 1)
		assert.Equal(t, "carol", friends[0].Login)
	})
}

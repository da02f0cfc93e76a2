package upstream

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "email": "admin@develfood.com", "password": "123456", "name": "Admin"}]`))
	}))
	defer srv.Close()

	repo, err := NewUserRepository(srv.URL+"/api", time.Second, slog.Default())
	require.NoError(t, err)

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, "admin@develfood.com", users[0].Email.Text())
}

func TestUserRepository_FindAll_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	repo, err := NewUserRepository(srv.URL, time.Second, slog.Default())
	require.NoError(t, err)

	_, err = repo.FindAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestUserRepository_FindAll_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"}`))
	}))
	defer srv.Close()

	repo, err := NewUserRepository(srv.URL, time.Second, slog.Default())
	require.NoError(t, err)

	_, err = repo.FindAll(context.Background())
	require.Error(t, err)
}

func TestUserRepository_FindAll_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	repo, err := NewUserRepository(url, 200*time.Millisecond, slog.Default())
	require.NoError(t, err)

	_, err = repo.FindAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch users")
}

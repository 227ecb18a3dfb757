package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_BearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(User{ID: 1})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ctx := context.Background()

	_, err := client.Profile(ctx)
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "no Authorization header without a session")
	assert.NotEmpty(t, gotRequestID)

	client.SetToken("abc123")
	_, err = client.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)

	client.ClearToken()
	_, err = client.Profile(ctx)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_ServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Event is full"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.JoinEvent(context.Background(), 7)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Event is full", apiErr.Message)
}

func TestClient_DetailErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Authentication credentials were not provided."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Profile(context.Background())

	require.True(t, IsUnauthorized(err))
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Authentication credentials were not provided.", apiErr.Message)
}

func TestClient_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	client := NewClient(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ListEvents(ctx, EventFilter{})
	assert.Error(t, err)
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:8000/api/")
	assert.Equal(t, "http://localhost:8000/api", client.BaseURL)
}

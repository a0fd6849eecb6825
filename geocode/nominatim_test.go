package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"12.9716","lon":"77.5946"}]`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	coords, err := client.Forward(context.Background(), "MG Road, Bangalore")
	require.NoError(t, err)
	assert.InDelta(t, 12.9716, coords.Latitude, 1e-9)
	assert.InDelta(t, 77.5946, coords.Longitude, 1e-9)
}

func TestForward_NoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.Forward(context.Background(), "nowhere at all")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoResult))
}

func TestForward_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.Forward(context.Background(), "MG Road")
	require.Error(t, err)
}

func TestReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name":"MG Road, Bengaluru, Karnataka, India"}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	addr, err := client.Reverse(context.Background(), 12.9716, 77.5946)
	require.NoError(t, err)
	assert.Equal(t, "MG Road, Bengaluru, Karnataka, India", addr)
}

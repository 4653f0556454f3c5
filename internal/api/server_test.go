package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToAPIErrorStatusMapping(t *testing.T) {
	e := toAPIError(http.StatusNotFound, errors.New("no valid papers found"))
	require.Equal(t, "RH-API-4004", e.Code)
	require.Equal(t, "No valid papers found", e.Message)

	e = toAPIError(http.StatusBadRequest, errors.New("papers have no text content"))
	require.Equal(t, "RH-API-4001", e.Code)
	require.Equal(t, "Papers have no text content", e.Message)

	e = toAPIError(http.StatusBadRequest, errors.New("need at least 2 papers"))
	require.Equal(t, "Need at least 2 papers", e.Message)

	e = toAPIError(http.StatusUnauthorized, errors.New("missing bearer token"))
	require.Equal(t, "RH-API-4010", e.Code)
	require.Equal(t, "Could not validate credentials", e.Message)
}

func TestToAPIErrorHidesInternalDetail(t *testing.T) {
	e := toAPIError(http.StatusInternalServerError, errors.New("pq: secret table detail"))
	require.Equal(t, "RH-API-5000", e.Code)
	require.NotContains(t, e.Message, "secret")

	e = toAPIError(http.StatusInternalServerError, errors.New(`relation "analyses" does not exist`))
	require.Equal(t, "RH-DB-5001", e.Code)

	e = toAPIError(http.StatusInternalServerError, errors.New("dial tcp 127.0.0.1:5432: connection refused"))
	require.Equal(t, "RH-DB-5002", e.Code)
}

func TestPathID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/papers/42", nil)
	id, tail, ok := pathID(r, "/api/papers/")
	require.True(t, ok)
	require.Equal(t, int64(42), id)
	require.Equal(t, "", tail)

	r = httptest.NewRequest(http.MethodPost, "/api/documents/7/star", nil)
	id, tail, ok = pathID(r, "/api/documents/")
	require.True(t, ok)
	require.Equal(t, int64(7), id)
	require.Equal(t, "star", tail)

	r = httptest.NewRequest(http.MethodGet, "/api/papers/upload", nil)
	_, _, ok = pathID(r, "/api/papers/")
	require.False(t, ok)
}

func TestBearerToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	require.Equal(t, "", bearerToken(r))

	r.Header.Set("Authorization", "Bearer abc123")
	require.Equal(t, "abc123", bearerToken(r))

	r.Header.Set("Authorization", "bearer abc123")
	require.Equal(t, "abc123", bearerToken(r))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

type staticTokens struct {
	token string
	err   error
	calls int
}

func (s *staticTokens) Token(context.Context) (string, error) {
	s.calls++
	return s.token, s.err
}

func newTestDeltaAdapter(t *testing.T, serverURL, scheme string, tokens TokenSource) *HTTPDeltaAdapter {
	t.Helper()
	a, err := NewHTTPDeltaAdapter(serverURL+"/DataPublish", scheme, 5*time.Second, tokens, logger.Nop())
	require.NoError(t, err)
	return a
}

func newTestAuthAdapter(t *testing.T, serverURL string) *HTTPAuthAdapter {
	t.Helper()
	a, err := NewHTTPAuthAdapter(serverURL+"/mobile-methods/login", 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── FetchPage ───────────────────────────────────────────────────────────────

func TestFetchPage_BuildsPathAndQuery(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/DataPublish/Teams/{clientID}/{projectID}/sinceVersion/{version}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "C 1", chi.URLParam(req, "clientID"))
		assert.Equal(t, "P1", chi.URLParam(req, "projectID"))
		assert.Equal(t, "42", chi.URLParam(req, "version"))
		assert.Equal(t, "2000", req.URL.Query().Get("offset"))
		assert.Equal(t, "1000", req.URL.Query().Get("limit"))
		assert.Equal(t, "id-token", req.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"teamUpdates":[],"moreUpdates":false,"finalVersion":42}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	tokens := &staticTokens{token: "id-token"}
	a := newTestDeltaAdapter(t, srv.URL, "", tokens)

	body, err := a.FetchPage(context.Background(), "Teams/C 1/P1", 42, 2000, 1000)

	require.NoError(t, err)
	assert.JSONEq(t, `{"teamUpdates":[],"moreUpdates":false,"finalVersion":42}`, string(body))
	assert.Equal(t, 1, tokens.calls)
}

func TestFetchPage_AuthScheme(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer id-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestDeltaAdapter(t, srv.URL, "Bearer", &staticTokens{token: "id-token"})
	_, err := a.FetchPage(context.Background(), "Clients", 0, 0, 100)
	require.NoError(t, err)
}

func TestFetchPage_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: "Unauthorized"},
		{name: "not found", status: http.StatusNotFound, want: "Not Found"},
		{name: "bad gateway", status: http.StatusBadGateway, want: "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("upstream says no"))
			}))
			defer srv.Close()

			a := newTestDeltaAdapter(t, srv.URL, "", &staticTokens{token: "t"})
			body, err := a.FetchPage(context.Background(), "Clients", 0, 0, 100)

			require.Error(t, err)
			assert.Nil(t, body)
			assert.ErrorIs(t, err, ErrTransport)

			var te *TransportError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, tt.status, te.StatusCode)
			assert.Equal(t, tt.want, te.Status)
			assert.Equal(t, "upstream says no", te.Body)
			assert.Equal(t, 1, calls, "no retry expected")
		})
	}
}

func TestFetchPage_TokenErrorSkipsRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	tokenErr := errors.New("no valid login")
	a := newTestDeltaAdapter(t, srv.URL, "", &staticTokens{err: tokenErr})
	_, err := a.FetchPage(context.Background(), "Clients", 0, 0, 100)

	assert.ErrorIs(t, err, tokenErr)
	assert.False(t, called)
}

func TestFetchPage_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestDeltaAdapter(t, url, "", &staticTokens{token: "t"})
	_, err := a.FetchPage(context.Background(), "Clients", 0, 0, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

// ── Login / RefreshLogin ────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/mobile-methods/login/Login", func(w http.ResponseWriter, req *http.Request) {
		var body models.LoginRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, models.LoginRequest{UserID: "acct", Password: "pw"}, body)
		assert.Empty(t, req.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"IDToken":"id","RefreshToken":"rt","UserID":"u-1"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{UserID: "acct", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.LoginResponse{IDToken: "id", RefreshToken: "rt", UserID: "u-1"}, got)
}

func TestRefreshLogin_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/mobile-methods/login/RefreshLogin", func(w http.ResponseWriter, req *http.Request) {
		var body models.RefreshLoginRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "rt", body.RefreshToken)
		_, _ = w.Write([]byte(`{"IDToken":"id-2","RefreshToken":"rt-2","UserID":"u-1"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	got, err := a.RefreshLogin(context.Background(), models.RefreshLoginRequest{UserID: "u-1", RefreshToken: "rt"})

	require.NoError(t, err)
	assert.Equal(t, "id-2", got.IDToken)
}

func TestLogin_Challenge_IsReturnedAsIs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ChallengeType":"NEW_PASSWORD_REQUIRED"}`))
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{UserID: "acct", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "NEW_PASSWORD_REQUIRED", got.ChallengeType)
	assert.Empty(t, got.IDToken)
}

func TestLogin_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{UserID: "acct", Password: "bad"})

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "Forbidden", te.Status)
}

func TestLogin_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{})
	assert.Error(t, err)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://apigw-prod.api.triva.xyz/DataPublish/", want: "https://apigw-prod.api.triva.xyz/DataPublish"},
		{in: "  http://localhost:8080 ", want: "http://localhost:8080"},
		{in: "", wantErr: true},
		{in: "apigw-prod.api.triva.xyz", wantErr: true},
		{in: "ftp://host", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeltaPath(t *testing.T) {
	assert.Equal(t, "/Clients/sinceVersion/0", deltaPath("Clients", 0))
	assert.Equal(t, "/Workers/C1/sinceVersion/18446744073709551615", deltaPath("/Workers/C1/", 18446744073709551615))
	assert.Equal(t, "/Stations/a%20b/P1/sinceVersion/7", deltaPath("Stations/a b/P1", 7))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ProcureHub

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/procurehub/adminapi/internal/config"
	"github.com/procurehub/adminapi/internal/logger"
	"github.com/procurehub/adminapi/internal/mock"
	"github.com/procurehub/adminapi/internal/session"
	"github.com/procurehub/adminapi/models"
)

const testBasePath = "/admin-panel/api"

func testAdapterConfig(serverURL string) config.ClientAdapter {
	return config.ClientAdapter{
		ServerAddress:  serverURL,
		BasePath:       testBasePath,
		LoginPath:      "/admin-panel/login",
		CSRFCookieName: "csrftoken",
		CSRFHeaderName: "X-CSRFToken",
	}
}

// newTestAPI creates an httpAdminAPI pointed at the test server, backed by
// a fresh in-memory session store.
func newTestAPI(t *testing.T, serverURL string, nav Navigator) (*httpAdminAPI, *session.Store) {
	t.Helper()

	sess, err := session.New("")
	require.NoError(t, err)

	a, err := NewHTTPAdminAPI(testAdapterConfig(serverURL), sess, nav, logger.Nop())
	require.NoError(t, err)
	return a.(*httpAdminAPI), sess
}

func seedCSRFCookie(t *testing.T, sess *session.Store, serverURL, value string) {
	t.Helper()
	origin, err := url.Parse(serverURL)
	require.NoError(t, err)
	sess.SetCookies(origin, []*http.Cookie{{Name: "csrftoken", Value: value, Path: "/"}})
}

// ── CSRF header ──────────────────────────────────────────────────────────────

func TestCSRFHeader_AttachedOnMutatingVerb(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "tok-123", r.Header.Get("X-CSRFToken"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, sess := newTestAPI(t, srv.URL, nil)
	seedCSRFCookie(t, sess, srv.URL, "tok-123")

	err := a.Logout(context.Background())
	require.NoError(t, err)
}

func TestCSRFHeader_ValueIsURLDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok==", r.Header.Get("X-CSRFToken"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, sess := newTestAPI(t, srv.URL, nil)
	seedCSRFCookie(t, sess, srv.URL, "tok%3D%3D")

	err := a.Logout(context.Background())
	require.NoError(t, err)
}

func TestCSRFHeader_AbsentOnRetrievalVerb(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, present := r.Header["X-Csrftoken"]
		assert.False(t, present, "GET must not carry the anti-forgery token")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"authenticated": true}`))
	}))
	defer srv.Close()

	a, sess := newTestAPI(t, srv.URL, nil)
	seedCSRFCookie(t, sess, srv.URL, "tok-123")

	_, err := a.CheckAuth(context.Background())
	require.NoError(t, err)
}

func TestCSRFHeader_AbsentWhenCookieMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["X-Csrftoken"]
		assert.False(t, present)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL, nil)

	err := a.Logout(context.Background())
	require.NoError(t, err)
}

// ── Session cookies and request id ───────────────────────────────────────────

func TestSessionCookie_SentOnEveryCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("sessionid")
		require.NoError(t, err)
		assert.Equal(t, "sess-456", c.Value)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"authenticated": true}`))
	}))
	defer srv.Close()

	a, sess := newTestAPI(t, srv.URL, nil)
	origin, err := url.Parse(srv.URL)
	require.NoError(t, err)
	sess.SetCookies(origin, []*http.Cookie{{Name: "sessionid", Value: "sess-456", Path: "/"}})

	_, err = a.CheckAuth(context.Background())
	require.NoError(t, err)
}

func TestRequestID_StampedOnEveryCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err, "expected a well-formed request id")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL, nil)

	err := a.Logout(context.Background())
	require.NoError(t, err)
}

func TestLogin_ResponseCookiesLandInSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testBasePath+"/auth/login/", r.URL.Path)
		http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "fresh", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "rotated", Path: "/"})

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"authenticated": true, "username": "alice", "role": "admin"}`))
	}))
	defer srv.Close()

	a, sess := newTestAPI(t, srv.URL, nil)

	got, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, got.Authenticated)
	assert.Equal(t, "alice", got.Username)

	origin, err := url.Parse(srv.URL)
	require.NoError(t, err)
	token, ok := sess.Cookie(origin, "csrftoken")
	require.True(t, ok)
	assert.Equal(t, "rotated", token)
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestUnauthorized_RedirectsAndRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "this body is ignored"}`))
	}))
	defer srv.Close()

	nav := mock.NewMockNavigator(ctrl)
	nav.EXPECT().NavigateTo("/admin-panel/login")

	a, _ := newTestAPI(t, srv.URL, nav)

	_, err := a.DashboardSummary(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Unauthorized", err.Error())
}

func TestNotFound_UsesBackendDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Not found."}`))
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL, nil)

	_, err := a.GetAccount(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, "Not found.", err.Error())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestServerError_NonJSONBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>Internal Server Error</html>"))
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL, nil)

	_, err := a.GetAccount(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, "HTTP error! status: 500", err.Error())
}

func TestServerError_EmptyBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL, nil)

	err := a.Logout(context.Background())
	require.Error(t, err)
	assert.Equal(t, "HTTP error! status: 502", err.Error())
}

func TestSuccess_DecodesJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testBasePath+"/accounts/3/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id": 3, "username": "x"}`))
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL, nil)

	got, err := a.GetAccount(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "x", got.Username)
}

// ── prepareRequest unit ──────────────────────────────────────────────────────

func TestPrepareRequest_ReadsSessionCookieOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := mock.NewMockSession(ctrl)
	sess.EXPECT().Cookie(gomock.Any(), "csrftoken").Return("tok", true)

	a, err := NewHTTPAdminAPI(testAdapterConfig("http://panel.example.com"), sess, nil, logger.Nop())
	require.NoError(t, err)
	h := a.(*httpAdminAPI)

	req := h.client.R()
	req.Method = http.MethodPost
	require.NoError(t, h.prepareRequest(h.client, req))

	assert.Equal(t, "tok", req.Header.Get("X-CSRFToken"))
	assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

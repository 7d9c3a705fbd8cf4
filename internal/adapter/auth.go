package adapter

import (
	"context"
	"fmt"

	"github.com/procurehub/adminapi/models"
)

// CheckAuth implements [AdminAPI]. It GETs /auth/check/ and decodes the
// session status. A fresh session receives its csrftoken cookie from this
// call, so clients issue it once before any mutating request.
func (h *httpAdminAPI) CheckAuth(ctx context.Context) (models.AuthStatus, error) {
	var status models.AuthStatus

	resp, err := h.request(ctx).
		SetResult(&status).
		Get("/auth/check/")
	if err != nil {
		return models.AuthStatus{}, fmt.Errorf("check auth request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.AuthStatus{}, err
	}

	return status, nil
}

// Login implements [AdminAPI]. It POSTs the credentials to /auth/login/.
// On success the backend rotates the session cookie in the shared jar and
// returns the signed-in status.
func (h *httpAdminAPI) Login(ctx context.Context, creds models.Credentials) (models.AuthStatus, error) {
	var status models.AuthStatus

	resp, err := h.request(ctx).
		SetBody(creds).
		SetResult(&status).
		Post("/auth/login/")
	if err != nil {
		return models.AuthStatus{}, fmt.Errorf("login request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.AuthStatus{}, err
	}

	return status, nil
}

// Logout implements [AdminAPI]. It POSTs to /auth/logout/; the backend
// invalidates the session server-side.
func (h *httpAdminAPI) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/auth/logout/")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return h.mapAPIError(resp)
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/procurehub/adminapi/internal/config"
	"github.com/procurehub/adminapi/internal/logger"
)

type httpAdminAPI struct {
	client  *resty.Client
	origin  *url.URL
	session Session
	nav     Navigator
	cfg     config.ClientAdapter

	logger *logger.Logger
}

// NewHTTPAdminAPI constructs the HTTP/REST implementation of [AdminAPI].
//
// It normalises and validates the base URL from adapterCfg.ServerAddress,
// mounts adapterCfg.BasePath as the prefix of every endpoint, installs sess
// as the client's cookie jar, and registers the request middleware that
// stamps a request id and attaches the anti-forgery token header on
// mutating verbs. nav receives the forced navigation on authorization
// failures; passing nil installs a navigator that only logs.
//
// Returns an error if adapterCfg.ServerAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPAdminAPI(adapterCfg config.ClientAdapter, sess Session, nav Navigator, log *logger.Logger) (AdminAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid admin panel address: %w", err)
	}

	origin, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse admin panel origin: %w", err)
	}

	if nav == nil {
		nav = &logNavigator{logger: log}
	}

	h := &httpAdminAPI{
		origin:  origin,
		session: sess,
		nav:     nav,
		cfg:     adapterCfg,
		logger:  log,
	}

	cli := resty.New().
		SetBaseURL(baseURL + strings.TrimRight(adapterCfg.BasePath, "/")).
		SetCookieJar(sess).
		SetHeader("Content-Type", "application/json")
	if adapterCfg.RequestTimeout > 0 {
		cli.SetTimeout(adapterCfg.RequestTimeout)
	}
	cli.OnBeforeRequest(h.prepareRequest)

	h.client = cli
	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// prepareRequest runs before every outbound request. It stamps a request id
// for log correlation and, on mutating verbs, attaches the anti-forgery
// token read from the session's csrftoken cookie (URL-decoded). GET and
// HEAD never carry the token.
func (h *httpAdminAPI) prepareRequest(_ *resty.Client, req *resty.Request) error {
	req.SetHeader("X-Request-ID", uuid.NewString())

	if req.Method == http.MethodGet || req.Method == http.MethodHead {
		return nil
	}

	token, ok := h.session.Cookie(h.origin, h.cfg.CSRFCookieName)
	if !ok {
		return nil
	}
	if decoded, err := url.QueryUnescape(token); err == nil {
		token = decoded
	}
	req.SetHeader(h.cfg.CSRFHeaderName, token)
	return nil
}

func (h *httpAdminAPI) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// mapAPIError interprets a completed response. 2xx passes through. 401
// triggers the login navigation side effect and maps to [ErrUnauthorized]
// regardless of body content. Every other status maps to [*APIError],
// carrying the backend's detail message when the error body is JSON with a
// non-empty "detail" field; a malformed or empty error body falls back to
// the generic status-coded message rather than failing the mapping.
func (h *httpAdminAPI) mapAPIError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	if code == http.StatusUnauthorized {
		h.logger.Warn().
			Str("path", resp.Request.URL).
			Msg("session rejected, redirecting to login")
		h.nav.NavigateTo(h.cfg.LoginPath)
		return ErrUnauthorized
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Detail != "" {
		return &APIError{StatusCode: code, Detail: payload.Detail}
	}

	return &APIError{StatusCode: code}
}

// logNavigator is the default [Navigator]: it records the redirect target
// instead of navigating, which is all a headless client can do.
type logNavigator struct {
	logger *logger.Logger
}

func (n *logNavigator) NavigateTo(path string) {
	n.logger.Warn().Str("path", path).Msg("navigation requested")
}

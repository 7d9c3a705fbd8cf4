package config

import (
	"fmt"
	"time"
)

// ClientApp holds client application settings derived from the shared
// structured config.
type ClientApp struct {
	// Role is the label attached to every log entry.
	Role string
	// Version is the client version string.
	Version string
}

// ClientAdapter holds the admin panel endpoint settings used by the client
// transport layer.
type ClientAdapter struct {
	// ServerAddress is the admin panel origin.
	ServerAddress string
	// BasePath is the API path prefix.
	BasePath string
	// LoginPath is the panel login page used on session expiry.
	LoginPath string
	// CSRFCookieName is the anti-forgery token cookie name.
	CSRFCookieName string
	// CSRFHeaderName is the anti-forgery token header name.
	CSRFHeaderName string
	// RequestTimeout bounds outbound requests; zero keeps the transport
	// default.
	RequestTimeout time.Duration
}

// ClientSession groups local session persistence settings.
type ClientSession struct {
	// CookieFile is where session cookies are saved between runs.
	CookieFile string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains admin panel endpoint settings.
	Adapter ClientAdapter
	// Session contains session persistence settings.
	Session ClientSession
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration. overrides may be nil; when set, its
// non-zero fields win over every other source.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Role:    cfg.App.Role,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			ServerAddress:  cfg.Adapter.ServerAddress,
			BasePath:       cfg.Adapter.BasePath,
			LoginPath:      cfg.Adapter.LoginPath,
			CSRFCookieName: cfg.Adapter.CSRFCookieName,
			CSRFHeaderName: cfg.Adapter.CSRFHeaderName,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Session: ClientSession{
			CookieFile: cfg.Session.CookieFile,
		},
	}

	return clientCfg, clientCfg.validate()
}

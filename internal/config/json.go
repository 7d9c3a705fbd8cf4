package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Role    string `json:"role"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		ServerAddress  string   `json:"address"`
		BasePath       string   `json:"base_path"`
		LoginPath      string   `json:"login_path"`
		CSRFCookieName string   `json:"csrf_cookie"`
		CSRFHeaderName string   `json:"csrf_header"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Session struct {
		CookieFile string `json:"cookie_file"`
	} `json:"session,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Role:    jsonCfg.App.Role,
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			ServerAddress:  jsonCfg.Adapter.ServerAddress,
			BasePath:       jsonCfg.Adapter.BasePath,
			LoginPath:      jsonCfg.Adapter.LoginPath,
			CSRFCookieName: jsonCfg.Adapter.CSRFCookieName,
			CSRFHeaderName: jsonCfg.Adapter.CSRFHeaderName,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Session: Session{
			CookieFile: jsonCfg.Session.CookieFile,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

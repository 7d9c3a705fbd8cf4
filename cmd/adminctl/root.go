// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ProcureHub

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/procurehub/adminapi/internal/adapter"
	"github.com/procurehub/adminapi/internal/config"
	"github.com/procurehub/adminapi/internal/logger"
	"github.com/procurehub/adminapi/internal/session"
)

var (
	serverAddress  string
	configPath     string
	cookieFile     string
	requestTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "adminctl",
	Short:         "Command-line client for the procurement platform admin panel",
	Version:       Version + " (" + Commit + ")",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddress, "server", "", "Admin panel origin (e.g. https://panel.example.com)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON configuration file")
	rootCmd.PersistentFlags().StringVar(&cookieFile, "cookie-file", "", "Session cookie file (default: user config dir)")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 0, "Per-request timeout (0 = no client-side timeout)")
}

// client bundles everything a command needs for one invocation.
type client struct {
	api  adapter.AdminAPI
	sess *session.Store
	cfg  *config.ClientConfig
	log  *logger.Logger
}

// withClient assembles the configured client, runs fn, and saves the session
// cookies afterwards so the next invocation reuses the signed-in session.
func withClient(fn func(ctx context.Context, c *client) error) error {
	cfg, err := config.GetClientConfig(&config.StructuredConfig{
		Adapter: config.Adapter{
			ServerAddress:  serverAddress,
			RequestTimeout: requestTimeout,
		},
		Session:      config.Session{CookieFile: cookieFile},
		JSONFilePath: configPath,
	})
	if err != nil {
		return err
	}
	if cfg.Session.CookieFile == "" {
		cfg.Session.CookieFile = defaultCookieFile()
	}

	log := logger.NewClientLogger(cfg.App.Role)

	sess, err := session.New(cfg.Session.CookieFile)
	if err != nil {
		return err
	}

	api, err := adapter.NewHTTPAdminAPI(cfg.Adapter, sess, &hintNavigator{cfg: cfg}, log)
	if err != nil {
		return err
	}

	c := &client{api: api, sess: sess, cfg: cfg, log: log}
	if err := fn(context.Background(), c); err != nil {
		return err
	}
	return sess.Save()
}

func defaultCookieFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "adminctl", "cookies.json")
}

// hintNavigator stands in for the browser redirect on session expiry: it
// tells the operator where to sign back in.
type hintNavigator struct {
	cfg *config.ClientConfig
}

func (n *hintNavigator) NavigateTo(path string) {
	fmt.Fprintf(os.Stderr, "session expired, sign in again: adminctl login (panel: %s%s)\n",
		n.cfg.Adapter.ServerAddress, path)
}

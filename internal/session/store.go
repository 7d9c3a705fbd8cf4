// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ProcureHub

// Package session holds the client side of the admin panel's cookie-based
// session: an http.CookieJar with direct lookup (needed for the
// anti-forgery token) and optional JSON file persistence so a CLI keeps
// its session between invocations.
package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// persistedCookie is the on-disk form of one cookie.
type persistedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HTTPOnly bool      `json:"http_only,omitempty"`
}

// Store is a cookie jar with optional file persistence. It implements
// http.CookieJar and the adapter's Session interface. All methods are safe
// for concurrent use.
type Store struct {
	mu   sync.Mutex
	jar  *cookiejar.Jar
	path string

	// held mirrors the jar contents by origin and cookie name; the
	// standard jar has no enumeration API, so Save works off this map.
	held map[string]map[string]persistedCookie
}

// New creates a Store. path is the cookie file location; empty disables
// persistence. An existing cookie file is loaded into the jar; a missing
// one is not an error.
func New(path string) (*Store, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	s := &Store{
		jar:  jar,
		path: path,
		held: make(map[string]map[string]persistedCookie),
	}

	if path != "" {
		if err := s.load(); err != nil {
			return nil, fmt.Errorf("load cookie file: %w", err)
		}
	}

	return s, nil
}

// SetCookies implements http.CookieJar. Expired cookies are dropped from
// the persistence mirror so a server-side logout sticks across runs.
func (s *Store) SetCookies(u *url.URL, cookies []*http.Cookie) {
	s.jar.SetCookies(u, cookies)

	s.mu.Lock()
	defer s.mu.Unlock()

	origin := originKey(u)
	m := s.held[origin]
	if m == nil {
		m = make(map[string]persistedCookie)
		s.held[origin] = m
	}

	now := time.Now()
	for _, c := range cookies {
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(now)) {
			delete(m, c.Name)
			continue
		}
		m[c.Name] = persistedCookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HTTPOnly: c.HttpOnly,
		}
	}
}

// Cookies implements http.CookieJar.
func (s *Store) Cookies(u *url.URL) []*http.Cookie {
	return s.jar.Cookies(u)
}

// Cookie returns the raw value of the named cookie currently held for
// origin u, and whether it is present.
func (s *Store) Cookie(u *url.URL, name string) (string, bool) {
	for _, c := range s.jar.Cookies(u) {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// Save writes the current cookies to the configured file with 0600
// permissions. A Store created without a path saves nothing and returns
// nil.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.held, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cookie file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create cookie dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write cookie file: %w", err)
	}
	return nil
}

// Reset drops every cookie and removes the cookie file. Used by logout so
// a stale session is not resurrected on the next run.
func (s *Store) Reset() error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("create cookie jar: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.jar = jar
	s.held = make(map[string]map[string]persistedCookie)

	if s.path != "" {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove cookie file: %w", err)
		}
	}
	return nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var held map[string]map[string]persistedCookie
	if err := json.Unmarshal(data, &held); err != nil {
		return err
	}

	now := time.Now()
	for origin, byName := range held {
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			continue
		}

		cookies := make([]*http.Cookie, 0, len(byName))
		kept := make(map[string]persistedCookie, len(byName))
		for name, pc := range byName {
			if !pc.Expires.IsZero() && pc.Expires.Before(now) {
				continue
			}
			cookies = append(cookies, &http.Cookie{
				Name:     pc.Name,
				Value:    pc.Value,
				Path:     pc.Path,
				Domain:   pc.Domain,
				Expires:  pc.Expires,
				Secure:   pc.Secure,
				HttpOnly: pc.HTTPOnly,
			})
			kept[name] = pc
		}
		if len(kept) > 0 {
			s.jar.SetCookies(u, cookies)
			s.held[origin] = kept
		}
	}

	return nil
}

func originKey(u *url.URL) string {
	return u.Scheme + "://" + u.Host
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the galaxy app and server.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/galaxy/galaxy"
	"cogentcore.org/galaxy/nav"
	"cogentcore.org/galaxy/placement"
	"cogentcore.org/galaxy/store"
	"cogentcore.org/galaxy/upload"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/go-homedir"
)

// Config is the main config struct
// that contains all of the configuration
// options for the galaxy app.
type Config struct {

	// Store is the project store connection.
	// See [Config.Backend] for how the backend is selected.
	Store store.Options

	// Placement are the parameters for placing new projects.
	Placement placement.Params

	// Nav are the camera navigation parameters.
	Nav nav.Params

	// Galaxy are the scene composition parameters.
	Galaxy galaxy.Params

	// Upload are the image preparation parameters.
	Upload upload.Options

	// FOV is the vertical field of view of the camera, in degrees.
	FOV float32 `default:"75"`

	// Near is the near clipping distance of the camera.
	Near float32 `default:"0.1"`

	// Far is the far clipping distance of the camera.
	Far float32 `default:"1000"`

	// CacheDir is the directory where remote images are cached.
	// Caching is disabled if it is empty.
	CacheDir string `default:"~/.cache/galaxy"`

	// Data is the SQLite database used by the serve command
	// when no other database is configured.
	Data string `cmd:"serve" default:"~/.local/share/galaxy/galaxy.db"`

	// Addr is the address the serve command listens on.
	Addr string `cmd:"serve" default:"localhost:8080"`

	// ServeKey is the access key that clients of the serve command
	// must send. All requests are accepted if it is empty.
	ServeKey string `cmd:"serve" env:"GALAXY_SERVE_KEY"`

	// LogJSON writes logs as JSON instead of text.
	LogJSON bool
}

// Defaults sets the default values of the config, including those
// of nested parameter structs that cannot be set from struct tags.
func (c *Config) Defaults() {
	c.Store.Table = "projects"
	c.Placement.Defaults()
	c.Nav.Defaults()
	c.Galaxy.Defaults()
	c.Upload.Defaults()
	c.FOV = 75
	c.Near = 0.1
	c.Far = 1000
	c.CacheDir = "~/.cache/galaxy"
	c.Data = "~/.local/share/galaxy/galaxy.db"
	c.Addr = "localhost:8080"
}

// New returns a new config with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// hostedEnv are the variables of the hosted REST service as
// set for its web client, used if the GALAXY_ ones are not set.
type hostedEnv struct {
	URL           string `env:"SUPABASE_URL"`
	Key           string `env:"SUPABASE_ANON_KEY"`
	PublicURL     string `env:"NEXT_PUBLIC_SUPABASE_URL"`
	PublicAnonKey string `env:"NEXT_PUBLIC_SUPABASE_ANON_KEY"`
}

// ParseEnv overlays the store connection parameters from environment
// variables onto the config. Variables that are not set leave the
// config unchanged.
func ParseEnv(c *Config) error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	var h hostedEnv
	if err := env.Parse(&h); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if c.Store.URL == "" {
		c.Store.URL = firstNonEmpty(h.URL, h.PublicURL)
	}
	if c.Store.Key == "" {
		c.Store.Key = firstNonEmpty(h.Key, h.PublicAnonKey)
	}
	return nil
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}

// Backend returns the store backend the config selects.
func (c *Config) Backend() store.Backend {
	return c.Store.Backend()
}

// ExpandPaths expands a leading ~ in all of the path fields.
func (c *Config) ExpandPaths() error {
	for _, p := range []*string{&c.CacheDir, &c.Data, &c.Store.SQLitePath} {
		if *p == "" {
			continue
		}
		ex, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expanding %q: %w", *p, err)
		}
		*p = ex
	}
	return nil
}

// EnsureDir creates the parent directory of the given file path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// SetupLogging installs the default logger at the level selected by
// the user with the verbosity flags.
func (c *Config) SetupLogging() {
	opts := &slog.HandlerOptions{Level: logx.UserLevel}
	var h slog.Handler
	if c.LogJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

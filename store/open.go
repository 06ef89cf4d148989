// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"log/slog"
	"strings"
)

// Backend is the kind of backend selected by [Open].
type Backend int32

const (
	// BackendMemory is the in-memory sample dataset.
	BackendMemory Backend = iota

	// BackendSQLite is a local SQLite database.
	BackendSQLite

	// BackendREST is a hosted REST table service.
	BackendREST

	// BackendPostgres is a direct PostgreSQL connection.
	BackendPostgres
)

func (b Backend) String() string {
	switch b {
	case BackendSQLite:
		return "sqlite"
	case BackendREST:
		return "rest"
	case BackendPostgres:
		return "postgres"
	}
	return "memory"
}

// Options are the connection parameters used to open a store.
type Options struct {

	// URL is the base URL of the hosted REST service.
	URL string `env:"GALAXY_STORE_URL"`

	// Key is the access key of the hosted REST service.
	Key string `env:"GALAXY_STORE_KEY"`

	// Table is the name of the projects table in the REST service.
	Table string `default:"projects"`

	// DatabaseURL is a PostgreSQL connection URL, which takes
	// precedence over all other backends.
	DatabaseURL string `env:"GALAXY_DATABASE_URL"`

	// SQLitePath is the path of a local SQLite database, used
	// when no remote backend is configured.
	SQLitePath string `env:"GALAXY_SQLITE_PATH"`
}

// Backend returns the backend that [Open] selects for these options:
// Postgres, then REST, then SQLite, then the in-memory samples.
// A REST configuration with only one of URL and Key set is ignored.
func (o *Options) Backend() Backend {
	switch {
	case strings.TrimSpace(o.DatabaseURL) != "":
		return BackendPostgres
	case strings.TrimSpace(o.URL) != "" && strings.TrimSpace(o.Key) != "":
		return BackendREST
	case strings.TrimSpace(o.SQLitePath) != "":
		return BackendSQLite
	}
	return BackendMemory
}

// Open opens the store selected by the given options, always wrapped
// in a [Fallback] that lists [SampleProjects] on failure. A backend that
// cannot be opened degrades to the in-memory samples with a warning,
// as do the database backends on the web, where only REST is available,
// so Open only fails if the context is done. The returned close
// function releases the backend and is never nil.
func Open(ctx context.Context, opts *Options) (*Fallback, func() error, error) {
	noop := func() error { return nil }
	if err := ctx.Err(); err != nil {
		return nil, noop, err
	}
	samples := SampleProjects()
	if (opts.URL == "") != (opts.Key == "") {
		slog.Warn("store: REST service needs both a URL and a key; ignoring partial configuration", "url", opts.URL != "", "key", opts.Key != "")
	}
	b := opts.Backend()
	switch b {
	case BackendREST:
		st, err := NewREST(opts.URL, opts.Key, opts.Table)
		if err == nil {
			slog.Info("store: opened", "backend", b, "url", st.URL)
			return NewFallback(st, samples), noop, nil
		}
		slog.Error("store: could not open backend, using sample dataset", "backend", b, "err", err)
	case BackendPostgres, BackendSQLite:
		st, closer, err := openDatabase(ctx, b, opts)
		if err == nil {
			slog.Info("store: opened", "backend", b)
			return NewFallback(st, samples), closer, nil
		}
		slog.Error("store: could not open backend, using sample dataset", "backend", b, "err", err)
	default:
		slog.Warn("store: no backend configured, using sample dataset")
	}
	return NewFallback(NewMemory(samples...), samples), noop, nil
}

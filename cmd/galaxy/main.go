// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command galaxy shows community projects as a 3D galaxy,
// and can serve a local project store for it.
package main

import (
	"context"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"cogentcore.org/galaxy/config"
	"cogentcore.org/galaxy/galaxycore"
	"cogentcore.org/galaxy/server"
	"cogentcore.org/galaxy/store"
)

//go:generate core generate -add-funcs

func main() { //types:skip
	opts := cli.DefaultOptions("galaxy", "Galaxy shows community projects as stars around a central node.")
	cli.Run(opts, config.New(), Run, Serve)
}

// Run opens the galaxy window for the configured project store.
func Run(c *config.Config) error { //cli:cmd -root
	if err := setup(c); err != nil {
		return err
	}
	if c.Backend() == store.BackendSQLite {
		if err := config.EnsureDir(c.Store.SQLitePath); err != nil {
			return err
		}
	}
	st, closeStore, err := store.Open(context.Background(), &c.Store)
	if err != nil {
		return err
	}
	defer func() { errors.Log(closeStore()) }()

	b := core.NewBody("Project Galaxy")
	galaxycore.NewPage(b, c, st)
	b.RunMainWindow()
	return nil
}

// Serve serves the project store over the REST interface that the
// galaxy reads, so that it can run against a local service. Projects
// are kept in the SQLite database at Data unless a database is
// configured.
func Serve(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	opts := c.Store
	switch opts.Backend() {
	case store.BackendMemory, store.BackendREST:
		opts.URL, opts.Key = "", ""
		opts.SQLitePath = c.Data
	}
	if opts.Backend() == store.BackendSQLite {
		if err := config.EnsureDir(opts.SQLitePath); err != nil {
			return err
		}
	}
	st, closeStore, err := store.Open(context.Background(), &opts)
	if err != nil {
		return err
	}
	defer func() { errors.Log(closeStore()) }()

	slog.Info("serving projects", "addr", c.Addr, "backend", opts.Backend(), "table", opts.Table)
	return server.New(st, opts.Table, c.ServeKey).Start(c.Addr)
}

// setup applies the environment and sets up logging.
func setup(c *config.Config) error {
	if err := config.ParseEnv(c); err != nil {
		return err
	}
	if err := c.ExpandPaths(); err != nil {
		return err
	}
	c.SetupLogging()
	return nil
}

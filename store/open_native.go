// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package store

import (
	"context"
	"fmt"

	"cogentcore.org/galaxy/store/postgres"
	"cogentcore.org/galaxy/store/sqlite"
)

// openDatabase opens a Postgres or SQLite backend.
func openDatabase(ctx context.Context, b Backend, opts *Options) (Store, func() error, error) {
	switch b {
	case BackendPostgres:
		st, err := postgres.Open(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	case BackendSQLite:
		st, err := sqlite.Open(ctx, opts.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	}
	return nil, nil, fmt.Errorf("store: %v is not a database backend", b)
}

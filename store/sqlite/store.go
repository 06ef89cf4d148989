// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite provides a local SQLite-backed project store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/galaxy/project"
	_ "modernc.org/sqlite"
)

// Store persists projects in a local SQLite database.
type Store struct {

	// Now returns the current time; time.Now is used if nil.
	Now func() time.Time

	db *sql.DB
}

// Open opens the SQLite database at the given path, creating it
// and applying migrations as needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: database path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping %s: %w", path, err)
	}
	if err := applyMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (st *Store) Close() error {
	if st == nil || st.db == nil {
		return nil
	}
	return st.db.Close()
}

func (st *Store) List(ctx context.Context) ([]project.Project, error) {
	rows, err := st.db.QueryContext(ctx, `SELECT id, name, description, link, image, x, y, z, created_at
FROM projects ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list projects: %w", err)
	}
	defer rows.Close()
	var ps []project.Project
	for rows.Next() {
		var p project.Project
		var x, y, z float64
		var created int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Link, &p.Image, &x, &y, &z, &created); err != nil {
			return nil, fmt.Errorf("sqlite: scan project: %w", err)
		}
		p.X, p.Y, p.Z = float32(x), float32(y), float32(z)
		p.CreatedAt = time.UnixMilli(created).UTC()
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list projects: %w", err)
	}
	return ps, nil
}

func (st *Store) Insert(ctx context.Context, d project.Draft) (project.Project, error) {
	now := time.Now
	if st.Now != nil {
		now = st.Now
	}
	created := time.UnixMilli(now().UnixMilli()).UTC()
	res, err := st.db.ExecContext(ctx, `INSERT INTO projects (name, description, link, image, x, y, z, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.Name, d.Description, d.Link, d.Image, float64(d.X), float64(d.Y), float64(d.Z), created.UnixMilli())
	if err != nil {
		return project.Project{}, fmt.Errorf("sqlite: insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return project.Project{}, fmt.Errorf("sqlite: insert project: %w", err)
	}
	return d.Project(id, created), nil
}

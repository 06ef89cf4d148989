// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package postgres provides a PostgreSQL-backed project store.
package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cogentcore.org/galaxy/project"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const schema = `CREATE TABLE IF NOT EXISTS projects (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    link TEXT NOT NULL,
    image TEXT NOT NULL,
    x DOUBLE PRECISION NOT NULL,
    y DOUBLE PRECISION NOT NULL,
    z DOUBLE PRECISION NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store persists projects in a PostgreSQL database.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to the database at the given URL and
// creates the projects table if needed.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("postgres: database URL is required")
	}
	pool, err := pgxpool.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: create schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (st *Store) Close() error {
	if st != nil && st.pool != nil {
		st.pool.Close()
	}
	return nil
}

func scan(row pgx.Row) (project.Project, error) {
	var p project.Project
	var x, y, z float64
	var created time.Time
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Link, &p.Image, &x, &y, &z, &created); err != nil {
		return p, err
	}
	p.X, p.Y, p.Z = float32(x), float32(y), float32(z)
	p.CreatedAt = created.UTC()
	return p, nil
}

func (st *Store) List(ctx context.Context) ([]project.Project, error) {
	rows, err := st.pool.Query(ctx, `SELECT id, name, description, link, image, x, y, z, created_at
FROM projects ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list projects: %w", err)
	}
	defer rows.Close()
	var ps []project.Project
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan project: %w", err)
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: list projects: %w", err)
	}
	return ps, nil
}

func (st *Store) Insert(ctx context.Context, d project.Draft) (project.Project, error) {
	row := st.pool.QueryRow(ctx, `INSERT INTO projects (name, description, link, image, x, y, z)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, description, link, image, x, y, z, created_at`,
		d.Name, d.Description, d.Link, d.Image, float64(d.X), float64(d.Y), float64(d.Z))
	p, err := scan(row)
	if err != nil {
		return project.Project{}, fmt.Errorf("postgres: insert project: %w", err)
	}
	return p, nil
}

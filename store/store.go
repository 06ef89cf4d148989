// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store provides access to the stored galaxy projects.
// Stores only list and insert: projects are never updated or deleted.
package store

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"cogentcore.org/galaxy/project"
)

// ErrNotConfigured is returned when a backend is missing its
// connection parameters.
var ErrNotConfigured = errors.New("store: backend not configured")

// Store is the interface for a project store.
type Store interface {

	// List returns all stored projects ordered by creation time, newest first.
	List(ctx context.Context) ([]project.Project, error)

	// Insert stores a new project, returning it with the
	// identifier and creation time assigned by the store.
	Insert(ctx context.Context, d project.Draft) (project.Project, error)
}

// Fallback wraps a [Store] so that List never fails: on any error it
// logs and returns a copy of Samples instead. Insert errors are passed
// through, since the caller must tell the user about them.
type Fallback struct {
	Store

	// Samples is the fixed dataset returned when listing fails.
	Samples []project.Project
}

// NewFallback returns a new [Fallback] around the given store.
func NewFallback(st Store, samples []project.Project) *Fallback {
	return &Fallback{Store: st, Samples: samples}
}

// List returns the projects of the underlying store, or the
// Samples if that fails. The returned error is always nil.
func (fb *Fallback) List(ctx context.Context) ([]project.Project, error) {
	if fb.Store == nil {
		return slices.Clone(fb.Samples), nil
	}
	ps, err := fb.Store.List(ctx)
	if err != nil {
		slog.Warn("store: listing projects failed, using fallback dataset", "err", err, "samples", len(fb.Samples))
		return slices.Clone(fb.Samples), nil
	}
	return ps, nil
}

// Insert inserts into the underlying store.
func (fb *Fallback) Insert(ctx context.Context, d project.Draft) (project.Project, error) {
	if fb.Store == nil {
		return project.Project{}, ErrNotConfigured
	}
	return fb.Store.Insert(ctx, d)
}

// SortNewestFirst sorts projects by creation time, newest first,
// breaking ties by descending identifier so the order is stable.
func SortNewestFirst(ps []project.Project) {
	slices.SortStableFunc(ps, func(a, b project.Project) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
}

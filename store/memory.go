// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"cogentcore.org/galaxy/project"
)

// Memory is an in-memory [Store], used when no backend is configured
// and in tests. It is safe for concurrent use.
type Memory struct {

	// Now returns the current time; time.Now is used if nil.
	Now func() time.Time

	mu       sync.Mutex
	projects []project.Project
	lastID   int64
}

// NewMemory returns a new [Memory] store holding the given projects.
func NewMemory(projects ...project.Project) *Memory {
	m := &Memory{}
	for _, p := range projects {
		m.lastID = max(m.lastID, p.ID)
	}
	m.projects = slices.Clone(projects)
	SortNewestFirst(m.projects)
	return m
}

func (m *Memory) List(ctx context.Context) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.projects), nil
}

func (m *Memory) Insert(ctx context.Context, d project.Draft) (project.Project, error) {
	if err := ctx.Err(); err != nil {
		return project.Project{}, err
	}
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID++
	p := d.Project(m.lastID, now().UTC())
	m.projects = append(m.projects, p)
	SortNewestFirst(m.projects)
	return p, nil
}

// SampleProjects returns the fixed dataset shown when no backend is
// configured or the backend cannot be reached.
func SampleProjects() []project.Project {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ps := []project.Project{
		{
			ID:          1,
			Name:        "HashPack",
			Description: "A wallet for the Hedera network.",
			Link:        "https://www.hashpack.app",
			X:           45,
			Y:           12,
			Z:           -30,
			CreatedAt:   base,
		},
		{
			ID:          2,
			Name:        "SaucerSwap",
			Description: "A decentralized exchange built on Hedera.",
			Link:        "https://www.saucerswap.finance",
			X:           -60,
			Y:           -25,
			Z:           18,
			CreatedAt:   base.Add(time.Hour),
		},
		{
			ID:          3,
			Name:        "HashScan",
			Description: "A network explorer for Hedera.",
			Link:        "https://hashscan.io",
			X:           10,
			Y:           70,
			Z:           52,
			CreatedAt:   base.Add(2 * time.Hour),
		},
	}
	SortNewestFirst(ps)
	return ps
}

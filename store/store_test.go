// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cogentcore.org/galaxy/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failing struct{}

func (failing) List(ctx context.Context) ([]project.Project, error) {
	return nil, errors.New("network down")
}

func (failing) Insert(ctx context.Context, d project.Draft) (project.Project, error) {
	return project.Project{}, errors.New("network down")
}

func TestSampleProjects(t *testing.T) {
	ps := SampleProjects()
	require.Len(t, ps, 3)
	for i := 1; i < len(ps); i++ {
		assert.True(t, ps[i-1].CreatedAt.After(ps[i].CreatedAt))
	}
	for _, p := range ps {
		assert.Greater(t, p.ID, project.CentralID)
	}
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(SampleProjects()...)
	m.Now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	a, err := m.List(ctx)
	require.NoError(t, err)
	b, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	d := project.Draft{Name: "Foo", Description: "Bar", Link: "https://example.com", Image: "img", X: 1, Y: 2, Z: 3}
	p, err := m.Insert(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)
	assert.Equal(t, m.Now(), p.CreatedAt)

	ps, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 4)
	assert.Equal(t, p, ps[0])

	// the returned slice is a copy
	ps[0].Name = "changed"
	ps, _ = m.List(ctx)
	assert.Equal(t, "Foo", ps[0].Name)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = m.List(cctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFallback(t *testing.T) {
	ctx := context.Background()
	samples := SampleProjects()
	fb := NewFallback(failing{}, samples)
	ps, err := fb.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, samples, ps)

	_, err = fb.Insert(ctx, project.Draft{Name: "x"})
	assert.Error(t, err)

	fb = NewFallback(nil, nil)
	ps, err = fb.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, ps)
	_, err = fb.Insert(ctx, project.Draft{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSortNewestFirst(t *testing.T) {
	now := time.Now()
	ps := []project.Project{
		{ID: 1, CreatedAt: now},
		{ID: 2, CreatedAt: now.Add(time.Second)},
		{ID: 3, CreatedAt: now},
	}
	SortNewestFirst(ps)
	assert.Equal(t, []int64{2, 3, 1}, []int64{ps[0].ID, ps[1].ID, ps[2].ID})
}

func TestNewREST(t *testing.T) {
	_, err := NewREST("", "key", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = NewREST("https://example.supabase.co", " ", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
	rs, err := NewREST("https://example.supabase.co/", "key", "")
	require.NoError(t, err)
	assert.Equal(t, "https://example.supabase.co", rs.URL)
	assert.Equal(t, "projects", rs.Table)
}

func TestRESTRequests(t *testing.T) {
	var got *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer ts.Close()

	rs, err := NewREST(ts.URL, "anon", "")
	require.NoError(t, err)
	ps, err := rs.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ps)
	require.NotNil(t, got)
	assert.Equal(t, "/rest/v1/projects", got.URL.Path)
	assert.Equal(t, "created_at.desc", got.URL.Query().Get("order"))
	assert.Equal(t, "*", got.URL.Query().Get("select"))
	assert.Equal(t, "anon", got.Header.Get("apikey"))
	assert.Equal(t, "Bearer anon", got.Header.Get("Authorization"))

	// an insert that returns no rows is a failure
	_, err = rs.Insert(context.Background(), project.Draft{Name: "Foo"})
	assert.Error(t, err)
	assert.Equal(t, "return=representation", got.Header.Get("Prefer"))
}

func TestRESTFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	rs, err := NewREST(ts.URL, "anon", "")
	require.NoError(t, err)
	_, err = rs.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")

	ps, err := NewFallback(rs, SampleProjects()).List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, ps, 3)
}

func TestBackend(t *testing.T) {
	assert.Equal(t, BackendMemory, (&Options{}).Backend())
	assert.Equal(t, BackendMemory, (&Options{URL: "https://x"}).Backend())
	assert.Equal(t, BackendMemory, (&Options{Key: "k"}).Backend())
	assert.Equal(t, BackendREST, (&Options{URL: "https://x", Key: "k"}).Backend())
	assert.Equal(t, BackendSQLite, (&Options{URL: "https://x", SQLitePath: "g.db"}).Backend())
	assert.Equal(t, BackendREST, (&Options{URL: "https://x", Key: "k", SQLitePath: "g.db"}).Backend())
	assert.Equal(t, BackendPostgres, (&Options{URL: "https://x", Key: "k", DatabaseURL: "postgres://db"}).Backend())
	assert.Equal(t, "sqlite", BackendSQLite.String())
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	st, closer, err := Open(ctx, &Options{})
	require.NoError(t, err)
	defer closer()
	ps, err := st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, SampleProjects(), ps)

	p, err := st.Insert(ctx, project.Draft{Name: "Foo"})
	require.NoError(t, err)
	ps, _ = st.List(ctx)
	assert.Equal(t, p.ID, ps[0].ID)
}

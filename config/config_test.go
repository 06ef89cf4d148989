// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/galaxy/store"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, float32(20), c.Placement.MinSeparation)
	assert.Equal(t, 50, c.Placement.MaxAttempts)
	assert.Equal(t, float32(200), c.Nav.MaxRadius)
	assert.Equal(t, math32.Vec3(0, 0, 50), c.Nav.Initial)
	assert.Equal(t, 3000, c.Galaxy.StarCount)
	assert.Equal(t, image.Pt(300, 300), c.Upload.Box)
	assert.Equal(t, 70, c.Upload.Quality)
	assert.Equal(t, float32(75), c.FOV)
	assert.Equal(t, "projects", c.Store.Table)
	assert.Equal(t, store.BackendMemory, c.Backend())
}

func TestParseEnv(t *testing.T) {
	t.Setenv("GALAXY_STORE_URL", "")
	t.Setenv("GALAXY_STORE_KEY", "")
	t.Setenv("GALAXY_DATABASE_URL", "")
	t.Setenv("GALAXY_SQLITE_PATH", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "anon")

	c := New()
	require.NoError(t, ParseEnv(c))
	assert.Equal(t, "https://abc.supabase.co", c.Store.URL)
	assert.Equal(t, "anon", c.Store.Key)
	assert.Equal(t, store.BackendREST, c.Backend())

	// the galaxy variables take precedence
	t.Setenv("GALAXY_STORE_URL", "http://localhost:8080")
	t.Setenv("GALAXY_STORE_KEY", "local")
	c = New()
	require.NoError(t, ParseEnv(c))
	assert.Equal(t, "http://localhost:8080", c.Store.URL)
	assert.Equal(t, "local", c.Store.Key)

	t.Setenv("GALAXY_DATABASE_URL", "postgres://galaxy@localhost/galaxy")
	c = New()
	require.NoError(t, ParseEnv(c))
	assert.Equal(t, store.BackendPostgres, c.Backend())
}

func TestParseEnvPartial(t *testing.T) {
	t.Setenv("GALAXY_STORE_URL", "https://abc.supabase.co")
	t.Setenv("GALAXY_STORE_KEY", "")
	t.Setenv("GALAXY_DATABASE_URL", "")
	t.Setenv("GALAXY_SQLITE_PATH", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "")
	c := New()
	require.NoError(t, ParseEnv(c))
	assert.Equal(t, store.BackendMemory, c.Backend())
}

func TestExpandPaths(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	c := New()
	c.Store.SQLitePath = "~/galaxy.db"
	require.NoError(t, c.ExpandPaths())
	assert.Equal(t, filepath.Join(home, ".cache", "galaxy"), c.CacheDir)
	assert.Equal(t, filepath.Join(home, "galaxy.db"), c.Store.SQLitePath)

	c.CacheDir = ""
	require.NoError(t, c.ExpandPaths())
	assert.Equal(t, "", c.CacheDir)
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, EnsureDir(filepath.Join(dir, "a", "b", "galaxy.db")))
	assert.DirExists(t, filepath.Join(dir, "a", "b"))
}

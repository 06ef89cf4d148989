// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cogentcore.org/galaxy/project"
	"cogentcore.org/galaxy/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, key string) (*httptest.Server, *store.Memory) {
	mem := store.NewMemory(store.SampleProjects()...)
	ts := httptest.NewServer(New(mem, "projects", key))
	t.Cleanup(ts.Close)
	return ts, mem
}

func TestRoundTrip(t *testing.T) {
	ts, _ := newTestServer(t, "secret")
	rs, err := store.NewREST(ts.URL, "secret", "")
	require.NoError(t, err)
	ctx := context.Background()

	before, err := rs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, before, 3)
	again, err := rs.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, again)

	d := project.Draft{Name: "Foo", Description: "Bar", Link: "https://example.com", Image: "data:image/jpeg;base64,AA==", X: 33, Y: -41, Z: 7.5}
	p, err := rs.Insert(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	after, err := rs.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, 4)
	got := after[0]
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, d.Name, got.Name)
	assert.Equal(t, d.Description, got.Description)
	assert.Equal(t, d.Link, got.Link)
	assert.Equal(t, d.Image, got.Image)
	assert.Equal(t, d.Pos(), got.Pos())
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))
}

func TestUnauthorized(t *testing.T) {
	ts, _ := newTestServer(t, "secret")
	rs, err := store.NewREST(ts.URL, "wrong", "")
	require.NoError(t, err)
	_, err = rs.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestUnknownTable(t *testing.T) {
	ts, _ := newTestServer(t, "")
	rs, err := store.NewREST(ts.URL, "any", "planets")
	require.NoError(t, err)
	_, err = rs.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestInsertSingleObject(t *testing.T) {
	ts, mem := newTestServer(t, "")
	body := `{"name":"Solo","description":"one row","link":"http://solo.example.com","image":"x","x":1,"y":2,"z":3}`
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/rest/v1/projects", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	ps, err := mem.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Solo", ps[0].Name)
}

func TestInsertBadRequests(t *testing.T) {
	ts, mem := newTestServer(t, "")
	post := func(contentType, body string) int {
		req, err := http.NewRequest(http.MethodPost, ts.URL+"/rest/v1/projects", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", contentType)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}
	assert.Equal(t, http.StatusUnsupportedMediaType, post("text/plain", "[]"))
	assert.Equal(t, http.StatusBadRequest, post("application/json", "[]"))
	assert.Equal(t, http.StatusBadRequest, post("application/json", "{not json"))

	ps, err := mem.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, ps, 3)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postgres

import (
	"context"
	"os"
	"testing"

	"cogentcore.org/galaxy/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	url := os.Getenv("GALAXY_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("GALAXY_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	st, err := Open(ctx, url)
	require.NoError(t, err)
	defer st.Close()

	before, err := st.List(ctx)
	require.NoError(t, err)

	d := project.Draft{Name: "Foo", Description: "Bar", Link: "https://example.com", Image: "data:image/jpeg;base64,AA==", X: 1.5, Y: -2, Z: 30}
	p, err := st.Insert(ctx, d)
	require.NoError(t, err)
	assert.Greater(t, p.ID, int64(0))
	assert.Equal(t, "Foo", p.Name)
	assert.Equal(t, float32(1.5), p.X)
	assert.False(t, p.CreatedAt.IsZero())

	after, err := st.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, p.ID, after[0].ID)
}

func TestOpenEmpty(t *testing.T) {
	_, err := Open(context.Background(), " ")
	assert.Error(t, err)
}

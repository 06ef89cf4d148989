// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package submit

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"math/rand"
	"testing"

	"cogentcore.org/galaxy/placement"
	"cogentcore.org/galaxy/project"
	"cogentcore.org/galaxy/store"
	"cogentcore.org/galaxy/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	store.Store
	inserts int
	err     error
}

func (r *recorder) Insert(ctx context.Context, d project.Draft) (project.Project, error) {
	r.inserts++
	if r.err != nil {
		return project.Project{}, r.err
	}
	return r.Store.Insert(ctx, d)
}

// noiseJPEG returns a JPEG of at least the given size.
func noiseJPEG(t *testing.T, size int) []byte {
	rnd := rand.New(rand.NewSource(1))
	for w := 64; ; w += 16 {
		img := image.NewRGBA(image.Rect(0, 0, w, w))
		for y := range w {
			for x := range w {
				img.Set(x, y, color.RGBA{uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), 0xff})
			}
		}
		var b bytes.Buffer
		require.NoError(t, jpeg.Encode(&b, img, &jpeg.Options{Quality: 85}))
		if b.Len() >= size {
			return b.Bytes()
		}
	}
}

func newSubmitter(rec *recorder) (*Submitter, *[]project.Project, *int) {
	var added []project.Project
	closed := 0
	s := NewSubmitter(rec, placement.NewGenerator(rand.New(rand.NewSource(7))))
	s.OnAdded = func(p project.Project) { added = append(added, p) }
	s.OnClose = func() { closed++ }
	return s, &added, &closed
}

func TestSubmit(t *testing.T) {
	data := noiseJPEG(t, 40<<10)
	opts := upload.DefaultOptions()
	im, err := opts.Prepare(data)
	require.NoError(t, err)

	existing := store.SampleProjects()
	rec := &recorder{Store: store.NewMemory(existing...)}
	s, added, closed := newSubmitter(rec)

	f := &Form{Name: "Foo", Description: "Bar", Link: "https://example.com", Image: im.DataURL}
	p, err := s.Submit(context.Background(), f, existing)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.inserts)
	assert.Equal(t, 1, *closed)
	require.Len(t, *added, 1)
	got := (*added)[0]
	assert.Equal(t, p, got)
	assert.Equal(t, "Foo", got.Name)
	assert.Equal(t, "Bar", got.Description)
	assert.Equal(t, "https://example.com", got.Link)
	assert.Equal(t, im.DataURL, got.Image)
	assert.Greater(t, got.ID, project.CentralID)
	assert.True(t, s.Generator.Satisfies(got.Pos(), project.Positions(existing)))

	ps, err := rec.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, got, ps[0])
}

func TestSubmitInvalidLink(t *testing.T) {
	rec := &recorder{Store: store.NewMemory()}
	s, added, closed := newSubmitter(rec)

	f := &Form{Name: "Foo", Description: "Bar", Link: "not-a-url", Image: "data:image/jpeg;base64,AA=="}
	_, err := s.Submit(context.Background(), f, nil)
	require.Error(t, err)
	errs, ok := FieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, Errors{FieldLink: "Please enter a valid URL starting with http:// or https://"}, errs)
	assert.Equal(t, 0, rec.inserts)
	assert.Empty(t, *added)
	assert.Equal(t, 0, *closed)
}

func TestSubmitStoreFailure(t *testing.T) {
	rec := &recorder{Store: store.NewMemory(), err: errors.New("503 Service Unavailable")}
	s, added, closed := newSubmitter(rec)

	f := &Form{Name: "Foo", Description: "Bar", Link: "http://example.com", Image: "data:image/jpeg;base64,AA=="}
	_, err := s.Submit(context.Background(), f, nil)
	require.Error(t, err)
	_, ok := FieldErrors(err)
	assert.False(t, ok)
	assert.Equal(t, 1, rec.inserts)
	assert.Empty(t, *added)
	assert.Equal(t, 0, *closed)
	// the form keeps its values for a retry
	assert.Equal(t, "Foo", f.Name)

	rec.err = nil
	_, err = s.Submit(context.Background(), f, nil)
	require.NoError(t, err)
	assert.Len(t, *added, 1)
	assert.Equal(t, 1, *closed)
}

func TestValidate(t *testing.T) {
	f := &Form{}
	assert.Equal(t, Errors{
		FieldName:        "Project name is required",
		FieldDescription: "Description is required",
		FieldLink:        "Project link is required",
		FieldImage:       "Please upload an image",
	}, f.Validate())

	f = &Form{Name: "  ", Description: "d", Link: "HTTPS://Example.com", Image: "x"}
	assert.Equal(t, Errors{FieldName: "Project name is required"}, f.Validate())

	for _, link := range []string{"http://a", "https://example.com/path?q=1"} {
		f = &Form{Name: "n", Description: "d", Link: link, Image: "x"}
		assert.Nil(t, f.Validate(), link)
	}
	for _, link := range []string{"ftp://example.com", "https://", "example.com", "http:/x"} {
		f = &Form{Name: "n", Description: "d", Link: link, Image: "x"}
		assert.Contains(t, f.Validate(), FieldLink, link)
	}
}

func TestErrorsError(t *testing.T) {
	errs := Errors{FieldLink: "bad", FieldName: "missing"}
	assert.Equal(t, "invalid project: link: bad; name: missing", errs.Error())
}

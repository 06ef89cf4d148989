// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture loads the images used as node textures from the
// image references stored with projects: inline data URLs, remote
// http(s) URLs, and local or embedded files.
package texture

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/h2non/filetype"
	"golang.org/x/image/draw"
)

var (
	// ErrUnsupported is returned for image references that
	// are neither a data URL, a URL, nor a file.
	ErrUnsupported = errors.New("texture: unsupported image reference")

	// ErrNotImage is returned when the referenced data is not an image.
	ErrNotImage = errors.New("texture: not an image")
)

// Loader loads the image for an image reference. A failed load is
// not fatal: the node is rendered without a texture.
type Loader interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

// Sources is the default [Loader], which handles data URLs, http(s)
// URLs, and paths that are looked up in FS and then the file system.
type Sources struct {

	// FS holds embedded assets, such as the central node image.
	FS fs.FS

	// Client is the HTTP client; http.DefaultClient is used if nil.
	Client *http.Client

	// MaxBytes is the maximum size of remote or file data.
	MaxBytes int64

	// MaxSize is the maximum width and height of a returned image;
	// larger images are scaled down to fit. Zero means no limit.
	MaxSize int
}

// NewSources returns a new [Sources] loader for the given asset file system.
func NewSources(fsys fs.FS) *Sources {
	return &Sources{FS: fsys, MaxBytes: 10 << 20, MaxSize: 1024}
}

// IsRemote returns whether the reference is an http(s) URL.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Fetch returns the raw data for the reference.
func (s *Sources) Fetch(ctx context.Context, ref string) ([]byte, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return nil, ErrUnsupported
	case strings.HasPrefix(ref, "data:"):
		_, data, err := DecodeDataURL(ref)
		return data, err
	case IsRemote(ref):
		return s.fetchRemote(ctx, ref)
	}
	name := strings.TrimPrefix(ref, "/")
	if s.FS != nil {
		if b, err := fs.ReadFile(s.FS, name); err == nil {
			return b, nil
		}
	}
	b, err := os.ReadFile(ref)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrUnsupported, ref)
		}
		return nil, err
	}
	return b, nil
}

func (s *Sources) fetchRemote(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("texture: fetching %s: %w", ref, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("texture: fetching %s: %s", ref, resp.Status)
	}
	var r io.Reader = resp.Body
	if s.MaxBytes > 0 {
		r = io.LimitReader(r, s.MaxBytes+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("texture: fetching %s: %w", ref, err)
	}
	if s.MaxBytes > 0 && int64(len(b)) > s.MaxBytes {
		return nil, fmt.Errorf("texture: %s is larger than %d bytes", ref, s.MaxBytes)
	}
	return b, nil
}

// Load returns the image for the reference.
func (s *Sources) Load(ctx context.Context, ref string) (image.Image, error) {
	b, err := s.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	img, err := Decode(b)
	if err != nil {
		return nil, err
	}
	return Fit(img, s.MaxSize), nil
}

// Decode decodes image data of any supported format, checking
// that it is an image first.
func Decode(b []byte) (image.Image, error) {
	if !filetype.IsImage(b) {
		return nil, ErrNotImage
	}
	img, _, err := imagex.Read(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("texture: decoding image: %w", err)
	}
	return img, nil
}

// Fit returns the image scaled down to fit within size by size,
// keeping its aspect ratio. Images that already fit are returned as is.
func Fit(img image.Image, size int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if size <= 0 || (w <= size && h <= size) {
		return img
	}
	if w >= h {
		h = max(1, h*size/w)
		w = size
	} else {
		w = max(1, w*size/h)
		h = size
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// DecodeDataURL decodes a data URL, returning its media type and data.
// Both base64 and percent-encoded data are supported.
func DecodeDataURL(s string) (mediaType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: not a data URL", ErrUnsupported)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: data URL has no data", ErrUnsupported)
	}
	meta, isBase64 := strings.CutSuffix(meta, ";base64")
	mediaType, _, _ = strings.Cut(meta, ";")
	if mediaType == "" {
		mediaType = "text/plain"
	}
	if isBase64 {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		}
	} else {
		var str string
		str, err = url.PathUnescape(payload)
		data = []byte(str)
	}
	if err != nil {
		return "", nil, fmt.Errorf("texture: decoding data URL: %w", err)
	}
	return mediaType, data, nil
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package upload prepares a user-selected image for storage with a
// project: it checks that the file is an image within the size limit,
// scales it down to fit a fixed box, and encodes it as a JPEG data URL.
package upload

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/math32"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"golang.org/x/image/draw"
)

var (
	// ErrNotImage is returned for files that are not images.
	ErrNotImage = errors.New("upload: not an image file")

	// ErrTooLarge is returned for files over the size limit.
	ErrTooLarge = errors.New("upload: image file is too large")
)

// Message returns the message shown to the user for an error
// returned by [Options.Prepare].
func Message(err error) string {
	switch {
	case errors.Is(err, ErrTooLarge):
		return "Image size should be less than 5MB"
	case errors.Is(err, ErrNotImage):
		return "Please upload an image file"
	}
	return "Could not read the image file"
}

// Options are the image preparation parameters.
type Options struct {

	// MaxBytes is the maximum size of the original file.
	MaxBytes int64 `default:"5242880"`

	// Box is the maximum width and height of the stored image.
	Box image.Point

	// Quality is the JPEG quality of the stored image.
	Quality int `default:"70"`
}

// Defaults sets the default options.
func (o *Options) Defaults() {
	o.MaxBytes = 5 << 20
	o.Box = image.Pt(300, 300)
	o.Quality = 70
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	o := Options{}
	o.Defaults()
	return o
}

// Image is a prepared image.
type Image struct {

	// DataURL is the encoded image, as stored with the project.
	DataURL string

	// Preview is the resized image, for display in the form.
	Preview *image.RGBA

	// MIME is the media type of the original file.
	MIME string
}

// Check returns the media type of the file data, or an error if it is
// not an image or is larger than MaxBytes.
func (o *Options) Check(data []byte) (string, error) {
	if o.MaxBytes > 0 && int64(len(data)) > o.MaxBytes {
		return "", ErrTooLarge
	}
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown || kind.MIME.Type != "image" {
		return "", ErrNotImage
	}
	return kind.MIME.Value, nil
}

// Prepare checks, resizes and encodes the given file data.
func (o *Options) Prepare(data []byte) (*Image, error) {
	mime, err := o.Check(data)
	if err != nil {
		return nil, err
	}
	img, _, err := imagex.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotImage, err)
	}
	rs := Resize(img, o.Box)
	url, err := EncodeDataURL(rs, o.Quality)
	if err != nil {
		return nil, err
	}
	return &Image{DataURL: url, Preview: rs, MIME: mime}, nil
}

// PrepareFile prepares the image in the given file, checking its
// size before reading it.
func (o *Options) PrepareFile(filename string) (*Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if st, err := f.Stat(); err == nil && o.MaxBytes > 0 && st.Size() > o.MaxBytes {
		return nil, ErrTooLarge
	}
	r := io.Reader(f)
	if o.MaxBytes > 0 {
		r = io.LimitReader(f, o.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return o.Prepare(data)
}

// FitSize returns the size of an image of the given size scaled down
// to fit within box, keeping its aspect ratio. Sizes that already fit
// are unchanged.
func FitSize(size, box image.Point) image.Point {
	w, h := size.X, size.Y
	if w > h {
		if w > box.X {
			h = int(math32.Round(float32(h*box.X) / float32(w)))
			w = box.X
		}
	} else if h > box.Y {
		w = int(math32.Round(float32(w*box.Y) / float32(h)))
		h = box.Y
	}
	return image.Pt(max(w, 1), max(h, 1))
}

// Resize returns the image scaled down to fit within box, composited
// over white so that it is opaque.
func Resize(img image.Image, box image.Point) *image.RGBA {
	b := img.Bounds()
	sz := FitSize(b.Size(), box)
	src := img
	if sz != b.Size() {
		src = transform.Resize(img, sz.X, sz.Y, transform.Linear)
	}
	dst := image.NewRGBA(image.Rectangle{Max: sz})
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
	return dst
}

// EncodeDataURL encodes the image as a JPEG data URL of the given quality.
func EncodeDataURL(img image.Image, quality int) (string, error) {
	var b bytes.Buffer
	b.WriteString("data:image/jpeg;base64,")
	enc := base64.NewEncoder(base64.StdEncoding, &b)
	if err := jpeg.Encode(enc, img, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("upload: encoding image: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxy

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Palette is the set of neon glow colors assigned to project nodes.
var Palette = []color.RGBA{
	{0xff, 0x00, 0xff, 0xff}, // pink
	{0x00, 0xff, 0xff, 0xff}, // cyan
	{0xff, 0xff, 0x00, 0xff}, // yellow
	{0xff, 0x00, 0x88, 0xff}, // deep pink
	{0x00, 0xff, 0x88, 0xff}, // aqua green
	{0x88, 0x00, 0xff, 0xff}, // purple
	{0xff, 0x88, 0x00, 0xff}, // orange
}

var (
	// CentralGlow is the glow and base color of the central node.
	CentralGlow = color.RGBA{0x00, 0xff, 0x7f, 0xff}

	// HoverColor is the base color of a hovered project node.
	HoverColor = color.RGBA{0xff, 0x90, 0x00, 0xff}

	// StarColor is the color of the background stars.
	StarColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Starfield returns count points drawn uniformly from the cube of the
// given size centered on the origin.
func Starfield(rnd Rand, count int, size float32) []math32.Vector3 {
	if rnd == nil {
		rnd = globalRand{}
	}
	stars := make([]math32.Vector3, count)
	for i := range stars {
		stars[i] = math32.Vec3(
			(rnd.Float32()-0.5)*size,
			(rnd.Float32()-0.5)*size,
			(rnd.Float32()-0.5)*size,
		)
	}
	return stars
}

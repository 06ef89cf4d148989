// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxycore

import (
	"image"
	"image/color"

	"cogentcore.org/core/events"
	"cogentcore.org/galaxy/galaxy"
	"cogentcore.org/galaxy/nav"
)

// Emissive strengths of the node materials.
const (
	centralTexturedGlow = 0.1
	centralPlainGlow    = 0.8
	nodeGlow            = 0.7
	nodeHoverGlow       = 1

	// haloAlpha is the opacity of the halo spheres (5%).
	haloAlpha = 13
)

// scaleColor returns c with its color channels scaled by f.
func scaleColor(c color.RGBA, f float32) color.RGBA {
	s := func(v uint8) uint8 {
		x := float32(v) * f
		if x > 255 {
			x = 255
		}
		return uint8(x + 0.5)
	}
	return color.RGBA{s(c.R), s(c.G), s(c.B), c.A}
}

// appearance is the base and emissive color of a node sphere.
type appearance struct {
	Base     color.RGBA
	Emissive color.RGBA
}

// nodeAppearance returns the appearance of a node, which depends on
// whether it is the central node, whether it has a texture and
// whether it is hovered.
func nodeAppearance(n *galaxy.Node, textured bool) appearance {
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	if n.Project.IsCentral() {
		if textured {
			return appearance{Base: white, Emissive: scaleColor(n.Glow, centralTexturedGlow)}
		}
		return appearance{Base: n.Glow, Emissive: scaleColor(n.Glow, centralPlainGlow)}
	}
	if n.Hovered {
		return appearance{Base: galaxy.HoverColor, Emissive: scaleColor(n.Glow, nodeHoverGlow)}
	}
	return appearance{Base: white, Emissive: scaleColor(n.Glow, nodeGlow)}
}

// haloColor returns the color of the halo around a node.
func haloColor(n *galaxy.Node) color.RGBA {
	c := n.Glow
	c.A = haloAlpha
	return c
}

// viewCoords returns the normalized device coordinates, in [-1, 1]
// with y up, of a window position within the given view box, and
// the aspect ratio of the box.
func viewCoords(pos image.Point, box image.Rectangle) (x, y, aspect float32) {
	sz := box.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return 0, 0, 1
	}
	lp := pos.Sub(box.Min)
	x = 2*float32(lp.X)/float32(sz.X) - 1
	y = 1 - 2*float32(lp.Y)/float32(sz.Y)
	aspect = float32(sz.X) / float32(sz.Y)
	return
}

// navButton returns the navigation button for a mouse button.
func navButton(b events.Buttons) nav.Button {
	if b == events.Right {
		return nav.Secondary
	}
	return nav.Primary
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxycore

import (
	"image"
	"testing"

	"cogentcore.org/core/events"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/galaxy/nav"
	"github.com/stretchr/testify/assert"
)

func newTestGalaxy() *Galaxy {
	gw := NewGalaxy()
	gw.Nav = nav.NewController(nav.DefaultParams())
	return gw
}

func mouse(gw *Galaxy, typ events.Types, but events.Buttons, pos image.Point) {
	gw.HandleEvent(events.NewMouse(typ, but, pos, 0))
}

// A drag released outside of the view ends with a slide stop
// and no mouse up or click.
func TestSlideStop(t *testing.T) {
	gw := newTestGalaxy()
	mouse(gw, events.MouseDown, events.Left, image.Pt(100, 100))
	assert.Equal(t, nav.Dragging, gw.Nav.State.Mode)

	mouse(gw, events.SlideMove, events.Left, image.Pt(140, 110))
	assert.True(t, gw.Nav.State.DragMoved)
	mouse(gw, events.SlideStop, events.Left, image.Pt(900, 110))
	assert.Equal(t, nav.Idle, gw.Nav.State.Mode)
	assert.False(t, gw.Nav.State.DragMoved)
	assert.False(t, gw.Nav.Active())

	pose := gw.Nav.Pose()
	mouse(gw, events.MouseMove, events.NoButton, image.Pt(300, 300))
	assert.Equal(t, pose, gw.Nav.Pose())

	// the next plain click toggles follow again
	mouse(gw, events.Click, events.Left, image.Pt(300, 300))
	assert.Equal(t, nav.Following, gw.Nav.State.Mode)
}

func TestSlideStopPan(t *testing.T) {
	gw := newTestGalaxy()
	mouse(gw, events.MouseDown, events.Right, image.Pt(100, 100))
	assert.True(t, gw.Nav.State.Panning)
	mouse(gw, events.SlideMove, events.Right, image.Pt(120, 100))
	mouse(gw, events.SlideStop, events.Right, image.Pt(120, 100))
	assert.False(t, gw.Nav.State.Panning)
	assert.False(t, gw.Nav.Active())
}

func TestRepeatedClicks(t *testing.T) {
	gw := newTestGalaxy()
	mouse(gw, events.Click, events.Left, image.Pt(10, 10))
	assert.Equal(t, nav.Following, gw.Nav.State.Mode)
	mouse(gw, events.DoubleClick, events.Left, image.Pt(10, 10))
	assert.Equal(t, nav.Idle, gw.Nav.State.Mode)
	mouse(gw, events.TripleClick, events.Left, image.Pt(10, 10))
	assert.Equal(t, nav.Following, gw.Nav.State.Mode)
}

func TestScrollableUnattended(t *testing.T) {
	gw := newTestGalaxy()
	gw.Style()
	assert.True(t, gw.Styles.Abilities.HasFlag(abilities.ScrollableUnattended))
}

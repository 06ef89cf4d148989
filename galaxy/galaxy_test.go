// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxy

import (
	"image/color"
	"math/rand"
	"slices"
	"testing"
	"time"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/galaxy/nav"
	"cogentcore.org/galaxy/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProjects() []project.Project {
	return []project.Project{
		{ID: 3, Name: "C", X: 0, Y: 0, Z: 25},
		{ID: 2, Name: "B", X: 40, Y: 0, Z: 0},
		{ID: 1, Name: "A", X: -40, Y: 10, Z: -20},
	}
}

func newTestGalaxy() *Galaxy {
	p := DefaultParams()
	p.StarCount = 100
	return New(p, rand.New(rand.NewSource(42)))
}

func TestPickCentral(t *testing.T) {
	g := newTestGalaxy()
	assert.Empty(t, g.Nodes)

	pose := nav.LookAt(math32.Vec3(0, 0, 50), math32.Vector3{})
	o, d := pose.Ray(75, 1, 0, 0)
	n, ok := g.Pick(o, d)
	require.True(t, ok)
	assert.True(t, n.Project.IsCentral())
	assert.Equal(t, project.Central().Name, n.Project.Name)
	assert.Equal(t, CentralGlow, n.Glow)

	// a ray that misses everything
	_, ok = g.Pick(o, math32.Vec3(0, 1, 0))
	assert.False(t, ok)
}

func TestPickNearest(t *testing.T) {
	g := newTestGalaxy()
	g.SetProjects(testProjects())

	// C at z 25 is in front of the central node
	n, ok := g.Pick(math32.Vec3(0, 0, 50), math32.Vec3(0, 0, -1))
	require.True(t, ok)
	assert.Equal(t, "C", n.Project.Name)

	// from the other side, the central node is hit first
	n, ok = g.Pick(math32.Vec3(0, 0, -50), math32.Vec3(0, 0, 1))
	require.True(t, ok)
	assert.True(t, n.Project.IsCentral())

	// a node behind the ray origin is not hit
	n, ok = g.Pick(math32.Vec3(0, 0, 10), math32.Vec3(0, 0, 1))
	require.True(t, ok)
	assert.Equal(t, "C", n.Project.Name)
	_, ok = g.Pick(math32.Vec3(0, 0, 30), math32.Vec3(0, 0, 1))
	assert.False(t, ok)
}

func TestPickRotated(t *testing.T) {
	g := newTestGalaxy()
	g.SetProjects(testProjects())
	g.Angle = math32.Pi / 2

	// B at +X is rotated onto -Z
	b := &g.Nodes[1]
	wp := g.NodeWorldPos(b)
	tolassert.EqualTol(t, 0, wp.X, 1e-3)
	tolassert.EqualTol(t, -40, wp.Z, 1e-3)

	n, ok := g.Pick(math32.Vec3(0, 0, -100), math32.Vec3(0, 0, 1))
	require.True(t, ok)
	assert.Equal(t, "B", n.Project.Name)
}

func TestStableGlow(t *testing.T) {
	g := newTestGalaxy()
	g.SetProjects(testProjects())
	glows := map[int64]color.RGBA{}
	for _, n := range g.Nodes {
		assert.Contains(t, Palette, n.Glow)
		assert.Equal(t, float32(1), n.Radius)
		glows[n.Project.ID] = n.Glow
	}
	g.Tick(0, false)
	spin := g.Nodes[0].Spin

	// reloading keeps the glow and spin of every node
	ps := testProjects()
	slices.Reverse(ps)
	g.SetProjects(ps)
	for _, n := range g.Nodes {
		assert.Equal(t, glows[n.Project.ID], n.Glow)
	}
	assert.Equal(t, spin, g.Nodes[2].Spin)

	g.Prepend(project.Project{ID: 4, Name: "D", X: 60})
	require.Len(t, g.Nodes, 4)
	assert.Equal(t, "D", g.Nodes[0].Project.Name)
	assert.Contains(t, Palette, g.Nodes[0].Glow)
	assert.Equal(t, []int64{4, 1, 2, 3}, ids(g.Projects()))
}

func TestSetProjectsSkipsCentral(t *testing.T) {
	g := newTestGalaxy()
	g.SetProjects(append(testProjects(), project.Central()))
	assert.Len(t, g.Nodes, 3)
}

func TestTick(t *testing.T) {
	g := newTestGalaxy()
	g.SetProjects(testProjects())

	g.Tick(0, false)
	tolassert.EqualTol(t, 0.001, g.Angle, 1e-7)
	tolassert.EqualTol(t, 0.001, g.Central.Spin, 1e-7)
	tolassert.EqualTol(t, 0.002, g.Nodes[0].Spin, 1e-7)
	tolassert.EqualTol(t, 0.0001, g.StarAngle.Y, 1e-8)
	tolassert.EqualTol(t, 0.00005, g.StarAngle.X, 1e-8)

	// paused: everything but the galaxy rotation continues
	g.Tick(time.Second/30, true)
	tolassert.EqualTol(t, 0.001, g.Angle, 1e-7)
	tolassert.EqualTol(t, 0.003, g.Central.Spin, 1e-6)
	tolassert.EqualTol(t, 0.0003, g.StarAngle.Y, 1e-7)
}

func TestSetHovered(t *testing.T) {
	g := newTestGalaxy()
	g.SetProjects(testProjects())
	assert.True(t, g.SetHovered(&g.Nodes[1]))
	assert.True(t, g.Nodes[1].Hovered)
	assert.False(t, g.SetHovered(&g.Nodes[1]))
	assert.True(t, g.SetHovered(nil))
	assert.False(t, g.Nodes[1].Hovered)
}

func TestStarfield(t *testing.T) {
	stars := Starfield(rand.New(rand.NewSource(1)), 3000, 500)
	assert.Len(t, stars, 3000)
	for _, s := range stars {
		assert.LessOrEqual(t, math32.Abs(s.X), float32(250))
		assert.LessOrEqual(t, math32.Abs(s.Y), float32(250))
		assert.LessOrEqual(t, math32.Abs(s.Z), float32(250))
	}
	assert.Equal(t, stars, Starfield(rand.New(rand.NewSource(1)), 3000, 500))
	assert.Len(t, newTestGalaxy().Stars, 100)
}

func ids(ps []project.Project) []int64 {
	out := make([]int64, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

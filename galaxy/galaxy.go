// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package galaxy composes the galaxy scene independent of any renderer:
// the central node and one node per project, each with a stable glow
// color, self-rotation, a slow rotation of the whole assembly, and the
// decorative background starfield. It also finds the node under a
// pointer ray.
package galaxy

import (
	"image/color"
	"math/rand"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/galaxy/project"
)

// Params are the scene composition parameters.
type Params struct {

	// CentralRadius is the radius of the central node.
	CentralRadius float32 `default:"6"`

	// NodeRadius is the radius of project nodes.
	NodeRadius float32 `default:"1"`

	// HaloScale is the radius of the halo around each node
	// relative to the node radius.
	HaloScale float32 `default:"1.3"`

	// CentralSpin is the self-rotation of the central node per frame.
	CentralSpin float32 `default:"0.001"`

	// NodeSpin is the self-rotation of project nodes per frame.
	NodeSpin float32 `default:"0.002"`

	// GalaxySpin is the rotation of the whole galaxy per frame.
	GalaxySpin float32 `default:"0.001"`

	// StarSpin is the rotation of the starfield per frame around X and Y.
	StarSpin math32.Vector2

	// StarCount is the number of background stars.
	StarCount int `default:"3000"`

	// StarExtent is the size of the cube the background stars fill.
	StarExtent float32 `default:"500"`
}

// Defaults sets the default parameters.
func (p *Params) Defaults() {
	p.CentralRadius = 6
	p.NodeRadius = 1
	p.HaloScale = 1.3
	p.CentralSpin = 0.001
	p.NodeSpin = 0.002
	p.GalaxySpin = 0.001
	p.StarSpin = math32.Vec2(0.00005, 0.0001)
	p.StarCount = 3000
	p.StarExtent = 500
}

// DefaultParams returns the default parameters.
func DefaultParams() Params {
	p := Params{}
	p.Defaults()
	return p
}

// Rand is a source of random numbers, such as a [rand.Rand].
type Rand interface {
	Float32() float32
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Float32() float32 { return rand.Float32() }
func (globalRand) Intn(n int) int   { return rand.Intn(n) }

// Node is one sphere in the galaxy.
type Node struct {

	// Project is the project the node represents.
	Project project.Project

	// Glow is the emissive highlight color, fixed for the
	// lifetime of the node.
	Glow color.RGBA

	// Radius is the sphere radius.
	Radius float32

	// Spin is the current self-rotation angle around the node Y axis.
	Spin float32

	// Hovered is whether the pointer is over the node.
	Hovered bool
}

// Galaxy is the composed scene state.
type Galaxy struct {

	// Params are the composition parameters.
	Params Params

	// Central is the central node.
	Central Node

	// Nodes are the project nodes, in store order (newest first).
	Nodes []Node

	// Angle is the rotation of the whole galaxy around the Y axis.
	Angle float32

	// StarAngle is the rotation of the starfield around X and Y.
	StarAngle math32.Vector2

	// Stars are the background star positions.
	Stars []math32.Vector3

	rand  Rand
	glows map[int64]color.RGBA
}

// New returns a new galaxy with only the central node, using the
// given random source for glow colors and stars. The global source
// is used if rnd is nil.
func New(p Params, rnd Rand) *Galaxy {
	if rnd == nil {
		rnd = globalRand{}
	}
	g := &Galaxy{Params: p, rand: rnd, glows: map[int64]color.RGBA{}}
	g.Central = Node{Project: project.Central(), Glow: CentralGlow, Radius: p.CentralRadius}
	g.Stars = Starfield(rnd, p.StarCount, p.StarExtent)
	return g
}

// node returns the node for a project, reusing the glow color of
// any earlier node for the same project.
func (g *Galaxy) node(p project.Project) Node {
	glow, ok := g.glows[p.ID]
	if !ok {
		glow = Palette[g.rand.Intn(len(Palette))]
		g.glows[p.ID] = glow
	}
	return Node{Project: p, Glow: glow, Radius: g.Params.NodeRadius}
}

// SetProjects replaces all project nodes. Projects that already had
// a node keep their glow color and spin.
func (g *Galaxy) SetProjects(ps []project.Project) {
	spins := make(map[int64]float32, len(g.Nodes))
	for i := range g.Nodes {
		spins[g.Nodes[i].Project.ID] = g.Nodes[i].Spin
	}
	g.Nodes = make([]Node, 0, len(ps))
	for _, p := range ps {
		if p.IsCentral() {
			continue
		}
		n := g.node(p)
		n.Spin = spins[p.ID]
		g.Nodes = append(g.Nodes, n)
	}
}

// Prepend adds a new project node at the front, as the newest.
func (g *Galaxy) Prepend(p project.Project) {
	g.Nodes = append([]Node{g.node(p)}, g.Nodes...)
}

// Projects returns the projects of all project nodes, in order.
func (g *Galaxy) Projects() []project.Project {
	ps := make([]project.Project, len(g.Nodes))
	for i := range g.Nodes {
		ps[i] = g.Nodes[i].Project
	}
	return ps
}

// Each calls fun for the central node and then every project node.
func (g *Galaxy) Each(fun func(n *Node)) {
	fun(&g.Central)
	for i := range g.Nodes {
		fun(&g.Nodes[i])
	}
}

// Tick advances all rotations by the given elapsed time, with rates
// given per frame at 60 fps. A zero dt counts as one frame. The galaxy
// rotation does not advance while paused; self-rotation of the nodes
// and the starfield always do.
func (g *Galaxy) Tick(dt time.Duration, paused bool) {
	f := float32(1)
	if dt > 0 {
		f = float32(dt.Seconds() * 60)
	}
	g.Central.Spin = wrap(g.Central.Spin + g.Params.CentralSpin*f)
	for i := range g.Nodes {
		g.Nodes[i].Spin = wrap(g.Nodes[i].Spin + g.Params.NodeSpin*f)
	}
	if !paused {
		g.Angle = wrap(g.Angle + g.Params.GalaxySpin*f)
	}
	g.StarAngle.X = wrap(g.StarAngle.X + g.Params.StarSpin.X*f)
	g.StarAngle.Y = wrap(g.StarAngle.Y + g.Params.StarSpin.Y*f)
}

// Rotation returns the rotation of the whole galaxy.
func (g *Galaxy) Rotation() math32.Quat {
	return math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), g.Angle)
}

// NodeWorldPos returns the world position of a node, taking the
// rotation of the galaxy into account.
func (g *Galaxy) NodeWorldPos(n *Node) math32.Vector3 {
	return n.Project.Pos().MulQuat(g.Rotation())
}

// Pick returns the node whose sphere is hit first by the ray from
// origin along dir, if any.
func (g *Galaxy) Pick(origin, dir math32.Vector3) (*Node, bool) {
	dir = dir.Normal()
	var hit *Node
	best := float32(math32.MaxFloat32)
	g.Each(func(n *Node) {
		t, ok := raySphere(origin, dir, g.NodeWorldPos(n), n.Radius)
		if ok && t < best {
			best = t
			hit = n
		}
	})
	return hit, hit != nil
}

// SetHovered marks the given node as hovered and all others as not.
// It returns whether anything changed. n can be nil.
func (g *Galaxy) SetHovered(n *Node) bool {
	changed := false
	g.Each(func(o *Node) {
		h := o == n
		if o.Hovered != h {
			o.Hovered = h
			changed = true
		}
	})
	return changed
}

// raySphere returns the distance along the unit direction dir from
// origin to the nearest intersection with the sphere, if any that is
// not behind the origin.
func raySphere(origin, dir, center math32.Vector3, radius float32) (float32, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.LengthSquared() - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

func wrap(a float32) float32 {
	if a > 2*math32.Pi {
		a -= 2 * math32.Pi
	}
	return a
}

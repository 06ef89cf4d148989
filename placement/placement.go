// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placement generates positions for new projects in the galaxy,
// keeping them apart from each other and from the central node.
package placement

import (
	"math/rand"

	"cogentcore.org/core/math32"
)

// Params are the placement parameters.
type Params struct {

	// MinSeparation is the minimum distance between any two placed points.
	MinSeparation float32 `default:"20"`

	// CenterClearance is the minimum distance of a placed point from
	// the origin, where the central node lives.
	CenterClearance float32 `default:"20"`

	// HalfExtent is the half-size of the sampling cube.
	HalfExtent float32 `default:"120"`

	// MaxAttempts is the number of candidates drawn before falling back.
	MaxAttempts int `default:"50"`

	// FallbackScale multiplies HalfExtent for the fallback draw, which
	// is not checked against the separation constraints.
	FallbackScale float32 `default:"2.5"`
}

// Defaults sets the default parameters.
func (p *Params) Defaults() {
	p.MinSeparation = 20
	p.CenterClearance = 20
	p.HalfExtent = 120
	p.MaxAttempts = 50
	p.FallbackScale = 2.5
}

// Rand is a source of random numbers, such as a [rand.Rand].
type Rand interface {
	Float32() float32
}

type globalRand struct{}

func (globalRand) Float32() float32 { return rand.Float32() }

// Generator places new points by rejection sampling within a cube
// centered on the origin.
type Generator struct {
	Params

	// Rand is the random source; the global source is used if nil.
	Rand Rand
}

// NewGenerator returns a new [Generator] with default parameters
// using the given random source, which can be nil.
func NewGenerator(rnd Rand) *Generator {
	g := &Generator{Rand: rnd}
	g.Defaults()
	return g
}

// NewGeneratorParams returns a new [Generator] with the given parameters
// using the given random source, which can be nil.
func NewGeneratorParams(p Params, rnd Rand) *Generator {
	return &Generator{Params: p, Rand: rnd}
}

func (g *Generator) rand() Rand {
	if g.Rand == nil {
		g.Rand = globalRand{}
	}
	return g.Rand
}

// Place returns a new position given the already placed positions.
// It returns true if the position satisfies the separation constraints,
// and false if MaxAttempts candidates were rejected and the position was
// drawn from the larger fallback cube without checking.
// Place has no side effects beyond drawing from the random source.
func (g *Generator) Place(existing []math32.Vector3) (math32.Vector3, bool) {
	for range g.MaxAttempts {
		pos := g.sample(g.HalfExtent)
		if g.Satisfies(pos, existing) {
			return pos, true
		}
	}
	return g.sample(g.HalfExtent * g.FallbackScale), false
}

// Satisfies returns whether pos is at least CenterClearance from the origin
// and at least MinSeparation from every existing position.
func (g *Generator) Satisfies(pos math32.Vector3, existing []math32.Vector3) bool {
	if pos.Length() < g.CenterClearance {
		return false
	}
	for _, ex := range existing {
		if pos.DistanceTo(ex) < g.MinSeparation {
			return false
		}
	}
	return true
}

// sample draws a uniform point in the cube of given half extent.
func (g *Generator) sample(half float32) math32.Vector3 {
	rnd := g.rand()
	return math32.Vec3(
		(rnd.Float32()*2-1)*half,
		(rnd.Float32()*2-1)*half,
		(rnd.Float32()*2-1)*half,
	)
}

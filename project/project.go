// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package project defines the Project record that is rendered as a star
// in the galaxy, along with the Draft used to submit new projects and
// the always-present central node.
package project

import (
	"fmt"
	"time"

	"cogentcore.org/core/math32"
)

// CentralID is the identifier of the [Central] node. Stored projects
// always have identifiers greater than zero.
const CentralID int64 = 0

// CentralImage is the path of the image asset used as the texture
// for the [Central] node.
const CentralImage = "assets/hbar.png"

// Project is a community-submitted project, placed at a fixed position
// in the galaxy. Projects are immutable once stored.
type Project struct {

	// ID is the unique, stable identifier assigned by the store.
	ID int64 `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Description is a free-text description of the project.
	Description string `json:"description"`

	// Link is the external URL of the project.
	Link string `json:"link"`

	// Image is either an inline data URL or a remote / local image reference.
	Image string `json:"image"`

	// X, Y, Z is the position of the project in the galaxy.
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`

	// CreatedAt is the creation time, assigned by the store.
	CreatedAt time.Time `json:"created_at"`
}

// Draft is a project that has not been stored yet: it has no
// identifier or creation time.
type Draft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	Image       string  `json:"image"`
	X           float32 `json:"x"`
	Y           float32 `json:"y"`
	Z           float32 `json:"z"`
}

// Pos returns the position of the project.
func (p *Project) Pos() math32.Vector3 {
	return math32.Vec3(p.X, p.Y, p.Z)
}

// IsCentral returns whether this is the synthesized central node.
func (p *Project) IsCentral() bool {
	return p.ID == CentralID
}

// Location returns the position rounded to integers, formatted as [x, y, z].
func (p *Project) Location() string {
	return fmt.Sprintf("[%d, %d, %d]", int(math32.Round(p.X)), int(math32.Round(p.Y)), int(math32.Round(p.Z)))
}

func (p Project) String() string {
	return fmt.Sprintf("%s (%d)", p.Name, p.ID)
}

// SetPos sets the position of the draft.
func (d *Draft) SetPos(pos math32.Vector3) {
	d.X, d.Y, d.Z = pos.X, pos.Y, pos.Z
}

// Pos returns the position of the draft.
func (d *Draft) Pos() math32.Vector3 {
	return math32.Vec3(d.X, d.Y, d.Z)
}

// Project returns the stored form of the draft with the given
// identifier and creation time.
func (d *Draft) Project(id int64, created time.Time) Project {
	return Project{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Link:        d.Link,
		Image:       d.Image,
		X:           d.X,
		Y:           d.Y,
		Z:           d.Z,
		CreatedAt:   created,
	}
}

// Central returns the central node, which is synthesized in memory,
// never stored, and always at the origin.
func Central() Project {
	return Project{
		ID:          CentralID,
		Name:        "Hedera",
		Description: "Hedera is a decentralized public network where developers can build secure, fair applications with near real-time consensus.",
		Link:        "https://hedera.com",
		Image:       CentralImage,
		CreatedAt:   time.Now(),
	}
}

// Positions returns the positions of the given projects.
func Positions(projects []Project) []math32.Vector3 {
	ps := make([]math32.Vector3, len(projects))
	for i := range projects {
		ps[i] = projects[i].Pos()
	}
	return ps
}

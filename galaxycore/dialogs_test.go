// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxycore

import (
	"testing"

	"cogentcore.org/galaxy/project"
	"github.com/stretchr/testify/assert"
)

func TestProjectInfo(t *testing.T) {
	p := project.Project{ID: 12, X: 10.4, Y: -3.6, Z: 0.5}
	assert.Equal(t, "ID: 12 | Location: [10, -4, 1]", projectInfo(p))
	assert.Equal(t, "ID: 0 | Location: [0, 0, 0]", projectInfo(project.Central()))
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package galaxycore provides the Cogent Core GUI of the galaxy:
// the 3D [Galaxy] widget, the dialogs for adding and viewing
// projects, and the page that composes them.
package galaxycore

import "embed"

// Assets contains the image of the central node.
//
//go:embed assets
var Assets embed.FS

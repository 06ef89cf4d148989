// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoDatabase is returned for the database backends on the web.
var ErrNoDatabase = errors.New("store: database backends are not available on the web")

func openDatabase(ctx context.Context, b Backend, opts *Options) (Store, func() error, error) {
	return nil, nil, fmt.Errorf("%w: %v", ErrNoDatabase, b)
}

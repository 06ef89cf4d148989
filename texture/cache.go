// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"bytes"
	"context"
	"encoding/hex"
	"image"
	"log/slog"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"github.com/peterbourgon/diskv/v3"
	"github.com/zeebo/blake3"
)

// Key returns the cache key of an image reference: the hex BLAKE3
// hash of the reference, which keeps keys short for large data URLs.
func Key(ref string) string {
	sum := blake3.Sum256([]byte(ref))
	return hex.EncodeToString(sum[:])
}

// DiskCache is a persistent cache of encoded images, keyed by [Key].
type DiskCache struct {
	d *diskv.Diskv
}

// NewDiskCache returns a new [DiskCache] in the given directory.
func NewDiskCache(dir string) *DiskCache {
	return &DiskCache{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    shard,
		CacheSizeMax: 8 << 20,
	})}
}

// shard spreads keys over two directory levels.
func shard(key string) []string {
	if len(key) < 4 {
		return nil
	}
	return []string{key[:2], key[2:4]}
}

// Get returns the cached image for the key, if any.
func (dc *DiskCache) Get(key string) (image.Image, bool) {
	if !dc.d.Has(key) {
		return nil, false
	}
	b, err := dc.d.Read(key)
	if err != nil {
		return nil, false
	}
	img, _, err := imagex.Read(bytes.NewReader(b))
	if err != nil {
		slog.Warn("texture: dropping unreadable cache entry", "key", key, "err", err)
		errors.Log(dc.d.Erase(key))
		return nil, false
	}
	return img, true
}

// Put stores the image for the key, PNG encoded.
func (dc *DiskCache) Put(key string, img image.Image) error {
	var b bytes.Buffer
	if err := imagex.Write(img, &b, imagex.PNG); err != nil {
		return err
	}
	return dc.d.Write(key, b.Bytes())
}

// Cached is a [Loader] that keeps loaded images in memory, and remote
// images also in an optional [DiskCache] so that they are not fetched
// again in later sessions. Failed loads are not cached. It is safe for
// concurrent use.
type Cached struct {

	// Loader is the underlying loader.
	Loader Loader

	// Disk is the optional persistent cache for remote images.
	Disk *DiskCache

	mu     sync.Mutex
	images map[string]image.Image
}

// NewCached returns a new [Cached] loader around the given loader.
func NewCached(l Loader, disk *DiskCache) *Cached {
	return &Cached{Loader: l, Disk: disk}
}

func (c *Cached) Load(ctx context.Context, ref string) (image.Image, error) {
	key := Key(ref)
	c.mu.Lock()
	img, ok := c.images[key]
	c.mu.Unlock()
	if ok {
		return img, nil
	}
	remote := IsRemote(ref)
	if remote && c.Disk != nil {
		if img, ok := c.Disk.Get(key); ok {
			c.remember(key, img)
			return img, nil
		}
	}
	img, err := c.Loader.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	c.remember(key, img)
	if remote && c.Disk != nil {
		if err := c.Disk.Put(key, img); err != nil {
			slog.Warn("texture: could not cache image", "ref", ref, "err", err)
		}
	}
	return img, nil
}

func (c *Cached) remember(key string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.images == nil {
		c.images = map[string]image.Image{}
	}
	c.images[key] = img
}

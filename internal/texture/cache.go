package texture

import (
	"image"
	"sync"
)

// Resolver maps a texture name from a scene document to pixels.
// A nil result means the mesh draws its flat color.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

// Cache decodes each indexed file at most once and is safe for use by
// concurrent render workers. Failed decodes are remembered as nil.
type Cache struct {
	index *Index

	mu     sync.RWMutex
	loaded map[string]*image.NRGBA // keyed by file path
}

func NewCache(index *Index) *Cache {
	return &Cache{index: index, loaded: map[string]*image.NRGBA{}}
}

func (c *Cache) lookup(path string) (*image.NRGBA, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.loaded[path]
	return img, ok
}

// Resolve returns the decoded texture for texName, or nil when it is not
// indexed or fails to decode.
func (c *Cache) Resolve(texName string) *image.NRGBA {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil
	}
	if img, ok := c.lookup(path); ok {
		return img
	}

	// Decode outside the lock; a racing worker's result wins if it landed first.
	img, _ := LoadTexture(path)

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.loaded[path]; ok {
		return prev
	}
	c.loaded[path] = img
	return img
}

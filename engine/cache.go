package engine

import (
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/patrickmn/go-cache"
)

// ClipCache keeps decoded clips in memory so that reloading a channel does not
// decode the asset again. Entries expire after a while unless used.
type ClipCache struct {
	c *cache.Cache
}

// NewClipCache creates a cache whose entries expire ttl after they were last
// stored. ttl <= 0 means entries never expire.
func NewClipCache(ttl time.Duration) *ClipCache {
	if ttl <= 0 {
		return &ClipCache{c: cache.New(cache.NoExpiration, 0)}
	}
	return &ClipCache{c: cache.New(ttl, 2*ttl)}
}

func clipKey(name, ext string, sr beep.SampleRate) string {
	return name + "." + normalizeExt(ext) + "@" + strconv.Itoa(int(sr))
}

func (c *ClipCache) get(name, ext string, sr beep.SampleRate) (*Clip, bool) {
	v, ok := c.c.Get(clipKey(name, ext, sr))
	if !ok {
		return nil, false
	}
	return v.(*Clip), true
}

func (c *ClipCache) put(name, ext string, sr beep.SampleRate, clip *Clip) {
	c.c.SetDefault(clipKey(name, ext, sr), clip)
}

// Invalidate drops every cached version of the file, e.g. because it changed
// on disk. file is the path of the asset relative to the root of the bundle.
func (c *ClipCache) Invalidate(file string) {
	ext := path.Ext(file)
	name := file[:len(file)-len(ext)]
	prefix := name + "." + normalizeExt(ext) + "@"
	for k := range c.c.Items() {
		if strings.HasPrefix(k, prefix) {
			c.c.Delete(k)
		}
	}
}

// Flush drops all clips.
func (c *ClipCache) Flush() {
	c.c.Flush()
}

func (c *ClipCache) Len() int {
	return c.c.ItemCount()
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/FellOffFuji/vmdlpoints/internal/model"
)

// Cache defines the interface for report caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a cache key from a document's identity and the filter
// mode the report was built under. Size and mtime are part of the key, so
// editing the file naturally invalidates old entries; the filter mode keeps
// a report built under one mode from answering for another when a disk
// cache is shared across runs.
func CacheKey(path string, meta model.FileMeta, filter model.FilterMode) string {
	id := fmt.Sprintf("%s|%d|%d|%s", path, meta.Size, meta.ModTime.UnixNano(), filter)
	hash := sha256.Sum256([]byte(id))
	return "vmdlpoints:v1:" + hex.EncodeToString(hash[:])
}

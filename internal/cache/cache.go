// Package cache provides persistent storage for UnrealBuildTool interrogation
// data.
//
// Gathering the module graph from UnrealBuildTool is expensive (it spawns the
// full build tool in JSON export mode), so the parsed third-party module list
// is cached across runs. Entries are keyed by a two-part key: the engine
// version hash and a data key naming what was cached. Metadata lives in a
// BoltDB file under the user cache directory.
//
// The cache never invalidates entries itself; a new engine version produces a
// new version hash and therefore a fresh set of keys.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const (
	// DefaultCacheDir is the default cache directory name under the user cache directory
	DefaultCacheDir = "ue4cli"

	// bucketName is the BoltDB bucket name for interrogation data
	bucketName = "interrogation"
)

// Cache stores interrogation data using BoltDB
type Cache struct {
	db   *bbolt.DB
	root string
}

// Dir returns the cache directory in use, resolving the default location
// when cacheDir is empty
func Dir(cacheDir string) (string, error) {
	if cacheDir != "" {
		return cacheDir, nil
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user cache directory: %w", err)
	}

	return filepath.Join(base, DefaultCacheDir), nil
}

// New creates a new cache instance
// If cacheDir is empty, uses DefaultCacheDir under the user cache directory
func New(cacheDir string) (*Cache, error) {
	cacheDir, err := Dir(cacheDir)
	if err != nil {
		return nil, err
	}

	// Ensure cache directory exists
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	// Open BoltDB
	dbPath := filepath.Join(cacheDir, "cache.db")
	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// Create bucket if it doesn't exist
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache bucket: %w", err)
	}

	return &Cache{
		db:   db,
		root: cacheDir,
	}, nil
}

// Close closes the cache database
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}

	return nil
}

// GetCachedDataKey retrieves the data stored under (version, key)
// The second return value is false on cache miss
func (c *Cache) GetCachedDataKey(version, key string) ([]byte, bool, error) {
	var data []byte
	err := c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		stored := b.Get(entryKey(version, key))
		if stored == nil {
			return nil // Cache miss
		}

		data = make([]byte, len(stored))
		copy(data, stored)
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if data == nil {
		return nil, false, nil
	}

	return data, true, nil
}

// SetCachedDataKey stores data under (version, key), replacing any previous value
func (c *Cache) SetCachedDataKey(version, key string, data []byte) error {
	err := c.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		return b.Put(entryKey(version, key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}

	return nil
}

// Clear removes all cache entries
func (c *Cache) Clear() error {
	err := c.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketName)); err != nil {
			return err
		}

		_, err := tx.CreateBucket([]byte(bucketName))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	return nil
}

// Stats returns the number of cache entries
func (c *Cache) Stats() (int, error) {
	var count int
	err := c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		count = b.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Root returns the cache directory path
func (c *Cache) Root() string {
	return c.root
}

// entryKey builds the BoltDB key for a (version, key) pair
func entryKey(version, key string) []byte {
	return []byte(version + "/" + key)
}

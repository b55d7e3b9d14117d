// Package cache stores solver results and rendered diagrams.
//
// A [Cache] is a byte-oriented key-value store with per-entry TTL. The CLI
// uses [FileCache] under the XDG cache directory; the HTTP server can share
// results across instances through [RedisCache] or [MongoCache]. [NullCache]
// disables caching.
//
// Keys are produced by a [Keyer] so that every consumer derives the same
// key for the same input and options:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.SolutionKey(cache.Hash(input), cache.SolutionKeyOpts{Method: "td"})
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long entries live unless configured otherwise.
// Results never go stale since the input hash is part of every key; the
// TTL only bounds cache growth.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a key-value store for serialized results.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key. A miss is reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// SolutionKey returns the key for a solve result.
	SolutionKey(inputHash string, opts SolutionKeyOpts) string

	// RenderKey returns the key for a rendered chord diagram.
	RenderKey(inputHash string, opts RenderKeyOpts) string
}

// SolutionKeyOpts are the options that change a solve result.
type SolutionKeyOpts struct {
	Method string `json:"method"`
}

// RenderKeyOpts are the options that change a rendered diagram.
type RenderKeyOpts struct {
	Format   string  `json:"format"`
	Method   string  `json:"method"`
	Radius   float64 `json:"radius"`
	Labels   bool    `json:"labels"`
	OnlyPlan bool    `json:"only_plan"`
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SolutionKey returns "solution:<hash of input and options>".
func (DefaultKeyer) SolutionKey(inputHash string, opts SolutionKeyOpts) string {
	return hashKey("solution", inputHash, opts)
}

// RenderKey returns "render:<hash of input and options>".
func (DefaultKeyer) RenderKey(inputHash string, opts RenderKeyOpts) string {
	return hashKey("render", inputHash, opts)
}

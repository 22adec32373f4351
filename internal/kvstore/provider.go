// Package kvstore defines the key-value persistence boundary for Doko
// collections. Values are opaque byte slices; the record store encodes
// collections as canonical JSON before handing them over.
package kvstore

import "errors"

// ErrKeyNotFound is returned by Get for keys that were never set.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Provider is the interface for key-value persistence operations.
type Provider interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)
	// Set atomically writes value under key.
	Set(key string, value []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
	// Keys returns every key currently stored.
	Keys() ([]string, error)
}

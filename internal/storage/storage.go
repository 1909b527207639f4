// Package storage provides the local key-value persistence used for
// session state (cart lines, applied coupon, selected zone). Reads are
// fail-open: a missing or unreadable key is reported as absent, never
// fatal.
package storage

// Store is a flat key-value store. Implementations must make writes
// visible to reads issued immediately afterwards in the same goroutine.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

package cache

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned when a key cannot be built from the given prefix and parts
	ErrInvalidKey = errors.New("invalid cache key")

	// ErrBackendUnavailable marks failures to reach the underlying storage
	ErrBackendUnavailable = errors.New("cache backend unavailable")

	// ErrLoaderFailed marks failures of a caller-supplied loader
	ErrLoaderFailed = errors.New("cache loader failed")

	// ErrUnsupportedCapability is returned by stores that cannot enumerate keys
	ErrUnsupportedCapability = errors.New("cache store does not support key listing")
)

// BackendError wraps a storage failure with the level and operation that hit it
type BackendError struct {
	Level string
	Op    string
	Key   string
	Err   error
}

func (e *BackendError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s %s: %v", e.Level, e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s %q: %v", e.Level, e.Op, e.Key, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrBackendUnavailable) match any BackendError
func (e *BackendError) Is(target error) bool {
	return target == ErrBackendUnavailable
}

// LoaderError wraps the error returned by a loader on a cache miss
type LoaderError struct {
	Key string
	Err error
}

func (e *LoaderError) Error() string {
	return fmt.Sprintf("loading %q: %v", e.Key, e.Err)
}

func (e *LoaderError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrLoaderFailed) match any LoaderError
func (e *LoaderError) Is(target error) bool {
	return target == ErrLoaderFailed
}

package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackendError_Is(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := error(&BackendError{Level: "l2", Op: "get", Key: "group:g1", Err: cause})

	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrLoaderFailed)
	assert.Equal(t, `l2 get "group:g1": dial tcp: connection refused`, err.Error())

	var backendErr *BackendError
	assert.True(t, errors.As(err, &backendErr))
	assert.Equal(t, "l2", backendErr.Level)
}

func TestLoaderError_Is(t *testing.T) {
	cause := errors.New("record not found")
	err := error(&LoaderError{Key: "user:u1", Err: cause})

	assert.ErrorIs(t, err, ErrLoaderFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrBackendUnavailable)
}

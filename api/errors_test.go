package api_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/ringlab/api"
)

func TestError_UnwrapsToSentinel(t *testing.T) {
	err := api.NewError(api.ErrCodeOutOfRange, "head out of range").WithContext("len", 0)
	wrapped := fmt.Errorf("peek: %w", err)

	assert.ErrorIs(t, wrapped, api.ErrOutOfRange)
	assert.NotErrorIs(t, wrapped, api.ErrInvalidArgument)

	var apiErr *api.Error
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, api.ErrCodeOutOfRange, apiErr.Code)
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "bad", api.NewError(api.ErrCodeInvalidArgument, "bad").Error())
	assert.Equal(t, "bad (context: map[capacity:0])",
		api.NewError(api.ErrCodeInvalidArgument, "bad").WithContext("capacity", 0).Error())

	var zero api.Error
	assert.Nil(t, zero.Unwrap())
	zero.WithContext("k", "v")
	assert.Equal(t, "v", zero.Context["k"])
}

func TestStrategy_String(t *testing.T) {
	names := make([]string, 0, 3)
	for _, s := range api.Strategies() {
		names = append(names, s.String())
	}
	assert.Equal(t, []string{"naive", "shift-free", "deque"}, names)
	assert.Equal(t, "unknown", api.Strategy(99).String())
}

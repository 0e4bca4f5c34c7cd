package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("Should include the code in the message", func(t *testing.T) {
		err := NewError(ErrUpstreamCode, "model unavailable")
		assert.Equal(t, "UPSTREAM_ERROR: model unavailable", err.Error())
	})

	t.Run("Should unwrap the cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := WrapError(ErrUpstreamCode, "call failed", cause)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestCodeOf(t *testing.T) {
	t.Run("Should extract the code from a coded error", func(t *testing.T) {
		err := NewError(ErrUnknownTaskCode, "unknown task")
		assert.Equal(t, ErrUnknownTaskCode, CodeOf(err))
	})

	t.Run("Should extract the code through wrapping", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", NewError(ErrConfigCode, "no key"))
		assert.Equal(t, ErrConfigCode, CodeOf(err))
	})

	t.Run("Should default to INTERNAL_ERROR for plain errors", func(t *testing.T) {
		assert.Equal(t, ErrInternalCode, CodeOf(errors.New("boom")))
	})
}

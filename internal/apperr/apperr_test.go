package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, Wrap(nil))
	})

	t.Run("plain errors are wrapped with their message", func(t *testing.T) {
		err := Wrap(context.DeadlineExceeded)
		ae, ok := As(err)
		require.True(t, ok)
		assert.Equal(t, context.DeadlineExceeded.Error(), ae.Message)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, ae.Stack(), "apperr_test.go")
	})

	t.Run("application errors pass through", func(t *testing.T) {
		orig := New("Não há funcionário selecionado.")
		wrapped := fmt.Errorf("delete: %w", orig)
		assert.Same(t, wrapped, Wrap(wrapped))

		ae, ok := As(Wrap(wrapped))
		require.True(t, ok)
		assert.Same(t, orig, ae)
	})
}

func TestWithStatus(t *testing.T) {
	err := WithStatus(http.StatusNotFound, "")
	assert.Equal(t, "Not Found", err.Message)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.False(t, IsStatus(errors.New("x"), http.StatusNotFound))
	assert.Contains(t, err.Error(), "404")
}

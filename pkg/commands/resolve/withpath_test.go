// pkg/commands/resolve/withpath_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test that scanner errors carry the file path, even when wrapped

package resolve

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/unconflict/pkg/errors"
)

func TestWithPath(t *testing.T) {
	scanErr := errors.New(errors.ErrMalformedConflict, "unterminated conflict at line 3").
		WithDetail("line", 3)

	tests := []struct {
		name string
		err  error
	}{
		{"direct", scanErr},
		{"wrapped", fmt.Errorf("scan: %w", scanErr)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := withPath(tt.err, "/repo/file.txt")

			require.True(t, errors.IsErrorCode(err, errors.ErrMalformedConflict))
			assert.Contains(t, err.Error(), "/repo/file.txt: unterminated conflict at line 3")

			details := errors.GetErrorDetails(err)
			assert.Equal(t, "/repo/file.txt", details["path"])
			assert.Equal(t, 3, details["line"])
		})
	}

	t.Run("foreign error passes through", func(t *testing.T) {
		assert.Equal(t, io.ErrUnexpectedEOF, withPath(io.ErrUnexpectedEOF, "/repo/file.txt"))
	})
}

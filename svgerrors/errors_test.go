package svgerrors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "try.svg",
			Line:    4,
			Column:  12,
			Message: "element <g> closed by </svg>",
			Cause:   cause,
		}
		assert.Equal(t, "parse error in try.svg at line 4, column 12: element <g> closed by </svg>: underlying error", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		assert.Equal(t, "parse error", (&ParseError{}).Error())
	})

	t.Run("Column without line is omitted", func(t *testing.T) {
		assert.Equal(t, "parse error in a.svg", (&ParseError{Path: "a.svg", Column: 3}).Error())
	})

	t.Run("errors.Is matches sentinel through wrapping", func(t *testing.T) {
		err := fmt.Errorf("document: %w", &ParseError{Message: "bad"})
		assert.ErrorIs(t, err, ErrParse)
		assert.NotErrorIs(t, err, ErrIO)
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		assert.Same(t, cause, err.Unwrap())
	})
}

func TestFileError(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "try.svg", Err: fs.ErrNotExist}
	err := &FileError{Op: "open", Path: "try.svg", Cause: cause}

	assert.Equal(t, "i/o error: open try.svg: open try.svg: file does not exist", err.Error())
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "i/o error", (&FileError{}).Error())
}

func TestResourceLimitError(t *testing.T) {
	tests := []struct {
		name string
		err  *ResourceLimitError
		want string
	}{
		{"empty", &ResourceLimitError{}, "resource limit exceeded"},
		{"type only", &ResourceLimitError{ResourceType: "file_size"}, "resource limit exceeded: file_size"},
		{"limit and actual", &ResourceLimitError{ResourceType: "file_size", Limit: 10, Actual: 20}, "resource limit exceeded: file_size (limit: 10, actual: 20)"},
		{"with message", &ResourceLimitError{ResourceType: "nesting_depth", Limit: 5, Message: "too deep"}, "resource limit exceeded: nesting_depth (limit: 5): too deep"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrResourceLimit)
		})
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "tag_overrides", Value: "", Message: "empty tag name"}
	assert.Equal(t, "configuration error for tag_overrides (value: ): empty tag name", err.Error())
	assert.ErrorIs(t, err, ErrConfig)

	cause := errors.New("yaml: line 2")
	wrapped := &ConfigError{Option: "rules", Cause: cause}
	assert.ErrorIs(t, wrapped, cause)
}

func TestCollisionError(t *testing.T) {
	err := &CollisionError{Count: 2, First: "/svg/rect[1]: stroke-width -> strokeWidth"}
	assert.Equal(t, "attribute collision: 2 key(s) renamed onto an existing key (first at /svg/rect[1]: stroke-width -> strokeWidth)", err.Error())
	assert.ErrorIs(t, err, ErrCollision)

	var target *CollisionError
	assert.ErrorAs(t, fmt.Errorf("renamer: %w", err), &target)
	assert.Equal(t, 2, target.Count)
}

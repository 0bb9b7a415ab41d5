package scaffold

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "already_exists signal",
			err:  &CommandError{Stderr: `gh: Validation Failed (HTTP 422) {"code":"already_exists","field":"title"}`},
			want: true,
		},
		{
			name: "validation failed signal",
			err:  &CommandError{Stderr: "gh: Validation Failed (HTTP 422)"},
			want: true,
		},
		{
			name: "unrelated failure",
			err:  &CommandError{Stderr: "gh: Not Found (HTTP 404)"},
			want: false,
		},
		{
			name: "wrapped duplicate",
			err:  fmt.Errorf("create milestone: %w", &CommandError{Stderr: "already_exists"}),
			want: true,
		},
		{
			name: "plain error without signal",
			err:  errors.New("network is unreachable"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicate(tt.err))
		})
	}
}

func TestCommandError_Error(t *testing.T) {
	// Stderr text wins when present
	err := &CommandError{
		Args:   []string{"label", "create", "bug"},
		Stderr: "HTTP 403: Forbidden",
		Err:    errors.New("exit status 1"),
	}
	assert.Equal(t, "HTTP 403: Forbidden", err.Error())

	// Fall back to the process error when stderr is empty
	err = &CommandError{
		Args: []string{"label", "create", "bug"},
		Err:  errors.New("exit status 1"),
	}
	assert.Equal(t, "exit status 1", err.Error())

	// Last resort names the failed command
	err = &CommandError{Args: []string{"label", "create", "bug"}}
	assert.Equal(t, "gh label create bug failed", err.Error())
}

func TestCommandError_Unwrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &CommandError{Stderr: "boom", Err: cause}

	assert.ErrorIs(t, err, cause)

	var cmdErr *CommandError
	assert.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &cmdErr)
	assert.Equal(t, "boom", cmdErr.Stderr)
}

package defs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "sentinel", err: defs.ErrNotEnrolled, want: defs.CodeNotEnrolled},
		{name: "wrapped", err: fmt.Errorf("subject %q: %w", "X", defs.ErrUnknownSubject), want: defs.CodeUnknownSubject},
		{name: "double wrapped", err: fmt.Errorf("tx: %w", fmt.Errorf("grade: %w", defs.ErrInvalidGrade)), want: defs.CodeInvalidGrade},
		{name: "invalid input helper", err: defs.InvalidInput("username is required"), want: defs.CodeInvalidInput},
		{name: "plain error", err: errors.New("boom"), want: defs.CodeInternal},
		{name: "nil", err: nil, want: defs.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defs.CodeOf(tt.err))
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("create account: %w", defs.ErrDuplicateUsername)

	assert.ErrorIs(t, err, defs.ErrDuplicateUsername)
	assert.NotErrorIs(t, err, defs.ErrDuplicateSubject)
	assert.Equal(t, "create account: DUPLICATE_USERNAME: username is already taken", err.Error())
}

func TestRetryable(t *testing.T) {
	assert.True(t, defs.Retryable(fmt.Errorf("commit: %w", defs.ErrConflict)))
	assert.False(t, defs.Retryable(defs.ErrNotFound))
}

package httpapi_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/homework-evaluation/backend/httpapi"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{defs.ErrInvalidCredentials, http.StatusUnauthorized},
		{defs.ErrUnauthorized, http.StatusUnauthorized},
		{defs.ErrForbidden, http.StatusForbidden},
		{defs.ErrNotEnrolled, http.StatusForbidden},
		{defs.ErrNotFound, http.StatusNotFound},
		{defs.ErrDuplicateUsername, http.StatusConflict},
		{defs.ErrConflict, http.StatusConflict},
		{defs.ErrInvalidGrade, http.StatusUnprocessableEntity},
		{defs.InvalidInput("bad"), http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", defs.ErrNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, httpapi.StatusOf(tt.err))
		})
	}
}

package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrUserNotFound, ErrNotFound},
		{ErrAccountNotVerified, ErrForbidden},
		{ErrInvalidCredentials, ErrUnauthorized},
		{ErrOTPExpired, ErrValidation},
		{ErrDuplicateMatchRequest, ErrConflict},
		{ErrMatchNotPending, ErrConflict},
		{ErrNotMatchTeacher, ErrForbidden},
	}

	kinds := []error{ErrNotFound, ErrValidation, ErrUnauthorized, ErrForbidden, ErrConflict, ErrExternal}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.kind)
			assert.ErrorIs(t, wrapped, tt.err)

			var matched int
			for _, k := range kinds {
				if errors.Is(tt.err, k) {
					matched++
				}
			}
			assert.Equal(t, 1, matched)
		})
	}
}

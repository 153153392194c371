package inventory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureClass
	}{
		{name: "access denied", err: AccessDenied(errors.New("no")), want: ClassAccessDenied},
		{name: "not found", err: NotFound(errors.New("gone")), want: ClassNotFound},
		{name: "transient", err: Transient(errors.New("reset")), want: ClassTransient},
		{name: "unwrapped error", err: errors.New("plain"), want: ClassTransient},
		{name: "wrapped collection error", err: fmt.Errorf("scan: %w", AccessDenied(errors.New("no"))), want: ClassAccessDenied},
		{name: "deadline is always transient", err: AccessDenied(context.DeadlineExceeded), want: ClassTransient},
		{name: "cancellation is always transient", err: NotFound(context.Canceled), want: ClassTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassOf(tt.err))
		})
	}
}

func TestCollectionErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Transient(fmt.Errorf("call failed: %w", cause))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "transient")
}

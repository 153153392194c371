package awscloud

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/stretchr/testify/assert"

	"cloudtally/internal/inventory"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want inventory.FailureClass
	}{
		{
			name: "access denied exception",
			err:  awserr.New("AccessDeniedException", "not authorized", nil),
			want: inventory.ClassAccessDenied,
		},
		{
			name: "unauthorized operation",
			err:  awserr.New("UnauthorizedOperation", "not authorized", nil),
			want: inventory.ClassAccessDenied,
		},
		{
			name: "opt-in required region",
			err:  awserr.New("OptInRequired", "region not enabled", nil),
			want: inventory.ClassNotFound,
		},
		{
			name: "service without endpoint",
			err:  awserr.New("InvalidAction", "no such action", nil),
			want: inventory.ClassNotFound,
		},
		{
			name: "throttling is transient",
			err:  awserr.New("Throttling", "rate exceeded", nil),
			want: inventory.ClassTransient,
		},
		{
			name: "plain error is transient",
			err:  errors.New("connection reset"),
			want: inventory.ClassTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inventory.ClassOf(Classify(tt.err)))
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, Classify(nil))
}

package gcpcloud

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cloudtally/internal/inventory"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want inventory.FailureClass
	}{
		{
			name: "grpc permission denied",
			err:  status.Error(codes.PermissionDenied, "caller lacks permission"),
			want: inventory.ClassAccessDenied,
		},
		{
			name: "grpc unauthenticated",
			err:  status.Error(codes.Unauthenticated, "invalid credentials"),
			want: inventory.ClassAccessDenied,
		},
		{
			name: "grpc not found",
			err:  status.Error(codes.NotFound, "no such app"),
			want: inventory.ClassNotFound,
		},
		{
			name: "api not enabled",
			err:  status.Error(codes.Unimplemented, "API not enabled"),
			want: inventory.ClassNotFound,
		},
		{
			name: "grpc unavailable is transient",
			err:  status.Error(codes.Unavailable, "try again"),
			want: inventory.ClassTransient,
		},
		{
			name: "rest 403",
			err:  &googleapi.Error{Code: 403, Message: "forbidden"},
			want: inventory.ClassAccessDenied,
		},
		{
			name: "rest 404",
			err:  &googleapi.Error{Code: 404, Message: "not found"},
			want: inventory.ClassNotFound,
		},
		{
			name: "rest 500 is transient",
			err:  &googleapi.Error{Code: 500, Message: "backend error"},
			want: inventory.ClassTransient,
		},
		{
			name: "plain error is transient",
			err:  errors.New("connection refused"),
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

func TestResourceNameHelpers(t *testing.T) {
	assert.Equal(t, "my-fn", lastPathSegment("projects/p/locations/us-central1/functions/my-fn"))
	assert.Equal(t, "plain", lastPathSegment("plain"))
	assert.Equal(t, "us-central1", functionLocation("projects/p/locations/us-central1/functions/my-fn"))
	assert.Equal(t, "", functionLocation("short/name"))
	assert.Equal(t, "default", instanceService("apps/p/services/default/versions/v1/instances/i-1"))
}

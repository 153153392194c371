package azurecloud

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
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
			name: "forbidden",
			err:  &azcore.ResponseError{StatusCode: 403},
			want: inventory.ClassAccessDenied,
		},
		{
			name: "unauthorized",
			err:  &azcore.ResponseError{StatusCode: 401},
			want: inventory.ClassAccessDenied,
		},
		{
			name: "authorization failed error code",
			err:  &azcore.ResponseError{StatusCode: 409, ErrorCode: "AuthorizationFailed"},
			want: inventory.ClassAccessDenied,
		},
		{
			name: "not found",
			err:  &azcore.ResponseError{StatusCode: 404},
			want: inventory.ClassNotFound,
		},
		{
			name: "throttled is transient",
			err:  &azcore.ResponseError{StatusCode: 429},
			want: inventory.ClassTransient,
		},
		{
			name: "wrapped response error",
			err:  fmt.Errorf("listing vms: %w", &azcore.ResponseError{StatusCode: 403}),
			want: inventory.ClassAccessDenied,
		},
		{
			name: "plain error is transient",
			err:  errors.New("dial tcp: timeout"),
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

func TestResourceGroupFromID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "standard batch account id",
			id:   "/subscriptions/sub-1/resourceGroups/my-rg/providers/Microsoft.Batch/batchAccounts/acct",
			want: "my-rg",
		},
		{
			name: "case-insensitive segment",
			id:   "/subscriptions/sub-1/resourcegroups/other-rg/providers/Microsoft.Batch/batchAccounts/acct",
			want: "other-rg",
		},
		{
			name: "missing resource group",
			id:   "/subscriptions/sub-1",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resourceGroupFromID(tt.id))
		})
	}
}

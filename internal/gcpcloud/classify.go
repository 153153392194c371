package gcpcloud

import (
	"errors"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cloudtally/internal/inventory"
)

// Classify maps a GCP API error onto the inventory failure taxonomy.
// Both gRPC status codes and REST googleapi errors are handled, since the
// cloud.google.com/go clients surface either depending on transport.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return inventory.AccessDenied(err)
		case 404:
			return inventory.NotFound(err)
		}
		return inventory.Transient(err)
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.PermissionDenied, codes.Unauthenticated:
			return inventory.AccessDenied(err)
		case codes.NotFound, codes.Unimplemented:
			// Unimplemented means the service API is not enabled for
			// the project, which counts as the service being absent.
			return inventory.NotFound(err)
		}
	}

	return inventory.Transient(err)
}

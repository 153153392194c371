package awscloud

import (
	"github.com/aws/aws-sdk-go/aws/awserr"

	"cloudtally/internal/inventory"
)

// deniedCodes are the AWS error codes meaning the caller lacks permission
// for a resource kind in a region. These are expected in locked-down
// accounts and are skipped without a failure record.
var deniedCodes = map[string]bool{
	"AccessDenied":          true,
	"AccessDeniedException": true,
	"UnauthorizedOperation": true,
	"AuthFailure":           true,
}

// absentCodes mean the service's API is not usable in this region at all.
var absentCodes = map[string]bool{
	"InvalidAction":           true,
	"OptInRequired":           true,
	"EndpointConnectionError": true,
}

// Classify wraps an AWS API error with its failure class.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if aerr, ok := err.(awserr.Error); ok {
		switch {
		case deniedCodes[aerr.Code()]:
			return inventory.AccessDenied(err)
		case absentCodes[aerr.Code()]:
			return inventory.NotFound(err)
		}
	}
	return inventory.Transient(err)
}

package awscloud

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sts"

	"cloudtally/internal/config"
)

var (
	sessMu   sync.Mutex
	baseSess *session.Session
)

// BaseSession returns the shared base session for the configured profile.
// The session is created once and reused; the SDK chains environment
// variables, shared config and instance roles in the usual order.
func BaseSession() (*session.Session, error) {
	sessMu.Lock()
	defer sessMu.Unlock()

	if baseSess != nil {
		return baseSess, nil
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Profile:           config.Config.AWSProfile,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	baseSess = sess
	return baseSess, nil
}

// SessionInRegion returns a copy of the base session pinned to a region.
func SessionInRegion(region string) (*session.Session, error) {
	sess, err := BaseSession()
	if err != nil {
		return nil, err
	}
	return sess.Copy(aws.NewConfig().WithRegion(region)), nil
}

// Preflight verifies that credentials resolve to a caller identity. A
// failure here short-circuits the whole AWS scan with actionable guidance
// instead of surfacing one opaque API error per scope.
func Preflight(ctx context.Context) error {
	sess, err := SessionInRegion("us-east-1")
	if err != nil {
		return fmt.Errorf("%s\n\n%s", err, CredentialHelp)
	}

	svc := sts.New(sess)
	if _, err := svc.GetCallerIdentityWithContext(ctx, &sts.GetCallerIdentityInput{}); err != nil {
		return fmt.Errorf("unable to verify AWS credentials: %w\n\n%s", err, CredentialHelp)
	}
	return nil
}

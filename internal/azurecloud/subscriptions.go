package azurecloud

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"

	"cloudtally/internal/logging"
)

// Scopes returns the subscription IDs to scan. An explicit override is
// returned verbatim. Otherwise every enabled subscription visible to the
// credential is discovered; with no override there is no meaningful default
// subscription to fall back to, so a discovery failure fails the provider.
func Scopes(ctx context.Context, override []string) ([]string, error) {
	if len(override) > 0 {
		return override, nil
	}

	credential, err := Credential(ctx)
	if err != nil {
		return nil, err
	}

	client, err := armsubscriptions.NewClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	var subscriptions []string
	pager := client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list subscriptions: %w", err)
		}
		for _, sub := range page.Value {
			if sub.SubscriptionID == nil {
				continue
			}
			if sub.State != nil && *sub.State != armsubscriptions.SubscriptionStateEnabled {
				continue
			}
			subscriptions = append(subscriptions, *sub.SubscriptionID)
		}
	}

	if len(subscriptions) == 0 {
		return nil, fmt.Errorf("no enabled subscriptions visible to the current credential")
	}

	logging.Debug("Discovered Azure subscriptions", map[string]interface{}{
		"count": len(subscriptions),
	})
	return subscriptions, nil
}

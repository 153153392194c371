package azurecloud

import (
	"context"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"

	"cloudtally/internal/inventory"
)

// FunctionsCollector counts Function Apps in a subscription. App Service
// sites share one list API, so sites are filtered by their kind string.
type FunctionsCollector struct{}

func init() {
	Registry.Register(&FunctionsCollector{})
}

// Kind implements inventory.Collector
func (c *FunctionsCollector) Kind() inventory.Kind {
	return KindFunctions
}

// Label implements inventory.Collector
func (c *FunctionsCollector) Label() string {
	return "Function Apps"
}

// Collect implements inventory.Collector
func (c *FunctionsCollector) Collect(ctx context.Context, subscriptionID string) (inventory.ResourceCount, error) {
	credential, err := Credential(ctx)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	client, err := armappservice.NewWebAppsClient(subscriptionID, credential, nil)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	functionApps := 0
	var details []inventory.Detail
	pager := client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return inventory.ResourceCount{}, Classify(err)
		}
		for _, site := range page.Value {
			if site.Kind == nil || !strings.Contains(strings.ToLower(*site.Kind), "functionapp") {
				continue
			}
			functionApps++

			detail := inventory.Detail{}
			if site.Name != nil {
				detail["name"] = *site.Name
			}
			if site.Location != nil {
				detail["location"] = *site.Location
			}
			if site.Properties != nil && site.Properties.State != nil {
				detail["state"] = *site.Properties.State
			}
			details = append(details, detail)
		}
	}

	return inventory.ResourceCount{
		Kind:    KindFunctions,
		Scope:   subscriptionID,
		Count:   functionApps,
		Details: details,
	}, nil
}

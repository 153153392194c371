package azurecloud

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerinstance/armcontainerinstance/v2"

	"cloudtally/internal/inventory"
)

// ACICollector counts containers running in Azure Container Instances groups.
// A group with no container definitions still counts as one instance.
type ACICollector struct{}

func init() {
	Registry.Register(&ACICollector{})
}

// Kind implements inventory.Collector
func (c *ACICollector) Kind() inventory.Kind {
	return KindACI
}

// Label implements inventory.Collector
func (c *ACICollector) Label() string {
	return "Container Instances"
}

// Collect implements inventory.Collector
func (c *ACICollector) Collect(ctx context.Context, subscriptionID string) (inventory.ResourceCount, error) {
	credential, err := Credential(ctx)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	client, err := armcontainerinstance.NewContainerGroupsClient(subscriptionID, credential, nil)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	totalContainers := 0
	var details []inventory.Detail
	pager := client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return inventory.ResourceCount{}, Classify(err)
		}
		for _, group := range page.Value {
			containers := 1
			if group.Properties != nil && len(group.Properties.Containers) > 0 {
				containers = len(group.Properties.Containers)
			}
			totalContainers += containers

			detail := inventory.Detail{"containers": containers}
			if group.Name != nil {
				detail["group"] = *group.Name
			}
			if group.Location != nil {
				detail["location"] = *group.Location
			}
			details = append(details, detail)
		}
	}

	return inventory.ResourceCount{
		Kind:    KindACI,
		Scope:   subscriptionID,
		Count:   totalContainers,
		Details: details,
	}, nil
}

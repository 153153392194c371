package azurecloud

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"

	"cloudtally/internal/inventory"
)

// VMSSCollector counts virtual machine scale set instances in a subscription.
// Each scale set contributes its current SKU capacity.
type VMSSCollector struct{}

func init() {
	Registry.Register(&VMSSCollector{})
}

// Kind implements inventory.Collector
func (c *VMSSCollector) Kind() inventory.Kind {
	return KindVMSS
}

// Label implements inventory.Collector
func (c *VMSSCollector) Label() string {
	return "VM Scale Set Instances"
}

// Collect implements inventory.Collector
func (c *VMSSCollector) Collect(ctx context.Context, subscriptionID string) (inventory.ResourceCount, error) {
	credential, err := Credential(ctx)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	client, err := armcompute.NewVirtualMachineScaleSetsClient(subscriptionID, credential, nil)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	totalInstances := 0
	var details []inventory.Detail
	pager := client.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return inventory.ResourceCount{}, Classify(err)
		}
		for _, scaleSet := range page.Value {
			capacity := 0
			if scaleSet.SKU != nil && scaleSet.SKU.Capacity != nil {
				capacity = int(*scaleSet.SKU.Capacity)
			}
			totalInstances += capacity

			detail := inventory.Detail{"instances": capacity}
			if scaleSet.Name != nil {
				detail["name"] = *scaleSet.Name
			}
			if scaleSet.Location != nil {
				detail["location"] = *scaleSet.Location
			}
			details = append(details, detail)
		}
	}

	return inventory.ResourceCount{
		Kind:    KindVMSS,
		Scope:   subscriptionID,
		Count:   totalInstances,
		Details: details,
	}, nil
}

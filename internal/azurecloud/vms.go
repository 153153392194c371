package azurecloud

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"

	"cloudtally/internal/inventory"
)

// VMCollector counts virtual machines in a subscription.
type VMCollector struct{}

func init() {
	Registry.Register(&VMCollector{})
}

// Kind implements inventory.Collector
func (c *VMCollector) Kind() inventory.Kind {
	return KindVMs
}

// Label implements inventory.Collector
func (c *VMCollector) Label() string {
	return "Virtual Machines"
}

// Collect implements inventory.Collector
func (c *VMCollector) Collect(ctx context.Context, subscriptionID string) (inventory.ResourceCount, error) {
	credential, err := Credential(ctx)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	client, err := armcompute.NewVirtualMachinesClient(subscriptionID, credential, nil)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	count := 0
	var details []inventory.Detail
	pager := client.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return inventory.ResourceCount{}, Classify(err)
		}
		for _, vm := range page.Value {
			count++
			detail := inventory.Detail{}
			if vm.Name != nil {
				detail["name"] = *vm.Name
			}
			if vm.Location != nil {
				detail["location"] = *vm.Location
			}
			if vm.Properties != nil && vm.Properties.HardwareProfile != nil && vm.Properties.HardwareProfile.VMSize != nil {
				detail["size"] = string(*vm.Properties.HardwareProfile.VMSize)
			}
			details = append(details, detail)
		}
	}

	return inventory.ResourceCount{
		Kind:    KindVMs,
		Scope:   subscriptionID,
		Count:   count,
		Details: details,
	}, nil
}

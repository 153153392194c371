package azurecloud

import (
	"context"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/batch/armbatch/v2"

	"cloudtally/internal/inventory"
)

// BatchCollector counts Azure Batch compute nodes, summing dedicated and
// low-priority nodes across every pool of every Batch account.
type BatchCollector struct{}

func init() {
	Registry.Register(&BatchCollector{})
}

// Kind implements inventory.Collector
func (c *BatchCollector) Kind() inventory.Kind {
	return KindBatch
}

// Label implements inventory.Collector
func (c *BatchCollector) Label() string {
	return "Batch Nodes"
}

// Collect implements inventory.Collector
func (c *BatchCollector) Collect(ctx context.Context, subscriptionID string) (inventory.ResourceCount, error) {
	credential, err := Credential(ctx)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	accountClient, err := armbatch.NewAccountClient(subscriptionID, credential, nil)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}
	poolClient, err := armbatch.NewPoolClient(subscriptionID, credential, nil)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	totalNodes := 0
	var details []inventory.Detail
	pager := accountClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return inventory.ResourceCount{}, Classify(err)
		}
		for _, account := range page.Value {
			if account.Name == nil || account.ID == nil {
				continue
			}
			resourceGroup := resourceGroupFromID(*account.ID)
			if resourceGroup == "" {
				continue
			}

			poolPager := poolClient.NewListByBatchAccountPager(resourceGroup, *account.Name, nil)
			for poolPager.More() {
				poolPage, err := poolPager.NextPage(ctx)
				if err != nil {
					return inventory.ResourceCount{}, Classify(err)
				}
				for _, pool := range poolPage.Value {
					if pool.Properties == nil {
						continue
					}
					nodes := 0
					if pool.Properties.CurrentDedicatedNodes != nil {
						nodes += int(*pool.Properties.CurrentDedicatedNodes)
					}
					if pool.Properties.CurrentLowPriorityNodes != nil {
						nodes += int(*pool.Properties.CurrentLowPriorityNodes)
					}
					totalNodes += nodes

					detail := inventory.Detail{
						"account": *account.Name,
						"nodes":   nodes,
					}
					if pool.Name != nil {
						detail["pool"] = *pool.Name
					}
					details = append(details, detail)
				}
			}
		}
	}

	return inventory.ResourceCount{
		Kind:    KindBatch,
		Scope:   subscriptionID,
		Count:   totalNodes,
		Details: details,
	}, nil
}

// resourceGroupFromID extracts the resource group segment from an ARM
// resource ID of the form /subscriptions/{sub}/resourceGroups/{rg}/...
func resourceGroupFromID(armID string) string {
	parts := strings.Split(armID, "/")
	for i, part := range parts {
		if strings.EqualFold(part, "resourceGroups") && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

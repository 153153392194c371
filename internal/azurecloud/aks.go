package azurecloud

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v4"

	"cloudtally/internal/inventory"
)

// AKSCollector counts AKS worker nodes in a subscription, summed over every
// managed cluster's agent pools.
type AKSCollector struct{}

func init() {
	Registry.Register(&AKSCollector{})
}

// Kind implements inventory.Collector
func (c *AKSCollector) Kind() inventory.Kind {
	return KindAKS
}

// Label implements inventory.Collector
func (c *AKSCollector) Label() string {
	return "AKS Nodes"
}

// Collect implements inventory.Collector
func (c *AKSCollector) Collect(ctx context.Context, subscriptionID string) (inventory.ResourceCount, error) {
	credential, err := Credential(ctx)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	client, err := armcontainerservice.NewManagedClustersClient(subscriptionID, credential, nil)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	totalNodes := 0
	var details []inventory.Detail
	pager := client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return inventory.ResourceCount{}, Classify(err)
		}
		for _, cluster := range page.Value {
			if cluster.Properties == nil {
				continue
			}
			for _, pool := range cluster.Properties.AgentPoolProfiles {
				if pool == nil {
					continue
				}
				nodeCount := 0
				if pool.Count != nil {
					nodeCount = int(*pool.Count)
				}
				totalNodes += nodeCount

				detail := inventory.Detail{"nodes": nodeCount}
				if cluster.Name != nil {
					detail["cluster"] = *cluster.Name
				}
				if pool.Name != nil {
					detail["pool"] = *pool.Name
				}
				if pool.VMSize != nil {
					detail["vm_size"] = *pool.VMSize
				}
				details = append(details, detail)
			}
		}
	}

	return inventory.ResourceCount{
		Kind:    KindAKS,
		Scope:   subscriptionID,
		Count:   totalNodes,
		Details: details,
	}, nil
}

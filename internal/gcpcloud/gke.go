package gcpcloud

import (
	"context"
	"fmt"

	container "cloud.google.com/go/container/apiv1"
	"cloud.google.com/go/container/apiv1/containerpb"

	"cloudtally/internal/inventory"
)

// GKECollector counts GKE worker nodes in a project, summed across the node
// pools of every cluster in every location.
type GKECollector struct{}

func init() {
	Registry.Register(&GKECollector{})
}

// Kind implements inventory.Collector
func (c *GKECollector) Kind() inventory.Kind {
	return KindGKE
}

// Label implements inventory.Collector
func (c *GKECollector) Label() string {
	return "GKE Nodes"
}

// Collect implements inventory.Collector
func (c *GKECollector) Collect(ctx context.Context, projectID string) (inventory.ResourceCount, error) {
	client, err := container.NewClusterManagerClient(ctx)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}
	defer client.Close()

	resp, err := client.ListClusters(ctx, &containerpb.ListClustersRequest{
		Parent: fmt.Sprintf("projects/%s/locations/-", projectID),
	})
	if err != nil {
		return inventory.ResourceCount{}, Classify(err)
	}

	totalNodes := 0
	var details []inventory.Detail
	for _, cluster := range resp.GetClusters() {
		for _, pool := range cluster.GetNodePools() {
			nodes := int(pool.GetInitialNodeCount())
			// Prefer the live size when the cluster reports one.
			if cluster.GetCurrentNodeCount() > 0 && len(cluster.GetNodePools()) == 1 {
				nodes = int(cluster.GetCurrentNodeCount())
			}
			totalNodes += nodes

			details = append(details, inventory.Detail{
				"cluster":  cluster.GetName(),
				"location": cluster.GetLocation(),
				"pool":     pool.GetName(),
				"nodes":    nodes,
			})
		}
	}

	return inventory.ResourceCount{
		Kind:    KindGKE,
		Scope:   projectID,
		Count:   totalNodes,
		Details: details,
	}, nil
}

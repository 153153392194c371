package gcpcloud

import (
	"context"
	"strings"

	compute "cloud.google.com/go/compute/apiv1"
	"cloud.google.com/go/compute/apiv1/computepb"
	"google.golang.org/api/iterator"

	"cloudtally/internal/inventory"
)

// GCECollector counts Compute Engine instances in a project. The aggregated
// list covers every zone in a single call.
type GCECollector struct{}

func init() {
	Registry.Register(&GCECollector{})
}

// Kind implements inventory.Collector
func (c *GCECollector) Kind() inventory.Kind {
	return KindGCE
}

// Label implements inventory.Collector
func (c *GCECollector) Label() string {
	return "Compute Engine Instances"
}

// Collect implements inventory.Collector
func (c *GCECollector) Collect(ctx context.Context, projectID string) (inventory.ResourceCount, error) {
	client, err := compute.NewInstancesRESTClient(ctx)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}
	defer client.Close()

	count := 0
	var details []inventory.Detail
	it := client.AggregatedList(ctx, &computepb.AggregatedListInstancesRequest{
		Project: projectID,
	})
	for {
		pair, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return inventory.ResourceCount{}, Classify(err)
		}
		for _, instance := range pair.Value.GetInstances() {
			count++
			details = append(details, inventory.Detail{
				"name":         instance.GetName(),
				"zone":         lastPathSegment(pair.Key),
				"machine_type": lastPathSegment(instance.GetMachineType()),
				"status":       instance.GetStatus(),
			})
		}
	}

	return inventory.ResourceCount{
		Kind:    KindGCE,
		Scope:   projectID,
		Count:   count,
		Details: details,
	}, nil
}

func lastPathSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

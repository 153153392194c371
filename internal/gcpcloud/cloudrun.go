package gcpcloud

import (
	"context"
	"fmt"

	run "cloud.google.com/go/run/apiv2"
	"cloud.google.com/go/run/apiv2/runpb"
	"google.golang.org/api/iterator"

	"cloudtally/internal/inventory"
)

// CloudRunCollector counts Cloud Run services in a project across all
// locations.
type CloudRunCollector struct{}

func init() {
	Registry.Register(&CloudRunCollector{})
}

// Kind implements inventory.Collector
func (c *CloudRunCollector) Kind() inventory.Kind {
	return KindCloudRun
}

// Label implements inventory.Collector
func (c *CloudRunCollector) Label() string {
	return "Cloud Run Services"
}

// Collect implements inventory.Collector
func (c *CloudRunCollector) Collect(ctx context.Context, projectID string) (inventory.ResourceCount, error) {
	client, err := run.NewServicesClient(ctx)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}
	defer client.Close()

	count := 0
	var details []inventory.Detail
	it := client.ListServices(ctx, &runpb.ListServicesRequest{
		Parent: fmt.Sprintf("projects/%s/locations/-", projectID),
	})
	for {
		service, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return inventory.ResourceCount{}, Classify(err)
		}
		count++

		detail := inventory.Detail{
			"name": lastPathSegment(service.GetName()),
		}
		if scaling := service.GetTemplate().GetScaling(); scaling != nil {
			detail["max_instances"] = int(scaling.GetMaxInstanceCount())
		}
		details = append(details, detail)
	}

	return inventory.ResourceCount{
		Kind:    KindCloudRun,
		Scope:   projectID,
		Count:   count,
		Details: details,
	}, nil
}

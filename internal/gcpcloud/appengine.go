package gcpcloud

import (
	"context"
	"fmt"
	"strings"

	appengine "cloud.google.com/go/appengine/apiv1"
	"cloud.google.com/go/appengine/apiv1/appenginepb"
	"google.golang.org/api/iterator"

	"cloudtally/internal/inventory"
)

// AppEngineCollector counts running App Engine instances in a project. The
// wildcard parent covers every service and version of the app.
type AppEngineCollector struct{}

func init() {
	Registry.Register(&AppEngineCollector{})
}

// Kind implements inventory.Collector
func (c *AppEngineCollector) Kind() inventory.Kind {
	return KindAppEngine
}

// Label implements inventory.Collector
func (c *AppEngineCollector) Label() string {
	return "App Engine Instances"
}

// Collect implements inventory.Collector
func (c *AppEngineCollector) Collect(ctx context.Context, projectID string) (inventory.ResourceCount, error) {
	client, err := appengine.NewInstancesClient(ctx)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}
	defer client.Close()

	count := 0
	var details []inventory.Detail
	it := client.ListInstances(ctx, &appenginepb.ListInstancesRequest{
		Parent: fmt.Sprintf("apps/%s/services/-/versions/-", projectID),
	})
	for {
		instance, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return inventory.ResourceCount{}, Classify(err)
		}
		count++

		details = append(details, inventory.Detail{
			"id":      lastPathSegment(instance.GetName()),
			"service": instanceService(instance.GetName()),
		})
	}

	return inventory.ResourceCount{
		Kind:    KindAppEngine,
		Scope:   projectID,
		Count:   count,
		Details: details,
	}, nil
}

// instanceService extracts the service from an instance name of the form
// apps/{app}/services/{service}/versions/{version}/instances/{id}.
func instanceService(name string) string {
	parts := strings.Split(name, "/")
	if len(parts) > 3 {
		return parts[3]
	}
	return ""
}

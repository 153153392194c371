package gcpcloud

import (
	"context"
	"fmt"
	"strings"

	functions "cloud.google.com/go/functions/apiv1"
	"cloud.google.com/go/functions/apiv1/functionspb"
	"google.golang.org/api/iterator"

	"cloudtally/internal/inventory"
)

// FunctionsCollector counts Cloud Functions in a project across all
// locations.
type FunctionsCollector struct{}

func init() {
	Registry.Register(&FunctionsCollector{})
}

// Kind implements inventory.Collector
func (c *FunctionsCollector) Kind() inventory.Kind {
	return KindCloudFunctions
}

// Label implements inventory.Collector
func (c *FunctionsCollector) Label() string {
	return "Cloud Functions"
}

// Collect implements inventory.Collector
func (c *FunctionsCollector) Collect(ctx context.Context, projectID string) (inventory.ResourceCount, error) {
	client, err := functions.NewCloudFunctionsClient(ctx)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}
	defer client.Close()

	count := 0
	var details []inventory.Detail
	it := client.ListFunctions(ctx, &functionspb.ListFunctionsRequest{
		Parent: fmt.Sprintf("projects/%s/locations/-", projectID),
	})
	for {
		fn, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return inventory.ResourceCount{}, Classify(err)
		}
		count++

		details = append(details, inventory.Detail{
			"name":     lastPathSegment(fn.GetName()),
			"location": functionLocation(fn.GetName()),
			"runtime":  fn.GetRuntime(),
		})
	}

	return inventory.ResourceCount{
		Kind:    KindCloudFunctions,
		Scope:   projectID,
		Count:   count,
		Details: details,
	}, nil
}

// functionLocation extracts the location from a resource name of the form
// projects/{project}/locations/{location}/functions/{name}.
func functionLocation(name string) string {
	parts := strings.Split(name, "/")
	if len(parts) > 3 {
		return parts[3]
	}
	return ""
}

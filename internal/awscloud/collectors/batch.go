package collectors

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/batch"

	"cloudtally/internal/awscloud"
	"cloudtally/internal/inventory"
)

// BatchCollector estimates Batch compute nodes in a region from the desired
// vCPUs of enabled compute environments.
type BatchCollector struct{}

func init() {
	awscloud.Registry.Register(&BatchCollector{})
}

// Kind implements inventory.Collector
func (c *BatchCollector) Kind() inventory.Kind {
	return awscloud.KindBatch
}

// Label implements inventory.Collector
func (c *BatchCollector) Label() string {
	return "Batch Nodes"
}

// Collect implements inventory.Collector
func (c *BatchCollector) Collect(ctx context.Context, region string) (inventory.ResourceCount, error) {
	sess, err := awscloud.SessionInRegion(region)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	svc := batch.New(sess)

	totalNodes := 0
	var details []inventory.Detail
	err = svc.DescribeComputeEnvironmentsPagesWithContext(ctx, &batch.DescribeComputeEnvironmentsInput{},
		func(page *batch.DescribeComputeEnvironmentsOutput, lastPage bool) bool {
			for _, env := range page.ComputeEnvironments {
				if aws.StringValue(env.State) != batch.CEStateEnabled || env.ComputeResources == nil {
					continue
				}

				desired := int(aws.Int64Value(env.ComputeResources.DesiredvCpus))
				if desired <= 0 {
					continue
				}

				// Rough estimate: two vCPUs per node, at least one node.
				nodes := desired / 2
				if nodes < 1 {
					nodes = 1
				}
				totalNodes += nodes

				details = append(details, inventory.Detail{
					"name":            aws.StringValue(env.ComputeEnvironmentName),
					"vcpus":           desired,
					"estimated_nodes": nodes,
				})
			}
			return true
		})
	if err != nil {
		return inventory.ResourceCount{}, awscloud.Classify(err)
	}

	return inventory.ResourceCount{
		Kind:    awscloud.KindBatch,
		Scope:   region,
		Count:   totalNodes,
		Details: details,
	}, nil
}

package collectors

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ecs"

	"cloudtally/internal/awscloud"
	"cloudtally/internal/inventory"
	"cloudtally/internal/logging"
)

// ECSCollector counts running ECS tasks in a region across all clusters.
type ECSCollector struct{}

func init() {
	awscloud.Registry.Register(&ECSCollector{})
}

// Kind implements inventory.Collector
func (c *ECSCollector) Kind() inventory.Kind {
	return awscloud.KindECS
}

// Label implements inventory.Collector
func (c *ECSCollector) Label() string {
	return "ECS Tasks"
}

// Collect implements inventory.Collector
func (c *ECSCollector) Collect(ctx context.Context, region string) (inventory.ResourceCount, error) {
	sess, err := awscloud.SessionInRegion(region)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	svc := ecs.New(sess)

	var clusterARNs []string
	err = svc.ListClustersPagesWithContext(ctx, &ecs.ListClustersInput{},
		func(page *ecs.ListClustersOutput, lastPage bool) bool {
			clusterARNs = append(clusterARNs, aws.StringValueSlice(page.ClusterArns)...)
			return true
		})
	if err != nil {
		return inventory.ResourceCount{}, awscloud.Classify(err)
	}

	totalTasks := 0
	var details []inventory.Detail
	for _, clusterARN := range clusterARNs {
		taskCount := 0
		err := svc.ListTasksPagesWithContext(ctx, &ecs.ListTasksInput{
			Cluster:       aws.String(clusterARN),
			DesiredStatus: aws.String(ecs.DesiredStatusRunning),
		}, func(page *ecs.ListTasksOutput, lastPage bool) bool {
			taskCount += len(page.TaskArns)
			return true
		})
		if err != nil {
			logging.Debug("Skipping ECS cluster", map[string]interface{}{
				"cluster": clusterARN,
				"region":  region,
				"error":   err.Error(),
			})
			continue
		}

		totalTasks += taskCount
		if taskCount > 0 {
			parts := strings.Split(clusterARN, "/")
			details = append(details, inventory.Detail{
				"cluster":       parts[len(parts)-1],
				"running_tasks": taskCount,
			})
		}
	}

	return inventory.ResourceCount{
		Kind:    awscloud.KindECS,
		Scope:   region,
		Count:   totalTasks,
		Details: details,
	}, nil
}

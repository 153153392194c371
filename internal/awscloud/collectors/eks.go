package collectors

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/eks"

	"cloudtally/internal/awscloud"
	"cloudtally/internal/inventory"
	"cloudtally/internal/logging"
)

// EKSCollector counts EKS worker nodes in a region, summed over every
// cluster's node groups.
type EKSCollector struct{}

func init() {
	awscloud.Registry.Register(&EKSCollector{})
}

// Kind implements inventory.Collector
func (c *EKSCollector) Kind() inventory.Kind {
	return awscloud.KindEKS
}

// Label implements inventory.Collector
func (c *EKSCollector) Label() string {
	return "EKS Nodes"
}

// Collect implements inventory.Collector
func (c *EKSCollector) Collect(ctx context.Context, region string) (inventory.ResourceCount, error) {
	sess, err := awscloud.SessionInRegion(region)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	svc := eks.New(sess)

	var clusters []string
	err = svc.ListClustersPagesWithContext(ctx, &eks.ListClustersInput{},
		func(page *eks.ListClustersOutput, lastPage bool) bool {
			clusters = append(clusters, aws.StringValueSlice(page.Clusters)...)
			return true
		})
	if err != nil {
		return inventory.ResourceCount{}, awscloud.Classify(err)
	}

	totalNodes := 0
	var details []inventory.Detail
	for _, cluster := range clusters {
		nodes, clusterDetails, err := c.countClusterNodes(ctx, svc, cluster)
		if err != nil {
			// One broken cluster should not hide the others.
			logging.Debug("Skipping EKS cluster", map[string]interface{}{
				"cluster": cluster,
				"region":  region,
				"error":   err.Error(),
			})
			continue
		}
		totalNodes += nodes
		details = append(details, clusterDetails...)
	}

	return inventory.ResourceCount{
		Kind:    awscloud.KindEKS,
		Scope:   region,
		Count:   totalNodes,
		Details: details,
	}, nil
}

func (c *EKSCollector) countClusterNodes(ctx context.Context, svc *eks.EKS, cluster string) (int, []inventory.Detail, error) {
	var nodegroups []string
	err := svc.ListNodegroupsPagesWithContext(ctx, &eks.ListNodegroupsInput{ClusterName: aws.String(cluster)},
		func(page *eks.ListNodegroupsOutput, lastPage bool) bool {
			nodegroups = append(nodegroups, aws.StringValueSlice(page.Nodegroups)...)
			return true
		})
	if err != nil {
		return 0, nil, err
	}

	total := 0
	var details []inventory.Detail
	for _, name := range nodegroups {
		out, err := svc.DescribeNodegroupWithContext(ctx, &eks.DescribeNodegroupInput{
			ClusterName:   aws.String(cluster),
			NodegroupName: aws.String(name),
		})
		if err != nil {
			return 0, nil, err
		}

		desired := 0
		if out.Nodegroup != nil && out.Nodegroup.ScalingConfig != nil {
			desired = int(aws.Int64Value(out.Nodegroup.ScalingConfig.DesiredSize))
		}
		total += desired

		details = append(details, inventory.Detail{
			"cluster":   cluster,
			"nodegroup": name,
			"nodes":     desired,
		})
	}

	return total, details, nil
}

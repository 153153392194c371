package collectors

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"

	"cloudtally/internal/awscloud"
	"cloudtally/internal/inventory"
)

// EC2Collector counts EC2 instances in a region.
type EC2Collector struct{}

func init() {
	awscloud.Registry.Register(&EC2Collector{})
}

// Kind implements inventory.Collector
func (c *EC2Collector) Kind() inventory.Kind {
	return awscloud.KindEC2
}

// Label implements inventory.Collector
func (c *EC2Collector) Label() string {
	return "EC2 Instances"
}

// Collect implements inventory.Collector
func (c *EC2Collector) Collect(ctx context.Context, region string) (inventory.ResourceCount, error) {
	sess, err := awscloud.SessionInRegion(region)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	svc := ec2.New(sess)

	count := 0
	var details []inventory.Detail
	err = svc.DescribeInstancesPagesWithContext(ctx, &ec2.DescribeInstancesInput{},
		func(page *ec2.DescribeInstancesOutput, lastPage bool) bool {
			for _, reservation := range page.Reservations {
				for _, instance := range reservation.Instances {
					count++
					details = append(details, inventory.Detail{
						"id":    aws.StringValue(instance.InstanceId),
						"type":  aws.StringValue(instance.InstanceType),
						"state": aws.StringValue(instance.State.Name),
					})
				}
			}
			return true
		})
	if err != nil {
		return inventory.ResourceCount{}, awscloud.Classify(err)
	}

	return inventory.ResourceCount{
		Kind:    awscloud.KindEC2,
		Scope:   region,
		Count:   count,
		Details: details,
	}, nil
}

package collectors

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/lightsail"

	"cloudtally/internal/awscloud"
	"cloudtally/internal/inventory"
)

// LightsailCollector counts Lightsail instances in a region.
type LightsailCollector struct{}

func init() {
	awscloud.Registry.Register(&LightsailCollector{})
}

// Kind implements inventory.Collector
func (c *LightsailCollector) Kind() inventory.Kind {
	return awscloud.KindLightsail
}

// Label implements inventory.Collector
func (c *LightsailCollector) Label() string {
	return "Lightsail Instances"
}

// Collect implements inventory.Collector
func (c *LightsailCollector) Collect(ctx context.Context, region string) (inventory.ResourceCount, error) {
	sess, err := awscloud.SessionInRegion(region)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	svc := lightsail.New(sess)

	count := 0
	var details []inventory.Detail
	input := &lightsail.GetInstancesInput{}
	for {
		out, err := svc.GetInstancesWithContext(ctx, input)
		if err != nil {
			// Lightsail rejects requests outright in regions where it is
			// not offered, which is an absence, not a failure.
			if aerr, ok := err.(awserr.Error); ok && aerr.Code() == "InvalidInputException" {
				return inventory.ResourceCount{}, inventory.NotFound(err)
			}
			return inventory.ResourceCount{}, awscloud.Classify(err)
		}

		count += len(out.Instances)
		for _, instance := range out.Instances {
			detail := inventory.Detail{
				"name":      aws.StringValue(instance.Name),
				"blueprint": aws.StringValue(instance.BlueprintName),
			}
			if instance.State != nil {
				detail["state"] = aws.StringValue(instance.State.Name)
			}
			details = append(details, detail)
		}

		if aws.StringValue(out.NextPageToken) == "" {
			break
		}
		input.PageToken = out.NextPageToken
	}

	return inventory.ResourceCount{
		Kind:    awscloud.KindLightsail,
		Scope:   region,
		Count:   count,
		Details: details,
	}, nil
}

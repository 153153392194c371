package collectors

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/lambda"

	"cloudtally/internal/awscloud"
	"cloudtally/internal/inventory"
)

// LambdaCollector counts Lambda functions in a region.
type LambdaCollector struct{}

func init() {
	awscloud.Registry.Register(&LambdaCollector{})
}

// Kind implements inventory.Collector
func (c *LambdaCollector) Kind() inventory.Kind {
	return awscloud.KindLambda
}

// Label implements inventory.Collector
func (c *LambdaCollector) Label() string {
	return "Lambda Functions"
}

// Collect implements inventory.Collector
func (c *LambdaCollector) Collect(ctx context.Context, region string) (inventory.ResourceCount, error) {
	sess, err := awscloud.SessionInRegion(region)
	if err != nil {
		return inventory.ResourceCount{}, inventory.Transient(err)
	}

	svc := lambda.New(sess)

	count := 0
	var details []inventory.Detail
	err = svc.ListFunctionsPagesWithContext(ctx, &lambda.ListFunctionsInput{},
		func(page *lambda.ListFunctionsOutput, lastPage bool) bool {
			count += len(page.Functions)
			for _, fn := range page.Functions {
				details = append(details, inventory.Detail{
					"name":    aws.StringValue(fn.FunctionName),
					"runtime": aws.StringValue(fn.Runtime),
					"memory":  aws.Int64Value(fn.MemorySize),
				})
			}
			return true
		})
	if err != nil {
		return inventory.ResourceCount{}, awscloud.Classify(err)
	}

	return inventory.ResourceCount{
		Kind:    awscloud.KindLambda,
		Scope:   region,
		Count:   count,
		Details: details,
	}, nil
}

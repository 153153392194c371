package awscloud

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"

	"cloudtally/internal/logging"
)

// defaultRegion is the fallback scope when region discovery fails.
const defaultRegion = "us-east-1"

// Scopes returns the regions to scan. An explicit override is returned
// verbatim without validation. Otherwise the enabled regions are discovered
// through EC2; on discovery failure the scan falls back to the default
// region rather than aborting, so the error is always nil.
func Scopes(ctx context.Context, override []string) ([]string, error) {
	if len(override) > 0 {
		return override, nil
	}

	sess, err := SessionInRegion(defaultRegion)
	if err != nil {
		logging.ScopeFallback(Name, defaultRegion, err)
		return []string{defaultRegion}, nil
	}

	svc := ec2.New(sess)
	result, err := svc.DescribeRegionsWithContext(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(false), // Only regions enabled for the account
	})
	if err != nil {
		logging.ScopeFallback(Name, defaultRegion, err)
		return []string{defaultRegion}, nil
	}

	var regions []string
	for _, region := range result.Regions {
		regions = append(regions, aws.StringValue(region.RegionName))
	}
	if len(regions) == 0 {
		return []string{defaultRegion}, nil
	}

	logging.Debug("Discovered AWS regions", map[string]interface{}{
		"count": len(regions),
	})
	return regions, nil
}

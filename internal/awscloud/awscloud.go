// Package awscloud enumerates AWS regions and counts compute resources in
// them: EC2 instances, EKS nodes, ECS tasks, Lambda functions, Lightsail
// instances and Batch compute nodes.
package awscloud

import "cloudtally/internal/inventory"

// Name is the provider identifier used in reports and CLI flags.
const Name = "aws"

// Resource kinds counted for AWS. This is the provider's closed vocabulary;
// the display names live in the inventory aggregation table.
const (
	KindEC2       inventory.Kind = "ec2"
	KindEKS       inventory.Kind = "eks"
	KindECS       inventory.Kind = "ecs"
	KindLambda    inventory.Kind = "lambda"
	KindLightsail inventory.Kind = "lightsail"
	KindBatch     inventory.Kind = "batch"
)

// Registry holds the AWS collectors. Collector files register themselves
// in their init functions.
var Registry = inventory.NewRegistry(Name)

// CredentialHelp is printed when AWS credentials cannot be resolved.
const CredentialHelp = `AWS credentials not found. Configure credentials using one of these methods:
  1. Run 'aws configure' to set up AWS CLI credentials
  2. Set environment variables: AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
  3. Use an IAM role (if running on EC2/ECS/Lambda)`

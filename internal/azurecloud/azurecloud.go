// Package azurecloud enumerates Azure subscriptions and counts compute
// resources in them: virtual machines, AKS nodes, container instances,
// function apps, VM scale set instances and Batch pool nodes.
package azurecloud

import "cloudtally/internal/inventory"

// Name is the provider identifier used in reports and CLI flags.
const Name = "azure"

// Resource kinds counted for Azure.
const (
	KindVMs       inventory.Kind = "vms"
	KindAKS       inventory.Kind = "aks"
	KindACI       inventory.Kind = "aci"
	KindFunctions inventory.Kind = "functions"
	KindVMSS      inventory.Kind = "vmss"
	KindBatch     inventory.Kind = "batch"
)

// Registry holds the Azure collectors.
var Registry = inventory.NewRegistry(Name)

// CredentialHelp is printed when Azure authentication fails.
const CredentialHelp = `Azure authentication failed. Authenticate using one of these methods:
  1. Run 'az login' to authenticate with the Azure CLI
  2. Set service principal environment variables:
     AZURE_CLIENT_ID, AZURE_CLIENT_SECRET, AZURE_TENANT_ID
  3. Use managed identity (if running on an Azure VM or container)`

// Package gcpcloud counts compute resources across GCP projects.
//
// Collectors register themselves with the package Registry at init time.
// Each collector counts one resource kind inside a single project, and the
// scan engine fans the registered collectors out across every discovered
// project.
package gcpcloud

import "cloudtally/internal/inventory"

// Name is the provider identifier used in reports and CLI flags.
const Name = "gcp"

// Resource kinds counted for GCP.
const (
	KindGCE            inventory.Kind = "gce"
	KindGKE            inventory.Kind = "gke"
	KindCloudRun       inventory.Kind = "cloud_run"
	KindCloudFunctions inventory.Kind = "cloud_functions"
	KindAppEngine      inventory.Kind = "app_engine"
)

// Registry holds every registered GCP collector.
var Registry = inventory.NewRegistry(Name)

// CredentialHelp is appended to credential failures so the operator knows
// how to authenticate.
const CredentialHelp = `GCP credentials not found. Configure credentials using one of:
  1. gcloud auth application-default login
  2. GOOGLE_APPLICATION_CREDENTIALS environment variable pointing at a service account key
  3. Attached service account (GCE, GKE, Cloud Run)`

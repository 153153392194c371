package gcpcloud

import (
	"context"
	"fmt"

	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iterator"

	"cloudtally/internal/logging"
)

// Scopes returns the project IDs to scan. An explicit override is returned
// verbatim. Otherwise every ACTIVE project visible to the caller is
// discovered through Cloud Resource Manager; if discovery fails or finds
// nothing, the application default credentials' project is used instead.
func Scopes(ctx context.Context, override []string) ([]string, error) {
	if len(override) > 0 {
		return override, nil
	}

	projects, err := searchProjects(ctx)
	if err == nil && len(projects) > 0 {
		return projects, nil
	}

	fallback, fbErr := defaultProject(ctx)
	if fbErr != nil || fallback == "" {
		if err != nil {
			return nil, fmt.Errorf("failed to discover GCP projects: %w", err)
		}
		return nil, fmt.Errorf("no accessible GCP projects found")
	}

	logging.ScopeFallback(Name, fallback, err)
	return []string{fallback}, nil
}

func searchProjects(ctx context.Context) ([]string, error) {
	client, err := resourcemanager.NewProjectsClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	var projects []string
	it := client.SearchProjects(ctx, &resourcemanagerpb.SearchProjectsRequest{
		Query: "state:ACTIVE",
	})
	for {
		project, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		projects = append(projects, project.ProjectId)
	}
	return projects, nil
}

// defaultProject resolves the project bound to the application default
// credentials.
func defaultProject(ctx context.Context) (string, error) {
	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return "", err
	}
	return creds.ProjectID, nil
}

// Preflight verifies that usable credentials exist before a scan starts.
func Preflight(ctx context.Context) error {
	if _, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform"); err != nil {
		return fmt.Errorf("%s\n%s", err, CredentialHelp)
	}
	return nil
}

package azurecloud

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"

	"cloudtally/internal/inventory"
	"cloudtally/internal/logging"
)

var (
	credMu sync.Mutex
	cred   azcore.TokenCredential
)

// Credential returns the token credential for all Azure clients. The default
// credential chain is tried first and probed with a subscription listing; if
// it cannot produce a token the Azure CLI credential is used instead.
func Credential(ctx context.Context) (azcore.TokenCredential, error) {
	credMu.Lock()
	defer credMu.Unlock()

	if cred != nil {
		return cred, nil
	}

	defaultCred, err := azidentity.NewDefaultAzureCredential(nil)
	if err == nil && probe(ctx, defaultCred) == nil {
		cred = defaultCred
		return cred, nil
	}

	logging.Warn("Falling back to Azure CLI credentials", nil)
	cliCred, err := azidentity.NewAzureCLICredential(nil)
	if err != nil {
		return nil, fmt.Errorf("no usable Azure credential: %w\n\n%s", err, CredentialHelp)
	}

	cred = cliCred
	return cred, nil
}

// probe verifies a credential can actually authenticate.
func probe(ctx context.Context, c azcore.TokenCredential) error {
	client, err := armsubscriptions.NewClient(c, nil)
	if err != nil {
		return err
	}
	pager := client.NewListPager(nil)
	if pager.More() {
		if _, err := pager.NextPage(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Preflight verifies Azure authentication before a scan starts.
func Preflight(ctx context.Context) error {
	if _, err := Credential(ctx); err != nil {
		return err
	}
	return nil
}

// Classify wraps an Azure API error with its failure class.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.StatusCode {
		case http.StatusForbidden, http.StatusUnauthorized:
			return inventory.AccessDenied(err)
		case http.StatusNotFound:
			return inventory.NotFound(err)
		}
		if respErr.ErrorCode == "AuthorizationFailed" {
			return inventory.AccessDenied(err)
		}
	}
	return inventory.Transient(err)
}

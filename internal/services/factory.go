package services

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/segmentio/encoding/json"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/evert/color-hints-mcp-go/internal/middleware"
)

// Scopes requested for every Google API client. The server only reads files.
var Scopes = []string{drive.DriveReadonlyScope}

// Factory builds Google API service clients from a single set of server
// credentials: a service account key file, or application default
// credentials when no file is configured. The HTTP client is created on first
// use and cached.
type Factory struct {
	credentialsFile string
	endpoint        string

	mu     sync.RWMutex
	client *http.Client
}

// NewFactory creates a service factory. An empty credentialsFile falls back
// to application default credentials.
func NewFactory(credentialsFile string) *Factory {
	return &Factory{credentialsFile: credentialsFile}
}

// NewFactoryWithClient creates a factory that uses client as-is and, when
// endpoint is not empty, sends API calls there instead of Google.
func NewFactoryWithClient(client *http.Client, endpoint string) *Factory {
	return &Factory{client: client, endpoint: endpoint}
}

// clientFor returns the cached, auto-refreshing HTTP client.
// IMPORTANT: Uses context.Background() for the cached HTTP client/token source
// so they outlive any single request context. Individual API calls pass their
// own request context via .Context(ctx) on each Google API call.
func (f *Factory) clientFor(ctx context.Context) (*http.Client, error) {
	// Fast path: check cache
	f.mu.RLock()
	client := f.client
	f.mu.RUnlock()
	if client != nil {
		return client, nil
	}

	// Slow path: create new client
	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring write lock
	if f.client != nil {
		return f.client, nil
	}

	creds, err := f.credentials(ctx)
	if err != nil {
		return nil, err
	}

	f.client = oauth2.NewClient(context.Background(), creds.TokenSource)
	return f.client, nil
}

func (f *Factory) credentials(ctx context.Context) (*google.Credentials, error) {
	if f.credentialsFile == "" {
		creds, err := google.FindDefaultCredentials(ctx, Scopes...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", middleware.ErrNoCredentials, err)
		}
		return creds, nil
	}

	data, err := os.ReadFile(f.credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", middleware.ErrNoCredentials, f.credentialsFile, err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", middleware.ErrNoCredentials, f.credentialsFile, err)
	}
	return creds, nil
}

// Drive returns a Drive service client.
func (f *Factory) Drive(ctx context.Context) (*drive.Service, error) {
	client, err := f.clientFor(ctx)
	if err != nil {
		return nil, fmt.Errorf("drive client: %w", err)
	}
	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if f.endpoint != "" {
		opts = append(opts, option.WithEndpoint(f.endpoint))
	}
	return drive.NewService(ctx, opts...)
}

// ServiceAccountEmail returns the client_email of a service account key file,
// or "" when the file is missing or is not a service account key.
func ServiceAccountEmail(credentialsFile string) string {
	if credentialsFile == "" {
		return ""
	}
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return ""
	}
	var key struct {
		Type        string `json:"type"`
		ClientEmail string `json:"client_email"`
	}
	if err := json.Unmarshal(data, &key); err != nil || key.Type != "service_account" {
		return ""
	}
	return key.ClientEmail
}

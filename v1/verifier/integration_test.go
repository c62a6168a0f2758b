package verifier

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Aleph-Alpha/weaviate-verify/v1/identity"
	"github.com/Aleph-Alpha/weaviate-verify/v1/logger"
	"github.com/Aleph-Alpha/weaviate-verify/v1/weaviate"
)

const (
	integrationAdminKey  = "integration-admin-key"
	integrationViewerKey = "integration-viewer-key"
)

// WeaviateContainer represents a Weaviate container for testing
type WeaviateContainer struct {
	testcontainers.Container
	Host string
	Port int
}

// setupWeaviateContainer starts Weaviate with API-key auth and an admin list
// that marks the viewer user read-only.
func setupWeaviateContainer(ctx context.Context) (*WeaviateContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"8080/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "semitechnologies/weaviate:1.25.6",
		Env: map[string]string{
			"AUTHENTICATION_ANONYMOUS_ACCESS_ENABLED": "false",
			"AUTHENTICATION_APIKEY_ENABLED":           "true",
			"AUTHENTICATION_APIKEY_ALLOWED_KEYS":      integrationAdminKey + "," + integrationViewerKey,
			"AUTHENTICATION_APIKEY_USERS":             "admin@example.com,viewer@example.com",
			"AUTHORIZATION_ADMINLIST_ENABLED":         "true",
			"AUTHORIZATION_ADMINLIST_USERS":           "admin@example.com",
			"AUTHORIZATION_ADMINLIST_READONLY_USERS":  "viewer@example.com",
			"PERSISTENCE_DATA_PATH":                   "/var/lib/weaviate",
			"DEFAULT_VECTORIZER_MODULE":               "none",
		},
		ExposedPorts: []string{"8080/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForListeningPort("8080/tcp").WithStartupTimeout(120 * time.Second),
	}

	weaviateContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start weaviate container: %w", err)
	}

	host, err := weaviateContainer.Host(ctx)
	if err != nil {
		_ = weaviateContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := weaviateContainer.MappedPort(ctx, "8080")
	if err != nil {
		_ = weaviateContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	return &WeaviateContainer{
		Container: weaviateContainer,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

// getFreePort gets a free port from the OS
func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = addr.Close()
	}()

	return addr.Addr().(*net.TCPAddr).Port, nil
}

func TestVerificationAgainstRealWeaviate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupWeaviateContainer(ctx)
	require.NoError(t, err)
	defer func() {
		_ = containerInstance.Terminate(ctx)
	}()

	log := logger.NewLoggerClient(logger.Config{Level: "debug", ServiceName: "integration-test"})

	client, err := weaviate.NewClient(&weaviate.Config{
		Scheme:       "http",
		Host:         containerInstance.Host,
		Port:         containerInstance.Port,
		HTTPTimeoutS: 30,
	}, log)
	require.NoError(t, err)
	defer func() {
		_ = client.Close()
	}()

	creds := &identity.Credentials{
		Admin:  identity.Identity{Name: "admin", Token: integrationAdminKey, Role: identity.RoleAdmin},
		Viewer: identity.Identity{Name: "viewer", Token: integrationViewerKey, Role: identity.RoleViewer},
	}

	runner, err := NewRunner(client, creds, Config{ClassName: "IntegrationNote", ReadLimit: 25}, log)
	require.NoError(t, err)

	report, err := runner.Run(ctx)
	require.NoError(t, err)
	require.NotNil(t, report)

	for _, outcome := range report.Outcomes {
		assert.True(t, outcome.Passed, "check %s/%s observed %s", outcome.Operation, outcome.Identity, outcome.Observed)
	}
	assert.True(t, report.Passed())
	assert.NotEmpty(t, report.ServerVersion)

	// A second run must pass as well: schema setup is delete-then-create.
	second, err := runner.Run(ctx)
	require.NoError(t, err)
	assert.True(t, second.Passed())
}

func TestVerificationRejectsUnknownKey(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupWeaviateContainer(ctx)
	require.NoError(t, err)
	defer func() {
		_ = containerInstance.Terminate(ctx)
	}()

	log := logger.NewLoggerClient(logger.Config{Level: "error", ServiceName: "integration-test"})

	client, err := weaviate.NewClient(&weaviate.Config{
		Scheme:       "http",
		Host:         containerInstance.Host,
		Port:         containerInstance.Port,
		HTTPTimeoutS: 30,
	}, log)
	require.NoError(t, err)
	defer func() {
		_ = client.Close()
	}()

	creds := &identity.Credentials{
		Admin:  identity.Identity{Name: "admin", Token: integrationAdminKey, Role: identity.RoleAdmin},
		Viewer: identity.Identity{Name: "viewer", Token: "not-a-configured-key", Role: identity.RoleViewer},
	}

	runner, err := NewRunner(client, creds, Config{ClassName: "IntegrationNote", ReadLimit: 25}, log)
	require.NoError(t, err)

	report, err := runner.Run(ctx)
	require.NoError(t, err)
	assert.False(t, report.Passed())
}

//go:build e2e

package messagely_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/messagely/pkg/authsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for messagely end-to-end tests.
 * This includes container setup, user registration, and assertions.
 */

const (
	testImageName = "messagely-test:latest"

	testSecretKey = "e2e-signing-secret-0123456789abcdef"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building messagely Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up messagely Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/messagely/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// baseEnv is the container environment shared by every test.
func baseEnv() map[string]string {
	return map[string]string{
		"SECRET_KEY":         testSecretKey,
		"BCRYPT_WORK_FACTOR": "4",
		"ENV":                "test",
		"LOG_LEVEL":          "info",
		"LOG_FORMAT":         "json",
	}
}

// setupContainer starts messagely with relaxed rate limits and returns the
// base URL. Tests make many rapid requests which would otherwise hit the
// production limits.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()

	env := baseEnv()
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_LENIENT_REQUESTS"] = "1000"
	env["RATELIMIT_LENIENT_BURST"] = "1000"

	return startContainer(t, env)
}

// setupContainerWithDefaultRateLimits starts messagely with production
// rate limits, for tests that check limiting itself.
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

func registerRequest(username, password string) authsdk.RegisterRequest {
	return authsdk.RegisterRequest{
		Username:  username,
		Password:  password,
		FirstName: "First",
		LastName:  "Last",
		Phone:     "555-0100",
	}
}

// registerUser registers a user and returns an authenticated session.
func registerUser(t *testing.T, client *authsdk.Client, username, password string) *authsdk.Session {
	t.Helper()

	session, err := client.RegisterSession(t.Context(), registerRequest(username, password))
	require.NoError(t, err, "register %s", username)
	require.NotEmpty(t, session.Token())
	return session
}

// assertAPIError checks that err is an APIError with the given status code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	require.Error(t, err)
	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

func assertHealthy(t *testing.T, health *authsdk.HealthResponse, err error) {
	t.Helper()

	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Uptime)
}

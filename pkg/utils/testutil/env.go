package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable, or skips the test when it is
// not set. Integration tests against GitHub and Google Cloud are gated with it.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// UnsetEnv removes the variables for the duration of the test, so that flag defaults are
// not overridden by the environment of the developer or CI.
func UnsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}

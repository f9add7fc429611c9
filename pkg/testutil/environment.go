package testutil

import (
	"os"
	"strings"
	"testing"
)

// ClearBuildEnv unsets every npm config variable for the duration of the
// test, so values from the developer's shell or an npm run cannot leak
// into resolution tests.
func ClearBuildEnv(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "npm_package_config_") || strings.HasPrefix(name, "npm_config_env_") {
			// t.Setenv registers the restore; Unsetenv then removes it for this test.
			t.Setenv(name, "")
			if err := os.Unsetenv(name); err != nil {
				t.Fatalf("Failed to unset %s: %v", name, err)
			}
		}
	}
}

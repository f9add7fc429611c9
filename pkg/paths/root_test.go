package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cartbuild/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProjectRoot(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateFiles(t, fs, "/work/shop", map[string]string{
		"package.json": "{}",
		"cartridges/app_custom/cartridge/client/default/js/main.js": "",
	})

	tests := []struct {
		name         string
		explicit     string
		envRoot      string
		cwd          string
		want         string
		usedFallback bool
	}{
		{name: "explicit wins", explicit: "/elsewhere", envRoot: "/env", cwd: "/work/shop", want: "/elsewhere"},
		{name: "environment", envRoot: "/env/shop", cwd: "/work/shop", want: "/env/shop"},
		{name: "cwd is root", cwd: "/work/shop", want: "/work/shop"},
		{name: "nearest ancestor", cwd: "/work/shop/cartridges/app_custom/cartridge", want: "/work/shop"},
		{name: "fallback", cwd: "/tmp/other", want: "/tmp/other", usedFallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, usedFallback, err := FindProjectRoot(fs, tt.explicit, tt.envRoot, tt.cwd)
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), root)
			assert.Equal(t, tt.usedFallback, usedFallback)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "shop"), ExpandHome("~/shop"))
	assert.Equal(t, "~other/shop", ExpandHome("~other/shop"))
	assert.Equal(t, "/abs/shop", ExpandHome("/abs/shop"))
	assert.Equal(t, "", ExpandHome(""))
}

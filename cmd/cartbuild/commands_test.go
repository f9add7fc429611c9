package cartbuild

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cartbuild/internal/version"
	"github.com/arthur-debert/cartbuild/pkg/config"
	"github.com/arthur-debert/cartbuild/pkg/testutil"
)

// execute runs the CLI with args as a user would type them, --env.*
// arguments included
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	testutil.ClearBuildEnv(t)
	t.Setenv("CARTBUILD_ROOT", "")
	t.Setenv("CARTBUILD_FORMAT", "json")

	envFlags, rest := config.ParseEnvArgs(args)
	rootCmd := NewRootCmd(envFlags)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(rest)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// newProject creates a project root holding files
func newProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestRootCommandStructure(t *testing.T) {
	rootCmd := NewRootCmd(nil)

	names := map[string]*cobra.Command{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = c
	}
	for _, name := range []string{"manifest", "revolver", "cartridges", "include-paths", "clean", "config", "version", "topics"} {
		assert.Contains(t, names, name)
	}
	assert.Equal(t, "build", names["manifest"].GroupID)
	assert.Equal(t, "misc", names["version"].GroupID)

	for _, flag := range []string{"verbose", "site", "root", "clean"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestNoCommand(t *testing.T) {
	_, _, err := execute(t)
	require.Error(t, err)
	assert.Equal(t, MsgErrNoCommand, err.Error())
}

func TestManifestCommand(t *testing.T) {
	root := newProject(t, map[string]string{
		"cartridges/app_custom/cartridge/client/default/js/index.js":         "",
		"cartridges/app_storefront_base/cartridge/client/default/js/main.js": "",
	})

	stdout, _, err := execute(t, "--root", root, "manifest",
		"--env.revolverPath=app_custom::custom,app_storefront_base")
	require.NoError(t, err)

	var m struct {
		Scope       string `json:"scope"`
		UseRevolver bool   `json:"useRevolver"`
		Revolver    struct {
			Aliases map[string]string `json:"aliases"`
		} `json:"revolver"`
		Cartridges []struct {
			Name  string                 `json:"name"`
			Entry map[string]interface{} `json:"entry"`
		} `json:"cartridges"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &m))

	assert.Equal(t, "js", m.Scope)
	assert.True(t, m.UseRevolver)
	assert.Equal(t, m.Revolver.Aliases["app_custom"], m.Revolver.Aliases["custom"])
	require.Len(t, m.Cartridges, 2)
	assert.Equal(t, "app_custom", m.Cartridges[0].Name)
	assert.Equal(t,
		[]interface{}{filepath.Join(root, "cartridges/app_custom/cartridge/client/default/js/index.js")},
		m.Cartridges[0].Entry["main"])
}

func TestManifestCommandFormats(t *testing.T) {
	root := newProject(t, nil)

	stdout, _, err := execute(t, "--root", root, "manifest", "--format", "yaml", "--env.revolverPath=app_custom")
	require.NoError(t, err)
	assert.Contains(t, stdout, "scope: js")

	stdout, _, err = execute(t, "--root", root, "manifest", "-f", "toml", "--env.revolverPath=app_custom")
	require.NoError(t, err)
	assert.Regexp(t, `scope = ['"]js['"]`, stdout)

	_, _, err = execute(t, "--root", root, "manifest", "--format", "xml")
	assert.Error(t, err)

	_, _, err = execute(t, "--root", root, "manifest", "--scope", "images")
	assert.Error(t, err)
}

func TestManifestCommandOut(t *testing.T) {
	root := newProject(t, nil)

	stdout, stderr, err := execute(t, "--root", root, "manifest", "--scope", "styles",
		"--out", "build/styles.json", "--env.revolverPath=app_custom")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, MsgManifestWritten+" build/styles.json")

	data, err := os.ReadFile(filepath.Join(root, "build", "styles.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scope": "styles"`)
	assert.Contains(t, string(data), `"includePaths"`)
}

func TestManifestCommandClean(t *testing.T) {
	files := map[string]string{
		"cartridges/app_custom/cartridge/client/default/js/main.js":       "",
		"cartridges/app_custom/cartridge/static/default/js/old-bundle.js": "stale",
	}
	stale := "cartridges/app_custom/cartridge/static/default/js/old-bundle.js"

	t.Run("kept without clean", func(t *testing.T) {
		root := newProject(t, files)
		_, _, err := execute(t, "--root", root, "manifest", "--env.cartridge=app_custom")
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(root, stale))
	})

	t.Run("removed with --clean", func(t *testing.T) {
		root := newProject(t, files)
		_, _, err := execute(t, "--root", root, "--clean", "manifest", "--env.cartridge=app_custom")
		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(root, stale))
		assert.FileExists(t, filepath.Join(root, "cartridges/app_custom/cartridge/client/default/js/main.js"))
	})

	t.Run("removed with --env.clean", func(t *testing.T) {
		root := newProject(t, files)
		_, _, err := execute(t, "--root", root, "manifest", "--env.cartridge=app_custom", "--env.clean")
		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(root, stale))
	})
}

func TestRevolverCommand(t *testing.T) {
	root := newProject(t, map[string]string{
		"cartridges/app_custom/cartridge/client/fr_FR/js/x.js": "",
	})

	stdout, _, err := execute(t, "--root", root, "revolver", "--env.revolverPath=app_custom::custom")
	require.NoError(t, err)

	var rv struct {
		Paths []struct {
			Name string `json:"name"`
			Path string `json:"path"`
		} `json:"paths"`
		Aliases map[string]string `json:"aliases"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &rv))
	require.Len(t, rv.Paths, 1)
	assert.Equal(t, "app_custom", rv.Paths[0].Name)
	assert.Equal(t,
		filepath.Join(root, "cartridges/app_custom/cartridge/client/fr_FR"),
		rv.Aliases["custom/fr_FR"])
}

func TestCartridgesCommand(t *testing.T) {
	project := func(name string) string {
		return "<projectDescription><name>" + name + "</name></projectDescription>"
	}
	root := newProject(t, map[string]string{
		"cartridges/app_custom/.project":          project("app_custom"),
		"cartridges/app_storefront_base/.project": project("app_storefront_base"),
	})

	t.Run("build list", func(t *testing.T) {
		stdout, _, err := execute(t, "--root", root, "cartridges",
			"--env.revolverPath=app_custom::custom plugin_cart app_storefront_base",
			"--env.buildDisable=plugin_cart")
		require.NoError(t, err)
		assert.Equal(t, "app_custom\napp_storefront_base\n", stdout)
	})

	t.Run("nothing configured", func(t *testing.T) {
		stdout, _, err := execute(t, "--root", root, "cartridges")
		require.NoError(t, err)
		assert.Equal(t, MsgNoCartridges+"\n", stdout)
	})

	t.Run("discover", func(t *testing.T) {
		stdout, stderr, err := execute(t, "--root", root, "cartridges", "--discover",
			"--env.revolverPath=app_custom,plugin_cart")
		require.NoError(t, err)
		assert.Equal(t,
			"app_custom\tcartridges/app_custom\napp_storefront_base\tcartridges/app_storefront_base\n",
			stdout)
		assert.Contains(t, stderr, "plugin_cart")
	})
}

func TestIncludePathsCommand(t *testing.T) {
	root := newProject(t, nil)

	stdout, _, err := execute(t, "--root", root, "include-paths", "--env.includePaths=vendor/scss")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "cartridges"),
		filepath.Join(root, "node_modules"),
		filepath.Join(root, "vendor", "scss"),
	}, strings.Split(strings.TrimSpace(stdout), "\n"))
}

func TestCleanCommand(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		root := newProject(t, map[string]string{"dist/app.js": "x"})
		stdout, _, err := execute(t, "--root", root, "clean", "dist")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Cleaning is not enabled")
		assert.FileExists(t, filepath.Join(root, "dist", "app.js"))
	})

	t.Run("enabled", func(t *testing.T) {
		root := newProject(t, map[string]string{"dist/app.js": "x", "static/a.css": "x"})
		stdout, _, err := execute(t, "--root", root, "--clean", "clean", "dist", "static")
		require.NoError(t, err)
		assert.Equal(t, "✔ Removed: dist\n✔ Removed: static\n", stdout)
		assert.NoDirExists(t, filepath.Join(root, "dist"))
		assert.NoDirExists(t, filepath.Join(root, "static"))
	})

	t.Run("requires a path", func(t *testing.T) {
		_, _, err := execute(t, "--root", t.TempDir(), "clean")
		assert.Error(t, err)
	})
}

func TestConfigCommand(t *testing.T) {
	root := newProject(t, map[string]string{
		"package.json": `{
  "name": "storefront",
  "config": {
    "mainDirName": "web",
    "styles": {"mainDirName": "sass"},
    "sites": {"us": {"mainDirName": "us-web"}}
  }
}`,
	})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "package.json", args: []string{"config", "mainDirName"}, want: "web"},
		{name: "scoped", args: []string{"config", "mainDirName", "--scope", "styles"}, want: "sass"},
		{name: "site", args: []string{"--site", "us", "config", "mainDirName"}, want: "us-web"},
		{name: "flag wins", args: []string{"--site", "us", "config", "mainDirName", "--env.mainDirName=cli"}, want: "cli"},
		{name: "flag value after space", args: []string{"config", "mainDirName", "--env.mainDirName", "cli"}, want: "cli"},
		{name: "default", args: []string{"config", "missing", "--default", "fallback"}, want: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, append([]string{"--root", root}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cartbuild "+version.Version)
}

func TestHelpTopics(t *testing.T) {
	stdout, _, err := execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, stdout, "configuration")
	assert.Contains(t, stdout, "--clean")

	stdout, _, err = execute(t, "help", "revolver")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Revolver")
}

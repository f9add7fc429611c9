package cartbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cartbuild/pkg/testutil"
)

func TestSessionOpen(t *testing.T) {
	testutil.ClearBuildEnv(t)
	t.Setenv("CARTBUILD_ROOT", "")
	root := newProject(t, map[string]string{"package.json": "{}"})

	opts := &rootOptions{
		verbosity: 3,
		site:      "us",
		root:      root,
		clean:     true,
		envFlags:  map[string]string{"env.mainDirName": "web"},
	}

	s, err := opts.open()
	require.NoError(t, err)

	assert.Equal(t, root, s.root)
	assert.Equal(t, "us", s.cfg.Site())
	assert.True(t, s.cleanEnabled())
	assert.Equal(t, "web", s.cfg.Get("mainDirName", "client", "js").String())
}

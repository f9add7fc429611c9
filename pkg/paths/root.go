package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/cartbuild/pkg/types"
)

// ProjectMarker identifies a storefront project root
const ProjectMarker = "package.json"

// FindProjectRoot determines the project root using the following priority:
//  1. explicit, usually the --root flag
//  2. envRoot, usually $CARTBUILD_ROOT
//  3. the nearest ancestor of cwd (cwd included) holding a package.json
//  4. cwd itself, reported with usedFallback
//
// The returned root is absolute.
func FindProjectRoot(fsys types.FS, explicit, envRoot, cwd string) (root string, usedFallback bool, err error) {
	for _, candidate := range []string{explicit, envRoot} {
		if candidate != "" {
			root, err = filepath.Abs(ExpandHome(candidate))
			return root, false, err
		}
	}

	cwd, err = filepath.Abs(cwd)
	if err != nil {
		return "", false, err
	}

	for dir := cwd; ; dir = filepath.Dir(dir) {
		if info, err := fsys.Stat(filepath.Join(dir, ProjectMarker)); err == nil && !info.IsDir() {
			return dir, false, nil
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}

	return cwd, true, nil
}

// ExpandHome expands a leading ~ to the home directory. "~user" forms are
// returned unchanged.
func ExpandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	if len(p) > 1 && p[1] != '/' && p[1] != filepath.Separator {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if len(p) == 1 {
		return home
	}
	return filepath.Join(home, p[2:])
}

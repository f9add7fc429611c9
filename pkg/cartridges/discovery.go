// Package cartridges finds the cartridges present in a project tree.
package cartridges

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/cartbuild/pkg/errors"
	"github.com/arthur-debert/cartbuild/pkg/logging"
	"github.com/arthur-debert/cartbuild/pkg/types"
)

// ProjectFile is the Eclipse descriptor marking a cartridge directory
const ProjectFile = ".project"

// Cartridge is a cartridge found on disk
type Cartridge struct {
	// Name is the project name from the descriptor
	Name string

	// Dir is the absolute cartridge directory
	Dir string
}

// Discover lists the cartridges directly under dir, sorted by name.
// Subdirectories without a descriptor are skipped; an unreadable
// descriptor is an error.
func Discover(fsys types.FS, dir string) ([]Cartridge, error) {
	logger := logging.GetLogger("cartridges.discovery")

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read cartridges directory").
			WithDetail("path", dir)
	}

	var found []Cartridge
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		cartridgeDir := filepath.Join(dir, entry.Name())
		descriptor := filepath.Join(cartridgeDir, ProjectFile)
		if _, err := fsys.Stat(descriptor); err != nil {
			logger.Trace().Str("dir", cartridgeDir).Msg("No project descriptor, skipping")
			continue
		}

		name, err := ReadProjectName(fsys, descriptor)
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = entry.Name()
		}

		found = append(found, Cartridge{Name: name, Dir: cartridgeDir})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})

	logger.Debug().Str("dir", dir).Int("count", len(found)).Msg("Discovered cartridges")
	return found, nil
}

// ReadProjectName returns projectDescription/name from an Eclipse
// descriptor. It is empty when the element is missing.
func ReadProjectName(fsys types.FS, descriptor string) (string, error) {
	data, err := fsys.ReadFile(descriptor)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to read project descriptor").
			WithDetail("path", descriptor)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", errors.Wrap(err, errors.ErrCartridgeInvalid, "invalid project descriptor").
			WithDetail("path", descriptor)
	}

	el := doc.FindElement("/projectDescription/name")
	if el == nil {
		return "", nil
	}
	return strings.TrimSpace(el.Text()), nil
}

// Missing returns the names of wanted that are not among found, in the
// order given
func Missing(wanted []string, found []Cartridge) []string {
	present := make(map[string]bool, len(found))
	for _, c := range found {
		present[c.Name] = true
		present[filepath.Base(c.Dir)] = true
	}

	var missing []string
	for _, name := range wanted {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

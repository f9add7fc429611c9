package output

import (
	"github.com/arthur-debert/cartbuild/pkg/logging"
	"github.com/arthur-debert/cartbuild/pkg/paths"
	"github.com/arthur-debert/cartbuild/pkg/revolver"
	"github.com/arthur-debert/cartbuild/pkg/types"
)

// Manifest is the bundler-facing view of one scope
type Manifest struct {
	Scope        string      `json:"scope" yaml:"scope" toml:"scope"`
	UseRevolver  bool        `json:"useRevolver" yaml:"useRevolver" toml:"useRevolver"`
	Revolver     Revolver    `json:"revolver" yaml:"revolver" toml:"revolver"`
	Cartridges   []Cartridge `json:"cartridges" yaml:"cartridges" toml:"cartridges"`
	IncludePaths []string    `json:"includePaths,omitempty" yaml:"includePaths,omitempty" toml:"includePaths,omitempty"`
}

// Revolver is the rendered path set
type Revolver struct {
	Paths   []RevolverPath    `json:"paths" yaml:"paths" toml:"paths"`
	Aliases map[string]string `json:"aliases" yaml:"aliases" toml:"aliases"`
}

// RevolverPath is one override layer
type RevolverPath struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Path string `json:"path" yaml:"path" toml:"path"`
}

// Cartridge is the path data of one cartridge of the build list. Entry
// values are a path or a list of paths.
type Cartridge struct {
	Name        string                 `json:"name" yaml:"name" toml:"name"`
	InputPath   string                 `json:"inputPath" yaml:"inputPath" toml:"inputPath"`
	OutputPath  string                 `json:"outputPath" yaml:"outputPath" toml:"outputPath"`
	Entry       map[string]interface{} `json:"entry" yaml:"entry" toml:"entry"`
	UseRevolver bool                   `json:"useRevolver" yaml:"useRevolver" toml:"useRevolver"`
}

// Build computes the manifest of scope
func Build(b *paths.Builder, r *revolver.Resolver, scope types.Scope) (Manifest, error) {
	logger := logging.GetLogger("output.manifest")

	set, err := r.Paths(scope)
	if err != nil {
		return Manifest{}, err
	}

	m := Manifest{
		Scope:       scope.String(),
		UseRevolver: set.UseRevolver,
		Revolver:    NewRevolver(set),
		Cartridges:  []Cartridge{},
	}

	for _, name := range r.BuildList(scope) {
		var pd types.PathData
		if scope == types.ScopeStyles {
			pd, err = b.SCSSPaths(name)
		} else {
			pd, err = b.JSPaths(name, b.JSOptions())
		}
		if err != nil {
			return Manifest{}, err
		}

		m.Cartridges = append(m.Cartridges, Cartridge{
			Name:        name,
			InputPath:   b.Abs(pd.InputPath),
			OutputPath:  b.Abs(pd.OutputPath),
			Entry:       pd.Entries.Values(),
			UseRevolver: pd.RevolverEnabled(set),
		})
	}

	if scope == types.ScopeStyles {
		m.IncludePaths = b.IncludePaths()
	}

	logger.Debug().
		Str("scope", m.Scope).
		Int("cartridges", len(m.Cartridges)).
		Int("revolverPaths", len(m.Revolver.Paths)).
		Msg("Built manifest")

	return m, nil
}

// NewRevolver converts a path set for rendering
func NewRevolver(set types.PathSet) Revolver {
	rv := Revolver{
		Paths:   make([]RevolverPath, 0, len(set.Paths)),
		Aliases: map[string]string{},
	}
	for _, p := range set.Paths {
		rv.Paths = append(rv.Paths, RevolverPath{Name: p.Name, Path: p.Path})
	}
	for alias, p := range set.Aliases {
		rv.Aliases[alias] = p
	}
	return rv
}

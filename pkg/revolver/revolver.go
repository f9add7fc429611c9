package revolver

import (
	"path"
	"sort"

	"github.com/arthur-debert/cartbuild/pkg/errors"
	"github.com/arthur-debert/cartbuild/pkg/logging"
	"github.com/arthur-debert/cartbuild/pkg/paths"
	"github.com/arthur-debert/cartbuild/pkg/types"
)

// Resolver computes revolver path sets and build lists
type Resolver struct {
	builder *paths.Builder
}

// New creates a Resolver reading settings and directories through builder
func New(builder *paths.Builder) *Resolver {
	return &Resolver{builder: builder}
}

// settings are the revolver options of one scope
type settings struct {
	mainDirName   string
	useLocales    bool
	aliasDirName  string
	defaultLocale string
}

func (r *Resolver) settings(scope types.Scope) settings {
	cfg := r.builder.Config()
	s := settings{
		mainDirName: r.builder.MainDirName(scope),
		useLocales:  r.builder.UseLocales(scope),
	}

	// "false" switches either name off
	if v := cfg.Get("aliasDirName", "", scope); v.Bool() {
		s.aliasDirName = v.String()
	}
	if s.useLocales {
		if v := cfg.Get("defaultLocale", r.builder.Defaults().Locale, scope); v.Bool() {
			s.defaultLocale = v.String()
		}
	}
	return s
}

// Paths returns the revolver path set of scope. The path list follows
// the revolverPath order, which is the override priority. Every member
// of an alias group maps to the same directory. With locales enabled,
// each member also gets a "<member>/<locale>" alias per locale directory
// found under the cartridge's main directory.
func (r *Resolver) Paths(scope types.Scope) (types.PathSet, error) {
	logger := logging.GetLogger("revolver").With().Str("scope", scope.String()).Logger()
	s := r.settings(scope)

	set := types.PathSet{Aliases: map[string]string{}}
	descriptors := ParseList(r.builder.Config().Get("revolverPath", "", scope).String())

	for _, d := range descriptors {
		inputPath := r.builder.ScopePaths(d.Leader, scope).InputPath
		mainPath, _, hasMainDir := paths.SplitAtMainDir(inputPath, s.mainDirName)

		// A glob pattern is not a directory; rebuild a concrete one below
		// the main directory.
		if paths.HasMagic(inputPath) {
			if !hasMainDir {
				return types.PathSet{}, errors.Newf(errors.ErrMainDirMissing,
					"cannot derive a directory from %q without a %q directory", inputPath, s.mainDirName).
					WithDetail("cartridge", d.Leader)
			}
			inputPath = constructInputPath(mainPath, s.defaultLocale, s.aliasDirName)
		}
		resolved := r.builder.Abs(inputPath)

		var locales []string
		if s.useLocales && hasMainDir {
			locales = r.locales(mainPath)
		}

		for _, member := range d.Members {
			for _, locale := range locales {
				set.Aliases[member+"/"+locale] = r.builder.Abs(constructInputPath(mainPath, locale, s.aliasDirName))
			}
			set.Aliases[member] = resolved
		}

		set.Paths = append(set.Paths, types.RevolverPath{Name: d.Leader, Path: resolved})
		logger.Trace().Str("cartridge", d.Leader).Strs("members", d.Members).Str("path", resolved).Msg("Resolved revolver path")
	}

	set.UseRevolver = len(set.Paths) > 0

	logger.Debug().
		Int("paths", len(set.Paths)).
		Int("aliases", len(set.Aliases)).
		Msg("Resolved revolver paths")

	return set, nil
}

// locales lists the locale directories under mainPath, sorted. A missing
// main directory has no locales.
func (r *Resolver) locales(mainPath string) []string {
	entries, err := r.builder.FS().ReadDir(r.builder.Abs(mainPath))
	if err != nil {
		return nil
	}

	var locales []string
	for _, entry := range entries {
		if entry.IsDir() {
			locales = append(locales, entry.Name())
		}
	}
	sort.Strings(locales)
	return locales
}

// constructInputPath joins the main path with the optional locale and
// alias directory
func constructInputPath(mainPath, locale, aliasDirName string) string {
	p := mainPath
	if locale != "" {
		p = path.Join(p, locale)
	}
	if aliasDirName != "" {
		p = path.Join(p, aliasDirName)
	}
	return p
}

// BuildList returns the cartridges to build for scope, in order. The
// list comes from the cartridge setting, or revolverPath when cartridge
// is unset. Only group leaders are kept, and names listed in
// buildDisable are dropped.
func (r *Resolver) BuildList(scope types.Scope) []string {
	logger := logging.GetLogger("revolver.build")
	cfg := r.builder.Config()

	source := cfg.Get("cartridge", "", scope)
	if !source.IsSet() {
		source = cfg.Get("revolverPath", "", scope)
	}

	disabled := map[string]bool{}
	for _, name := range cfg.Get("buildDisable", "", scope).List() {
		disabled[name] = true
	}

	var list []string
	seen := map[string]bool{}
	for _, d := range ParseList(source.String()) {
		if disabled[d.Leader] {
			logger.Debug().Str("cartridge", d.Leader).Msg("Cartridge disabled for build")
			continue
		}
		if seen[d.Leader] {
			continue
		}
		seen[d.Leader] = true
		list = append(list, d.Leader)
	}

	logger.Debug().Str("scope", scope.String()).Strs("cartridges", list).Msg("Resolved build list")
	return list
}

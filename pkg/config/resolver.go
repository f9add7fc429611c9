package config

import (
	"github.com/arthur-debert/cartbuild/pkg/logging"
	"github.com/arthur-debert/cartbuild/pkg/types"
)

// Options configures a Resolver
type Options struct {
	// Flags holds command-line flags by name without leading dashes,
	// e.g. "env.inputPath", "site", "clean".
	Flags map[string]string

	// Root is the project root searched for package.json and the
	// cartbuild project file. Empty disables file sources.
	Root string

	// Site overrides the --site flag when non-empty.
	Site string
}

// Resolver looks configuration values up through an ordered list of
// sources. The order is fixed: flags, then npm's forwarded flag
// variables, then the package config namespace from most to least
// specific key, then the caller's default.
type Resolver struct {
	flags    Source
	flagEnv  Source
	packages []Source
	site     string
}

// New builds a Resolver from the process environment and opts
func New(opts Options) (*Resolver, error) {
	flags, err := NewFlagSource(opts.Flags)
	if err != nil {
		return nil, err
	}
	flagEnv, err := NewEnvSource("npm flag environment", FlagEnvPrefix)
	if err != nil {
		return nil, err
	}
	packageEnv, err := NewEnvSource("npm package environment", PackageConfigPrefix)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		flags:    flags,
		flagEnv:  flagEnv,
		packages: []Source{packageEnv},
	}

	if opts.Root != "" {
		pkgJSON, err := NewPackageJSONSource(opts.Root)
		if err != nil {
			return nil, err
		}
		if pkgJSON != nil {
			r.packages = append(r.packages, pkgJSON)
		}

		project, err := NewProjectFileSource(opts.Root)
		if err != nil {
			return nil, err
		}
		if project != nil {
			r.packages = append(r.packages, project)
		}
	}

	r.site = opts.Site
	if r.site == "" {
		r.site = r.Flag("site", "").String()
	}

	logger := logging.GetLogger("config")
	names := make([]string, 0, len(r.packages))
	for _, src := range r.packages {
		names = append(names, src.Name())
	}
	logger.Debug().Str("site", r.site).Strs("sources", names).Msg("Configuration resolver ready")

	return r, nil
}

// NewWithSources builds a Resolver from explicit sources. flagEnv may be
// nil. It is meant for callers that assemble their own layers.
func NewWithSources(site string, flags, flagEnv Source, packages ...Source) *Resolver {
	return &Resolver{flags: flags, flagEnv: flagEnv, packages: packages, site: site}
}

// Site returns the site used when Resolve is called without one
func (r *Resolver) Site() string {
	return r.site
}

// Flag resolves a value that can only be given at run time:
// --env.<name>, then --<name>, then npm_config_env_<name>, then
// defaultValue.
func (r *Resolver) Flag(name, defaultValue string) Value {
	if r.flags != nil {
		if v, ok := r.flags.Lookup([]string{"env", name}); ok {
			return NewValue(v, r.flags.Name())
		}
		if v, ok := r.flags.Lookup([]string{name}); ok {
			return NewValue(v, r.flags.Name())
		}
	}
	if r.flagEnv != nil {
		if v, ok := r.flagEnv.Lookup([]string{name}); ok {
			return NewValue(v, r.flagEnv.Name())
		}
	}
	return NewValue(defaultValue, "default")
}

// Resolve looks name up for scope and site. An empty scope means js and
// an empty site means the resolver's site. The probe order is:
//
//  1. the run-time flag (see Flag)
//  2. sites.<site>.<scope>.<name>
//  3. sites.<site>.<name>
//  4. <scope>.<name>
//  5. <name>
//  6. defaultValue
//
// Each key is asked of every package source in turn. Empty values count
// as absent.
func (r *Resolver) Resolve(name, defaultValue string, scope types.Scope, site string) Value {
	if v := r.Flag(name, ""); v.IsSet() {
		return v
	}

	if scope == "" {
		scope = types.ScopeJS
	}
	if site == "" {
		site = r.site
	}

	for _, path := range candidateKeys(name, scope, site) {
		for _, src := range r.packages {
			if v, ok := src.Lookup(path); ok {
				return NewValue(v, src.Name())
			}
		}
	}

	return NewValue(defaultValue, "default")
}

// Get is Resolve for the resolver's own site
func (r *Resolver) Get(name, defaultValue string, scope types.Scope) Value {
	return r.Resolve(name, defaultValue, scope, "")
}

// candidateKeys lists the package-config keys for name, most specific
// first. Site keys are skipped when no site is selected.
func candidateKeys(name string, scope types.Scope, site string) [][]string {
	keys := make([][]string, 0, 4)
	if site != "" {
		keys = append(keys,
			[]string{"sites", site, string(scope), name},
			[]string{"sites", site, name},
		)
	}
	return append(keys,
		[]string{string(scope), name},
		[]string{name},
	)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/cartbuild/pkg/errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable prefixes used by npm when running package scripts
const (
	// PackageConfigPrefix is npm's rendering of package.json "config"
	PackageConfigPrefix = "npm_package_config_"

	// FlagEnvPrefix is npm's rendering of a forwarded --env.<name> flag
	FlagEnvPrefix = "npm_config_env_"
)

// ProjectConfigFiles are the project files searched in the root, in order.
// The first one found is used.
var ProjectConfigFiles = []string{"cartbuild.toml", ".cartbuild.toml", "cartbuild.yaml", "cartbuild.yml"}

// Source is one layer of configuration. Lookup receives the key as path
// segments, e.g. ["sites", "us", "js", "inputPath"], and reports whether
// the layer holds a non-empty value for it.
type Source interface {
	Name() string
	Lookup(path []string) (string, bool)
}

// koanfSource looks keys up in a koanf instance, joining path segments
// with the instance delimiter.
type koanfSource struct {
	name string
	k    *koanf.Koanf
	join func(path []string) string
}

func (s *koanfSource) Name() string { return s.name }

func (s *koanfSource) Lookup(path []string) (string, bool) {
	key := s.join(path)
	if !s.k.Exists(key) {
		return "", false
	}
	v := stringify(s.k.Get(key))
	return v, v != ""
}

// stringify renders config file values the way npm renders them into the
// environment: lists become comma separated.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(t, ",")
	case map[string]interface{}:
		// A section is not a value
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

func dotted(path []string) string { return strings.Join(path, ".") }

// NewFlagSource wraps command-line flags. Keys are flag names without the
// leading dashes, e.g. "env.inputPath" or "site".
func NewFlagSource(flags map[string]string) (Source, error) {
	m := make(map[string]interface{}, len(flags))
	for name, value := range flags {
		m[name] = value
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(m, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
	}
	return &koanfSource{name: "flags", k: k, join: dotted}, nil
}

// NewEnvSource snapshots every environment variable starting with prefix.
// Lookups join the path with underscores after the prefix, so
// ["sites", "us", "inputPath"] reads <prefix>sites_us_inputPath.
func NewEnvSource(name, prefix string) (Source, error) {
	k := koanf.New(".")
	// Keep variable names verbatim: npm config names are camelCase and
	// underscore separated, neither of which may be rewritten.
	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return s
	}), nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s environment", prefix)
	}

	return &koanfSource{
		name: name,
		k:    k,
		join: func(path []string) string {
			return prefix + strings.Join(path, "_")
		},
	}, nil
}

// NewPackageJSONSource reads the "config" object of root/package.json.
// It returns nil when the file does not exist.
func NewPackageJSONSource(root string) (Source, error) {
	path := filepath.Join(root, "package.json")
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", path)
	}
	return &koanfSource{name: "package.json", k: k.Cut("config"), join: dotted}, nil
}

// NewProjectFileSource reads the first of ProjectConfigFiles found in
// root. It returns nil when none exists.
func NewProjectFileSource(root string) (Source, error) {
	for _, filename := range ProjectConfigFiles {
		path := filepath.Join(root, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		var parser koanf.Parser = toml.Parser()
		if ext := filepath.Ext(filename); ext == ".yaml" || ext == ".yml" {
			parser = yaml.Parser()
		}

		k := koanf.New(".")
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", path)
		}
		return &koanfSource{name: filename, k: k, join: dotted}, nil
	}
	return nil, nil
}

// ParseEnvArgs extracts "--env.<name>=<value>" and "--env.<name> <value>"
// arguments, which cannot be declared as regular flags because their names
// are open ended. A following argument is taken as the value unless it
// starts with "-"; a bare "--env.<name>" is read as "true". The remaining
// arguments are returned in order.
func ParseEnvArgs(args []string) (map[string]string, []string) {
	flags := make(map[string]string)
	rest := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			rest = append(rest, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "--env.") {
			rest = append(rest, arg)
			continue
		}

		name, value, found := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if !found {
			value = "true"
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				value = args[i]
			}
		}
		if name == "env." {
			continue
		}
		flags[name] = value
	}

	return flags, rest
}

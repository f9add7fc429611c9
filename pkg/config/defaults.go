package config

import (
	"fmt"

	"github.com/arthur-debert/cartbuild/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
)

// ScopePaths holds the path templates of one scope. Templates may
// contain the {cartridge} token.
type ScopePaths struct {
	InputPath  string `koanf:"inputPath"`
	OutputPath string `koanf:"outputPath"`
}

// Defaults are the built-in fallbacks for every setting
type Defaults struct {
	MainDirName   string     `koanf:"mainDirName"`
	Locale        string     `koanf:"locale"`
	MainEntryName string     `koanf:"mainEntryName"`
	MainFiles     []string   `koanf:"mainFiles"`
	JS            ScopePaths `koanf:"js"`
	Styles        ScopePaths `koanf:"styles"`
}

// ForScope returns the path templates of scope
func (d Defaults) ForScope(scope types.Scope) ScopePaths {
	if scope == types.ScopeStyles {
		return d.Styles
	}
	return d.JS
}

// LoadDefaults decodes the embedded defaults file
func LoadDefaults() (Defaults, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Defaults{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	var d Defaults
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &d,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &d, unmarshalConf); err != nil {
		return Defaults{}, fmt.Errorf("failed to unmarshal defaults: %w", err)
	}
	return d, nil
}

// MustLoadDefaults is LoadDefaults for the embedded file, which is known
// to be valid.
func MustLoadDefaults() Defaults {
	d, err := LoadDefaults()
	if err != nil {
		panic(err)
	}
	return d
}

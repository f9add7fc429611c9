package cartbuild

import (
	"github.com/caarlos0/env/v11"
)

// Environment holds the variables cartbuild reads for itself. Build
// settings are read by pkg/config instead.
type Environment struct {
	// Root is the project root used when --root is not given
	Root string `env:"CARTBUILD_ROOT"`

	// Format is the default manifest format
	Format string `env:"CARTBUILD_FORMAT" envDefault:"json"`

	// NoColor follows the no-color.org convention: any value disables
	// colour.
	NoColor string `env:"NO_COLOR"`
}

// LoadEnvironment parses the process environment
func LoadEnvironment() (Environment, error) {
	return env.ParseAs[Environment]()
}

// ColorDisabled reports whether NO_COLOR is set
func (e Environment) ColorDisabled() bool {
	return e.NoColor != ""
}

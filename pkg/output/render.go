package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/cartbuild/pkg/errors"
)

// Format is a manifest encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported encodings
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat reads a format name. The empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q", s).
			WithDetail("supported", Formats)
	}
}

// Render encodes v to w in format
func Render(w io.Writer, format Format, v interface{}) error {
	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(v)
		if err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(v)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
	}

	if err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to render %s", format)
	}
	return nil
}

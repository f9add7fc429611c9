package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/cartbuild/pkg/errors"
)

func sampleManifest() Manifest {
	return Manifest{
		Scope:       "js",
		UseRevolver: true,
		Revolver: Revolver{
			Paths: []RevolverPath{
				{Name: "app_custom", Path: "/shop/cartridges/app_custom/cartridge/client/default/js"},
			},
			Aliases: map[string]string{
				"app_custom": "/shop/cartridges/app_custom/cartridge/client/default/js",
				"custom":     "/shop/cartridges/app_custom/cartridge/client/default/js",
			},
		},
		Cartridges: []Cartridge{
			{
				Name:       "app_custom",
				InputPath:  "/shop/cartridges/app_custom/cartridge/client/default/js",
				OutputPath: "/shop/cartridges/app_custom/cartridge/static/default/js",
				Entry: map[string]interface{}{
					"main":  []string{"/shop/cartridges/app_custom/cartridge/client/default/js/main.js"},
					"login": "/shop/cartridges/app_custom/cartridge/client/default/js/login.js",
				},
				UseRevolver: true,
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":     FormatJSON,
		"json": FormatJSON,
		"YAML": FormatYAML,
		"yml":  FormatYAML,
		"toml": FormatTOML,
	}
	for input, want := range tests {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleManifest()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "js", decoded["scope"])
	assert.NotContains(t, decoded, "includePaths")

	cartridges := decoded["cartridges"].([]interface{})
	entry := cartridges[0].(map[string]interface{})["entry"].(map[string]interface{})
	assert.IsType(t, "", entry["login"])
	assert.IsType(t, []interface{}{}, entry["main"])
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, sampleManifest()))

	var decoded struct {
		Scope    string `yaml:"scope"`
		Revolver struct {
			Aliases map[string]string `yaml:"aliases"`
		} `yaml:"revolver"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "js", decoded.Scope)
	assert.Equal(t, decoded.Revolver.Aliases["app_custom"], decoded.Revolver.Aliases["custom"])
}

func TestRenderTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTOML, sampleManifest()))

	var decoded map[string]interface{}
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, true, decoded["useRevolver"])
	assert.Len(t, decoded["cartridges"], 1)
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Format("xml"), sampleManifest())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Empty(t, buf.String())
}

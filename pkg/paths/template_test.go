package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	assert.Equal(t, "cartridges/app_custom/cartridge/js",
		Substitute("cartridges/{cartridge}/cartridge/js", Tokens{"cartridge": "app_custom"}))
	assert.Equal(t, "a/x/b/x/{other}",
		Substitute("a/{cartridge}/b/{cartridge}/{other}", Tokens{"cartridge": "x"}))
	assert.Equal(t, "plain", Substitute("plain", nil))
}

func TestHasMagic(t *testing.T) {
	assert.True(t, HasMagic("scss/**/*.scss"))
	assert.True(t, HasMagic("js/file?.js"))
	assert.True(t, HasMagic("js/[ab].js"))
	assert.True(t, HasMagic("js/{a,b}.js"))
	assert.False(t, HasMagic("cartridges/app/cartridge/client/default/js"))
}

func TestSplitAtMainDir(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		main   string
		prefix string
		rest   string
		ok     bool
	}{
		{"nested", "cartridges/app/cartridge/client/default/js", "client", "cartridges/app/cartridge/client", "default/js", true},
		{"leading", "client/default/scss/a.scss", "client", "client", "default/scss/a.scss", true},
		{"first_occurrence", "a/client/b/client/c", "client", "a/client", "b/client/c", true},
		{"partial_name_only", "a/clients/b", "client", "", "", false},
		{"trailing_without_slash", "a/client", "client", "", "", false},
		{"empty_main", "a/b", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, rest, ok := SplitAtMainDir(tt.path, tt.main)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

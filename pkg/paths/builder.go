package paths

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/cartbuild/pkg/config"
	"github.com/arthur-debert/cartbuild/pkg/types"
)

// Builder derives per-cartridge path data from configuration and the
// current state of the filesystem. Configured paths are relative to root;
// entry paths it returns are absolute.
type Builder struct {
	fs       types.FS
	cfg      *config.Resolver
	defaults config.Defaults
	root     string
}

// NewBuilder creates a Builder using the embedded defaults
func NewBuilder(fs types.FS, cfg *config.Resolver, root string) *Builder {
	return &Builder{
		fs:       fs,
		cfg:      cfg,
		defaults: config.MustLoadDefaults(),
		root:     root,
	}
}

// FS returns the filesystem the builder reads
func (b *Builder) FS() types.FS { return b.fs }

// Config returns the resolver the builder reads settings from
func (b *Builder) Config() *config.Resolver { return b.cfg }

// Defaults returns the fallback settings
func (b *Builder) Defaults() config.Defaults { return b.defaults }

// Root returns the project root
func (b *Builder) Root() string { return b.root }

// Abs resolves a configured, slash separated path against the root.
// Absolute paths are returned cleaned.
func (b *Builder) Abs(p string) string {
	native := filepath.FromSlash(p)
	if filepath.IsAbs(native) {
		return filepath.Clean(native)
	}
	return filepath.Join(b.root, native)
}

// Rel returns the slash separated form of an absolute path relative to the
// root. Paths outside the root are returned in slash form unchanged.
func (b *Builder) Rel(abs string) string {
	rel, err := filepath.Rel(b.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

// ScopePaths returns the input and output paths of cartridge for scope,
// with the {cartridge} token substituted. Entries are left empty.
func (b *Builder) ScopePaths(cartridge string, scope types.Scope) types.PathData {
	d := b.defaults.ForScope(scope)
	tokens := Tokens{"cartridge": cartridge}

	input := b.cfg.Get("inputPath", d.InputPath, scope).String()
	output := b.cfg.Get("outputPath", d.OutputPath, scope).String()

	return types.PathData{
		Cartridge:  cartridge,
		Scope:      scope,
		InputPath:  path.Clean(Substitute(input, tokens)),
		OutputPath: path.Clean(Substitute(output, tokens)),
		Entries:    types.EntryMap{},
	}
}

// MainDirName returns the configured main directory name for scope
func (b *Builder) MainDirName(scope types.Scope) string {
	return b.cfg.Get("mainDirName", b.defaults.MainDirName, scope).String()
}

// UseLocales reports whether scope is locale aware
func (b *Builder) UseLocales(scope types.Scope) bool {
	return b.cfg.Get("useLocales", "true", scope).Bool()
}

// IncludePaths returns the style include paths: the cartridges and
// node_modules directories followed by every configured includePaths
// entry, resolved against the root and without duplicates.
func (b *Builder) IncludePaths() []string {
	includes := []string{b.Abs("cartridges"), b.Abs("node_modules")}
	seen := map[string]bool{includes[0]: true, includes[1]: true}

	for _, p := range b.cfg.Get("includePaths", "", types.ScopeStyles).List() {
		abs := b.Abs(p)
		if seen[abs] {
			continue
		}
		seen[abs] = true
		includes = append(includes, abs)
	}
	return includes
}

package paths

import (
	"path"
	"path/filepath"
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/arthur-debert/cartbuild/pkg/errors"
	"github.com/arthur-debert/cartbuild/pkg/logging"
	"github.com/arthur-debert/cartbuild/pkg/types"
)

// JSOptions controls how JS entries are collected. Zero fields are filled
// from configuration (mainFiles, mainEntryName, rootFiles).
type JSOptions struct {
	// MainFiles are candidate entry files relative to the input path,
	// included in order when they exist.
	MainFiles []string

	// MainEntryName is the entry the main files are bundled under.
	MainEntryName string

	// RootFiles makes every top-level .js file of the input path an
	// entry of its own, named by its basename.
	RootFiles bool
}

// JSOptions returns the configured JS options
func (b *Builder) JSOptions() JSOptions {
	scope := types.ScopeJS
	return JSOptions{
		MainFiles:     b.cfg.Get("mainFiles", strings.Join(b.defaults.MainFiles, ","), scope).List(),
		MainEntryName: b.cfg.Get("mainEntryName", b.defaults.MainEntryName, scope).String(),
		RootFiles:     b.cfg.Get("rootFiles", "false", scope).Bool(),
	}
}

// JSPaths returns the JS path data of cartridge. When the cartridge is
// listed in revolverDisable the result has DisableRevolver set; callers
// combine it with the revolver path set through PathData.RevolverEnabled.
func (b *Builder) JSPaths(cartridge string, opts JSOptions) (types.PathData, error) {
	logger := logging.GetLogger("paths.js").With().Str("cartridge", cartridge).Logger()

	if err := mergo.Merge(&opts, b.JSOptions()); err != nil {
		return types.PathData{}, errors.Wrap(err, errors.ErrInternal, "failed to merge JS options")
	}

	pd := b.ScopePaths(cartridge, types.ScopeJS)

	if opts.RootFiles {
		rootFiles, err := b.rootFiles(pd.InputPath, "js")
		if err != nil {
			return pd, err
		}
		for name, file := range rootFiles {
			pd.Entries[name] = types.SingleEntry(file)
		}
	}

	// Only attach a main entry when at least one candidate exists
	if mainPaths := b.MainPaths(pd.InputPath, opts.MainFiles); len(mainPaths) > 0 {
		pd.Entries[opts.MainEntryName] = types.MultiEntry(mainPaths...)
	}

	for _, disabled := range b.cfg.Get("revolverDisable", "", types.ScopeJS).List() {
		if disabled == cartridge {
			pd.DisableRevolver = true
			break
		}
	}

	logger.Debug().
		Str("input", pd.InputPath).
		Int("entries", len(pd.Entries)).
		Bool("revolverDisabled", pd.DisableRevolver).
		Msg("Resolved JS paths")

	return pd, nil
}

// MainPaths returns the absolute path of every file in mainFiles that
// exists under inputPath, in mainFiles order. Missing files are skipped.
func (b *Builder) MainPaths(inputPath string, mainFiles []string) []string {
	var mainPaths []string
	for _, file := range mainFiles {
		candidate := b.Abs(path.Join(inputPath, file))
		if info, err := b.fs.Stat(candidate); err == nil && !info.IsDir() {
			mainPaths = append(mainPaths, candidate)
		}
	}
	return mainPaths
}

// rootFiles maps the basename of every "<inputPath>/*.<ext>" file to its
// absolute path.
func (b *Builder) rootFiles(inputPath, ext string) (map[string]string, error) {
	matches, err := b.fs.Glob(b.Abs(path.Join(inputPath, "*."+ext)))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGlob, "failed to list root files of %s", inputPath)
	}
	sort.Strings(matches)

	files := make(map[string]string, len(matches))
	for _, match := range matches {
		name := strings.TrimSuffix(filepath.Base(match), "."+ext)
		files[name] = match
	}
	return files, nil
}

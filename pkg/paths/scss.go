package paths

import (
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/cartbuild/pkg/errors"
	"github.com/arthur-debert/cartbuild/pkg/logging"
	"github.com/arthur-debert/cartbuild/pkg/types"
)

// StyleOptions controls how SCSS sources map to output keys
type StyleOptions struct {
	MainDirName          string
	UseLocales           bool
	KeepOriginalLocation bool
}

// StyleOptions returns the configured style options
func (b *Builder) StyleOptions() StyleOptions {
	return StyleOptions{
		MainDirName:          b.MainDirName(types.ScopeStyles),
		UseLocales:           b.UseLocales(types.ScopeStyles),
		KeepOriginalLocation: b.cfg.Get("keepOriginalLocation", "false", types.ScopeStyles).Bool(),
	}
}

// SCSSPaths returns the styles path data of cartridge. Every non-partial
// .scss file matched by the input pattern becomes an entry keyed by its
// output location relative to the output path, e.g. "default/css/global".
//
// The input path must contain the main directory as a segment; the
// locale is the first segment after it.
func (b *Builder) SCSSPaths(cartridge string) (types.PathData, error) {
	logger := logging.GetLogger("paths.scss").With().Str("cartridge", cartridge).Logger()
	opts := b.StyleOptions()
	pd := b.ScopePaths(cartridge, types.ScopeStyles)

	if _, _, ok := SplitAtMainDir(pd.InputPath, opts.MainDirName); !ok {
		return pd, errors.Newf(errors.ErrMainDirMissing,
			"styles input path %q has no %q directory", pd.InputPath, opts.MainDirName).
			WithDetail("cartridge", cartridge)
	}

	matches, err := b.fs.Glob(b.Abs(pd.InputPath))
	if err != nil {
		return pd, errors.Wrapf(err, errors.ErrGlob, "failed to match %s", pd.InputPath)
	}
	sort.Strings(matches)

	for _, match := range matches {
		if IsPartial(match) {
			continue
		}

		_, sub, ok := SplitAtMainDir(b.Rel(match), opts.MainDirName)
		if !ok {
			logger.Warn().Str("file", match).Msg("Matched file is outside the main directory, skipping")
			continue
		}

		key := StyleKey(strings.TrimSuffix(sub, ".scss"), opts)
		pd.Entries[key] = types.SingleEntry(match)
	}

	logger.Debug().
		Str("input", pd.InputPath).
		Int("entries", len(pd.Entries)).
		Msg("Resolved SCSS paths")

	return pd, nil
}

// IsPartial reports whether file is an SCSS partial (basename starting
// with an underscore)
func IsPartial(file string) bool {
	return strings.HasPrefix(filepath.Base(file), "_")
}

// StyleKey derives the output key of a stylesheet from its location below
// the main directory, without extension. With locales the first segment
// is the locale and the key is "<locale>/css/<name>"; without, it is
// "css/<name>". name is the basename, or with KeepOriginalLocation the
// rest of the path. A file directly in the main directory has no locale.
func StyleKey(sub string, opts StyleOptions) string {
	rest := sub
	locale := ""
	if opts.UseLocales {
		if first, after, found := strings.Cut(sub, "/"); found {
			locale, rest = first, after
		}
	}

	name := path.Base(sub)
	if opts.KeepOriginalLocation {
		name = rest
	}

	if locale == "" {
		return "css/" + name
	}
	return locale + "/css/" + name
}

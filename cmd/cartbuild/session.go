package cartbuild

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/cartbuild/pkg/config"
	"github.com/arthur-debert/cartbuild/pkg/filesystem"
	"github.com/arthur-debert/cartbuild/pkg/logging"
	"github.com/arthur-debert/cartbuild/pkg/output"
	"github.com/arthur-debert/cartbuild/pkg/paths"
	"github.com/arthur-debert/cartbuild/pkg/revolver"
	"github.com/arthur-debert/cartbuild/pkg/types"
)

// rootOptions are the global flags
type rootOptions struct {
	verbosity int
	site      string
	root      string
	clean     bool

	// envFlags holds the --env.<name> arguments, keyed "env.<name>"
	envFlags map[string]string
}

// session is the state every command works from
type session struct {
	env      Environment
	root     string
	fs       types.FS
	cfg      *config.Resolver
	builder  *paths.Builder
	revolver *revolver.Resolver
}

// open resolves the project root and loads the configuration layers
func (o *rootOptions) open() (*session, error) {
	environment, err := LoadEnvironment()
	if err != nil {
		return nil, fmt.Errorf(MsgErrEnvironment, err)
	}

	fs := filesystem.NewOS()

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf(MsgErrOpen, err)
	}
	root, usedFallback, err := paths.FindProjectRoot(fs, o.root, environment.Root, cwd)
	if err != nil {
		return nil, fmt.Errorf(MsgErrOpen, err)
	}
	if usedFallback {
		fmt.Fprintf(os.Stderr, MsgFallbackWarning, root)
	}

	flags := make(map[string]string, len(o.envFlags)+2)
	for name, value := range o.envFlags {
		flags[name] = value
	}
	if o.site != "" {
		flags["site"] = o.site
	}
	if o.clean {
		flags["clean"] = "true"
	}

	cfg, err := config.New(config.Options{Flags: flags, Root: root})
	if err != nil {
		return nil, fmt.Errorf(MsgErrOpen, err)
	}

	builder := paths.NewBuilder(fs, cfg, root)

	logger := logging.GetLogger("cli")
	logger.Debug().
		Str("root", root).
		Str("site", cfg.Site()).
		Int("envFlags", len(o.envFlags)).
		Msg("Session opened")

	return &session{
		env:      environment,
		root:     root,
		fs:       fs,
		cfg:      cfg,
		builder:  builder,
		revolver: revolver.New(builder),
	}, nil
}

// format picks the manifest format: the flag, then CARTBUILD_FORMAT
func (s *session) format(flag string) (output.Format, error) {
	if flag == "" {
		flag = s.env.Format
	}
	return output.ParseFormat(flag)
}

// cleanEnabled reads the clean switch from --clean, --env.clean or
// npm_config_env_clean
func (s *session) cleanEnabled() bool {
	return s.cfg.Flag("clean", "false").Bool()
}

// color reports whether w gets styled output
func (s *session) color(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return output.ColorEnabled(f, s.env.ColorDisabled())
}

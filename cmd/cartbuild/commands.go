package cartbuild

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/cartbuild/internal/version"
	"github.com/arthur-debert/cartbuild/pkg/cartridges"
	"github.com/arthur-debert/cartbuild/pkg/cobrax/topics"
	"github.com/arthur-debert/cartbuild/pkg/filesystem"
	"github.com/arthur-debert/cartbuild/pkg/logging"
	"github.com/arthur-debert/cartbuild/pkg/output"
	"github.com/arthur-debert/cartbuild/pkg/types"
)

//go:embed topics/*.md
var topicsFS embed.FS

// NewRootCmd creates the root command. envFlags are the --env.<name>
// arguments already taken out of the command line by
// config.ParseEnvArgs.
func NewRootCmd(envFlags map[string]string) *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{envFlags: envFlags}

	rootCmd := &cobra.Command{
		Use:     "cartbuild",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.site, "site", "", MsgFlagSite)
	rootCmd.PersistentFlags().StringVar(&opts.root, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().BoolVar(&opts.clean, "clean", false, MsgFlagClean)

	rootCmd.AddGroup(&cobra.Group{ID: "build", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newManifestCmd(opts))
	rootCmd.AddCommand(newRevolverCmd(opts))
	rootCmd.AddCommand(newCartridgesCmd(opts))
	rootCmd.AddCommand(newIncludePathsCmd(opts))
	rootCmd.AddCommand(newCleanCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())

	color := stdoutIsTerminal() && os.Getenv("NO_COLOR") == ""
	if _, err := topics.Initialize(rootCmd, topicsFS, "topics", topics.Options{
		Renderer: topics.NewGlamourRenderer(color),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func scopeCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(types.Scopes))
	for _, s := range types.Scopes {
		names = append(names, s.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(output.Formats))
	for _, f := range output.Formats {
		names = append(names, string(f))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// addScopeFlag registers --scope on cmd
func addScopeFlag(cmd *cobra.Command, scope *string) {
	cmd.Flags().StringVarP(scope, "scope", "s", types.ScopeJS.String(), MsgFlagScope)
	_ = cmd.RegisterFlagCompletionFunc("scope", scopeCompletion)
}

// addFormatFlag registers --format on cmd
func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "f", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)
}

func newManifestCmd(opts *rootOptions) *cobra.Command {
	var scopeName, formatName, out string

	cmd := &cobra.Command{
		Use:     "manifest",
		Short:   MsgManifestShort,
		Long:    MsgManifestLong,
		Example: MsgManifestExample,
		GroupID: "build",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			scope, err := types.ParseScope(scopeName)
			if err != nil {
				return err
			}
			format, err := s.format(formatName)
			if err != nil {
				return err
			}

			m, err := output.Build(s.builder, s.revolver, scope)
			if err != nil {
				return fmt.Errorf(MsgErrManifest, err)
			}

			enabled := s.cleanEnabled()
			for _, c := range m.Cartridges {
				if err := filesystem.CleanDirs(s.fs, c.OutputPath, enabled); err != nil {
					return fmt.Errorf(MsgErrClean, c.OutputPath, err)
				}
			}

			log.Info().
				Str("scope", scope.String()).
				Int("cartridges", len(m.Cartridges)).
				Bool("clean", enabled).
				Msg("Manifest built")

			if out == "" {
				return output.Render(cmd.OutOrStdout(), format, m)
			}

			var buf bytes.Buffer
			if err := output.Render(&buf, format, m); err != nil {
				return err
			}

			target := s.builder.Abs(out)
			reporter := output.NewReporter(cmd.ErrOrStderr(), s.color(cmd.ErrOrStderr())).
				WithBuiltMessage(MsgManifestWritten)
			if err := filesystem.WriteFile(s.fs, reporter, target, s.builder.Rel(target), string(format),
				filesystem.Result{Content: buf.Bytes()}); err != nil {
				return fmt.Errorf(MsgErrWriteOut, err)
			}
			return nil
		},
	}

	addScopeFlag(cmd, &scopeName)
	addFormatFlag(cmd, &formatName)
	cmd.Flags().StringVarP(&out, "out", "o", "", MsgFlagOut)
	return cmd
}

func newRevolverCmd(opts *rootOptions) *cobra.Command {
	var scopeName, formatName string

	cmd := &cobra.Command{
		Use:     "revolver",
		Short:   MsgRevolverShort,
		GroupID: "build",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			scope, err := types.ParseScope(scopeName)
			if err != nil {
				return err
			}
			format, err := s.format(formatName)
			if err != nil {
				return err
			}

			set, err := s.revolver.Paths(scope)
			if err != nil {
				return fmt.Errorf(MsgErrRevolver, err)
			}
			return output.Render(cmd.OutOrStdout(), format, output.NewRevolver(set))
		},
	}

	addScopeFlag(cmd, &scopeName)
	addFormatFlag(cmd, &formatName)
	return cmd
}

func newCartridgesCmd(opts *rootOptions) *cobra.Command {
	var (
		scopeName string
		discover  bool
	)

	cmd := &cobra.Command{
		Use:     "cartridges",
		Short:   MsgCartridgesShort,
		GroupID: "build",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			scope, err := types.ParseScope(scopeName)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			list := s.revolver.BuildList(scope)

			if !discover {
				if len(list) == 0 {
					fmt.Fprintln(w, MsgNoCartridges)
					return nil
				}
				for _, name := range list {
					fmt.Fprintln(w, name)
				}
				return nil
			}

			dir := filepath.Join(s.root, "cartridges")
			found, err := cartridges.Discover(s.fs, dir)
			if err != nil {
				return fmt.Errorf(MsgErrDiscover, err)
			}
			if len(found) == 0 {
				fmt.Fprintf(w, MsgNoneDiscovered, dir)
			}
			for _, c := range found {
				fmt.Fprintf(w, "%s\t%s\n", c.Name, s.builder.Rel(c.Dir))
			}
			for _, name := range cartridges.Missing(list, found) {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgMissingCartridge, name, dir)
			}
			return nil
		},
	}

	addScopeFlag(cmd, &scopeName)
	cmd.Flags().BoolVar(&discover, "discover", false, MsgFlagDiscover)
	return cmd
}

func newIncludePathsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "include-paths",
		Short:   MsgIncludePathsShort,
		GroupID: "build",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			for _, p := range s.builder.IncludePaths() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func newCleanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "clean PATH...",
		Short:   MsgCleanShort,
		Long:    MsgCleanLong,
		GroupID: "build",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}

			enabled := s.cleanEnabled()
			for _, arg := range args {
				target := s.builder.Abs(arg)
				if !enabled {
					fmt.Fprintf(cmd.OutOrStdout(), MsgCleanDisabled, s.builder.Rel(target))
					continue
				}
				if err := filesystem.CleanDirs(s.fs, target, true); err != nil {
					return fmt.Errorf(MsgErrClean, arg, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgRemoved, s.builder.Rel(target))
			}
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var scopeName, defaultValue string

	cmd := &cobra.Command{
		Use:     "config NAME",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			scope, err := types.ParseScope(scopeName)
			if err != nil {
				return err
			}

			v := s.cfg.Get(args[0], defaultValue, scope)
			log.Debug().Str("name", args[0]).Str("source", v.Source()).Msg("Resolved setting")

			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}

	addScopeFlag(cmd, &scopeName)
	cmd.Flags().StringVar(&defaultValue, "default", "", MsgFlagDefault)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rootCmd := cmd.Root()
			helpCmd, _, err := rootCmd.Find([]string{"help"})
			if err != nil || helpCmd == nil || helpCmd.Name() != "help" {
				return fmt.Errorf("help command not found")
			}
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

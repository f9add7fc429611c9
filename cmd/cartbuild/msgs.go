package cartbuild

import (
	_ "embed"
	"strings"
)

// Short messages
const (
	MsgRootShort         = "Resolve cartridge paths for storefront builds"
	MsgManifestShort     = "Print the bundler manifest of a scope"
	MsgRevolverShort     = "Print the cartridge override paths and aliases"
	MsgCartridgesShort   = "List the cartridges to build"
	MsgIncludePathsShort = "List the style include paths"
	MsgCleanShort        = "Remove output directories when cleaning is enabled"
	MsgConfigShort       = "Print a resolved configuration value"
	MsgVersionShort      = "Print version information"
	MsgTopicsShort       = "Display available documentation topics"
	MsgTopicsLong        = "Display a list of all available help topics that document configuration beyond command help."

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSite     = "Site whose configuration overrides apply"
	MsgFlagRoot     = "Project root (default $CARTBUILD_ROOT or the working directory)"
	MsgFlagClean    = "Remove output directories before writing"
	MsgFlagScope    = "Asset scope: js or styles"
	MsgFlagFormat   = "Output format: json, yaml or toml (default $CARTBUILD_FORMAT or json)"
	MsgFlagOut      = "Write the manifest to this file instead of stdout"
	MsgFlagDiscover = "List the cartridges found on disk instead of the build list"
	MsgFlagDefault  = "Value returned when the setting is not configured"

	// Status messages
	MsgManifestWritten  = "✔ Manifest written:"
	MsgCleanDisabled    = "Cleaning is not enabled; pass --clean or --env.clean to remove %s\n"
	MsgRemoved          = "✔ Removed: %s\n"
	MsgNoCartridges     = "No cartridges configured."
	MsgNoneDiscovered   = "No cartridges found in %s\n"
	MsgMissingCartridge = "Warning: configured cartridge %s was not found in %s\n"
	MsgVersionFormat    = "cartbuild %s (commit %s, built %s)\n"
	MsgFallbackWarning  = "Warning: no package.json found, using %s as the project root\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrOpen        = "failed to load configuration: %w"
	MsgErrManifest    = "failed to build manifest: %w"
	MsgErrRevolver    = "failed to resolve revolver paths: %w"
	MsgErrDiscover    = "failed to discover cartridges: %w"
	MsgErrClean       = "failed to clean %s: %w"
	MsgErrWriteOut    = "failed to write manifest: %w"
	MsgErrEnvironment = "failed to read environment: %w"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/manifest-long.txt
	msgManifestLongRaw string
	MsgManifestLong    = strings.TrimSpace(msgManifestLongRaw)

	//go:embed msgs/manifest-example.txt
	msgManifestExampleRaw string
	MsgManifestExample    = strings.TrimSpace(msgManifestExampleRaw)

	//go:embed msgs/clean-long.txt
	msgCleanLongRaw string
	MsgCleanLong    = strings.TrimSpace(msgCleanLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)

// Package revolver resolves cartridge overrides.
//
// A storefront is assembled from layered cartridges; when the same
// relative file exists in several of them, the cartridge listed first
// wins. The revolverPath setting lists the layers in priority order as
// comma or space separated descriptors. A descriptor may join several
// names with "::" ("app_custom::custom::site"); all of them become aliases
// of the same directory, the first one being the group leader.
//
// Paths returns the ordered layer list and the alias table a bundler
// uses for module resolution. BuildList returns the cartridges to build.
package revolver

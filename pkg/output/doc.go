// Package output renders what cartbuild computes.
//
// A Manifest gathers everything a bundler configuration needs for one
// scope: the build list with each cartridge's entries, the revolver path
// set and, for styles, the include paths. Render encodes it as JSON, YAML
// or TOML.
//
// Reporter prints the one-line build log ("✔ CSS built: ..." or
// "Error on file: ...") written after each output file. It uses the
// styles in pkg/output/styles when colour is enabled; see ColorEnabled.
package output

// Package paths derives the per-cartridge input paths, output paths and
// bundler entry maps of a cartridge-based storefront build.
//
// Path templates come from configuration (see package config) and may
// contain the {cartridge} token. JS entries are built from optional
// top-level files plus the first existing "main" candidates; SCSS entries
// from every non-partial stylesheet below the configured main directory,
// keyed by locale and output location.
package paths

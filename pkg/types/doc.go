// Package types defines the core types and interfaces shared by the
// cartbuild packages: the FS abstraction, bundler entry maps, per-cartridge
// path data and the revolver path set.
package types

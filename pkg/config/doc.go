// Package config resolves named build settings through layered sources.
//
// Every setting is looked up in a fixed order, first non-empty value wins:
//
//  1. command-line flags: --env.<name>, then --<name>
//  2. npm_config_env_<name> (npm's rendering of a forwarded flag)
//  3. the package config namespace, most specific key first:
//     sites.<site>.<scope>.<name>, sites.<site>.<name>, <scope>.<name>, <name>
//  4. the caller's default
//
// The package config namespace is read from npm_package_config_* variables
// (what npm exports for package.json "config" while running a script),
// then from package.json itself and from an optional cartbuild.toml or
// cartbuild.yaml project file, so builds behave the same with and without
// npm in front.
//
// Values are strings; "true" and "false" read as booleans through
// Value.Bool and Value.Coerce. Built-in defaults live in
// embedded/defaults.toml.
package config

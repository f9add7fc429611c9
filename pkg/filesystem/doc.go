// Package filesystem provides filesystem implementations for cartbuild and
// the build-output utilities layered on them.
//
// The types.FS interface has two implementations: the OS filesystem and an
// afero-backed one used by tests. On top of them sit EnsureDirs (mkdir -p
// for a file's parents), WriteFile (write a build artifact and its source
// map, reporting exactly one result line) and CleanDirs (flag-gated
// recursive removal of an output tree).
package filesystem

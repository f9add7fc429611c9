package types

import (
	"io/fs"
)

// FS is the filesystem interface required for build path resolution and output
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Glob returns the names of all files matching pattern. Patterns
	// support "**" for any number of directories. A pattern whose static
	// base does not exist yields no matches and no error.
	Glob(pattern string) ([]string, error)
}

// Reporter receives one line per written build artifact
type Reporter interface {
	FileWritten(label string, err error)
}

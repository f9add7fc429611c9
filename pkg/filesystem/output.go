package filesystem

import (
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/cartbuild/pkg/errors"
	"github.com/arthur-debert/cartbuild/pkg/logging"
	"github.com/arthur-debert/cartbuild/pkg/types"
	"github.com/rs/zerolog"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Result is the output of one compilation step: the primary artifact and
// an optional source map.
type Result struct {
	Content []byte
	Map     []byte
}

// EnsureDirs creates every missing ancestor directory of filePath.
// Calling it again for the same path is a no-op.
func EnsureDirs(fsys types.FS, filePath string) error {
	dir := filepath.Dir(filePath)
	if info, err := fsys.Stat(dir); err == nil && info.IsDir() {
		return nil
	}

	if err := fsys.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}
	return nil
}

// WriteFile writes result.Content to outputFile, creating parent
// directories as needed. When result.Map is present it is written next
// to the artifact as "<outputFile>.map".
//
// Exactly one line is reported per call: for the primary write when
// there is no map, otherwise for the map write under the label
// "<label>[.<fileType>|.map]". Failures are reported and returned but
// never retried.
func WriteFile(fsys types.FS, reporter types.Reporter, outputFile, label, fileType string, result Result) error {
	logger := logging.GetLogger("filesystem.write")
	if fileType == "" {
		fileType = "css"
	}

	err := EnsureDirs(fsys, outputFile)
	if err == nil {
		if werr := fsys.WriteFile(outputFile, result.Content, filePerm); werr != nil {
			err = errors.Wrapf(werr, errors.ErrFileWrite, "failed to write %s", label)
		}
	}

	if len(result.Map) == 0 {
		report(reporter, label, err)
		logWrite(logger, outputFile, label, err)
		return err
	}

	mapFile := outputFile + ".map"
	mapLabel := fmt.Sprintf("%s[.%s|.map]", label, fileType)
	var mapErr error
	if derr := EnsureDirs(fsys, mapFile); derr != nil {
		mapErr = derr
	} else if werr := fsys.WriteFile(mapFile, result.Map, filePerm); werr != nil {
		mapErr = errors.Wrapf(werr, errors.ErrFileWrite, "failed to write %s", mapLabel)
	}

	report(reporter, mapLabel, mapErr)
	logWrite(logger, mapFile, mapLabel, mapErr)
	return stderrors.Join(err, mapErr)
}

// CleanDirs recursively removes targetPath when enabled is true, which
// callers derive from the clean flag. Removal errors are returned and
// meant to be fatal.
func CleanDirs(fsys types.FS, targetPath string, enabled bool) error {
	logger := logging.GetLogger("filesystem.clean")
	if !enabled {
		logger.Trace().Str("path", targetPath).Msg("Clean flag not set, keeping directory")
		return nil
	}

	if err := fsys.RemoveAll(targetPath); err != nil {
		return errors.Wrapf(err, errors.ErrDirRemove, "failed to remove %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Removed output directory")
	return nil
}

func logWrite(logger zerolog.Logger, path, label string, err error) {
	if err != nil {
		logger.Error().Err(err).Str("file", label).Str("path", path).Msg("Error on file")
		return
	}
	logger.Debug().Str("file", label).Str("path", path).Msg("File written")
}

func report(reporter types.Reporter, label string, err error) {
	if reporter != nil {
		reporter.FileWritten(label, err)
	}
}

package filesystem_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/cartbuild/pkg/errors"
	"github.com/arthur-debert/cartbuild/pkg/filesystem"
	"github.com/arthur-debert/cartbuild/pkg/testutil"
	"github.com/arthur-debert/cartbuild/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	fsys := testutil.NewTestFS()

	require.NoError(t, filesystem.EnsureDirs(fsys, "/a/b/c/file.txt"))

	for _, dir := range []string{"/a", "/a/b", "/a/b/c"} {
		info, err := fsys.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
	_, err := fsys.Stat("/a/b/c/file.txt")
	assert.Error(t, err, "the file itself must not be created")

	// Second call is a no-op
	require.NoError(t, filesystem.EnsureDirs(fsys, "/a/b/c/file.txt"))
	entries, err := fsys.ReadDir("/a/b/c")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFile(t *testing.T) {
	t.Run("without_map_reports_primary_write", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		reporter := &testutil.MockReporter{}
		reporter.On("FileWritten", "default/css/global", nil).Once()

		err := filesystem.WriteFile(fsys, reporter, "/out/default/css/global.css", "default/css/global", "css",
			filesystem.Result{Content: []byte("body{}")})
		require.NoError(t, err)

		data, err := fsys.ReadFile("/out/default/css/global.css")
		require.NoError(t, err)
		assert.Equal(t, "body{}", string(data))

		_, err = fsys.Stat("/out/default/css/global.css.map")
		assert.Error(t, err)
		reporter.AssertExpectations(t)
	})

	t.Run("with_map_reports_map_write_once", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		reporter := &testutil.MockReporter{}
		reporter.On("FileWritten", "global[.css|.map]", nil).Once()

		err := filesystem.WriteFile(fsys, reporter, "/out/global.css", "global", "css",
			filesystem.Result{Content: []byte("body{}"), Map: []byte(`{"version":3}`)})
		require.NoError(t, err)

		data, err := fsys.ReadFile("/out/global.css.map")
		require.NoError(t, err)
		assert.Equal(t, `{"version":3}`, string(data))
		reporter.AssertNumberOfCalls(t, "FileWritten", 1)
		reporter.AssertExpectations(t)
	})

	t.Run("default_file_type_is_css", func(t *testing.T) {
		reporter := &testutil.RecordingReporter{}
		err := filesystem.WriteFile(testutil.NewTestFS(), reporter, "/out/a.css", "a", "",
			filesystem.Result{Content: []byte("a"), Map: []byte("m")})
		require.NoError(t, err)
		require.Len(t, reporter.Lines, 1)
		assert.Equal(t, "a[.css|.map]", reporter.Lines[0].Label)
	})

	t.Run("failure_is_reported_and_returned", func(t *testing.T) {
		fsys := &failingFS{FS: testutil.NewTestFS(), failWrite: true}
		reporter := &testutil.MockReporter{}
		reporter.On("FileWritten", "broken", mock.MatchedBy(func(err error) bool { return err != nil })).Once()

		err := filesystem.WriteFile(fsys, reporter, "/out/broken.css", "broken", "css",
			filesystem.Result{Content: []byte("x")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
		reporter.AssertExpectations(t)
	})

	t.Run("nil_reporter_is_allowed", func(t *testing.T) {
		err := filesystem.WriteFile(testutil.NewTestFS(), nil, "/out/a.css", "a", "css",
			filesystem.Result{Content: []byte("a")})
		assert.NoError(t, err)
	})
}

func TestCleanDirs(t *testing.T) {
	setup := func(t *testing.T) types.FS {
		fsys := testutil.NewTestFS()
		testutil.CreateFiles(t, fsys, "/out", map[string]string{
			"default/css/global.css": "x",
			"fr_FR/css/global.css":   "y",
		})
		return fsys
	}

	t.Run("noop_without_flag", func(t *testing.T) {
		fsys := setup(t)
		require.NoError(t, filesystem.CleanDirs(fsys, "/out", false))

		_, err := fsys.Stat("/out/default/css/global.css")
		assert.NoError(t, err)
	})

	t.Run("removes_tree_with_flag", func(t *testing.T) {
		fsys := setup(t)
		require.NoError(t, filesystem.CleanDirs(fsys, "/out", true))

		_, err := fsys.Stat("/out")
		assert.Error(t, err)
	})

	t.Run("removal_errors_propagate", func(t *testing.T) {
		fsys := &failingFS{FS: setup(t), failRemove: true}
		err := filesystem.CleanDirs(fsys, "/out", true)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDirRemove))
	})
}

type failingFS struct {
	types.FS
	failWrite  bool
	failRemove bool
}

func (f *failingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.failWrite {
		return stderrors.New("read-only filesystem")
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *failingFS) RemoveAll(path string) error {
	if f.failRemove {
		return stderrors.New("device busy")
	}
	return f.FS.RemoveAll(path)
}

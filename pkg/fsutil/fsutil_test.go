package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rocketlab/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rocket.png")
		require.NoError(t, os.WriteFile(path, []byte("rocket"), 0o644))

		got, err := fsutil.ReadFile(context.Background(), path, 0)
		require.NoError(t, err)
		assert.Equal(t, "rocket", string(got))
	})

	t.Run("classifies missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.png"), 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("classifies directory", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), t.TempDir(), 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("enforces limit", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "big.png")
		require.NoError(t, os.WriteFile(path, make([]byte, 128), 0o644))

		_, err := fsutil.ReadFile(context.Background(), path, 64)
		require.Error(t, err)
		assert.True(t, errors.Is(err, fsutil.ErrTooLarge))

		got, err := fsutil.ReadFile(context.Background(), path, 128)
		require.NoError(t, err)
		assert.Len(t, got, 128)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fsutil.ReadFile(ctx, "whatever.png", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "rocket.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.True(t, fsutil.Exists(path))
	assert.False(t, fsutil.Exists(dir))
	assert.False(t, fsutil.Exists(filepath.Join(dir, "missing.png")))
}

func TestBackup(t *testing.T) {
	t.Parallel()

	t.Run("copies existing file to sidecar", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".rocketlab.yml")
		require.NoError(t, os.WriteFile(path, []byte("model: {}\n"), 0o600))

		backupPath, err := fsutil.Backup(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, path+fsutil.BackupSuffix, backupPath)

		got, err := os.ReadFile(backupPath)
		require.NoError(t, err)
		assert.Equal(t, "model: {}\n", string(got))

		info, err := os.Stat(backupPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("replaces previous sidecar", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "chart.png")
		require.NoError(t, os.WriteFile(path, []byte("second"), 0o644))
		require.NoError(t, os.WriteFile(fsutil.BackupPath(path), []byte("first"), 0o644))

		_, err := fsutil.Backup(context.Background(), path)
		require.NoError(t, err)

		got, err := os.ReadFile(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})

	t.Run("missing original is a no-op", func(t *testing.T) {
		t.Parallel()

		backupPath, err := fsutil.Backup(context.Background(), filepath.Join(t.TempDir(), "none.png"))
		require.NoError(t, err)
		assert.Empty(t, backupPath)
	})
}

package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/navstrip"
	"github.com/fwojciec/navstrip/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ navstrip.FileStore = &fs.Store{}
}

func TestStore_ReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file as text", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(path, []byte("<p>héllo</p>\n"), 0644))

		got, err := fs.NewStore().ReadFile(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "<p>héllo</p>\n", got)
	})

	t.Run("rejects invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "latin1.html")
		require.NoError(t, os.WriteFile(path, []byte{'<', 'p', '>', 0xe9, '<'}, 0644))

		_, err := fs.NewStore().ReadFile(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, navstrip.EINVALID, navstrip.ErrorCode(err))
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewStore().ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.html"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestStore_WriteFile(t *testing.T) {
	t.Parallel()

	t.Run("replaces content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "index.html")
		require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))

		err := fs.NewStore().WriteFile(context.Background(), path, "new")

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("keeps permission bits", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

		err := fs.NewStore().WriteFile(context.Background(), path, "new")

		require.NoError(t, err)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("leaves no temporary files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "index.html")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		require.NoError(t, fs.NewStore().WriteFile(context.Background(), path, "new"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "index.html", entries[0].Name())
	})

	t.Run("writes through symlink to its target", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "target.html")
		link := filepath.Join(dir, "link.html")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0644))
		require.NoError(t, os.Symlink(target, link))

		err := fs.NewStore().WriteFile(context.Background(), link, "new")

		require.NoError(t, err)
		info, err := os.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink, "link should remain a symlink")
		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("returns error when directory is missing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "index.html")

		err := fs.NewStore().WriteFile(context.Background(), path, "new")

		require.Error(t, err)
	})
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/html2md/pkg/types"
)

func TestResourceDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/work", "My Page_files"), ResourceDir("/work/My Page.html"))
	assert.Equal(t, filepath.Join("docs", "index_files"), ResourceDir("docs/index.htm"))
}

func TestReferenced(t *testing.T) {
	markers := types.DefaultConfig().Noise.ImageMarkers
	markup := `<header><img src="p_files/logo.png"><img src="p_files/search.svg"></header>` +
		`<h1>T</h1><img src="p_files/fig.png"><img src="other/fig.png"><img src="p_files/_x.png">`

	assert.Equal(t, []string{"logo.png", "fig.png"}, Referenced(markup, markers))
}

func TestCopy(t *testing.T) {
	fs := afero.NewMemMapFs()
	mtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	writeFile(t, fs, "/work/page_files/fig.png", "png-bytes", 0o600)
	require.NoError(t, fs.Chtimes("/work/page_files/fig.png", mtime, mtime))
	writeFile(t, fs, "/work/page_files/my chart.svg", "<svg/>", 0o644)
	writeFile(t, fs, "/work/page_files/unreferenced.png", "x", 0o644)
	require.NoError(t, fs.MkdirAll("/work/page_files/dir.png", 0o755))
	require.NoError(t, fs.MkdirAll("/work/out/assets", 0o755))

	n, err := Copy(fs, "/work/page_files", "/work/out/assets",
		[]string{"fig.png", "my%20chart.svg", "missing.png", "dir.png"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := afero.ReadFile(fs, "/work/out/assets/fig.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	info, err := fs.Stat("/work/out/assets/fig.png")
	require.NoError(t, err)
	assert.Equal(t, 0o600, int(info.Mode().Perm()))
	assert.True(t, info.ModTime().Equal(mtime), "mod time %v, want %v", info.ModTime(), mtime)

	exists, err := afero.Exists(fs, "/work/out/assets/my chart.svg")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = afero.Exists(fs, "/work/out/assets/unreferenced.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCopy_MissingResourceDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	n, err := Copy(fs, "/work/page_files", "/work/out/assets", []string{"fig.png"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCopy_EncodedTraversalIgnored(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/secret.png", "s", 0o644)
	require.NoError(t, fs.MkdirAll("/work/page_files", 0o755))
	require.NoError(t, fs.MkdirAll("/work/out/assets", 0o755))

	n, err := Copy(fs, "/work/page_files", "/work/out/assets", []string{"..%2Fsecret.png"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRemoveOriginals(t *testing.T) {
	t.Run("file and resource directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/work/page.html", "<h1>x</h1>", 0o644)
		writeFile(t, fs, "/work/page_files/fig.png", "png", 0o644)

		removed, err := RemoveOriginals(fs, "/work/page.html", "/work/page_files")
		require.NoError(t, err)
		assert.Equal(t, []string{"/work/page.html", "/work/page_files"}, removed)

		for _, p := range removed {
			exists, err := afero.Exists(fs, p)
			require.NoError(t, err)
			assert.False(t, exists, p)
		}
	})

	t.Run("no resource directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/work/page.html", "<h1>x</h1>", 0o644)

		removed, err := RemoveOriginals(fs, "/work/page.html", "/work/page_files")
		require.NoError(t, err)
		assert.Equal(t, []string{"/work/page.html"}, removed)
	})

	t.Run("missing html file", func(t *testing.T) {
		_, err := RemoveOriginals(afero.NewMemMapFs(), "/work/page.html", "/work/page_files")
		assert.Error(t, err)
	})
}

func writeFile(t *testing.T, fs afero.Fs, path, content string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), perm))
}

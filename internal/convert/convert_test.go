// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/html2md/pkg/types"
)

const simplePage = `<!DOCTYPE html>
<html><head>
<link rel="canonical" href="https://x.test/a">
<title>Title</title>
</head><body>
<h1>Title</h1>
<h2>Intro</h2>
<p>This introduction is long enough to keep.</p>
</body></html>
`

// setupPage writes name with content into a fresh temp dir and returns the
// page path and the dir.
func setupPage(t *testing.T, name, content string) (htmlPath, dir string) {
	t.Helper()
	dir = t.TempDir()
	htmlPath = filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(htmlPath, []byte(content), 0o644))
	return htmlPath, dir
}

func listDir(t *testing.T, fs afero.Fs, dir string) []string {
	t.Helper()
	entries, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	sort.Strings(names)
	return names
}

func TestConvert_EndToEnd(t *testing.T) {
	htmlPath, dir := setupPage(t, "page.html", simplePage)
	fs := afero.NewOsFs()
	var log bytes.Buffer

	res, err := New(fs, types.DefaultConfig(), &log).Convert(context.Background(), htmlPath)
	require.NoError(t, err)

	assert.Equal(t, types.ConversionVerified, res.Status)
	assert.True(t, res.Verdict.Pass)
	assert.Equal(t, filepath.Join(dir, "1-page"), res.OutputDir)
	assert.Equal(t, "https://x.test/a", res.SourceURL)

	data, err := os.ReadFile(filepath.Join(dir, "1-page", "README.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Title\n\n[Source](https://x.test/a)\n\n## Intro\n\n"), string(data))
	assert.Equal(t, "# Title\n\n[Source](https://x.test/a)\n\n## Intro\n\nThis introduction is long enough to keep.\n", string(data))

	assert.Empty(t, listDir(t, fs, filepath.Join(dir, "1-page", "assets")))

	_, err = os.Stat(htmlPath)
	assert.True(t, os.IsNotExist(err), "page.html should be deleted")
	assert.Equal(t, []string{htmlPath}, res.Deleted)

	out := log.String()
	assert.Contains(t, out, "Found source URL: https://x.test/a")
	assert.Contains(t, out, "Creating directory: 1-page")
	assert.Contains(t, out, "Deleted: page.html")
	assert.Contains(t, out, "Conversion complete! Directory: 1-page/")
}

func TestConvert_ImagesAndSequence(t *testing.T) {
	page := `<html><body><h1>My Guide</h1>
<h2>Setup</h2>
<img src="./My Guide &amp; Tips_files/step1.png" alt="Step one">
<img src="./My Guide &amp; Tips_files/search.svg">
<p>Install the tool before anything else.</p>
<pre><code>1pip install thing</code></pre>
</body></html>`

	fs := afero.NewMemMapFs()
	write := func(path, content string) {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	write("/work/My Guide & Tips.html", page)
	write("/work/My Guide & Tips_files/step1.png", "png")
	write("/work/My Guide & Tips_files/search.svg", "<svg/>")
	require.NoError(t, fs.MkdirAll("/work/3-foo", 0o755))
	require.NoError(t, fs.MkdirAll("/work/7-bar", 0o755))
	write("/work/notes.txt", "unnumbered")

	var log bytes.Buffer
	res, err := New(fs, types.DefaultConfig(), &log).Convert(context.Background(), "/work/My Guide & Tips.html")
	require.NoError(t, err)

	assert.Equal(t, "/work/8-my-guide-and-tips", res.OutputDir)
	assert.Equal(t, 1, res.ImagesCopied)
	assert.Equal(t, []string{"step1.png"}, listDir(t, fs, "/work/8-my-guide-and-tips/assets"))

	md, err := afero.ReadFile(fs, "/work/8-my-guide-and-tips/README.md")
	require.NoError(t, err)
	assert.Equal(t, "# My Guide\n\n## Setup\n\n![Step one](assets/step1.png)\n\n"+
		"Install the tool before anything else.\n\n```python\npip install thing\n```\n", string(md))

	assert.Equal(t, []string{"3-foo", "7-bar", "8-my-guide-and-tips", "notes.txt"}, listDir(t, fs, "/work"))
	assert.Contains(t, log.String(), "Copied 1 image(s) to assets/")
	assert.Contains(t, log.String(), "Deleted: My Guide & Tips_files")
}

func TestConvert_InputNotFound(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work", 0o755))
	var log bytes.Buffer

	res, err := New(fs, types.DefaultConfig(), &log).Convert(context.Background(), "/work/missing.html")
	assert.ErrorIs(t, err, types.ErrInputNotFound)
	assert.Equal(t, types.ConversionNone, res.Status)
	assert.Empty(t, listDir(t, fs, "/work"))
	assert.Contains(t, log.String(), "HTML file not found")
}

func TestConvert_NoTitleHasNoSideEffects(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{name: "no headings", markup: "<html><body><p>Just some paragraph text.</p></body></html>"},
		{name: "only level-2 headings", markup: "<body><h2>Section</h2><p>Paragraph text here.</p></body>"},
		{name: "level-1 heading with nested markup", markup: "<body><h1><a>Title</a></h1></body>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, fs.MkdirAll("/work/page_files", 0o755))
			require.NoError(t, afero.WriteFile(fs, "/work/page.html", []byte(tt.markup), 0o644))
			require.NoError(t, afero.WriteFile(fs, "/work/page_files/a.png", []byte("png"), 0o644))
			before := listDir(t, fs, "/work")

			var log bytes.Buffer
			res, err := New(fs, types.DefaultConfig(), &log).Convert(context.Background(), "/work/page.html")
			assert.ErrorIs(t, err, types.ErrContentNotFound)
			assert.Equal(t, types.ConversionFailed, res.Status)
			assert.Equal(t, before, listDir(t, fs, "/work"))
			assert.Equal(t, []string{"a.png"}, listDir(t, fs, "/work/page_files"))
			assert.Contains(t, log.String(), "Could not find main content")
		})
	}
}

func TestConvert_VerificationMismatchKeepsOriginals(t *testing.T) {
	// Text before the first section is verified but never extracted.
	var preamble strings.Builder
	for i := 0; i < 60; i++ {
		fmt.Fprintf(&preamble, "lost%d ", i)
	}
	page := "<body><h1>Title</h1><p>" + preamble.String() + "</p>" +
		"<h2>Intro</h2><p>This introduction is long enough to keep.</p></body>"

	htmlPath, dir := setupPage(t, "page.html", page)
	fs := afero.NewOsFs()
	var log bytes.Buffer

	res, err := New(fs, types.DefaultConfig(), &log).Convert(context.Background(), htmlPath)
	require.ErrorIs(t, err, types.ErrVerificationMismatch)

	assert.Equal(t, types.ConversionMismatch, res.Status)
	assert.False(t, res.Verdict.Pass)
	assert.Len(t, res.Verdict.MissingWords, 61)
	assert.Contains(t, res.Verdict.MissingWords, "lost0")
	assert.Contains(t, res.Verdict.MissingWords, "intro")
	assert.Empty(t, res.Deleted)

	_, err = os.Stat(htmlPath)
	assert.NoError(t, err, "original must be kept")
	_, err = os.Stat(filepath.Join(dir, "1-page", "README.md"))
	assert.NoError(t, err, "output must be written")
	assert.Contains(t, log.String(), "Files not deleted")
}

func TestConvert_KeepSource(t *testing.T) {
	htmlPath, dir := setupPage(t, "page.html", simplePage)
	cfg := types.DefaultConfig()
	cfg.Output.KeepSource = true
	var log bytes.Buffer

	res, err := New(afero.NewOsFs(), cfg, &log).Convert(context.Background(), htmlPath)
	require.NoError(t, err)
	assert.Equal(t, types.ConversionVerified, res.Status)
	assert.Empty(t, res.Deleted)

	_, err = os.Stat(htmlPath)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "1-page", "README.md"))
	assert.NoError(t, err)
}

func TestConvert_SecondRunGetsNextSequence(t *testing.T) {
	htmlPath, dir := setupPage(t, "page.html", simplePage)
	cfg := types.DefaultConfig()
	cfg.Output.KeepSource = true
	conv := New(afero.NewOsFs(), cfg, &bytes.Buffer{})

	_, err := conv.Convert(context.Background(), htmlPath)
	require.NoError(t, err)
	res, err := conv.Convert(context.Background(), htmlPath)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "2-page"), res.OutputDir)
}

func TestConvert_CancelledBeforeWrite(t *testing.T) {
	htmlPath, dir := setupPage(t, "page.html", simplePage)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New(afero.NewOsFs(), types.DefaultConfig(), &bytes.Buffer{}).Convert(ctx, htmlPath)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, types.ConversionExtracted, res.Status)
	assert.Equal(t, []string{"page.html"}, listDir(t, afero.NewOsFs(), dir))
}

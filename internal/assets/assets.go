// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assets moves image files from a saved page's resource directory
// into the conversion output and removes the originals afterwards.
package assets

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/html2md/internal/extract"
	"github.com/pdiddy/html2md/internal/layout"
)

// resourceSuffix is the browser "save page" naming convention for the
// directory holding a page's resources.
const resourceSuffix = "_files"

// ResourceDir returns the companion resource directory of htmlPath,
// e.g. "dir/page_files" for "dir/page.html".
func ResourceDir(htmlPath string) string {
	return filepath.Join(filepath.Dir(htmlPath), layout.Stem(htmlPath)+resourceSuffix)
}

// Referenced returns the unique image filenames referenced anywhere in
// markup, in first-seen order, using the same skip rules as extraction.
func Referenced(markup string, markers []string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, img := range extract.ScanImages(markup, markers) {
		if seen[img.Filename] {
			continue
		}
		seen[img.Filename] = true
		names = append(names, img.Filename)
	}
	return names
}

// Copy copies each named file found in srcDir into dstDir, keeping its mode
// and modification time, and returns how many were copied. A missing srcDir
// or a missing file is skipped. Names that were percent-encoded in the
// markup are looked up and written in decoded form.
func Copy(fs afero.Fs, srcDir, dstDir string, names []string) (int, error) {
	ok, err := afero.DirExists(fs, srcDir)
	if err != nil {
		return 0, fmt.Errorf("checking resource directory %s: %w", srcDir, err)
	}
	if !ok {
		return 0, nil
	}

	copied := 0
	for _, name := range names {
		src, found := locate(fs, srcDir, name)
		if !found {
			continue
		}
		dst := filepath.Join(dstDir, filepath.Base(src))
		if err := copyFile(fs, src, dst); err != nil {
			return copied, fmt.Errorf("copying %s: %w", name, err)
		}
		copied++
	}
	return copied, nil
}

// locate finds name in dir, trying its percent-decoded form second.
func locate(fs afero.Fs, dir, name string) (string, bool) {
	candidates := []string{name}
	decoded, err := url.PathUnescape(name)
	if err == nil && decoded != name && !strings.ContainsAny(decoded, `/\`) {
		candidates = append(candidates, decoded)
	}
	for _, c := range candidates {
		p := filepath.Join(dir, c)
		if info, err := fs.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

func copyFile(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return fs.Chtimes(dst, info.ModTime(), info.ModTime())
}

// RemoveOriginals deletes htmlPath and, when present, resourceDir. It returns
// the paths it removed.
func RemoveOriginals(fs afero.Fs, htmlPath, resourceDir string) ([]string, error) {
	if err := fs.Remove(htmlPath); err != nil {
		return nil, fmt.Errorf("removing %s: %w", htmlPath, err)
	}
	removed := []string{htmlPath}

	ok, err := afero.DirExists(fs, resourceDir)
	if err != nil {
		return removed, fmt.Errorf("checking resource directory %s: %w", resourceDir, err)
	}
	if ok {
		if err := fs.RemoveAll(resourceDir); err != nil {
			return removed, fmt.Errorf("removing %s: %w", resourceDir, err)
		}
		removed = append(removed, resourceDir)
	}
	return removed, nil
}

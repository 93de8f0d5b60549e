// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout names the output directory of a conversion:
// "<seq>-<slug>" next to the input file.
package layout

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// fallbackSlug is used when a filename has no slug characters at all.
const fallbackSlug = "untitled"

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	spaceRun     = regexp.MustCompile(`\s+`)
	dashRun      = regexp.MustCompile(`-+`)
	seqPrefix    = regexp.MustCompile(`^(\d+)-`)
)

// Stem returns filename without directory and without a .html or .htm
// extension (any case).
func Stem(filename string) string {
	base := filepath.Base(filename)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".html", ".htm":
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base
}

// Slug turns an input filename into a directory-safe name: lowercase, "&"
// spelled "and", only [a-z0-9 -] kept, whitespace runs and repeated hyphens
// folded into one hyphen, no leading or trailing hyphens.
func Slug(filename string) string {
	s := strings.ToLower(Stem(filename))
	s = strings.ReplaceAll(s, "&", "and")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = spaceRun.ReplaceAllString(s, "-")
	s = dashRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallbackSlug
	}
	return s
}

// NextSequence returns one more than the largest "<digits>-" prefix among
// the direct entries of dir, or 1 when no entry is numbered.
func NextSequence(fs afero.Fs, dir string) (int, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return 0, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	highest := 0
	for _, e := range entries {
		m := seqPrefix.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		highest = max(highest, n)
	}
	return highest + 1, nil
}

// DirName joins a sequence number and a slug.
func DirName(seq int, slug string) string {
	return fmt.Sprintf("%d-%s", seq, slug)
}

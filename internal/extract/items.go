// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/html2md/pkg/types"
)

// minParagraphChars is the length a paragraph must exceed to be kept.
const minParagraphChars = 10

var (
	imgTag     = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	srcAttr    = regexp.MustCompile(`(?i)\ssrc\s*=\s*["']([^"']+)["']`)
	altAttr    = regexp.MustCompile(`(?i)\salt\s*=\s*["']([^"']*)["']`)
	preBlock   = regexp.MustCompile(`(?is)<pre\b[^>]*>(.*?)</pre>`)
	paragraph  = regexp.MustCompile(`(?is)<p\b[^>]*>(.*?)</p>`)
	inlineCode = regexp.MustCompile(`(?i)<code[^>]*>([^<]+)</code>`)
	anyTag     = regexp.MustCompile(`<[^>]+>`)

	// lineGutter matches an editor line number glued to the first token of
	// a code line, e.g. "12def".
	lineGutter = regexp.MustCompile(`^\d+([A-Za-z#])`)
)

// ScanImages returns the <img> references in markup that are content rather
// than page chrome, in scan order.
func ScanImages(markup string, markers []string) []types.Image {
	var images []types.Image
	for _, tag := range imgTag.FindAllString(markup, -1) {
		src := srcAttr.FindStringSubmatch(tag)
		if src == nil {
			continue
		}
		name, ok := ImageFilename(src[1], markers)
		if !ok {
			continue
		}
		var alt string
		if m := altAttr.FindStringSubmatch(tag); m != nil {
			alt = altText(m[1])
		}
		images = append(images, types.Image{Filename: name, Alt: alt})
	}
	return images
}

// ImageFilename returns the final path segment of src. It reports false for
// sources containing one of markers (case-insensitive), and for names that
// are empty, dot segments, or start with an underscore.
func ImageFilename(src string, markers []string) (string, bool) {
	lower := strings.ToLower(src)
	for _, m := range markers {
		if m != "" && strings.Contains(lower, strings.ToLower(m)) {
			return "", false
		}
	}

	name := src[strings.LastIndex(src, "/")+1:]
	if name == "" || name == "." || name == ".." || strings.HasPrefix(name, "_") {
		return "", false
	}
	return name, true
}

// altText keeps alt text on one line and out of the Markdown link syntax.
func altText(s string) string {
	s = strings.NewReplacer("[", "", "]", "").Replace(html.UnescapeString(s))
	return CollapseSpace(s)
}

// ScanCode returns every non-empty <pre> block of markup as code text.
func ScanCode(markup string) []types.Block {
	var blocks []types.Block
	for _, m := range preBlock.FindAllStringSubmatchIndex(markup, -1) {
		text := CleanCode(markup[m[2]:m[3]])
		if text == "" {
			continue
		}
		blocks = append(blocks, types.Block{Offset: m[0], Kind: types.BlockCode, Text: text})
	}
	return blocks
}

// CleanCode strips tags from the inner HTML of a <pre>, decodes entities,
// removes line-number gutters, and trims the result.
func CleanCode(inner string) string {
	text := html.UnescapeString(anyTag.ReplaceAllString(inner, ""))
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = lineGutter.ReplaceAllString(line, "${1}")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ParagraphFilter selects <p> spans that hold article text.
type ParagraphFilter struct {
	// Markers reject a paragraph whose raw HTML contains any of them.
	Markers []string

	// Prefixes reject a paragraph whose cleaned text starts with any of them.
	Prefixes []string

	// WrapCode renders inline <code> as backtick code instead of plain text.
	WrapCode bool
}

// Scan returns the kept paragraphs of markup with their offsets.
func (f ParagraphFilter) Scan(markup string) []types.Block {
	var blocks []types.Block
	for _, m := range paragraph.FindAllStringSubmatchIndex(markup, -1) {
		inner := markup[m[2]:m[3]]
		if containsAny(inner, f.Markers) {
			continue
		}
		text := f.Text(inner)
		if utf8.RuneCountInString(text) <= minParagraphChars || hasAnyPrefix(text, f.Prefixes) {
			continue
		}
		blocks = append(blocks, types.Block{Offset: m[0], Kind: types.BlockParagraph, Text: text})
	}
	return blocks
}

// Text converts the inner HTML of a paragraph to a single line of text.
func (f ParagraphFilter) Text(inner string) string {
	repl := "${1}"
	if f.WrapCode {
		repl = "`${1}`"
	}
	text := inlineCode.ReplaceAllString(inner, repl)
	text = anyTag.ReplaceAllString(text, "")
	return CollapseSpace(html.UnescapeString(text))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

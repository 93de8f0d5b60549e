// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"html"
	"regexp"
	"strings"

	"github.com/pdiddy/html2md/pkg/types"
)

var (
	canonicalRelFirst  = regexp.MustCompile(`(?i)<link\s+rel=["']canonical["']\s+href=["']([^"']+)["']`)
	canonicalHrefFirst = regexp.MustCompile(`(?i)<link\s+href=["']([^"']+)["']\s+rel=["']canonical["']`)
	savedFromComment   = regexp.MustCompile(`(?i)<!--\s*saved\s+from\s+url=\([^)]+\)(\S+)`)

	titleHeading   = regexp.MustCompile(`(?is)<h1[^>]*>([^<]+)</h1>`)
	bodyEnd        = regexp.MustCompile(`(?i)<script|</body`)
	sectionStart   = regexp.MustCompile(`(?i)<h2[^>]*>`)
	sectionHeading = regexp.MustCompile(`(?i)^([^<]+)</h2>`)
)

// SourceURL returns the page's canonical link, falling back to the URL in a
// "saved from url=" comment. It returns "" when neither is present.
func SourceURL(markup string) string {
	for _, re := range []*regexp.Regexp{canonicalRelFirst, canonicalHrefFirst, savedFromComment} {
		if m := re.FindStringSubmatch(markup); m != nil {
			return m[1]
		}
	}
	return ""
}

// SplitTitle locates the first level-1 heading with plain-text content and
// returns its text and the markup after it, up to the first <script tag or
// closing body tag. Without such a terminator the body runs to the end of
// markup.
func SplitTitle(markup string) (title, body string, err error) {
	m := titleHeading.FindStringSubmatchIndex(markup)
	if m == nil {
		return "", "", types.ErrContentNotFound
	}

	body = markup[m[1]:]
	if end := bodyEnd.FindStringIndex(body); end != nil {
		body = body[:end[0]]
	}
	return inlineText(markup[m[2]:m[3]]), body, nil
}

// SplitSections splits body at each level-2 heading. Markup before the first
// heading is preamble and is dropped, as are chunks whose heading contains
// nested tags.
func SplitSections(body string) []types.Section {
	chunks := sectionStart.Split(body, -1)

	var sections []types.Section
	for _, chunk := range chunks[1:] {
		m := sectionHeading.FindStringSubmatchIndex(chunk)
		if m == nil {
			continue
		}
		sections = append(sections, types.Section{
			Heading: inlineText(chunk[m[2]:m[3]]),
			Content: chunk[m[1]:],
		})
	}
	return sections
}

// inlineText decodes entities and folds a heading onto one line.
func inlineText(s string) string {
	return CollapseSpace(html.UnescapeString(s))
}

// CollapseSpace replaces every run of Unicode whitespace with one space and
// trims the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

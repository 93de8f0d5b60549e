// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package verify checks that generated Markdown kept the text of the markup
// it came from. Both sides are reduced to a lowercase, whitespace-collapsed
// signature and compared exactly, then by word sets within a tolerance.
package verify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/html2md/internal/extract"
	"github.com/pdiddy/html2md/pkg/types"
)

var (
	hiddenBlocks = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
		regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`),
		regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`),
	}
	anyHeading = regexp.MustCompile(`(?i)<h[1-6][^>]*>([^<]+)</h[1-6]>`)

	mdHeadingLine = regexp.MustCompile(`(?m)^#+\s+.*$`)
	mdSourceLink  = regexp.MustCompile(`\[Source\]\([^)]+\)`)
	mdFenced      = regexp.MustCompile("(?s)```[^`]*?```")
	mdFenceMarker = regexp.MustCompile("```[^`\n]*\n?")
	mdInlineCode  = regexp.MustCompile("`([^`]+)`")
	mdImage       = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	mdLink        = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// Verifier compares markup and Markdown signatures.
type Verifier struct {
	badges     map[string]bool
	paragraphs extract.ParagraphFilter
	tolerance  int
}

// New creates a Verifier. Paragraph prefixes in noise are deliberately not
// applied on this side.
func New(noise types.NoiseConfig, cfg types.VerificationConfig) *Verifier {
	badges := make(map[string]bool, len(noise.HeadingBadges))
	for _, b := range noise.HeadingBadges {
		badges[b] = true
	}
	return &Verifier{
		badges:     badges,
		paragraphs: extract.ParagraphFilter{Markers: noise.ParagraphMarkers},
		tolerance:  cfg.Tolerance,
	}
}

// Verify compares the signatures of markup and md.
func (v *Verifier) Verify(markup, md string) types.Verdict {
	return Compare(v.MarkupSignature(markup), MarkdownSignature(md), v.tolerance)
}

// MarkupSignature reduces the body of markup to its heading, paragraph, and
// code text, in that order. It returns "" when markup has no level-1 heading.
func (v *Verifier) MarkupSignature(markup string) string {
	_, body, err := extract.SplitTitle(markup)
	if err != nil {
		return ""
	}
	for _, re := range hiddenBlocks {
		body = re.ReplaceAllString(body, "")
	}

	var parts []string
	for _, m := range anyHeading.FindAllStringSubmatch(body, -1) {
		text := strings.TrimSpace(m[1])
		if text != "" && !v.badges[text] {
			parts = append(parts, text)
		}
	}
	for _, p := range v.paragraphs.Scan(body) {
		parts = append(parts, p.Text)
	}
	for _, c := range extract.ScanCode(body) {
		parts = append(parts, c.Text)
	}

	return normalize(strings.Join(parts, " "))
}

// MarkdownSignature reduces md to its prose and code text. Heading lines,
// the source link, fence markers, and images are dropped; inline code and
// links keep their text.
func MarkdownSignature(md string) string {
	md = mdHeadingLine.ReplaceAllString(md, "")
	md = mdSourceLink.ReplaceAllString(md, "")
	md = mdFenced.ReplaceAllStringFunc(md, func(block string) string {
		return mdFenceMarker.ReplaceAllString(block, "")
	})
	md = mdInlineCode.ReplaceAllString(md, "${1}")
	md = mdImage.ReplaceAllString(md, "")
	md = mdLink.ReplaceAllString(md, "${1}")
	return normalize(md)
}

// Compare passes identical signatures outright. Otherwise it passes when the
// words found only in markupSig and the words found only in mdSig each number
// fewer than tolerance.
func Compare(markupSig, mdSig string, tolerance int) types.Verdict {
	if markupSig == mdSig {
		return types.Verdict{Exact: true, Pass: true}
	}

	markupWords := wordSet(markupSig)
	mdWords := wordSet(mdSig)
	missing := difference(markupWords, mdWords)
	extra := difference(mdWords, markupWords)

	return types.Verdict{
		Pass:         len(missing) < tolerance && len(extra) < tolerance,
		MissingWords: missing,
		ExtraWords:   extra,
	}
}

func normalize(s string) string {
	return strings.ToLower(extract.CollapseSpace(s))
}

func wordSet(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		words[w] = true
	}
	return words
}

// difference returns the sorted words of a that are not in b.
func difference(a, b map[string]bool) []string {
	var out []string
	for w := range a {
		if !b[w] {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/pdiddy/html2md/pkg/types"
)

var extraNewlines = regexp.MustCompile(`\n{3,}`)

// Render assembles the Markdown for doc: title, optional source link, then
// each section heading with its images and its offset-ordered blocks. Runs of
// three or more newlines are collapsed to a blank line and the text ends with
// exactly one newline.
func Render(doc types.Document, cfg types.ExtractionConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", doc.Title)
	if doc.SourceURL != "" {
		fmt.Fprintf(&b, "\n[Source](%s)\n", doc.SourceURL)
	}

	for _, s := range doc.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", s.Heading)
		for _, img := range s.Images {
			fmt.Fprintf(&b, "![%s](%s)\n\n", img.Alt, path.Join(cfg.AssetsDir, img.Filename))
		}
		for _, blk := range s.Blocks {
			switch blk.Kind {
			case types.BlockParagraph:
				fmt.Fprintf(&b, "%s\n\n", blk.Text)
			case types.BlockCode:
				fmt.Fprintf(&b, "\n```%s\n%s\n```\n\n", cfg.CodeLanguage, blk.Text)
			}
		}
	}

	out := extraNewlines.ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(out) + "\n"
}

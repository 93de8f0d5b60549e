// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a browser-saved HTML page into a Document and renders
// it as Markdown. Markup is scanned with regular expressions tuned for the
// known page shape; there is no tag tree.
package extract

import (
	"sort"

	"github.com/pdiddy/html2md/pkg/types"
)

// Extractor scans markup into a Document using the configured noise lists.
type Extractor struct {
	noise      types.NoiseConfig
	paragraphs ParagraphFilter
}

// New creates an Extractor. Paragraph prefixes from noise are applied here
// and nowhere else.
func New(noise types.NoiseConfig) *Extractor {
	return &Extractor{
		noise: noise,
		paragraphs: ParagraphFilter{
			Markers:  noise.ParagraphMarkers,
			Prefixes: noise.ParagraphPrefixes,
			WrapCode: true,
		},
	}
}

// Extract splits markup into title, source URL, and sections, then fills each
// section's images and blocks. It returns types.ErrContentNotFound when the
// markup has no level-1 heading.
func (e *Extractor) Extract(markup string) (types.Document, error) {
	title, body, err := SplitTitle(markup)
	if err != nil {
		return types.Document{}, err
	}

	doc := types.Document{
		Title:     title,
		SourceURL: SourceURL(markup),
		Body:      body,
	}
	for _, s := range SplitSections(body) {
		s.Images = e.Images(s.Content)
		s.Blocks = e.Blocks(s.Content)
		doc.Sections = append(doc.Sections, s)
	}
	return doc, nil
}

// Images returns the content images of a section in scan order.
func (e *Extractor) Images(content string) []types.Image {
	return ScanImages(content, e.noise.ImageMarkers)
}

// Blocks returns the code blocks and paragraphs of a section merged by their
// offset within content.
func (e *Extractor) Blocks(content string) []types.Block {
	blocks := ScanCode(content)
	blocks = append(blocks, e.paragraphs.Scan(content)...)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Offset < blocks[j].Offset
	})
	return blocks
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BlockKind distinguishes the two offset-ordered content items of a section.
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph"
	BlockCode      BlockKind = "code"
)

// Document is one saved HTML page as it flows through the pipeline.
// It is computed fresh per invocation and never persisted.
type Document struct {
	// Title is the text of the first level-1 heading.
	Title string `json:"title" yaml:"title"`

	// SourceURL is the canonical or "saved from" URL, empty when absent.
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty"`

	// Body is the raw markup between the title heading and the first
	// <script> tag or closing body tag.
	Body string `json:"-" yaml:"-"`

	// Sections are the level-2 sections of Body in document order.
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section is a span of the body introduced by a level-2 heading.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`

	// Content is the raw markup up to the next level-2 heading.
	Content string `json:"-" yaml:"-"`

	// Images are kept in scan order and rendered before Blocks.
	Images []Image `json:"images,omitempty" yaml:"images,omitempty"`

	// Blocks holds paragraphs and code blocks sorted by Offset.
	Blocks []Block `json:"blocks,omitempty" yaml:"blocks,omitempty"`
}

// Image is an <img> reference retained for the output.
type Image struct {
	Filename string `json:"filename" yaml:"filename"`
	Alt      string `json:"alt" yaml:"alt"`
}

// Block is a paragraph or code block with its offset within Section.Content.
type Block struct {
	Offset int       `json:"offset" yaml:"offset"`
	Kind   BlockKind `json:"kind" yaml:"kind"`
	Text   string    `json:"text" yaml:"text"`
}

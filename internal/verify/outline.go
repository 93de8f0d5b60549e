// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verify

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Outline counts the block structure of a Markdown document as a CommonMark
// parser sees it.
type Outline struct {
	Headings   int
	Paragraphs int
	CodeBlocks int
	Images     int
}

// Summarize parses md with goldmark and counts its headings, paragraphs,
// code blocks, and images.
func Summarize(md []byte) Outline {
	doc := goldmark.New().Parser().Parse(text.NewReader(md))

	var o Outline
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading:
			o.Headings++
		case *ast.Paragraph:
			o.Paragraphs++
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			o.CodeBlocks++
		case *ast.Image:
			o.Images++
		}
		return ast.WalkContinue, nil
	})
	return o
}

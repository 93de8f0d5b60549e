// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs one HTML-to-Markdown conversion: extract, write the
// output directory, copy images, verify, and on success remove the originals.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/pdiddy/html2md/internal/assets"
	"github.com/pdiddy/html2md/internal/extract"
	"github.com/pdiddy/html2md/internal/layout"
	"github.com/pdiddy/html2md/internal/verify"
	"github.com/pdiddy/html2md/pkg/types"
)

// Converter turns a saved HTML page into "<seq>-<slug>/README.md" plus an
// assets directory next to it. Progress lines go to w.
type Converter struct {
	fs        afero.Fs
	cfg       types.Config
	extractor *extract.Extractor
	verifier  *verify.Verifier
	w         io.Writer
}

// New creates a Converter over fs.
func New(fs afero.Fs, cfg types.Config, w io.Writer) *Converter {
	return &Converter{
		fs:        fs,
		cfg:       cfg,
		extractor: extract.New(cfg.Noise),
		verifier:  verify.New(cfg.Noise, cfg.Verification),
		w:         w,
	}
}

// Convert processes the page at htmlPath.
//
// A missing input returns types.ErrInputNotFound and a page without a
// level-1 heading returns types.ErrContentNotFound; neither writes or
// deletes anything. A verification mismatch returns
// types.ErrVerificationMismatch after the output is written, leaving the
// originals in place. The returned Result is filled as far as the
// conversion got.
func (c *Converter) Convert(ctx context.Context, htmlPath string) (types.Result, error) {
	res := types.Result{Status: types.ConversionNone}

	ok, err := afero.Exists(c.fs, htmlPath)
	if err != nil {
		return res, fmt.Errorf("checking %s: %w", htmlPath, err)
	}
	if !ok {
		fmt.Fprintf(c.w, "Error: HTML file not found: %s\n", htmlPath)
		return res, fmt.Errorf("%w: %s", types.ErrInputNotFound, htmlPath)
	}

	data, err := afero.ReadFile(c.fs, htmlPath)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", htmlPath, err)
	}
	markup := string(data)

	doc, err := c.extractor.Extract(markup)
	if err != nil {
		res.Status = types.ConversionFailed
		if errors.Is(err, types.ErrContentNotFound) {
			fmt.Fprintln(c.w, "Error: Could not find main content")
		}
		return res, fmt.Errorf("extracting %s: %w", htmlPath, err)
	}
	res.SourceURL = doc.SourceURL
	if doc.SourceURL != "" {
		fmt.Fprintf(c.w, "Found source URL: %s\n", doc.SourceURL)
	}

	workDir := filepath.Dir(htmlPath)
	seq, err := layout.NextSequence(c.fs, workDir)
	if err != nil {
		return res, err
	}
	dirName := layout.DirName(seq, layout.Slug(htmlPath))
	res.OutputDir = filepath.Join(workDir, dirName)

	md := extract.Render(doc, c.cfg.Extraction)
	res.MarkdownChars = utf8.RuneCountInString(md)
	res.Status = types.ConversionExtracted

	if err := ctx.Err(); err != nil {
		return res, err
	}

	fmt.Fprintf(c.w, "Creating directory: %s\n", dirName)
	if err := c.writeOutput(&res, md); err != nil {
		res.Status = types.ConversionFailed
		return res, err
	}

	names := assets.Referenced(markup, c.cfg.Noise.ImageMarkers)
	resourceDir := assets.ResourceDir(htmlPath)
	copied, err := assets.Copy(c.fs, resourceDir, filepath.Join(res.OutputDir, c.cfg.Extraction.AssetsDir), names)
	res.ImagesCopied = copied
	if err != nil {
		res.Status = types.ConversionFailed
		return res, err
	}
	if copied > 0 {
		fmt.Fprintf(c.w, "Copied %d image(s) to %s/\n", copied, c.cfg.Extraction.AssetsDir)
	}

	res.Verdict = c.verifier.Verify(markup, md)
	if !res.Verdict.Pass {
		res.Status = types.ConversionMismatch
		fmt.Fprintf(c.w, "\n✗ Content verification: Significant mismatch detected (%d word(s) missing, %d extra)\n",
			len(res.Verdict.MissingWords), len(res.Verdict.ExtraWords))
		fmt.Fprintln(c.w, "\nConversion completed but verification failed. Files not deleted.")
		return res, fmt.Errorf("%w: %d word(s) missing, %d extra in %s",
			types.ErrVerificationMismatch, len(res.Verdict.MissingWords), len(res.Verdict.ExtraWords), res.ReadmePath)
	}
	res.Status = types.ConversionVerified
	c.reportMatch(res.Verdict)

	if err := ctx.Err(); err != nil {
		return res, err
	}

	if !c.cfg.Output.KeepSource {
		removed, err := assets.RemoveOriginals(c.fs, htmlPath, resourceDir)
		res.Deleted = removed
		for _, p := range removed {
			fmt.Fprintf(c.w, "Deleted: %s\n", filepath.Base(p))
		}
		if err != nil {
			return res, err
		}
	}

	fmt.Fprintf(c.w, "\n✓ Conversion complete! Directory: %s/\n", dirName)
	return res, nil
}

// writeOutput creates the output and assets directories and writes the
// Markdown file.
func (c *Converter) writeOutput(res *types.Result, md string) error {
	assetsDir := filepath.Join(res.OutputDir, c.cfg.Extraction.AssetsDir)
	if err := c.fs.MkdirAll(assetsDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", assetsDir, err)
	}

	res.ReadmePath = filepath.Join(res.OutputDir, c.cfg.Output.ReadmeName)
	if err := afero.WriteFile(c.fs, res.ReadmePath, []byte(md), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", res.ReadmePath, err)
	}

	o := verify.Summarize([]byte(md))
	fmt.Fprintf(c.w, "Created %s (%d characters; %d headings, %d paragraphs, %d code blocks, %d images)\n",
		c.cfg.Output.ReadmeName, res.MarkdownChars, o.Headings, o.Paragraphs, o.CodeBlocks, o.Images)
	return nil
}

func (c *Converter) reportMatch(v types.Verdict) {
	if v.Exact {
		fmt.Fprintln(c.w, "\n✓ Content verification: exact match")
		return
	}
	fmt.Fprintf(c.w, "\n✓ Content verification: passed (%d word(s) missing, %d extra; formatting normalization)\n",
		len(v.MissingWords), len(v.ExtraWords))
}

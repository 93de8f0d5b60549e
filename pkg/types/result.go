// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus tracks how far a single conversion progressed.
type ConversionStatus string

const (
	ConversionNone      ConversionStatus = "none"
	ConversionExtracted ConversionStatus = "extracted"
	ConversionVerified  ConversionStatus = "verified"
	ConversionMismatch  ConversionStatus = "mismatch"
	ConversionFailed    ConversionStatus = "failed"
)

// Verdict is the outcome of comparing the markup and Markdown signatures.
type Verdict struct {
	// Exact is true when both signatures are identical strings.
	Exact bool `json:"exact" yaml:"exact"`

	// Pass is true when Exact, or when both word-set differences are
	// below the tolerance.
	Pass bool `json:"pass" yaml:"pass"`

	// MissingWords are words present only in the markup signature, sorted.
	MissingWords []string `json:"missing_words,omitempty" yaml:"missing_words,omitempty"`

	// ExtraWords are words present only in the Markdown signature, sorted.
	ExtraWords []string `json:"extra_words,omitempty" yaml:"extra_words,omitempty"`
}

// Result describes what a conversion wrote, verified, and deleted.
type Result struct {
	OutputDir     string           `json:"output_dir" yaml:"output_dir"`
	ReadmePath    string           `json:"readme_path" yaml:"readme_path"`
	SourceURL     string           `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	MarkdownChars int              `json:"markdown_chars" yaml:"markdown_chars"`
	ImagesCopied  int              `json:"images_copied" yaml:"images_copied"`
	Verdict       Verdict          `json:"verdict" yaml:"verdict"`
	Deleted       []string         `json:"deleted,omitempty" yaml:"deleted,omitempty"`
	Status        ConversionStatus `json:"status" yaml:"status"`
}

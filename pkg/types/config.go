package types

// NoiseConfig lists the template artifacts of the source site that are not
// article content. Extraction and verification share these lists.
type NoiseConfig struct {
	// ParagraphMarkers drop any <p> whose raw HTML contains one of them
	// (CSS utility classes and renderer component names).
	ParagraphMarkers []string `json:"paragraph_markers" yaml:"paragraph_markers" mapstructure:"paragraph_markers"`

	// ParagraphPrefixes drop extracted paragraphs starting with one of them
	// (language badges leaking into <p>). Verification does not apply them.
	ParagraphPrefixes []string `json:"paragraph_prefixes" yaml:"paragraph_prefixes" mapstructure:"paragraph_prefixes"`

	// ImageMarkers skip <img> sources containing one of them, compared
	// case-insensitively (search icons and similar chrome).
	ImageMarkers []string `json:"image_markers" yaml:"image_markers" mapstructure:"image_markers"`

	// HeadingBadges are heading texts left out of the verification
	// signature.
	HeadingBadges []string `json:"heading_badges" yaml:"heading_badges" mapstructure:"heading_badges"`
}

// ExtractionConfig holds settings for Markdown generation.
type ExtractionConfig struct {
	// CodeLanguage is the info string applied to every fenced code block.
	CodeLanguage string `json:"code_language" yaml:"code_language" mapstructure:"code_language"`

	// AssetsDir is the output subdirectory that image references point at.
	AssetsDir string `json:"assets_dir" yaml:"assets_dir" mapstructure:"assets_dir"`
}

// VerificationConfig holds settings for the content check.
type VerificationConfig struct {
	// Tolerance is the exclusive upper bound on the size of each word-set
	// difference for a non-exact match to pass (default 50).
	Tolerance int `json:"tolerance" yaml:"tolerance" mapstructure:"tolerance"`
}

// OutputConfig holds settings for the files written and removed.
type OutputConfig struct {
	// ReadmeName is the Markdown file written in the output directory.
	ReadmeName string `json:"readme_name" yaml:"readme_name" mapstructure:"readme_name"`

	// KeepSource skips deleting the HTML file and its resource directory
	// after a successful verification.
	KeepSource bool `json:"keep_source" yaml:"keep_source" mapstructure:"keep_source"`
}

// Config groups all settings for one conversion.
type Config struct {
	Noise        NoiseConfig        `json:"noise" yaml:"noise" mapstructure:"noise"`
	Extraction   ExtractionConfig   `json:"extraction" yaml:"extraction" mapstructure:"extraction"`
	Verification VerificationConfig `json:"verification" yaml:"verification" mapstructure:"verification"`
	Output       OutputConfig       `json:"output" yaml:"output" mapstructure:"output"`
}

// DefaultConfig returns the settings tuned for pages saved from the
// tutorial site the tool was written for.
func DefaultConfig() Config {
	return Config{
		Noise: NoiseConfig{
			ParagraphMarkers:  []string{"tw-flex", "tw-border", "MarkdownRenderer"},
			ParagraphPrefixes: []string{"Python", "Java"},
			ImageMarkers:      []string{"search.svg", "amplifier"},
			HeadingBadges:     []string{"Python", "Java", "C++", "JavaScript", "TypeScript", "Ruby", "Go", "Rust"},
		},
		Extraction: ExtractionConfig{
			CodeLanguage: "python",
			AssetsDir:    "assets",
		},
		Verification: VerificationConfig{
			Tolerance: 50,
		},
		Output: OutputConfig{
			ReadmeName: "README.md",
		},
	}
}

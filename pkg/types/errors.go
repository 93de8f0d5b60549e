// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Sentinel errors for the conversion pipeline. Callers wrap them with
// fmt.Errorf("...: %w") and classify with errors.Is.
var (
	// ErrInputNotFound means the input HTML path does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrContentNotFound means the markup has no level-1 heading.
	ErrContentNotFound = errors.New("could not find main content")

	// ErrVerificationMismatch means the Markdown lost too much of the
	// markup's text. The output is kept and the originals are not deleted.
	ErrVerificationMismatch = errors.New("content verification mismatch")
)

// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// This package handles the conversion stages:
//   - Line splitting and line ending normalization
//   - Line classification and block assembly into output fragments
//   - Inline substitutions (bold, emphasis, MD5 digests, "c" stripping)
//   - Standalone document wrapping and CSS injection
//
// Conversion is a single synchronous pass over an in-memory slice of lines.
// All block state (the open list and the paragraph buffer) lives in a value
// created per call, so concurrent conversions of independent inputs are safe.
//
// # Block Policies
//
// The supported subset leaves three behaviors open. This package settles them
// as follows:
//   - A blank line is a pure paragraph separator. Options.BlankLineBreaks
//     makes it emit a <br /> fragment as well.
//   - A heading or a plain text line closes an open list immediately.
//   - Consecutive plain text lines merge into one paragraph, joined by a
//     single space.
package pipeline

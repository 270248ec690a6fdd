// Package pipeline implements the markdown-to-HTML stages of a conversion.
//
// The stages run in order and never touch the filesystem:
//   - Markdown preprocessing (line ending normalization)
//   - Markdown to HTML conversion via goldmark, with chroma highlighting and
//     slug heading ids
//   - Document assembly (GitHub markdown-body shell)
//   - CSS injection
//   - Relative path rewrite to file:// URLs
//   - Anchor check (in-page links with no target)
//
// PDF generation is handled separately by the root mdtopdf package using
// headless Chrome (go-rod).
package pipeline

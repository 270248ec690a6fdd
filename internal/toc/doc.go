// Package toc builds GitHub-compatible tables of contents for markdown.
//
// Headings are located with goldmark so that fenced code, HTML blocks and
// setext underlines are handled the same way the HTML renderer sees them.
// Each heading becomes one bullet linking to its slug. The document
//
//	# Title
//	## Sub
//
// yields the list "- [Title](#title)\n\t* [Sub](#sub)".
//
// Nesting uses one tab per heading level below 1. Spaces are not used because
// a fixed space count miscomputes depth when heading levels are mixed.
//
// # Markers
//
// Insert places the list between "<!-- toc -->" and "<!-- tocstop -->".
// A document with only the opening marker gets the closing marker added.
// A document without markers is returned trimmed but otherwise unchanged.
package toc

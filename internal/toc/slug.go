package toc

import (
	"regexp"
	"strings"
)

// slugStripped lists the characters removed from a slug after the escaped
// entity sequences are gone. The set matches GitHub's redcarpet renderer.
var slugStripped = regexp.MustCompile("[&+$,/:;=?@\"#{}|^¨~\\[\\]`\\\\*)(%.!'<>]")

// Slug returns the GitHub-compatible fragment for a heading title.
//
// Order matters: spaces become hyphens first, then the renderer escape
// sequences &amp;, ¨T and ¨D are dropped one after another, then the stripped
// character set, and the result is lowercased. Duplicate titles produce
// duplicate slugs; no numeric suffix is added.
func Slug(title string) string {
	s := strings.ReplaceAll(title, " ", "-")
	s = strings.ReplaceAll(s, "&amp;", "")
	s = strings.ReplaceAll(s, "¨T", "")
	s = strings.ReplaceAll(s, "¨D", "")
	s = slugStripped.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

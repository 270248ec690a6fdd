package pipeline

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// UnresolvedAnchors returns the in-page link targets of htmlContent that no
// element id or named anchor matches, in document order without repeats.
// Fragments are compared after percent-decoding, the way browsers resolve
// them.
func UnresolvedAnchors(htmlContent string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML for anchors: %w", err)
	}

	targets := make(map[string]bool)
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		targets[id] = true
	})
	doc.Find("a[name]").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		targets[name] = true
	})

	var missing []string
	seen := make(map[string]bool)
	doc.Find(`a[href^="#"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		frag := strings.TrimPrefix(href, "#")
		if frag == "" || seen[frag] {
			return
		}
		seen[frag] = true

		id := frag
		if decoded, err := url.PathUnescape(frag); err == nil {
			id = decoded
		}
		if !targets[id] && !targets[frag] {
			missing = append(missing, frag)
		}
	})
	return missing, nil
}

package toc_test

import (
	"reflect"
	"testing"

	"github.com/alnah/go-mdtopdf/internal/toc"
)

// ---------------------------------------------------------------------------
// TestHeadings - Heading extraction
// ---------------------------------------------------------------------------

func TestHeadings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     []toc.Heading
	}{
		{
			name:     "atx headings",
			markdown: "# Title\n## Sub\nText",
			want: []toc.Heading{
				{Level: 1, Text: "Title", Slug: "title"},
				{Level: 2, Text: "Sub", Slug: "sub"},
			},
		},
		{
			name:     "setext headings",
			markdown: "Title\n=====\n\nSub\n---\n",
			want: []toc.Heading{
				{Level: 1, Text: "Title", Slug: "title"},
				{Level: 2, Text: "Sub", Slug: "sub"},
			},
		},
		{
			name:     "heading inside code fence ignored",
			markdown: "```\n# not a heading\n```\n\n# Real\n",
			want: []toc.Heading{
				{Level: 1, Text: "Real", Slug: "real"},
			},
		},
		{
			name:     "inline markup kept as source",
			markdown: "# Hello *world*\n",
			want: []toc.Heading{
				{Level: 1, Text: "Hello *world*", Slug: "hello-world"},
			},
		},
		{
			name:     "no headings",
			markdown: "just a paragraph\n",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := toc.Headings(tt.markdown)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Headings() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

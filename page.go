package mdtopdf

import (
	"fmt"
	"regexp"
	"strconv"
)

// PageFormat names a paper size.
type PageFormat string

// Supported page formats.
const (
	FormatA0      PageFormat = "A0"
	FormatA1      PageFormat = "A1"
	FormatA2      PageFormat = "A2"
	FormatA3      PageFormat = "A3"
	FormatA4      PageFormat = "A4"
	FormatA5      PageFormat = "A5"
	FormatA6      PageFormat = "A6"
	FormatLegal   PageFormat = "Legal"
	FormatLedger  PageFormat = "Ledger"
	FormatLetter  PageFormat = "Letter"
	FormatTabloid PageFormat = "Tabloid"
)

// DefaultPageFormat is used when Input.Format is empty.
const DefaultPageFormat = FormatA4

// DefaultBorder is the margin applied to every side unless overridden.
const DefaultBorder = "20mm"

// paperSizes holds width and height in inches, the values Chrome uses for
// its named formats.
var paperSizes = map[PageFormat][2]float64{
	FormatLetter:  {8.5, 11},
	FormatLegal:   {8.5, 14},
	FormatTabloid: {11, 17},
	FormatLedger:  {17, 11},
	FormatA0:      {33.1, 46.8},
	FormatA1:      {23.4, 33.1},
	FormatA2:      {16.54, 23.4},
	FormatA3:      {11.7, 16.54},
	FormatA4:      {8.27, 11.7},
	FormatA5:      {5.83, 8.27},
	FormatA6:      {4.13, 5.83},
}

// ParsePageFormat returns the format named s. Names are case-sensitive.
func ParsePageFormat(s string) (PageFormat, error) {
	f := PageFormat(s)
	if _, ok := paperSizes[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPageFormat, s)
	}
	return f, nil
}

// Size returns the paper width and height in inches. An unknown format
// reports the default format's size.
func (f PageFormat) Size() (width, height float64) {
	size, ok := paperSizes[f]
	if !ok {
		size = paperSizes[DefaultPageFormat]
	}
	return size[0], size[1]
}

var lengthPattern = regexp.MustCompile(`^([0-9]{1,10})(in|px|cm|mm)$`)

var unitsPerInch = map[string]float64{
	"in": 1,
	"px": 96,
	"cm": 2.54,
	"mm": 25.4,
}

// ParseLength converts a whole number followed by a unit (in, px, cm, mm)
// to inches.
func ParseLength(s string) (float64, error) {
	m := lengthPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMargin, s)
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidMargin, s, err)
	}
	return n / unitsPerInch[m[2]], nil
}

// Margins are page margins in inches.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargins returns the same margin on every side. border must be a
// valid length; an invalid one yields zero margins.
func UniformMargins(border string) Margins {
	in, _ := ParseLength(border)
	return Margins{Top: in, Right: in, Bottom: in, Left: in}
}

// ParseMargins builds Margins from a base border and per-side overrides.
// An empty side falls back to border.
func ParseMargins(border, top, right, bottom, left string) (Margins, error) {
	sides := []*string{&top, &right, &bottom, &left}
	for _, s := range sides {
		if *s == "" {
			*s = border
		}
	}

	var m Margins
	targets := []*float64{&m.Top, &m.Right, &m.Bottom, &m.Left}
	for i, s := range sides {
		v, err := ParseLength(*s)
		if err != nil {
			return Margins{}, err
		}
		*targets[i] = v
	}
	return m, nil
}

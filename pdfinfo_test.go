package mdtopdf

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestInspectPDF - Reading generated PDFs back
// ---------------------------------------------------------------------------

func TestInspectPDF(t *testing.T) {
	t.Parallel()

	info, err := InspectPDF(minimalPDF(612, 792))
	if err != nil {
		t.Fatalf("InspectPDF() error: %v", err)
	}
	if info.Pages != 1 {
		t.Errorf("Pages = %d, want 1", info.Pages)
	}
	if !almostEqual(info.Width, 8.5) || !almostEqual(info.Height, 11) {
		t.Errorf("size = %vx%v in, want 8.5x11", info.Width, info.Height)
	}
}

func TestInspectPDF_Invalid(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("hello"), []byte("%PDF-1.4\ngarbage")} {
		if _, err := InspectPDF(data); !errors.Is(err, ErrPDFVerify) {
			t.Errorf("InspectPDF(%q) error = %v, want ErrPDFVerify", data, err)
		}
	}
}

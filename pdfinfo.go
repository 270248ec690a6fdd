package mdtopdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfcpu otherwise writes a config.yml under the user config directory.
func init() {
	model.ConfigPath = "disable"
}

// pointsPerInch converts PDF user space units to inches.
const pointsPerInch = 72

// PDFInfo describes a generated PDF.
type PDFInfo struct {
	Pages  int
	Width  float64 // first page, inches
	Height float64 // first page, inches
}

// InspectPDF reads data back with pdfcpu and reports its page count and
// first page size.
func InspectPDF(data []byte) (*PDFInfo, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pages, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFVerify, err)
	}

	info := &PDFInfo{Pages: pages}
	dims, err := api.PageDims(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFVerify, err)
	}
	if len(dims) > 0 {
		info.Width = dims[0].Width / pointsPerInch
		info.Height = dims[0].Height / pointsPerInch
	}
	return info, nil
}

package mdtopdf

import (
	"errors"

	"github.com/alnah/go-mdtopdf/internal/assets"
	"github.com/alnah/go-mdtopdf/internal/pipeline"
	"github.com/alnah/go-mdtopdf/internal/toc"
)

// Validation errors.
var (
	ErrInvalidMargin         = errors.New("invalid margin")
	ErrInvalidPageFormat     = errors.New("invalid page format")
	ErrInvalidMaxDepth       = toc.ErrInvalidMaxDepth
	ErrMultipleTOC           = toc.ErrMultipleTOC
	ErrInvalidHighlightStyle = assets.ErrHighlightStyleNotFound
	ErrInvalidAssetPath      = assets.ErrInvalidBasePath
	ErrStyleNotFound         = assets.ErrStyleNotFound
)

// Pipeline errors.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrBrowserLaunch  = errors.New("failed to launch browser")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrPDFVerify      = errors.New("generated PDF is unreadable")
)

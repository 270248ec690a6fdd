// Package mdtopdf renders markdown documents to styled PDF files through
// headless Chrome, and maintains GitHub-compatible tables of contents inside
// markdown files.
//
// Table of contents:
//
//	out, err := mdtopdf.InsertTOC(markdown, mdtopdf.DefaultMaxDepth)
//
// The list is placed between <!-- toc --> and <!-- tocstop --> markers; a
// document with an opening marker only gets the closing one added.
//
// PDF conversion:
//
//	conv, err := mdtopdf.NewConverter(mdtopdf.WithTimeout(time.Minute))
//	if err != nil {
//		return err
//	}
//	res, err := conv.Convert(ctx, mdtopdf.Input{
//		Markdown:   markdown,
//		SourcePath: "README.md",
//		Format:     mdtopdf.FormatA4,
//		Margins:    mdtopdf.UniformMargins(mdtopdf.DefaultBorder),
//	})
//
// The result holds the rendered HTML document and the PDF bytes. Each Convert
// call launches its own browser and closes it before returning.
package mdtopdf

// Package xlsxhtml converts spreadsheet workbooks to HTML tables that
// preserve the original look: fills, fonts, borders, merges, column widths,
// row heights, and floating images. Parsing is delegated to unioffice; the
// resolution engine itself operates on the model types in the sheet, colors,
// grid, and style packages and can be driven directly for workbooks built in
// memory.
package xlsxhtml

import (
	"io"
	"os"

	"github.com/aerissecure/xlsxhtml/sheet"
)

// Convert reads an XLSX document from r/size and renders it to an HTML
// fragment.
func Convert(r io.ReaderAt, size int64, opts Options) (string, error) {
	wb, err := ParseWorkbook(r, size)
	if err != nil {
		return "", err
	}
	return ConvertWorkbook(wb, opts)
}

// ConvertFile renders the XLSX file at path to an HTML fragment.
func ConvertFile(path string, opts Options) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return "", err
	}
	return Convert(f, fi.Size(), opts)
}

// ConvertWorkbook renders an already-parsed workbook model. Useful when the
// caller wants to adjust the model first, e.g. to attach drawings.
func ConvertWorkbook(wb *sheet.Workbook, opts Options) (string, error) {
	model, err := RenderModel(wb, opts)
	if err != nil {
		return "", err
	}
	return RenderWorkbookHTML(model), nil
}

// XLSXToHTML converts with default options.
func XLSXToHTML(r io.ReaderAt, size int64) (string, error) {
	return Convert(r, size, DefaultOptions())
}

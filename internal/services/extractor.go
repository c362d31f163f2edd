package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type Extractor interface {
	ExtractText(data []byte) (string, error)
}

type pdfExtractor struct{}

func NewExtractor() Extractor {
	return &pdfExtractor{}
}

// ExtractText returns the text of every page concatenated in page order.
// No separator is inserted between pages. A page whose text cannot be
// extracted contributes an empty string; only an unreadable document as a
// whole fails, with a DocumentParseError.
func (p *pdfExtractor) ExtractText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs instead of
	// returning an error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &DocumentParseError{Cause: fmt.Errorf("%v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DocumentParseError{Cause: err}
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		textBuilder.WriteString(extractPageText(page))
	}

	return textBuilder.String(), nil
}

// extractPageText concatenates the page's text items in content order.
// GetPlainText is avoided here: it inserts a newline per text object, which
// would leak separators between pages. Per-page failures are swallowed so a
// single scanned or broken page does not abort the whole document.
func extractPageText(page pdf.Page) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	var textBuilder strings.Builder
	for _, item := range page.Content().Text {
		textBuilder.WriteString(item.S)
	}
	return textBuilder.String()
}

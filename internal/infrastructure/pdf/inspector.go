// Package pdf checks uploaded PDFs before they reach the blob store.
package pdf

import (
	"bytes"
	"errors"
	"fmt"

	"pcg_compliance/internal/usecase/interfaces"

	lpdf "github.com/ledongthuc/pdf"
)

var (
	ErrUnreadablePDF = errors.New("unreadable pdf")
	ErrEmptyPDF      = errors.New("pdf has no pages")
	ErrTooManyPages  = errors.New("pdf exceeds page limit")
)

type Inspector struct {
	maxPages int
}

var _ interfaces.IDocumentInspector = (*Inspector)(nil)

// NewInspector accepts any page count when maxPages <= 0.
func NewInspector(maxPages int) *Inspector {
	return &Inspector{maxPages: maxPages}
}

// PageCount parses the document and returns its number of pages. The
// parser panics on some malformed inputs; those come back as
// ErrUnreadablePDF.
func (i *Inspector) PageCount(data []byte) (pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, fmt.Errorf("%w: %v", ErrUnreadablePDF, r)
		}
	}()

	doc, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	n := doc.NumPage()
	if n <= 0 {
		return 0, ErrEmptyPDF
	}
	if i.maxPages > 0 && n > i.maxPages {
		return n, fmt.Errorf("%w: %d > %d", ErrTooManyPages, n, i.maxPages)
	}
	return n, nil
}

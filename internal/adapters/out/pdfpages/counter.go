// Package pdfpages reads the page count of uploaded PDF files.
package pdfpages

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

var ErrNoPages = errors.New("pdf has no pages")

// Counter implements ports.PageCounter on top of ledongthuc/pdf.
type Counter struct{}

func NewCounter() Counter {
	return Counter{}
}

// CountPages parses the document structure. The parser panics on some
// malformed inputs; those are reported as errors.
func (Counter) CountPages(data []byte) (pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = 0
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}

	pages = reader.NumPage()
	if pages < 1 {
		return 0, ErrNoPages
	}
	return pages, nil
}

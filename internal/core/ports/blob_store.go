package ports

import (
	"context"
)

// BlobStore keeps uploaded file bytes and hands back a URL to them.
type BlobStore interface {
	Put(ctx context.Context, name string, contentType string, data []byte) (url string, err error)
}

// PageCounter extracts the number of pages from a PDF file.
type PageCounter interface {
	CountPages(data []byte) (int, error)
}

// Package blobstore keeps uploaded files on the local filesystem and serves
// them under a public base URL.
package blobstore

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/pkg/errs"
)

// FileStore writes each blob to dir under a fresh unique name.
type FileStore struct {
	dir     string
	baseURL string
}

// NewFileStore creates dir when missing. baseURL is the prefix the HTTP
// server exposes dir under, e.g. http://localhost:8080/files.
func NewFileStore(dir, baseURL string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir is the directory blobs are written to.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) Put(ctx context.Context, name string, _ string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stored := kernel.NewUUID().String() + safeExt(name)
	target := filepath.Join(s.dir, stored)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", err
	}
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("store %s: %w", stored, err)
	}

	return s.baseURL + "/" + stored, nil
}

// safeExt keeps a short alphanumeric extension of the client file name.
func safeExt(name string) string {
	ext := strings.ToLower(path.Ext(filepath.Base(name)))
	if len(ext) < 2 || len(ext) > 6 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

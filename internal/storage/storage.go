// Package storage abstracts where uploaded product images live. The local
// driver serves development; production uses S3 behind a public base URL.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	// Delete removes the object behind a public URL previously returned by Put.
	Delete(ctx context.Context, url string) error
}

// AllowedImage reports whether the filename carries an image extension we
// accept for product photos.
func AllowedImage(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return true
	default:
		return false
	}
}

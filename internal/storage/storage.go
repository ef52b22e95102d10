// Package storage provides the blob store used for uploaded vehicle images.
package storage

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded blobs and returns publicly reachable URLs.
type ObjectStorage interface {
	// Put writes the object under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

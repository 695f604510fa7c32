// Package storage abstracts the S3-compatible object store that holds
// archived final renders of completed documents. Implementations stream
// content and never touch local disk.
package storage

import (
	"context"
	"io"
	"time"
)

// PutObjectOptions carries optional upload parameters. Size should be
// the exact byte count when known; -1 lets the backend buffer or chunk.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is an S3-compatible object store client.
type Storage interface {
	// Put uploads an object under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get returns an object's content as a streaming reader with its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL usable without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

package storage

import (
	"context"
	"io"
	"time"
)

// Package storage holds the blob store abstraction for resume files.
// Implementations must rely on streaming I/O only; payloads are never buffered
// whole in memory and local disk is never used.

// PutOptions define optional parameters for storing a blob.
// Size should be the exact number of bytes if known; if unknown, set to -1 and
// the implementation will chunk as supported by the backend.
// Filename is used only to carry the extension into the object key; the stored
// key is otherwise opaque.
type PutOptions struct {
	Size        int64
	ContentType string
	Filename    string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored blob.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// BlobStore is a write-once, read-many binary object store. Store generates an
// opaque id and returns it only after the payload is durably written; a failed
// write leaves nothing resolvable under any id. Open returns a one-pass stream
// the caller must Close.
type BlobStore interface {
	Store(ctx context.Context, r io.Reader, opt PutOptions) (string, error)
	Open(ctx context.Context, blobID string) (io.ReadCloser, ObjectInfo, error)
}

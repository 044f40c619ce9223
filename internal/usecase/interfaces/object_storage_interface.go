package interfaces

import "context"

// IObjectStorage is the durable object-storage collaborator used by the
// livemap materializer.

type IObjectStorage interface {
	Exists(ctx context.Context, path string) (bool, error)
	Save(ctx context.Context, path string, data []byte, contentType string) error
	// MakePublic returns the public URL of the object.
	MakePublic(ctx context.Context, path string) (string, error)
	// Delete removes the object; a missing key counts as success.
	Delete(ctx context.Context, path string) error
}

package port

import (
	"context"

	"github.com/bnema/bridgecfg/internal/domain/entity"
)

// DocumentStore reads and writes configuration documents.
type DocumentStore interface {
	// Load parses the file at path. A missing file wraps entity.ErrNotFound.
	Load(ctx context.Context, path string) (*entity.Document, error)

	// Save writes doc to path, preserving mapping insertion order.
	Save(ctx context.Context, doc *entity.Document, path string) error
}

// FileChange is a modification of a watched file made outside the editor.
type FileChange struct {
	Path    string
	Removed bool
}

// DocumentWatcher reports external changes to configuration files.
type DocumentWatcher interface {
	// Watch sends a FileChange each time path changes on disk. The channel
	// is closed once ctx is done.
	Watch(ctx context.Context, path string) (<-chan FileChange, error)
}

package repository

import (
	"context"
	"time"

	"github.com/bnema/bridgecfg/internal/domain/entity"
)

// PushJournalRepository persists the outcome of every parameter push.
type PushJournalRepository interface {
	// Save appends a record and assigns its ID.
	Save(ctx context.Context, record *entity.PushRecord) error

	// GetRecent returns the newest records first.
	GetRecent(ctx context.Context, limit int) ([]*entity.PushRecord, error)

	// FindByParameter returns the newest records for one node parameter.
	FindByParameter(ctx context.Context, node, parameter string, limit int) ([]*entity.PushRecord, error)

	// DeleteBefore removes records pushed before cutoff.
	// Returns number of deleted records.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

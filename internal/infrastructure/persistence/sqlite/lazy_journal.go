package sqlite

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/domain/repository"
)

// LazyPushJournal defers opening the journal database until first use.
type LazyPushJournal struct {
	provider port.DatabaseProvider
	repo     repository.PushJournalRepository
	once     sync.Once
	initErr  error
}

// NewLazyPushJournal creates a lazy-loading push journal.
func NewLazyPushJournal(provider port.DatabaseProvider) repository.PushJournalRepository {
	return &LazyPushJournal{provider: provider}
}

func (r *LazyPushJournal) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewPushJournalRepository(db)
	})
	return r.initErr
}

func (r *LazyPushJournal) Save(ctx context.Context, record *entity.PushRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, record)
}

func (r *LazyPushJournal) GetRecent(ctx context.Context, limit int) ([]*entity.PushRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetRecent(ctx, limit)
}

func (r *LazyPushJournal) FindByParameter(ctx context.Context, node, parameter string, limit int) ([]*entity.PushRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.FindByParameter(ctx, node, parameter, limit)
}

func (r *LazyPushJournal) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.DeleteBefore(ctx, cutoff)
}

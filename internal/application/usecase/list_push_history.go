package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/domain/repository"
	"github.com/bnema/bridgecfg/internal/logging"
)

const defaultHistoryLimit = 50

// ListPushHistoryUseCase reads and prunes the push journal.
type ListPushHistoryUseCase struct {
	journal repository.PushJournalRepository
	now     func() time.Time
}

// NewListPushHistoryUseCase creates a new ListPushHistoryUseCase.
func NewListPushHistoryUseCase(journal repository.PushJournalRepository) *ListPushHistoryUseCase {
	return &ListPushHistoryUseCase{journal: journal, now: time.Now}
}

// ListPushHistoryInput filters the listing. Parameter requires Node.
type ListPushHistoryInput struct {
	Limit     int
	Node      string
	Parameter string
}

// Execute returns journal records, newest first.
func (uc *ListPushHistoryUseCase) Execute(ctx context.Context, input ListPushHistoryInput) ([]*entity.PushRecord, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	if input.Parameter != "" {
		if input.Node == "" {
			return nil, fmt.Errorf("parameter filter requires a node")
		}
		return uc.journal.FindByParameter(ctx, input.Node, input.Parameter, limit)
	}

	records, err := uc.journal.GetRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if input.Node == "" {
		return records, nil
	}

	filtered := make([]*entity.PushRecord, 0, len(records))
	for _, r := range records {
		if r.Node == input.Node {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Prune deletes records older than maxAge and returns how many were removed.
func (uc *ListPushHistoryUseCase) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	if maxAge <= 0 {
		return 0, fmt.Errorf("max age must be positive, got %s", maxAge)
	}
	cutoff := uc.now().Add(-maxAge)
	n, err := uc.journal.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	logging.FromContext(ctx).Info().Int64("deleted", n).Time("cutoff", cutoff).Msg("push journal pruned")
	return n, nil
}

const (
	hoursPerDay = 24
	daysPerWeek = 7
)

// RelativeTime returns a short human-readable age such as "5m ago".
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < hoursPerDay*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < daysPerWeek*hoursPerDay*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/hoursPerDay))
	default:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/hoursPerDay/daysPerWeek))
	}
}

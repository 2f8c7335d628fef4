// Package sqlite stores the push journal in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/domain/repository"
	"github.com/bnema/bridgecfg/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/bridgecfg/internal/logging"
)

type pushJournalRepo struct {
	queries *sqlc.Queries
}

// NewPushJournalRepository creates a new SQLite-backed push journal.
func NewPushJournalRepository(db *sql.DB) repository.PushJournalRepository {
	return &pushJournalRepo{queries: sqlc.New(db)}
}

func (r *pushJournalRepo) Save(ctx context.Context, record *entity.PushRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("node", record.Node).
		Str("parameter", record.Parameter).
		Bool("successful", record.Successful).
		Msg("journaling push")

	id, err := r.queries.InsertPushRecord(ctx, sqlc.InsertPushRecordParams{
		PushedAt:   record.PushedAt.UnixMilli(),
		Mode:       string(record.Mode),
		Plugin:     record.Plugin,
		Node:       record.Node,
		File:       record.File,
		Parameter:  record.Parameter,
		Kind:       string(record.Kind),
		Value:      record.Value,
		Successful: boolToInt(record.Successful),
		Reason:     record.Reason,
	})
	if err != nil {
		return fmt.Errorf("insert push record: %w", err)
	}
	record.ID = id
	return nil
}

func (r *pushJournalRepo) GetRecent(ctx context.Context, limit int) ([]*entity.PushRecord, error) {
	rows, err := r.queries.ListRecentPushes(ctx, int64(limit))
	if err != nil {
		return nil, err
	}
	return recordsFromRows(rows), nil
}

func (r *pushJournalRepo) FindByParameter(ctx context.Context, node, parameter string, limit int) ([]*entity.PushRecord, error) {
	rows, err := r.queries.ListPushesByParameter(ctx, sqlc.ListPushesByParameterParams{
		Node:      node,
		Parameter: parameter,
		Limit:     int64(limit),
	})
	if err != nil {
		return nil, err
	}
	return recordsFromRows(rows), nil
}

func (r *pushJournalRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.queries.DeletePushesBefore(ctx, cutoff.UnixMilli())
}

func recordsFromRows(rows []sqlc.PushJournal) []*entity.PushRecord {
	records := make([]*entity.PushRecord, len(rows))
	for i, row := range rows {
		records[i] = recordFromRow(row)
	}
	return records
}

func recordFromRow(row sqlc.PushJournal) *entity.PushRecord {
	return &entity.PushRecord{
		ID:         row.ID,
		Mode:       entity.PushMode(row.Mode),
		Plugin:     row.Plugin,
		Node:       row.Node,
		File:       row.File,
		Parameter:  row.Parameter,
		Kind:       entity.ParameterKind(row.Kind),
		Value:      row.Value,
		Successful: row.Successful != 0,
		Reason:     row.Reason,
		PushedAt:   time.UnixMilli(row.PushedAt).UTC(),
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

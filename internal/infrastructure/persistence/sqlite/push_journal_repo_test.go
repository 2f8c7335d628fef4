package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/domain/repository"
	"github.com/bnema/bridgecfg/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bridgecfg/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openJournal(t *testing.T) (context.Context, repository.PushJournalRepository) {
	t.Helper()
	ctx := testCtx()

	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return ctx, sqlite.NewPushJournalRepository(db)
}

func record(node, parameter, value string, at time.Time) *entity.PushRecord {
	return &entity.PushRecord{
		Mode:       entity.PushModeSingle,
		Plugin:     "fsw_telemetry.TelemetryPlugin",
		Node:       node,
		File:       "/etc/fsw/params.yaml",
		Parameter:  parameter,
		Kind:       entity.ParameterInteger,
		Value:      value,
		Successful: true,
		PushedAt:   at,
	}
}

func TestPushJournal_SaveAssignsID(t *testing.T) {
	ctx, repo := openJournal(t)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first := record("fsw_bridge", "rate", "10", at)
	second := record("fsw_bridge", "rate", "20", at.Add(time.Second))

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestPushJournal_SaveRejectsInvalidRecord(t *testing.T) {
	ctx, repo := openJournal(t)

	err := repo.Save(ctx, &entity.PushRecord{Mode: entity.PushModeBulk, Node: "fsw_bridge"})
	require.ErrorIs(t, err, entity.ErrInvalidPushRecord)
}

func TestPushJournal_GetRecent(t *testing.T) {
	ctx, repo := openJournal(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	failed := record("fsw_bridge", "mode", "fast", base.Add(2*time.Minute))
	failed.Kind = entity.ParameterString
	failed.Successful = false
	failed.Reason = "parameter is read-only"
	failed.Mode = entity.PushModeBulk

	require.NoError(t, repo.Save(ctx, record("fsw_bridge", "rate", "10", base)))
	require.NoError(t, repo.Save(ctx, record("fsw_bridge", "rate", "20", base.Add(time.Minute))))
	require.NoError(t, repo.Save(ctx, failed))

	records, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "mode", records[0].Parameter)
	assert.Equal(t, "20", records[1].Value)
	assert.Equal(t, "10", records[2].Value)

	got := records[0]
	assert.Equal(t, entity.PushModeBulk, got.Mode)
	assert.Equal(t, entity.ParameterString, got.Kind)
	assert.False(t, got.Successful)
	assert.Equal(t, "parameter is read-only", got.Reason)
	assert.Equal(t, "fsw_telemetry.TelemetryPlugin", got.Plugin)
	assert.Equal(t, "/etc/fsw/params.yaml", got.File)
	assert.True(t, got.PushedAt.Equal(base.Add(2*time.Minute)))

	limited, err := repo.GetRecent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestPushJournal_GetRecent_Empty(t *testing.T) {
	ctx, repo := openJournal(t)

	records, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPushJournal_FindByParameter(t *testing.T) {
	ctx, repo := openJournal(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, record("fsw_bridge", "rate", "10", base)))
	require.NoError(t, repo.Save(ctx, record("fsw_bridge", "gains.kp", "1.5", base.Add(time.Second))))
	require.NoError(t, repo.Save(ctx, record("other_node", "rate", "99", base.Add(2*time.Second))))
	require.NoError(t, repo.Save(ctx, record("fsw_bridge", "rate", "30", base.Add(3*time.Second))))

	records, err := repo.FindByParameter(ctx, "fsw_bridge", "rate", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "30", records[0].Value)
	assert.Equal(t, "10", records[1].Value)

	records, err = repo.FindByParameter(ctx, "fsw_bridge", "missing", 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPushJournal_DeleteBefore(t *testing.T) {
	ctx, repo := openJournal(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, record("fsw_bridge", "rate", "1", base.Add(-48*time.Hour))))
	require.NoError(t, repo.Save(ctx, record("fsw_bridge", "rate", "2", base.Add(-25*time.Hour))))
	require.NoError(t, repo.Save(ctx, record("fsw_bridge", "rate", "3", base)))

	deleted, err := repo.DeleteBefore(ctx, base.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	records, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "3", records[0].Value)
}

func TestNewConnection_Reopen(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "nested", "journal.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewPushJournalRepository(db).Save(ctx, record("n", "p", "1", time.Now())))
	require.NoError(t, sqlite.Close(db))

	db, err = sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	records, err := sqlite.NewPushJournalRepository(db).GetRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	require.Error(t, err)
}

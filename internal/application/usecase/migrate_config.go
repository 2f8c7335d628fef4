package usecase

import (
	"context"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/logging"
)

// CheckConfigMigrationOutput holds the result of the migration check.
type CheckConfigMigrationOutput struct {
	// NeedsMigration is true if there are missing or deprecated keys.
	NeedsMigration bool
	// MissingKeys contains info about each missing key.
	MissingKeys []port.KeyInfo
	// DeprecatedKeys are keys the application no longer reads.
	DeprecatedKeys []string
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	// Applied lists added keys and removed deprecated keys.
	Applied    []string
	ConfigFile string
}

// MigrateConfigUseCase handles config migration operations.
type MigrateConfigUseCase struct {
	migrator port.ConfigMigrator
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{migrator: migrator}
}

// Check reports whether the user config differs from the known keys.
func (uc *MigrateConfigUseCase) Check(ctx context.Context) (*CheckConfigMigrationOutput, error) {
	log := logging.FromContext(ctx)

	result, err := uc.migrator.CheckMigration()
	if err != nil {
		log.Warn().Err(err).Msg("config migration check failed")
		return nil, err
	}

	if result == nil {
		log.Debug().Msg("config is up to date, no migration needed")
		return &CheckConfigMigrationOutput{}, nil
	}

	keyInfos := make([]port.KeyInfo, 0, len(result.MissingKeys))
	for _, key := range result.MissingKeys {
		keyInfos = append(keyInfos, uc.migrator.GetKeyInfo(key))
	}

	log.Debug().
		Int("missing_keys", len(result.MissingKeys)).
		Int("deprecated_keys", len(result.DeprecatedKeys)).
		Str("config_file", result.ConfigFile).
		Msg("config migration check completed")

	return &CheckConfigMigrationOutput{
		NeedsMigration: true,
		MissingKeys:    keyInfos,
		DeprecatedKeys: result.DeprecatedKeys,
		ConfigFile:     result.ConfigFile,
	}, nil
}

// Execute migrates the user's config file.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context) (*MigrateConfigOutput, error) {
	log := logging.FromContext(ctx)

	check, err := uc.Check(ctx)
	if err != nil {
		return nil, err
	}
	if !check.NeedsMigration {
		return &MigrateConfigOutput{}, nil
	}

	applied, err := uc.migrator.Migrate()
	if err != nil {
		log.Error().Err(err).Msg("config migration failed")
		return nil, err
	}

	log.Info().
		Int("applied_keys", len(applied)).
		Str("config_file", check.ConfigFile).
		Msg("config migration completed")

	return &MigrateConfigOutput{Applied: applied, ConfigFile: check.ConfigFile}, nil
}

// Package cli wires configuration, adapters and use cases for the commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bnema/bridgecfg/internal/application/usecase"
	"github.com/bnema/bridgecfg/internal/cli/styles"
	"github.com/bnema/bridgecfg/internal/domain/build"
	"github.com/bnema/bridgecfg/internal/domain/repository"
	"github.com/bnema/bridgecfg/internal/infrastructure/bridge"
	"github.com/bnema/bridgecfg/internal/infrastructure/config"
	"github.com/bnema/bridgecfg/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bridgecfg/internal/infrastructure/yamlstore"
	"github.com/bnema/bridgecfg/internal/logging"
)

const hoursPerDay = 24

// Options are the command-line overrides applied on top of the config file.
type Options struct {
	ConfigFile string
	SocketPath string
	LogLevel   string
	// FileLog sends logs to the rotated log file instead of stderr.
	FileLog bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	Bridge  *bridge.Client
	Store   *yamlstore.Store
	Watcher *yamlstore.Watcher
	// Journal is nil when journal.enabled is false.
	Journal   repository.PushJournalRepository
	journalDB *sqlite.LazyDB

	ConnectUC *usecase.ConnectBridgeUseCase
	FilesUC   *usecase.ManageConfigFileUseCase
	EditUC    *usecase.EditValueUseCase
	PushUC    *usecase.PushParametersUseCase
	HistoryUC *usecase.ListPushHistoryUseCase

	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}

	cfg := config.DefaultConfig()
	loadErr := mgr.Load()
	if loadErr == nil {
		cfg = mgr.Get()
	}

	if opts.SocketPath != "" {
		cfg.Bridge.SocketPath = opts.SocketPath
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if cfg.Bridge.SocketPath == "" {
		cfg.Bridge.SocketPath = config.DefaultSocketPath()
	}
	if cfg.Journal.Path == "" {
		if path, pathErr := config.GetJournalFile(); pathErr == nil {
			cfg.Journal.Path = path
		}
	}

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg),
		logCleanup:    func() {},
	}
	if err := app.initLogger(opts.FileLog); err != nil {
		return nil, err
	}

	log := logging.FromContext(app.ctx)
	if loadErr != nil {
		// An explicit file that cannot be read is fatal; a broken default file is not.
		if opts.ConfigFile != "" {
			app.logCleanup()
			return nil, fmt.Errorf("load config: %w", loadErr)
		}
		log.Warn().Err(loadErr).Msg("config not loaded, using defaults")
	}

	app.Bridge = bridge.NewClient(cfg.Bridge.SocketPath, cfg.Bridge.CallTimeout())
	app.Store = yamlstore.NewStore()
	app.Watcher = yamlstore.NewWatcher(yamlstore.DefaultDebounce)

	if cfg.Journal.Enabled {
		app.journalDB = sqlite.NewLazyDB(cfg.Journal.Path)
		app.Journal = sqlite.NewLazyPushJournal(app.journalDB)
		app.HistoryUC = usecase.NewListPushHistoryUseCase(app.Journal)
	}

	namespace := cfg.Editor.ParameterNamespace
	app.ConnectUC = usecase.NewConnectBridgeUseCase(app.Bridge, app.Bridge, cfg.Bridge.DiscoveryTimeout())
	app.FilesUC = usecase.NewManageConfigFileUseCase(app.Store)
	app.EditUC = usecase.NewEditValueUseCase(app.Journal, namespace)
	app.PushUC = usecase.NewPushParametersUseCase(app.Journal, namespace)

	log.Debug().
		Str("socket", cfg.Bridge.SocketPath).
		Bool("journal", cfg.Journal.Enabled).
		Str("config_file", mgr.GetConfigFile()).
		Msg("app initialized")

	return app, nil
}

func (a *App) initLogger(fileLog bool) error {
	level, format := a.Config.Logging.Level, a.Config.Logging.Format
	if !fileLog {
		a.ctx = logging.WithContext(context.Background(), logging.NewFromConfigValues(level, format))
		return nil
	}

	logDir := a.Config.Logging.LogDir
	if logDir == "" {
		dir, err := config.GetLogDir()
		if err != nil {
			return fmt.Errorf("log dir: %w", err)
		}
		logDir = dir
	}

	logger, cleanup, err := logging.NewWithFile(level, format, logDir)
	if err != nil {
		// Without a log file the editor still works; it just runs silent.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	a.ctx = logging.WithContext(context.Background(), logger)
	a.logCleanup = cleanup
	return nil
}

// PruneJournal applies journal.retention_days. A journal that cannot be
// opened is disabled for the rest of the run.
func (a *App) PruneJournal(ctx context.Context) {
	if a.HistoryUC == nil || a.Config.Journal.RetentionDays <= 0 {
		return
	}
	maxAge := time.Duration(a.Config.Journal.RetentionDays) * hoursPerDay * time.Hour
	if _, err := a.HistoryUC.Prune(ctx, maxAge); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("push journal unavailable, disabling it")
		a.disableJournal()
	}
}

func (a *App) disableJournal() {
	namespace := a.Config.Editor.ParameterNamespace
	a.Journal = nil
	a.HistoryUC = nil
	a.EditUC = usecase.NewEditValueUseCase(nil, namespace)
	a.PushUC = usecase.NewPushParametersUseCase(nil, namespace)
}

// Connect performs a single discovery attempt and makes the discovered
// config files selectable.
func (a *App) Connect(ctx context.Context) (*usecase.PollOutput, error) {
	out, err := a.ConnectUC.Connect(ctx)
	if err != nil {
		return out, fmt.Errorf("bridge at %s: %w", a.Config.Bridge.SocketPath, err)
	}
	a.FilesUC.SetFiles(out.Files)
	return out, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.journalDB != nil {
		err = a.journalDB.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

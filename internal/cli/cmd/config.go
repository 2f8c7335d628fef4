package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/bridgecfg/internal/application/usecase"
	"github.com/bnema/bridgecfg/internal/cli/styles"
	"github.com/bnema/bridgecfg/internal/infrastructure/config"
)

var (
	configYes     bool
	configForce   bool
	schemaJSON    bool
	schemaWrite   bool
	schemaSection string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the bridgecfg configuration file",
	Long:  `Locate, create, inspect and migrate the TOML configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default",
	Long: `Write the default configuration in a stable section order.

An existing file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Describe every configuration key",
	Long: `List every configuration key with its type, default and environment
variable. --json prints the JSON Schema used by editors for completion and
--write stores it next to the config file.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file status and migration availability",
	Long:  `Display the config file path and check if any settings are missing or deprecated.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigStatus,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing settings and drop deprecated ones",
	Long: `Compares your config file with the known settings, adds any missing keys
with their default values and removes keys bridgecfg no longer reads.

Existing values are never modified.`,
	Args: cobra.NoArgs,
	RunE: runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configMigrateCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")

	f := configSchemaCmd.Flags()
	f.BoolVar(&schemaJSON, "json", false, "print the JSON Schema")
	f.BoolVar(&schemaWrite, "write", false, "write the JSON Schema to the default schema path")
	f.StringVar(&schemaSection, "section", "", "only show keys of this section")
}

// configFilePath resolves the config file without loading it.
func configFilePath() (string, error) {
	if opts.ConfigFile != "" {
		return opts.ConfigFile, nil
	}
	return config.GetConfigFile()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(styles.NewTheme(nil))
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWritten("default config", path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	w := cmd.OutOrStdout()
	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())

	if schemaWrite {
		path, err := config.GetSchemaFile()
		if err != nil {
			return err
		}
		if err := config.GenerateSchemaFile(path); err != nil {
			return err
		}
		fmt.Fprintln(w, styles.NewConfigRenderer(a.Theme).RenderWritten("JSON schema", path))
		return nil
	}

	if schemaJSON {
		data, err := uc.JSONSchema(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	out, err := uc.Execute(ctx, usecase.GetConfigSchemaInput{Section: schemaSection})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, styles.NewConfigSchemaRenderer(a.Theme).Render(out.Keys))
	return nil
}

// runConfigStatus shows config file path and migration status.
func runConfigStatus(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(a.Theme)
	configFile := a.ConfigManager.GetConfigFile()

	if _, statErr := os.Stat(configFile); errors.Is(statErr, os.ErrNotExist) {
		fmt.Fprintln(w, renderer.RenderNoConfigFile(configFile))
		return nil
	}

	uc := usecase.NewMigrateConfigUseCase(config.NewMigrator(configFile))
	result, err := uc.Check(a.Ctx())
	if err != nil {
		fmt.Fprintln(w, renderer.RenderError(err))
		return nil
	}

	if !result.NeedsMigration {
		fmt.Fprintln(w, renderer.RenderUpToDate(configFile))
		return nil
	}

	fmt.Fprintln(w, renderer.RenderConfigInfo(configFile, len(result.MissingKeys), len(result.DeprecatedKeys)))
	fmt.Fprintln(w, renderer.RenderMigrateHint())
	return nil
}

// runConfigMigrate runs the migration with optional confirmation.
func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(a.Theme)
	configFile := a.ConfigManager.GetConfigFile()

	if _, statErr := os.Stat(configFile); errors.Is(statErr, os.ErrNotExist) {
		fmt.Fprintln(w, renderer.RenderNoConfigFile(configFile))
		return nil
	}

	ctx := a.Ctx()
	uc := usecase.NewMigrateConfigUseCase(config.NewMigrator(configFile))
	result, err := uc.Check(ctx)
	if err != nil {
		fmt.Fprintln(w, renderer.RenderError(err))
		return nil
	}

	if !result.NeedsMigration {
		fmt.Fprintln(w, renderer.RenderUpToDate(configFile))
		return nil
	}

	fmt.Fprintln(w, renderer.RenderConfigInfo(configFile, len(result.MissingKeys), len(result.DeprecatedKeys)))
	if len(result.MissingKeys) > 0 {
		fmt.Fprintln(w, renderer.RenderMissingKeys(result.MissingKeys))
	}
	if len(result.DeprecatedKeys) > 0 {
		fmt.Fprintln(w, renderer.RenderDeprecatedKeys(result.DeprecatedKeys))
	}

	if configYes {
		return executeMigration(ctx, w, uc, renderer)
	}
	return runMigrateWithConfirmation(ctx, uc, renderer, a.Theme)
}

// executeMigration performs the actual migration.
func executeMigration(ctx context.Context, w io.Writer, uc *usecase.MigrateConfigUseCase, renderer *styles.ConfigRenderer) error {
	result, err := uc.Execute(ctx)
	if err != nil {
		fmt.Fprintln(w, renderer.RenderError(err))
		return nil
	}

	if len(result.Applied) > 0 {
		fmt.Fprintln(w, renderer.RenderMigrationSuccess(len(result.Applied), result.ConfigFile))
	}
	return nil
}

type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateRunning
	migrateStateDone
)

// migrateModel asks for confirmation, then runs the migration.
type migrateModel struct {
	ctx      context.Context
	spinner  spinner.Model
	renderer *styles.ConfigRenderer
	confirm  styles.ConfirmModel
	state    migrateState
	uc       *usecase.MigrateConfigUseCase

	result   string
	err      error
	quitting bool
}

type migrateResultMsg struct {
	output *usecase.MigrateConfigOutput
	err    error
}

func newMigrateModel(
	ctx context.Context,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	uc *usecase.MigrateConfigUseCase,
) migrateModel {
	return migrateModel{
		ctx:      ctx,
		spinner:  styles.NewDefaultSpinner(theme),
		renderer: renderer,
		confirm:  styles.NewConfirm(theme, "Apply these changes to your config file?"),
		state:    migrateStateConfirm,
		uc:       uc,
	}
}

func (m migrateModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		if len(msg.output.Applied) > 0 {
			m.result = m.renderer.RenderMigrationSuccess(len(msg.output.Applied), msg.output.ConfigFile)
		}
		return m, tea.Quit
	}

	if m.state != migrateStateConfirm {
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	if !m.confirm.Result() {
		m.quitting = true
		return m, tea.Quit
	}
	m.state = migrateStateRunning
	return m, m.runMigration()
}

func (m migrateModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.err != nil:
		return m.renderer.RenderError(m.err) + "\n"
	case m.state == migrateStateDone:
		return m.result + "\n"
	case m.state == migrateStateRunning:
		return m.spinner.View() + " migrating...\n"
	}
	return m.confirm.View()
}

func (m migrateModel) runMigration() tea.Cmd {
	ctx, uc := m.ctx, m.uc
	return func() tea.Msg {
		result, err := uc.Execute(ctx)
		return migrateResultMsg{output: result, err: err}
	}
}

func runMigrateWithConfirmation(
	ctx context.Context,
	uc *usecase.MigrateConfigUseCase,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
) error {
	p := tea.NewProgram(newMigrateModel(ctx, renderer, theme, uc))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

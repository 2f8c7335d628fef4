package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/application/usecase"
	"github.com/bnema/bridgecfg/internal/cli/styles"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/infrastructure/bridge"
	"github.com/bnema/bridgecfg/internal/logging"
)

var (
	mockPlugin  string
	mockPackage string
	mockNode    string
)

var pushCmd = &cobra.Command{
	Use:   "push FILE",
	Short: "Push every parameter in a config file to the bridge",
	Long: `Flatten the parameters of FILE and send them to the node in one call.

Per-parameter results are printed; the command fails when any parameter is
rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: runPush,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Query the bridge once and print the plugin identity",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

var mockBridgeCmd = &cobra.Command{
	Use:   "mock-bridge [FILE...]",
	Short: "Serve a fake bridge on the control socket",
	Long: `Serve a stand-in bridge on the configured socket.

The mock reports FILE arguments as its config files and declares every
parameter they contain, so pushes of mismatched types are rejected the way
the real node rejects them. Stop it with Ctrl+C.

Example:
  bridgecfg mock-bridge --node fsw_bridge ./config/params.yaml`,
	RunE: runMockBridge,
}

func init() {
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(mockBridgeCmd)

	f := mockBridgeCmd.Flags()
	f.StringVar(&mockPlugin, "plugin", "fsw_mock.MockPlugin", "plugin name reported by discovery")
	f.StringVar(&mockPackage, "package", "", "package name reported by discovery (default derived from --plugin)")
	f.StringVar(&mockNode, "node", "fsw_bridge", "node name reported by discovery")
}

func runPush(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	a.PruneJournal(ctx)

	doc, err := a.FilesUC.Open(ctx, args[0])
	if err != nil {
		return err
	}
	info, err := a.Connect(ctx)
	if err != nil {
		return err
	}
	client, err := a.ConnectUC.Client()
	if err != nil {
		return err
	}

	out, err := a.PushUC.Execute(ctx, usecase.PushParametersInput{
		Document: doc,
		Client:   client,
		Plugin:   *info.Info,
		File:     args[0],
	})
	if out != nil {
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewParamsRenderer(a.Theme).RenderResults(out.Results))
	}
	return err
}

func runInfo(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	out, err := a.Connect(a.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewParamsRenderer(a.Theme).RenderPluginInfo(out.Info))
	return nil
}

func runMockBridge(cmd *cobra.Command, files []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = logging.WithComponent(ctx, "mock-bridge")

	store := bridge.NewMemoryParameterStore()
	declared, err := declareParameters(ctx, a.Store, store, mockNode, files, a.Config.Editor.ParameterNamespace)
	if err != nil {
		return err
	}

	info := entity.PluginInfo{
		PluginName:  mockPlugin,
		PackageName: mockPackage,
		NodeName:    mockNode,
		ConfigFiles: files,
	}
	mb := bridge.NewMockBridge(a.Config.Bridge.SocketPath, info, store)

	fmt.Fprintf(cmd.OutOrStdout(), "mock bridge for %s on %s (%d parameters)\n",
		mockNode, a.Config.Bridge.SocketPath, declared)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return mb.Serve(gctx)
	})
	for _, file := range files {
		g.Go(func() error {
			return redeclareOnChange(gctx, a.Watcher, a.Store, store, mockNode, file, a.Config.Editor.ParameterNamespace)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// declareParameters loads every file and declares its parameters under
// node. It returns the number of parameters declared.
func declareParameters(
	ctx context.Context,
	docs port.DocumentStore,
	store *bridge.MemoryParameterStore,
	node string,
	files []string,
	namespace string,
) (int, error) {
	total := 0
	for _, file := range files {
		doc, err := docs.Load(ctx, file)
		if err != nil {
			return total, err
		}
		params, _, err := usecase.CollectParameters(doc, namespace)
		if err != nil {
			return total, fmt.Errorf("%s: %w", file, err)
		}
		for _, p := range params {
			store.Declare(node, p)
		}
		total += len(params)
	}
	return total, nil
}

// redeclareOnChange keeps the mock in step with edits saved to file.
func redeclareOnChange(
	ctx context.Context,
	watcher port.DocumentWatcher,
	docs port.DocumentStore,
	store *bridge.MemoryParameterStore,
	node string,
	file string,
	namespace string,
) error {
	log := logging.FromContext(logging.WithFile(ctx, file))

	changes, err := watcher.Watch(ctx, file)
	if err != nil {
		log.Warn().Err(err).Msg("not watching config file")
		return nil
	}
	for change := range changes {
		if change.Removed {
			continue
		}
		n, err := declareParameters(ctx, docs, store, node, []string{file}, namespace)
		if err != nil {
			log.Warn().Err(err).Msg("config file changed but could not be read")
			continue
		}
		log.Info().Int("parameters", n).Msg("parameters redeclared")
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bridgecfg/internal/application/usecase"
	"github.com/bnema/bridgecfg/internal/cli/styles"
	"github.com/bnema/bridgecfg/internal/domain/entity"
)

var setPush bool

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print the tree of a config file",
	Long:  `Print the display tree of a YAML config file with every branch expanded.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var paramsCmd = &cobra.Command{
	Use:   "params FILE",
	Short: "Print the parameters a push would send",
	Long: `Flatten the parameter section of every node in FILE and print one
"name = value (kind)" line per parameter. Sequences are listed as skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runParams,
}

var setCmd = &cobra.Command{
	Use:   "set FILE PATH VALUE",
	Short: "Set a value in a config file",
	Long: `Set the scalar at a dotted PATH and save FILE.

VALUE is typed the same way the editor types it: integers, then floats,
then true/false, otherwise a string. With --push the value is also sent to
the running node.

Examples:
  bridgecfg set params.yaml fsw_bridge.ros__parameters.rate 20
  bridgecfg set params.yaml fsw_bridge.ros__parameters.mode manual --push`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(paramsCmd)
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().BoolVar(&setPush, "push", false, "also push the new value to the bridge")
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	doc, err := a.Store.Load(a.Ctx(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewTreeRenderer(a.Theme).Render(doc))
	return nil
}

func runParams(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	doc, err := a.Store.Load(a.Ctx(), args[0])
	if err != nil {
		return err
	}
	params, skipped, err := usecase.CollectParameters(doc, a.Config.Editor.ParameterNamespace)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewParamsRenderer(a.Theme).RenderParameters(params, skipped))
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	file, rawPath, raw := args[0], args[1], args[2]

	path := entity.ParsePath(rawPath)
	if len(path) == 0 {
		return fmt.Errorf("empty path")
	}

	doc, err := a.FilesUC.Open(ctx, file)
	if err != nil {
		return err
	}

	input := usecase.EditValueInput{
		Document: doc,
		Path:     path,
		Raw:      raw,
		LivePush: setPush,
		File:     file,
	}
	if setPush {
		a.PruneJournal(ctx)
		out, connErr := a.Connect(ctx)
		if connErr != nil {
			return connErr
		}
		input.Client, _ = a.ConnectUC.Client()
		input.Plugin = *out.Info
	}

	out, editErr := a.EditUC.Execute(ctx, input)
	if out == nil {
		return editErr
	}
	a.FilesUC.MarkDirty()
	if err := a.FilesUC.Save(ctx); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s = %s (%s)\n", path, out.Value, out.Value.Kind)
	if out.Result != nil {
		fmt.Fprintln(w, styles.NewParamsRenderer(a.Theme).RenderResults([]entity.ParameterResult{*out.Result}))
	}
	// The file was saved; a failed push is still reported.
	return editErr
}

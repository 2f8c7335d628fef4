package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/bridgecfg/internal/application/usecase"
)

var (
	historyLimit     int
	historyNode      string
	historyParameter string
	historyPruneDays int
)

const defaultHistoryLimit = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent parameter pushes",
	Long: `List entries of the push journal, newest first.

Examples:
  bridgecfg history --limit 20
  bridgecfg history --node fsw_bridge --parameter gains.kp
  bridgecfg history --prune 30`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	f := historyCmd.Flags()
	f.IntVarP(&historyLimit, "limit", "n", defaultHistoryLimit, "maximum entries to show")
	f.StringVar(&historyNode, "node", "", "only show pushes to this node")
	f.StringVar(&historyParameter, "parameter", "", "only show pushes of this parameter (requires --node)")
	f.IntVar(&historyPruneDays, "prune", 0, "delete entries older than this many days instead of listing")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if a.HistoryUC == nil {
		return fmt.Errorf("push journal is disabled (journal.enabled = false)")
	}

	ctx := a.Ctx()
	w := cmd.OutOrStdout()

	if historyPruneDays > 0 {
		n, err := a.HistoryUC.Prune(ctx, time.Duration(historyPruneDays)*24*time.Hour)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "deleted %d journal entries\n", n)
		return nil
	}

	records, err := a.HistoryUC.Execute(ctx, usecase.ListPushHistoryInput{
		Limit:     historyLimit,
		Node:      historyNode,
		Parameter: historyParameter,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, a.Theme.RenderJournal(records, time.Now(), usecase.RelativeTime))
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depthful/locaudit/internal/audit"
	"github.com/depthful/locaudit/internal/catalog"
)

var statusCmd = &cobra.Command{
	Use:   "status [catalog]",
	Short: "Show completion status without modifying the catalog",
	Long: `Load the catalog, compute the completion percentage and per-language
coverage, and print a summary. The catalog file is never written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	env, err := newRunEnv(cmd, args)
	if err != nil {
		return err
	}

	cat, err := catalog.Load(env.path)
	if err != nil {
		return err
	}

	rep := audit.Analyze(cat, env.targets)
	fmt.Fprint(cmd.OutOrStdout(), env.renderer.Status(rep, env.targets))
	return nil
}

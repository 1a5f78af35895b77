package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depthful/locaudit/internal/audit"
	"github.com/depthful/locaudit/internal/catalog"
	"github.com/depthful/locaudit/internal/report"
)

var fixCmd = &cobra.Command{
	Use:   "fix [catalog]",
	Short: "Repair missing translations without prompting",
	Long: `Analyze the catalog and, when incomplete entries exist, fill every
missing language unconditionally. The catalog is saved only when the
completion percentage actually improved. Intended for unattended runs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().Bool("backup", true, "Copy the catalog to a .backup sibling before writing")
}

func runFix(cmd *cobra.Command, args []string) error {
	env, err := newRunEnv(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	cat, err := catalog.Load(env.path)
	if err != nil {
		return err
	}

	before := audit.Analyze(cat, env.targets)
	fmt.Fprintf(out, "Current completion: %.1f%% (%d incomplete keys)\n",
		before.CompletionPercentage, len(before.IncompleteKeys))

	if !before.Incomplete() {
		fmt.Fprintf(out, "%s Localizations are already 100%% complete\n", symSuccess())
		return nil
	}

	repaired, touched := audit.NewRepairer(env.dict).Repair(cat, before, env.targets)
	for _, key := range before.IncompleteKeys {
		if n := len(before.MissingLanguages[key]); n > 0 {
			fmt.Fprintf(out, "  %s %s +%d language(s)\n", symSuccess(), report.TruncateKey(key), n)
		}
	}
	fmt.Fprintf(out, "Fixed %d keys with missing translations\n", touched)

	after := audit.Analyze(repaired, env.targets)
	fmt.Fprintf(out, "New completion: %.1f%% (%d incomplete keys remain)\n",
		after.CompletionPercentage, len(after.IncompleteKeys))

	if after.CompletionPercentage <= before.CompletionPercentage {
		fmt.Fprintf(out, "%s No improvement made, catalog left untouched\n", symWarning())
		return nil
	}

	if err := catalog.Save(repaired, env.path, env.backup); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s Completion improved from %.1f%% to %.1f%%\n",
		symSuccess(), before.CompletionPercentage, after.CompletionPercentage)
	return nil
}

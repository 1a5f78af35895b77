package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depthful/locaudit/internal/audit"
	"github.com/depthful/locaudit/internal/catalog"
	"github.com/depthful/locaudit/internal/ui"
)

var auditCmd = &cobra.Command{
	Use:   "audit [catalog]",
	Short: "Analyze the catalog and interactively repair missing translations",
	Long: `Analyze the catalog against the target language set and print the
full report. When incomplete entries remain, ask for confirmation, fill the
gaps from the phrase dictionary (placeholder values where no dictionary
entry exists), and save the catalog if completion improved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().Bool("backup", true, "Copy the catalog to a .backup sibling before writing")
	auditCmd.Flags().Bool("yes", false, "Repair without asking for confirmation")
}

func runAudit(cmd *cobra.Command, args []string) error {
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
	fmt.Fprint(out, env.renderer.Analysis(before))

	if !before.Incomplete() {
		fmt.Fprintf(out, "\n%s Localizations are already 100%% complete\n", symSuccess())
		return nil
	}

	prompt := auditPrompter(cmd)
	proceed, err := prompt.Confirm(
		fmt.Sprintf("Automatically fix %d incomplete keys?", len(before.IncompleteKeys)), false)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			fmt.Fprintln(out, "Fix cancelled.")
			return nil
		}
		return err
	}
	if !proceed {
		fmt.Fprintln(out, "Fix cancelled.")
		return nil
	}

	repaired, touched := audit.NewRepairer(env.dict).Repair(cat, before, env.targets)
	after := audit.Analyze(repaired, env.targets)

	if after.CompletionPercentage <= before.CompletionPercentage {
		fmt.Fprintf(out, "%s No improvement made. Manual intervention may be required.\n", symWarning())
		return nil
	}

	if err := catalog.Save(repaired, env.path, env.backup); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s Fixed %d keys. Completion improved from %.1f%% to %.1f%%\n",
		symSuccess(), touched, before.CompletionPercentage, after.CompletionPercentage)
	return nil
}

// auditPrompter returns the confirmation capability for this run: a fixed
// yes under --yes, an interactive prompt otherwise.
func auditPrompter(cmd *cobra.Command) ui.Prompter {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return ui.StaticPrompter(true)
	}
	return ui.NewPrompter(ui.NewHeadlessManager())
}

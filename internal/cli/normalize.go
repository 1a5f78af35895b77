package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depthful/locaudit/internal/audit"
	"github.com/depthful/locaudit/internal/catalog"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <catalog>",
	Short: "Synthesize missing English entries and coerce translation states",
	Long: `A narrow repair pass: every translatable entry that has localizations
but no English one gains an English localization using the key as its value,
and every existing state is forced to "translated". Running it twice is a
no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().Bool("backup", true, "Copy the catalog to a .backup sibling before writing")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	env, err := newRunEnv(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	cat, err := catalog.Load(env.path)
	if err != nil {
		return err
	}

	normalized, stats := audit.Normalize(cat)
	fmt.Fprintf(out, "Entries missing English localization: %d\n", stats.BaseAdded)
	fmt.Fprintf(out, "States coerced to translated: %d\n", stats.StatesCoerced)

	if !stats.Changed() {
		fmt.Fprintf(out, "%s Catalog already normalized\n", symSuccess())
		return nil
	}

	if err := catalog.Save(normalized, env.path, env.backup); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s Updated %s\n", symSuccess(), env.path)
	return nil
}

// Package cli wires the locaudit command tree. Each subcommand is one pass
// over a single catalog file: status (read-only), audit (interactive
// repair), fix (unattended repair), and normalize (base-language cleanup).
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/depthful/locaudit/pkg/version"
)

// defaultCatalogName is the conventional catalog file, looked up in the
// working directory when a command allows omitting the path argument.
const defaultCatalogName = "Localizable.xcstrings"

// CLI output styles for consistent terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }
func symWarning() string { return cliWarn.Render("!") }

var rootCmd = &cobra.Command{
	Use:   "locaudit",
	Short: "Audit and repair an Xcode String Catalog",
	Long: `locaudit audits a Localizable.xcstrings catalog for missing or
incomplete translations across the app's target languages, optionally
filling gaps with dictionary or placeholder values, and reports
completion metrics.`,
	Version:          version.GetVersion(),
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command, printing any failure to stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "%s %v\n", symError(), err)
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("locaudit %s\n", version.GetVersion()))

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default .locaudit.yaml next to the catalog)")
	pf.StringSlice("languages", nil, "Override the target language set (BCP 47 codes)")
	pf.String("dictionary", "", "YAML phrase table layered over the builtin dictionary")
	pf.Bool("no-color", false, "Disable styled output")
	pf.Bool("verbose", false, "Enable debug logging")
}

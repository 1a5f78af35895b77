package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/depthful/locaudit/internal/config"
	"github.com/depthful/locaudit/internal/lang"
	"github.com/depthful/locaudit/internal/phrase"
	"github.com/depthful/locaudit/internal/report"
)

// runEnv is the resolved environment one command invocation operates in:
// catalog path, effective config (file overlaid by flags), target set,
// dictionary, and renderer.
type runEnv struct {
	path     string
	cfg      *config.Config
	targets  lang.TargetSet
	dict     phrase.Dictionary
	renderer *report.Renderer
	backup   bool
}

// newRunEnv resolves the environment for a command. The catalog path comes
// from the first positional argument, defaulting to Localizable.xcstrings
// in the working directory. Config is read from the catalog's directory;
// flags override it.
func newRunEnv(cmd *cobra.Command, args []string) (*runEnv, error) {
	path := defaultCatalogName
	if len(args) > 0 {
		path = args[0]
	}

	flags := cmd.Flags()

	var cfg *config.Config
	var err error
	if cfgPath, _ := flags.GetString("config"); cfgPath != "" {
		cfg, err = config.LoadFile(cfgPath)
	} else {
		cfg, err = config.Load(filepath.Dir(path))
	}
	if err != nil {
		return nil, err
	}

	if langs, _ := flags.GetStringSlice("languages"); len(langs) > 0 {
		cfg.Languages = langs
	}
	if dict, _ := flags.GetString("dictionary"); dict != "" {
		cfg.Dictionary = dict
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.NoColor = true
	}

	targets, err := cfg.TargetSet()
	if err != nil {
		return nil, err
	}

	dict := phrase.Dictionary(phrase.Builtin())
	if cfg.Dictionary != "" {
		custom, err := phrase.LoadFile(cfg.Dictionary)
		if err != nil {
			return nil, err
		}
		dict = phrase.Merge(custom)
	}

	backup := cfg.BackupEnabled()
	if flags.Changed("backup") {
		backup, _ = flags.GetBool("backup")
	}

	return &runEnv{
		path:     path,
		cfg:      cfg,
		targets:  targets,
		dict:     dict,
		renderer: report.NewRenderer(cfg.NoColor),
		backup:   backup,
	}, nil
}

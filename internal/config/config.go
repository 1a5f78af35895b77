// Package config loads the optional .locaudit.yaml project file that tunes
// the audit: target languages, a custom phrase dictionary, and backup
// behavior. A missing file yields compiled defaults; CLI flags override
// whatever was loaded.
package config

import "github.com/depthful/locaudit/internal/lang"

// FileName is the conventional config file name, looked up next to the
// catalog being audited.
const FileName = ".locaudit.yaml"

// Config holds the audit settings a project can override.
type Config struct {
	// Languages is the target-language set. Empty means the builtin ten.
	Languages []string `yaml:"languages"`

	// Dictionary is an optional path to a custom phrase table, resolved
	// relative to the config file's directory.
	Dictionary string `yaml:"dictionary"`

	// Backup controls whether mutating commands copy the catalog aside
	// before writing. Nil means the default (true).
	Backup *bool `yaml:"backup"`

	// NoColor disables styled terminal output.
	NoColor bool `yaml:"no_color"`
}

// NewDefaultConfig returns a Config with compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Languages: lang.Default().Codes(),
	}
}

// BackupEnabled resolves the Backup tri-state.
func (c *Config) BackupEnabled() bool {
	return c.Backup == nil || *c.Backup
}

// TargetSet builds the validated target-language set from the config.
func (c *Config) TargetSet() (lang.TargetSet, error) {
	if len(c.Languages) == 0 {
		return lang.Default(), nil
	}
	return lang.New(c.Languages...)
}

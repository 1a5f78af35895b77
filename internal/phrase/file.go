package phrase

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk shape of a custom dictionary:
//
//	phrases:
//	  Save:
//	    fr: Enregistrer
//	    de: Sichern
type tableFile struct {
	Phrases map[string]map[string]string `yaml:"phrases"`
}

// LoadFile reads a custom phrase table from a YAML file. The result is
// usually layered over the builtin table with Merge. Unlike config files, a
// missing dictionary file is an error: the caller asked for it by path.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	if file.Phrases == nil {
		return nil, fmt.Errorf("dictionary %s: missing top-level \"phrases\" mapping", path)
	}
	return Table(file.Phrases), nil
}

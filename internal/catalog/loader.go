package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// Load reads and parses the catalog file at path. It fails when the file is
// absent (ErrNotFound), is not valid JSON (ErrInvalidJSON), or parses but
// has no top-level "strings" object (ErrMissingStrings).
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
	}

	if cat.Strings == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingStrings, path)
	}

	slog.Debug("catalog loaded", "path", path, "keys", len(cat.Strings))
	return &cat, nil
}

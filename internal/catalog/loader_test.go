package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadValidCatalog(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "Localizable.xcstrings", `{
		"sourceLanguage": "en",
		"version": "1.0",
		"strings": {
			"Save": {
				"localizations": {
					"en": {"stringUnit": {"state": "translated", "value": "Save"}},
					"de": {"stringUnit": {"state": "translated", "value": "Sichern"}}
				}
			},
			"%d items": {"shouldTranslate": false}
		}
	}`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cat.SourceLanguage != "en" {
		t.Errorf("SourceLanguage = %q, want %q", cat.SourceLanguage, "en")
	}
	if len(cat.Strings) != 2 {
		t.Fatalf("len(Strings) = %d, want 2", len(cat.Strings))
	}

	save := cat.Strings["Save"]
	if !save.Translatable() {
		t.Error("Save entry should be translatable")
	}
	if got := save.Localizations["de"].Value(); got != "Sichern" {
		t.Errorf("de value = %q, want %q", got, "Sichern")
	}

	excluded := cat.Strings["%d items"]
	if excluded.Translatable() {
		t.Error("shouldTranslate: false entry reported as translatable")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.xcstrings"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "bad.xcstrings", `{"strings": `)
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("Load() error = %v, want ErrInvalidJSON", err)
	}
}

func TestLoadMissingStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"no strings key", `{"sourceLanguage": "en"}`},
		{"null strings", `{"strings": null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), "cat.xcstrings", tt.content)
			_, err := Load(path)
			if !errors.Is(err, ErrMissingStrings) {
				t.Errorf("Load() error = %v, want ErrMissingStrings", err)
			}
		})
	}
}

func TestLoadEmptyStringsObject(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "cat.xcstrings", `{"strings": {}}`)
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(cat.Strings) != 0 {
		t.Errorf("len(Strings) = %d, want 0", len(cat.Strings))
	}
}

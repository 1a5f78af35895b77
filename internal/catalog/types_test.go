package catalog

import (
	"reflect"
	"testing"
)

func TestKeysSorted(t *testing.T) {
	t.Parallel()

	cat := &Catalog{Strings: map[string]*Entry{
		"zebra": {}, "Apple": {}, "apple": {}, " of ": {},
	}}
	got := cat.Keys()
	want := []string{" of ", "Apple", "apple", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestTranslatable(t *testing.T) {
	t.Parallel()

	truthy := true
	falsy := false
	tests := []struct {
		name  string
		entry *Entry
		want  bool
	}{
		{"absent flag", &Entry{}, true},
		{"explicit true", &Entry{ShouldTranslate: &truthy}, true},
		{"explicit false", &Entry{ShouldTranslate: &falsy}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.entry.Translatable(); got != tt.want {
				t.Errorf("Translatable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocalizationTranslated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		loc  *Localization
		want bool
	}{
		{"nil localization", nil, false},
		{"nil string unit", &Localization{}, false},
		{"needs review", &Localization{StringUnit: &StringUnit{State: "needs_review", Value: "x"}}, false},
		{"no state", &Localization{StringUnit: &StringUnit{Value: "x"}}, false},
		{"translated", &Localization{StringUnit: &StringUnit{State: StateTranslated, Value: "x"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.loc.Translated(); got != tt.want {
				t.Errorf("Translated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	falsy := false
	cat := &Catalog{
		SourceLanguage: "en",
		Strings: map[string]*Entry{
			"Save": {
				Localizations: map[string]*Localization{
					"en": {StringUnit: &StringUnit{State: StateTranslated, Value: "Save"}},
				},
			},
			"skip": {ShouldTranslate: &falsy},
		},
	}

	clone := cat.Clone()
	if !reflect.DeepEqual(cat, clone) {
		t.Fatal("Clone() is not equal to the original")
	}

	clone.Strings["Save"].Localizations["fr"] = &Localization{
		StringUnit: &StringUnit{State: StateTranslated, Value: "Save"},
	}
	clone.Strings["Save"].Localizations["en"].StringUnit.Value = "changed"
	*clone.Strings["skip"].ShouldTranslate = true

	if _, leaked := cat.Strings["Save"].Localizations["fr"]; leaked {
		t.Error("mutating the clone's localizations leaked into the original")
	}
	if cat.Strings["Save"].Localizations["en"].Value() != "Save" {
		t.Error("mutating a cloned string unit leaked into the original")
	}
	if *cat.Strings["skip"].ShouldTranslate {
		t.Error("mutating a cloned shouldTranslate flag leaked into the original")
	}
}

package audit

import (
	"reflect"
	"testing"

	"github.com/depthful/locaudit/internal/catalog"
)

func TestNormalizeSynthesizesEnglish(t *testing.T) {
	t.Parallel()

	cat := &catalog.Catalog{Strings: map[string]*catalog.Entry{
		"Save": entry(map[string]string{"de": "Sichern"}),
	}}

	normalized, stats := Normalize(cat)
	if stats.BaseAdded != 1 {
		t.Errorf("BaseAdded = %d, want 1", stats.BaseAdded)
	}

	en := normalized.Strings["Save"].Localizations["en"]
	if en.Value() != "Save" {
		t.Errorf("synthesized en value = %q, want the key itself", en.Value())
	}
	if !en.Translated() {
		t.Error("synthesized en localization is not in translated state")
	}
}

func TestNormalizeSkipsEntriesWithoutLocalizations(t *testing.T) {
	t.Parallel()

	// An entry with no localizations at all gets no synthesized English:
	// only entries that already have at least one other language do.
	cat := &catalog.Catalog{Strings: map[string]*catalog.Entry{
		"Pending": {},
	}}

	normalized, stats := Normalize(cat)
	if stats.Changed() {
		t.Errorf("stats = %+v, want no changes", stats)
	}
	if normalized.Strings["Pending"].Localizations != nil {
		t.Error("entry without localizations gained one")
	}
}

func TestNormalizeCoercesStates(t *testing.T) {
	t.Parallel()

	cat := &catalog.Catalog{Strings: map[string]*catalog.Entry{
		"Save": {
			Localizations: map[string]*catalog.Localization{
				"en": {StringUnit: &catalog.StringUnit{State: catalog.StateTranslated, Value: "Save"}},
				"fr": {StringUnit: &catalog.StringUnit{State: "needs_review", Value: "Enregistrer"}},
				"de": {StringUnit: &catalog.StringUnit{Value: "Sichern"}},
			},
		},
	}}

	normalized, stats := Normalize(cat)
	if stats.StatesCoerced != 2 {
		t.Errorf("StatesCoerced = %d, want 2", stats.StatesCoerced)
	}
	for code, loc := range normalized.Strings["Save"].Localizations {
		if !loc.Translated() {
			t.Errorf("%s state = %q, want translated", code, loc.StringUnit.State)
		}
	}
	// Values survive coercion.
	if got := normalized.Strings["Save"].Localizations["fr"].Value(); got != "Enregistrer" {
		t.Errorf("fr value = %q, want unchanged %q", got, "Enregistrer")
	}
}

func TestNormalizeLeavesExcludedAlone(t *testing.T) {
	t.Parallel()

	falsy := false
	cat := &catalog.Catalog{Strings: map[string]*catalog.Entry{
		"%d items": {
			ShouldTranslate: &falsy,
			Localizations: map[string]*catalog.Localization{
				"de": {StringUnit: &catalog.StringUnit{State: "needs_review", Value: "%d Stück"}},
			},
		},
	}}

	normalized, stats := Normalize(cat)
	if stats.Changed() {
		t.Errorf("stats = %+v, want no changes for excluded entry", stats)
	}
	if !reflect.DeepEqual(normalized, cat) {
		t.Error("excluded entry was mutated")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	cat := &catalog.Catalog{Strings: map[string]*catalog.Entry{
		"Save": {
			Localizations: map[string]*catalog.Localization{
				"fr": {StringUnit: &catalog.StringUnit{State: "new", Value: "Enregistrer"}},
			},
		},
	}}

	once, stats := Normalize(cat)
	if !stats.Changed() {
		t.Fatal("first pass should change the catalog")
	}

	twice, stats2 := Normalize(once)
	if stats2.Changed() {
		t.Errorf("second pass stats = %+v, want no changes", stats2)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Error("second pass produced a different document")
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	cat := &catalog.Catalog{Strings: map[string]*catalog.Entry{
		"Save": entry(map[string]string{"de": "Sichern"}),
	}}
	snapshot := cat.Clone()

	Normalize(cat)
	if !reflect.DeepEqual(cat, snapshot) {
		t.Error("Normalize mutated its input catalog")
	}
}

package audit

import (
	"reflect"
	"testing"

	"github.com/depthful/locaudit/internal/catalog"
	"github.com/depthful/locaudit/internal/lang"
)

func targetsOf(t *testing.T, codes ...string) lang.TargetSet {
	t.Helper()
	ts, err := lang.New(codes...)
	if err != nil {
		t.Fatalf("lang.New(%v): %v", codes, err)
	}
	return ts
}

func entry(locs map[string]string) *catalog.Entry {
	e := &catalog.Entry{Localizations: make(map[string]*catalog.Localization, len(locs))}
	for code, value := range locs {
		e.Localizations[code] = &catalog.Localization{
			StringUnit: &catalog.StringUnit{State: catalog.StateTranslated, Value: value},
		}
	}
	return e
}

func excludedEntry() *catalog.Entry {
	falsy := false
	return &catalog.Entry{ShouldTranslate: &falsy}
}

func TestAnalyzeMissingLanguages(t *testing.T) {
	t.Parallel()

	cat := &catalog.Catalog{Strings: map[string]*catalog.Entry{
		"Save": entry(map[string]string{"en": "Save"}),
	}}

	rep := Analyze(cat, targetsOf(t, "en", "fr"))
	if rep.Total != 1 || rep.Complete != 0 {
		t.Errorf("Total/Complete = %d/%d, want 1/0", rep.Total, rep.Complete)
	}
	if !reflect.DeepEqual(rep.IncompleteKeys, []string{"Save"}) {
		t.Errorf("IncompleteKeys = %v, want [Save]", rep.IncompleteKeys)
	}
	if !reflect.DeepEqual(rep.MissingLanguages["Save"], []string{"fr"}) {
		t.Errorf("MissingLanguages[Save] = %v, want [fr]", rep.MissingLanguages["Save"])
	}
}

func TestAnalyzeCompleteEntry(t *testing.T) {
	t.Parallel()

	cat := &catalog.Catalog{Strings: map[string]*catalog.Entry{
		"Save": entry(map[string]string{"en": "Save", "fr": "Enregistrer"}),
	}}

	rep := Analyze(cat, targetsOf(t, "en", "fr"))
	if rep.Complete != 1 || rep.Incomplete() {
		t.Errorf("Complete = %d, IncompleteKeys = %v, want fully complete", rep.Complete, rep.IncompleteKeys)
	}
	if rep.CompletionPercentage != 100 {
		t.Errorf("CompletionPercentage = %v, want 100", rep.CompletionPercentage)
	}
}

func TestAnalyzeStateRuleWithFullCoverage(t *testing.T) {
	t.Parallel()

	// All target languages present, one still in review: incomplete, but
	// with no missing-language record.
	cat := &catalog.Catalog{Strings: map[string]*catalog.Entry{
		"Save": {
			Localizations: map[string]*catalog.Localization{
				"en": {StringUnit: &catalog.StringUnit{State: catalog.StateTranslated, Value: "Save"}},
				"fr": {StringUnit: &catalog.StringUnit{State: "needs_review", Value: "Enregistrer"}},
			},
		},
	}}

	rep := Analyze(cat, targetsOf(t, "en", "fr"))
	if !reflect.DeepEqual(rep.IncompleteKeys, []string{"Save"}) {
		t.Fatalf("IncompleteKeys = %v, want [Save]", rep.IncompleteKeys)
	}
	if _, ok := rep.MissingLanguages["Save"]; ok {
		t.Error("state-incomplete entry should have no missing-language record")
	}
}

func TestAnalyzeExcludedEntries(t *testing.T) {
	t.Parallel()

	cat := &catalog.Catalog{Strings: map[string]*catalog.Entry{
		"%d items":  excludedEntry(),
		"Completed": entry(map[string]string{"en": "Completed", "fr": "Terminé"}),
	}}

	rep := Analyze(cat, targetsOf(t, "en", "fr"))
	if rep.Excluded != 1 {
		t.Errorf("Excluded = %d, want 1", rep.Excluded)
	}
	if rep.Translatable() != 1 {
		t.Errorf("Translatable() = %d, want 1", rep.Translatable())
	}
	for _, key := range rep.IncompleteKeys {
		if key == "%d items" {
			t.Error("excluded entry appeared in IncompleteKeys")
		}
	}
	if rep.CompletionPercentage != 100 {
		t.Errorf("CompletionPercentage = %v, want 100 (excluded out of denominator)", rep.CompletionPercentage)
	}
}

func TestAnalyzeEmptyCatalog(t *testing.T) {
	t.Parallel()

	rep := Analyze(&catalog.Catalog{Strings: map[string]*catalog.Entry{}}, targetsOf(t, "en", "fr"))
	if rep.Total != 0 || rep.Excluded != 0 {
		t.Errorf("Total/Excluded = %d/%d, want 0/0", rep.Total, rep.Excluded)
	}
	if rep.CompletionPercentage != 0 {
		t.Errorf("CompletionPercentage = %v, want 0 for empty catalog", rep.CompletionPercentage)
	}
}

func TestAnalyzeLanguageCounts(t *testing.T) {
	t.Parallel()

	cat := &catalog.Catalog{Strings: map[string]*catalog.Entry{
		"A": entry(map[string]string{"en": "A", "fr": "A"}),
		"B": entry(map[string]string{"en": "B"}),
		"C": excludedEntry(),
	}}

	rep := Analyze(cat, targetsOf(t, "en", "fr"))
	if rep.LanguageCounts["en"] != 2 {
		t.Errorf("LanguageCounts[en] = %d, want 2", rep.LanguageCounts["en"])
	}
	if rep.LanguageCounts["fr"] != 1 {
		t.Errorf("LanguageCounts[fr] = %d, want 1", rep.LanguageCounts["fr"])
	}
}

func TestAnalyzeIsPure(t *testing.T) {
	t.Parallel()

	cat := &catalog.Catalog{Strings: map[string]*catalog.Entry{
		"Save":     entry(map[string]string{"en": "Save"}),
		"%d items": excludedEntry(),
	}}
	snapshot := cat.Clone()
	targets := targetsOf(t, "en", "fr", "de")

	first := Analyze(cat, targets)
	second := Analyze(cat, targets)

	if !reflect.DeepEqual(first, second) {
		t.Error("two analyses of the same catalog differ")
	}
	if !reflect.DeepEqual(cat, snapshot) {
		t.Error("Analyze mutated its input catalog")
	}
}

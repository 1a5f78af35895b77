package audit

import (
	"github.com/depthful/locaudit/internal/catalog"
	"github.com/depthful/locaudit/internal/lang"
	"github.com/depthful/locaudit/internal/phrase"
)

// Repairer fills missing languages on incomplete entries. It never fails:
// every (key, language) pair resolves to some value, falling back to the
// canonical source text when the dictionary has no entry. Most repaired
// values are therefore placeholders equal to the source text, not real
// translations.
type Repairer struct {
	dict phrase.Dictionary
}

// NewRepairer creates a Repairer using the given dictionary. A nil
// dictionary means the builtin phrase table.
func NewRepairer(dict phrase.Dictionary) *Repairer {
	if dict == nil {
		dict = phrase.Builtin()
	}
	return &Repairer{dict: dict}
}

// Repair returns a copy of cat with every missing target language of every
// incomplete translatable entry filled in, plus the number of entries
// touched. Existing localizations are never modified or replaced; entries
// incomplete only because of a non-translated state are left for Normalize.
func (r *Repairer) Repair(cat *catalog.Catalog, report *Report, targets lang.TargetSet) (*catalog.Catalog, int) {
	out := cat.Clone()
	touched := 0

	for _, key := range report.IncompleteKeys {
		missing := report.MissingLanguages[key]
		if len(missing) == 0 {
			continue
		}
		entry := out.Strings[key]
		if entry == nil {
			continue
		}
		if entry.Localizations == nil {
			entry.Localizations = make(map[string]*catalog.Localization, len(missing))
		}
		for _, code := range missing {
			if _, exists := entry.Localizations[code]; exists {
				continue
			}
			entry.Localizations[code] = &catalog.Localization{
				StringUnit: &catalog.StringUnit{
					State: catalog.StateTranslated,
					Value: r.valueFor(key, code, entry.Localizations),
				},
			}
		}
		touched++
	}
	return out, touched
}

// valueFor resolves the synthesized value for one missing language:
// dictionary by key, the key itself for the base language, dictionary by
// the English value, the English value, and finally the key.
func (r *Repairer) valueFor(key, code string, locs map[string]*catalog.Localization) string {
	if v, ok := r.dict.Lookup(key, code); ok {
		return v
	}
	if code == lang.BaseCode {
		return key
	}
	if en, ok := locs[lang.BaseCode]; ok && en != nil && en.StringUnit != nil {
		if v, ok := r.dict.Lookup(en.StringUnit.Value, code); ok {
			return v
		}
		return en.StringUnit.Value
	}
	return key
}

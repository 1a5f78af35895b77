package audit

import (
	"github.com/depthful/locaudit/internal/catalog"
	"github.com/depthful/locaudit/internal/lang"
)

// NormalizeStats counts what Normalize changed.
type NormalizeStats struct {
	// BaseAdded counts entries that gained a synthesized base-language
	// localization.
	BaseAdded int

	// StatesCoerced counts string units whose state was forced to
	// translated.
	StatesCoerced int
}

// Changed reports whether the pass modified anything.
func (s NormalizeStats) Changed() bool {
	return s.BaseAdded > 0 || s.StatesCoerced > 0
}

// Normalize returns a copy of cat with two narrow fixes applied to every
// translatable entry: a missing base-language ("en") localization is
// synthesized from the key whenever at least one other language is present,
// and every existing string unit's state is coerced to translated.
//
// The pass is idempotent: running it on already-normalized data changes
// nothing and reports zero stats.
func Normalize(cat *catalog.Catalog) (*catalog.Catalog, NormalizeStats) {
	out := cat.Clone()
	var stats NormalizeStats

	for _, key := range out.Keys() {
		entry := out.Strings[key]
		if !entry.Translatable() || len(entry.Localizations) == 0 {
			continue
		}

		if _, ok := entry.Localizations[lang.BaseCode]; !ok {
			entry.Localizations[lang.BaseCode] = &catalog.Localization{
				StringUnit: &catalog.StringUnit{
					State: catalog.StateTranslated,
					Value: key,
				},
			}
			stats.BaseAdded++
		}

		for _, loc := range entry.Localizations {
			if loc == nil || loc.StringUnit == nil {
				continue
			}
			if loc.StringUnit.State != catalog.StateTranslated {
				loc.StringUnit.State = catalog.StateTranslated
				stats.StatesCoerced++
			}
		}
	}
	return out, stats
}

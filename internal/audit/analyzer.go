// Package audit implements the completeness model over a string catalog:
// analysis against a target-language set, gap repair from a phrase
// dictionary, and base-language normalization. All passes either leave the
// input catalog untouched or work on a deep copy.
package audit

import (
	"github.com/depthful/locaudit/internal/catalog"
	"github.com/depthful/locaudit/internal/lang"
)

// Report is the result of analyzing one catalog against a target set.
type Report struct {
	// Total is the number of string keys in the catalog.
	Total int

	// Excluded counts entries marked shouldTranslate: false.
	Excluded int

	// Complete counts translatable entries covering every target language
	// with a translated state.
	Complete int

	// IncompleteKeys lists incomplete entries in catalog key order.
	IncompleteKeys []string

	// MissingLanguages maps each incomplete key to its sorted missing
	// codes. Keys incomplete only because of a non-translated state have
	// no entry here.
	MissingLanguages map[string][]string

	// LanguageCounts maps each target code to the number of translatable
	// entries that carry it.
	LanguageCounts map[string]int

	// CompletionPercentage is Complete over translatable entries, times
	// 100. Zero when the catalog has no translatable entries.
	CompletionPercentage float64
}

// Translatable returns the number of entries that participate in the audit.
func (r *Report) Translatable() int { return r.Total - r.Excluded }

// Incomplete reports whether the catalog still has entries to repair.
func (r *Report) Incomplete() bool { return len(r.IncompleteKeys) > 0 }

// Analyze computes the completeness report for cat against targets. It is a
// pure function of its inputs: cat is never mutated and the same catalog
// always yields the same report.
//
// An entry with missing target languages is incomplete regardless of the
// states it already has; an entry with full coverage is incomplete when any
// of its localizations is not in the translated state.
func Analyze(cat *catalog.Catalog, targets lang.TargetSet) *Report {
	report := &Report{
		Total:            len(cat.Strings),
		MissingLanguages: make(map[string][]string),
		LanguageCounts:   make(map[string]int, targets.Len()),
	}

	for _, key := range cat.Keys() {
		entry := cat.Strings[key]
		if !entry.Translatable() {
			report.Excluded++
			continue
		}

		for code := range entry.Localizations {
			if targets.Contains(code) {
				report.LanguageCounts[code]++
			}
		}

		missing := targets.Missing(func(code string) bool {
			_, ok := entry.Localizations[code]
			return ok
		})
		if len(missing) > 0 {
			report.IncompleteKeys = append(report.IncompleteKeys, key)
			report.MissingLanguages[key] = missing
			continue
		}

		if allTranslated(entry) {
			report.Complete++
		} else {
			report.IncompleteKeys = append(report.IncompleteKeys, key)
		}
	}

	if translatable := report.Translatable(); translatable > 0 {
		report.CompletionPercentage = float64(report.Complete) / float64(translatable) * 100
	}
	return report
}

func allTranslated(entry *catalog.Entry) bool {
	for _, loc := range entry.Localizations {
		if !loc.Translated() {
			return false
		}
	}
	return true
}

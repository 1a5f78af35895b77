// Package catalog models an Xcode String Catalog (.xcstrings) document and
// provides loading and persistence for it. The document is plain JSON with a
// top-level "strings" object mapping each source phrase to its per-language
// localizations.
package catalog

import "sort"

// StateTranslated is the string unit state a finished translation carries.
// Any other state (or a missing one) marks the localization as unfinished.
const StateTranslated = "translated"

// Catalog is the root .xcstrings document.
type Catalog struct {
	SourceLanguage string            `json:"sourceLanguage,omitempty"`
	Version        string            `json:"version,omitempty"`
	Strings        map[string]*Entry `json:"strings"`
}

// Entry is one localizable phrase keyed by its source text.
type Entry struct {
	Comment         string                   `json:"comment,omitempty"`
	ExtractionState string                   `json:"extractionState,omitempty"`
	ShouldTranslate *bool                    `json:"shouldTranslate,omitempty"`
	Localizations   map[string]*Localization `json:"localizations,omitempty"`
}

// Localization is a single language's rendering of an entry.
type Localization struct {
	StringUnit *StringUnit `json:"stringUnit,omitempty"`
}

// StringUnit holds the translated text and its review state.
type StringUnit struct {
	State string `json:"state,omitempty"`
	Value string `json:"value"`
}

// Translatable reports whether the entry participates in analysis and
// repair. Only an explicit shouldTranslate: false excludes an entry.
func (e *Entry) Translatable() bool {
	return e.ShouldTranslate == nil || *e.ShouldTranslate
}

// Translated reports whether the localization carries a translated string
// unit. A nil string unit counts as untranslated.
func (l *Localization) Translated() bool {
	return l != nil && l.StringUnit != nil && l.StringUnit.State == StateTranslated
}

// Value returns the string unit value, or the empty string when the
// localization has no string unit.
func (l *Localization) Value() string {
	if l == nil || l.StringUnit == nil {
		return ""
	}
	return l.StringUnit.Value
}

// Keys returns the catalog's string keys in sorted order. Xcode writes
// catalogs with sorted keys, so this is the document order too.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Strings))
	for k := range c.Strings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the catalog. Repair passes mutate the copy
// so callers keep an untouched original for before/after comparison.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		SourceLanguage: c.SourceLanguage,
		Version:        c.Version,
	}
	if c.Strings == nil {
		return out
	}
	out.Strings = make(map[string]*Entry, len(c.Strings))
	for key, entry := range c.Strings {
		out.Strings[key] = entry.clone()
	}
	return out
}

func (e *Entry) clone() *Entry {
	if e == nil {
		return nil
	}
	out := &Entry{
		Comment:         e.Comment,
		ExtractionState: e.ExtractionState,
	}
	if e.ShouldTranslate != nil {
		v := *e.ShouldTranslate
		out.ShouldTranslate = &v
	}
	if e.Localizations != nil {
		out.Localizations = make(map[string]*Localization, len(e.Localizations))
		for code, loc := range e.Localizations {
			out.Localizations[code] = loc.clone()
		}
	}
	return out
}

func (l *Localization) clone() *Localization {
	if l == nil {
		return nil
	}
	out := &Localization{}
	if l.StringUnit != nil {
		unit := *l.StringUnit
		out.StringUnit = &unit
	}
	return out
}

// Package phrase provides the translation lookup used when repairing a
// catalog: a finite table of known source phrases with pre-supplied
// renderings for every target language. Anything not in the table falls
// back to the source text, so repaired entries are placeholders, not real
// translations.
package phrase

// Dictionary resolves a source phrase to its rendering in one language.
// Implementations return ok=false when they have no entry for the pair, in
// which case the repairer falls back to the canonical source value.
type Dictionary interface {
	Lookup(key, language string) (value string, ok bool)
}

// Table is a Dictionary backed by an in-memory phrase -> language -> value
// map.
type Table map[string]map[string]string

// Lookup implements Dictionary.
func (t Table) Lookup(key, language string) (string, bool) {
	langs, ok := t[key]
	if !ok {
		return "", false
	}
	value, ok := langs[language]
	return value, ok
}

// Merge layers the given tables over the builtin one. Later tables win on
// conflicting (phrase, language) pairs; the inputs are not modified.
func Merge(tables ...Table) Table {
	out := make(Table, len(builtin))
	for phraseKey, langs := range builtin {
		dst := make(map[string]string, len(langs))
		for code, value := range langs {
			dst[code] = value
		}
		out[phraseKey] = dst
	}
	for _, t := range tables {
		for phraseKey, langs := range t {
			dst, ok := out[phraseKey]
			if !ok {
				dst = make(map[string]string, len(langs))
				out[phraseKey] = dst
			}
			for code, value := range langs {
				dst[code] = value
			}
		}
	}
	return out
}

// Builtin returns the static table shipped with the tool.
func Builtin() Table { return builtin }

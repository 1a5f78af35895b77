// Package lang defines the target-language set a catalog is audited
// against: the fixed list of language codes every translatable entry must
// cover to count as complete.
package lang

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// BaseCode is the canonical source language. Its value (or, failing that,
// the string key itself) seeds synthesized translations for other languages.
const BaseCode = "en"

// TargetSet is an immutable set of required language codes.
type TargetSet struct {
	codes map[string]struct{}
}

// Default returns the ten languages the app ships with.
func Default() TargetSet {
	ts, err := New("ar", "de", "es", "fr", "hi", "ja", "ko", "pt", "zh-Hans", BaseCode)
	if err != nil {
		// The builtin codes are all valid BCP 47 tags.
		panic(err)
	}
	return ts
}

// New builds a TargetSet from the given codes, validating each as a BCP 47
// language tag and dropping duplicates. Codes keep their spelling as given
// (zh-Hans stays zh-Hans); validation only rejects unparseable tags.
func New(codes ...string) (TargetSet, error) {
	if len(codes) == 0 {
		return TargetSet{}, fmt.Errorf("lang: target set must not be empty")
	}
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		if _, err := language.Parse(code); err != nil {
			return TargetSet{}, fmt.Errorf("lang: invalid language code %q: %w", code, err)
		}
		set[code] = struct{}{}
	}
	return TargetSet{codes: set}, nil
}

// Len returns the number of languages in the set.
func (t TargetSet) Len() int { return len(t.codes) }

// Contains reports whether code is part of the set.
func (t TargetSet) Contains(code string) bool {
	_, ok := t.codes[code]
	return ok
}

// Codes returns the set's codes in sorted order.
func (t TargetSet) Codes() []string {
	out := make([]string, 0, len(t.codes))
	for code := range t.codes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Missing returns the sorted codes of the set that do not appear in have.
func (t TargetSet) Missing(have func(code string) bool) []string {
	var out []string
	for code := range t.codes {
		if !have(code) {
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out
}

// DisplayName returns the English display name for a language code
// ("de" -> "German", "zh-Hans" -> "Simplified Chinese"). Unparseable codes
// come back unchanged.
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return display.English.Languages().Name(tag)
}

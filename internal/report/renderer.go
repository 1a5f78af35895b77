// Package report renders audit results as human-readable terminal text.
// It is pure presentation: everything here is a stateless function of a
// completed audit.Report.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/depthful/locaudit/internal/audit"
	"github.com/depthful/locaudit/internal/lang"
)

const (
	// maxExampleKeys caps how many keys a missing-language group lists.
	maxExampleKeys = 10

	// maxKeyRunes is the display truncation limit for long string keys.
	maxKeyRunes = 50
)

// Renderer formats reports with optional lipgloss styling.
type Renderer struct {
	noColor bool

	header  lipgloss.Style
	label   lipgloss.Style
	good    lipgloss.Style
	warn    lipgloss.Style
	bad     lipgloss.Style
	muted   lipgloss.Style
	keyText lipgloss.Style
}

// NewRenderer creates a Renderer. With noColor set, every style renders
// plain text.
func NewRenderer(noColor bool) *Renderer {
	r := &Renderer{noColor: noColor}
	if noColor {
		return r
	}
	r.header = lipgloss.NewStyle().Bold(true)
	r.label = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#374151", Dark: "#D1D5DB"})
	r.good = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	r.warn = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	r.bad = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	r.muted = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	r.keyText = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	return r
}

// Analysis renders the full analysis report: counts, completion percentage,
// and incomplete keys grouped by how many languages each is missing.
func (r *Renderer) Analysis(rep *audit.Report) string {
	var b strings.Builder

	b.WriteString(r.header.Render("Localization analysis"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s %d\n", r.label.Render("Total string keys:"), rep.Total)
	fmt.Fprintf(&b, "%s %d\n", r.label.Render("Excluded (shouldTranslate = false):"), rep.Excluded)
	fmt.Fprintf(&b, "%s %d\n", r.label.Render("Translatable keys:"), rep.Translatable())
	fmt.Fprintf(&b, "%s %d\n", r.label.Render("Complete keys:"), rep.Complete)
	fmt.Fprintf(&b, "%s %d\n", r.label.Render("Incomplete keys:"), len(rep.IncompleteKeys))
	fmt.Fprintf(&b, "%s %s\n", r.label.Render("Completion:"), r.percentage(rep.CompletionPercentage))

	if !rep.Incomplete() {
		return b.String()
	}

	b.WriteByte('\n')
	b.WriteString(r.header.Render("Missing translations"))
	b.WriteByte('\n')
	for _, group := range groupByMissingCount(rep) {
		if group.count > 0 {
			fmt.Fprintf(&b, "Missing %d language(s) (%d keys):\n", group.count, len(group.keys))
		} else {
			fmt.Fprintf(&b, "Needs review (%d keys):\n", len(group.keys))
		}
		shown := group.keys
		if len(shown) > maxExampleKeys {
			shown = shown[:maxExampleKeys]
		}
		for _, key := range shown {
			if missing := rep.MissingLanguages[key]; len(missing) > 0 {
				fmt.Fprintf(&b, "  %s -> missing: %s\n",
					r.keyText.Render(TruncateKey(key)), strings.Join(missing, ", "))
			} else {
				fmt.Fprintf(&b, "  %s\n", r.keyText.Render(TruncateKey(key)))
			}
		}
		if overflow := len(group.keys) - len(shown); overflow > 0 {
			fmt.Fprintf(&b, "  %s\n", r.muted.Render(fmt.Sprintf("... and %d more keys", overflow)))
		}
	}
	return b.String()
}

// Status renders the read-only summary: counts, completion tier, and
// per-language presence over translatable entries.
func (r *Renderer) Status(rep *audit.Report, targets lang.TargetSet) string {
	var b strings.Builder

	b.WriteString(r.header.Render("Localization status"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s %d\n", r.label.Render("Total strings:"), rep.Total)
	fmt.Fprintf(&b, "%s %d\n", r.label.Render("Translatable:"), rep.Translatable())
	fmt.Fprintf(&b, "%s %d\n", r.label.Render("Complete:"), rep.Complete)
	fmt.Fprintf(&b, "%s %s\n", r.label.Render("Completion:"), r.percentage(rep.CompletionPercentage))
	b.WriteString(r.tierLine(rep.CompletionPercentage))
	b.WriteByte('\n')

	b.WriteByte('\n')
	b.WriteString(r.header.Render("Languages"))
	b.WriteByte('\n')
	translatable := rep.Translatable()
	for _, code := range targets.Codes() {
		present := rep.LanguageCounts[code]
		mark := r.good.Render("✓")
		if present < translatable {
			mark = r.warn.Render("!")
		}
		fmt.Fprintf(&b, "  %s %-8s %-22s %d/%d\n", mark, code, lang.DisplayName(code), present, translatable)
	}
	return b.String()
}

// percentage formats a completion percentage, colored by tier.
func (r *Renderer) percentage(pct float64) string {
	text := fmt.Sprintf("%.1f%%", pct)
	switch {
	case pct >= 100:
		return r.good.Render(text)
	case pct >= 90:
		return r.warn.Render(text)
	default:
		return r.bad.Render(text)
	}
}

// tierLine picks an encouragement line for the completion tier.
func (r *Renderer) tierLine(pct float64) string {
	switch {
	case pct >= 100:
		return r.good.Render("100% localization complete!")
	case pct >= 95:
		return r.warn.Render("Almost there! Just a few more strings to go.")
	case pct >= 90:
		return r.warn.Render("Good progress! Getting close to completion.")
	default:
		return r.bad.Render("Needs work. Run locaudit fix to improve.")
	}
}

type missingGroup struct {
	count int
	keys  []string
}

// groupByMissingCount buckets incomplete keys by how many languages each is
// missing, largest gap first. Keys missing nothing (state-only incomplete)
// form the trailing zero group.
func groupByMissingCount(rep *audit.Report) []missingGroup {
	byCount := make(map[int][]string)
	for _, key := range rep.IncompleteKeys {
		n := len(rep.MissingLanguages[key])
		byCount[n] = append(byCount[n], key)
	}
	counts := make([]int, 0, len(byCount))
	for n := range byCount {
		counts = append(counts, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	groups := make([]missingGroup, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, missingGroup{count: n, keys: byCount[n]})
	}
	return groups
}

// TruncateKey quotes a key for display, shortening it past 50 runes.
func TruncateKey(key string) string {
	runes := []rune(key)
	if len(runes) <= maxKeyRunes {
		return fmt.Sprintf("'%s'", key)
	}
	return fmt.Sprintf("'%s...'", string(runes[:maxKeyRunes]))
}

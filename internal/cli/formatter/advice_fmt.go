package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/openfit/fitctl/internal/coach"
)

// RenderRecommendation renders a per-activity AI analysis.
func RenderRecommendation(rec coach.Recommendation) string {
	var b strings.Builder
	b.WriteString(Header("Analysis") + "\n")
	if rec.Recommendation != "" {
		b.WriteString(rec.Recommendation + "\n")
	}
	writeBulletSection(&b, "Improvements", rec.Improvements)
	writeBulletSection(&b, "Suggestions", rec.Suggestions)
	writeBulletSection(&b, "Safety", rec.Safety)
	return b.String()
}

func writeBulletSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + StyleHeader.Render(title) + "\n")
	for _, item := range items {
		b.WriteString(StyleDim.Render("  • ") + item + "\n")
	}
}

// RenderDocument renders a loosely-typed advice document as an indented
// tree. The document carries no enforced schema, so rendering walks whatever
// structure is present; map keys are sorted for deterministic output.
func RenderDocument(doc coach.Document) string {
	var b strings.Builder
	renderValue(&b, map[string]any(doc), 0)
	return b.String()
}

func renderValue(b *strings.Builder, value any, depth int) {
	indent := strings.Repeat("  ", depth)

	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := v[k]
			switch child.(type) {
			case map[string]any, []any:
				b.WriteString(indent + StyleHeader.Render(humanizeKey(k)) + "\n")
				renderValue(b, child, depth+1)
			default:
				b.WriteString(fmt.Sprintf("%s%s %v\n", indent, Dim(humanizeKey(k)+":"), child))
			}
		}
	case []any:
		for _, item := range v {
			switch item.(type) {
			case map[string]any, []any:
				b.WriteString(indent + StyleDim.Render("•") + "\n")
				renderValue(b, item, depth+1)
			default:
				b.WriteString(fmt.Sprintf("%s%s %v\n", indent, StyleDim.Render("•"), item))
			}
		}
	default:
		b.WriteString(fmt.Sprintf("%s%v\n", indent, v))
	}
}

// humanizeKey turns a camelCase JSON key into a spaced, capitalized label:
// "preWorkout" becomes "Pre Workout".
func humanizeKey(key string) string {
	var words []string
	start := 0
	for i := 1; i < len(key); i++ {
		if key[i] >= 'A' && key[i] <= 'Z' && (key[i-1] < 'A' || key[i-1] > 'Z') {
			words = append(words, key[start:i])
			start = i
		}
	}
	words = append(words, key[start:])
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Package classifier turns a free-text model reply into a structured
// domain.Classification.
//
// The reply is expected to carry four labelled sections (Analysis, Summary,
// Tone, Type). Each label may be written emphasized ("**Tone:**") or plain
// ("Tone:"), and any of them may be missing.
package classifier

import (
	"sort"
	"strings"
	"unicode"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

type field int

const (
	fieldAnalysis field = iota
	fieldSummary
	fieldTone
	fieldType
	fieldCount
)

var fieldNames = [fieldCount]string{"Analysis", "Summary", "Tone", "Type"}

// marker is one located section label.
type marker struct {
	field field
	start int // offset of the label
	end   int // offset just after the label
}

// MarkerClassifier parses replies by locating section labels.
type MarkerClassifier struct{}

// New returns a MarkerClassifier.
func New() *MarkerClassifier {
	return &MarkerClassifier{}
}

// Classify extracts analysis, summary, tone and outcome from content.
func (c *MarkerClassifier) Classify(content string) domain.Classification {
	found := locate(content)

	var result domain.Classification
	typeValue := ""
	if m, ok := found[fieldType]; ok {
		typeValue = content[m.end:]
	}
	result.Outcome = outcomeOf(typeValue)

	_, hasAnalysis := found[fieldAnalysis]
	_, hasSummary := found[fieldSummary]
	_, hasTone := found[fieldTone]

	if !hasAnalysis && !hasSummary && !hasTone {
		result.Analysis = nonEmpty(stripTypeLines(content))
		return result
	}

	if hasAnalysis {
		result.Analysis = nonEmpty(section(content, found, fieldAnalysis))
	}
	if hasSummary {
		result.Summary = nonEmpty(section(content, found, fieldSummary))
	}
	if hasTone {
		result.Tone = nonEmpty(firstLine(section(content, found, fieldTone)))
	}
	return result
}

// locate picks, for every field, the emphasized label when present and the
// plain one otherwise.
func locate(content string) map[field]marker {
	found := make(map[field]marker, fieldCount)
	for f := fieldAnalysis; f < fieldCount; f++ {
		for _, label := range labels(f) {
			if i := strings.Index(content, label); i >= 0 {
				found[f] = marker{field: f, start: i, end: i + len(label)}
				break
			}
		}
	}
	return found
}

func labels(f field) []string {
	name := fieldNames[f]
	return []string{"**" + name + ":**", name + ":"}
}

// section returns the text after f's label up to the nearest label that
// follows it, or to the end of content.
func section(content string, found map[field]marker, f field) string {
	m := found[f]

	starts := make([]int, 0, len(found))
	for other, om := range found {
		if other != f && om.start >= m.end {
			starts = append(starts, om.start)
		}
	}
	sort.Ints(starts)

	end := len(content)
	if len(starts) > 0 {
		end = starts[0]
	}
	return strings.TrimSpace(content[m.end:end])
}

func outcomeOf(typeValue string) domain.Outcome {
	v := strings.ToLower(strings.TrimSpace(typeValue))
	switch {
	case strings.HasPrefix(v, "question"):
		return domain.OutcomeQuestion
	case strings.HasPrefix(v, "decline"):
		return domain.OutcomeDecline
	default:
		return domain.OutcomeDream
	}
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRightFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	})
}

func stripTypeLines(content string) string {
	typeLabels := labels(fieldType)
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if strings.HasPrefix(trimmed, typeLabels[0]) || strings.HasPrefix(trimmed, typeLabels[1]) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

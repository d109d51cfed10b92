package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"shaadiAi/internal/budget"
)

var errNoObject = errors.New("no JSON object found in model output")

// decodeObject unmarshals content into v, first as-is, then retrying on the
// first balanced {...} block. Models routinely wrap JSON in prose or fences.
func decodeObject(content string, v any) error {
	if err := json.Unmarshal([]byte(content), v); err == nil {
		return nil
	}
	obj, ok := extractObject(content)
	if !ok {
		return errNoObject
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return fmt.Errorf("decode extracted object: %w", err)
	}
	return nil
}

// extractObject returns the first balanced top-level {...} block in s,
// skipping braces inside JSON string literals.
func extractObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// parseSummary expects {"summary": "..."}.
func parseSummary(content string) (Summary, error) {
	var out Summary
	if err := decodeObject(content, &out); err != nil {
		return Summary{}, err
	}
	if strings.TrimSpace(out.Text) == "" {
		return Summary{}, errors.New("summary text missing or empty")
	}
	return out, nil
}

// parseRecommendations requires a non-empty list per category.
func parseRecommendations(content string) (Recommendations, error) {
	var out Recommendations
	if err := decodeObject(content, &out); err != nil {
		return Recommendations{}, err
	}
	for _, cat := range []struct {
		name  string
		items []string
	}{
		{"venue", out.Venue},
		{"catering", out.Catering},
		{"photography", out.Photography},
		{"decor", out.Decor},
	} {
		if len(cat.items) == 0 {
			return Recommendations{}, fmt.Errorf("recommendations missing %s entries", cat.name)
		}
	}
	return out, nil
}

// parseTimeline requires at least one entry with both fields present.
func parseTimeline(content string) ([]TimelineEntry, error) {
	var out struct {
		Timeline []TimelineEntry `json:"timeline"`
	}
	if err := decodeObject(content, &out); err != nil {
		return nil, err
	}
	if len(out.Timeline) == 0 {
		return nil, errors.New("timeline has no entries")
	}
	for i, e := range out.Timeline {
		if strings.TrimSpace(e.Time) == "" || strings.TrimSpace(e.Event) == "" {
			return nil, fmt.Errorf("timeline entry %d incomplete", i)
		}
	}
	return out.Timeline, nil
}

// parseBudget expects whole-number category percentages that sum to exactly
// 100. Pointer fields distinguish absent keys from a genuine zero.
func parseBudget(content, rangeLabel string) (budget.Breakdown, error) {
	var out struct {
		Venue       *int `json:"venue"`
		Catering    *int `json:"catering"`
		Photography *int `json:"photography"`
		Decor       *int `json:"decor"`
	}
	if err := decodeObject(content, &out); err != nil {
		return budget.Breakdown{}, err
	}
	if out.Venue == nil || out.Catering == nil || out.Photography == nil || out.Decor == nil {
		return budget.Breakdown{}, errors.New("budget split missing a category")
	}
	for _, p := range []int{*out.Venue, *out.Catering, *out.Photography, *out.Decor} {
		if p < 0 || p > 100 {
			return budget.Breakdown{}, fmt.Errorf("budget percentage %d out of range", p)
		}
	}
	b := budget.NewBreakdown(rangeLabel, *out.Venue, *out.Catering, *out.Photography, *out.Decor)
	if b.PctSum() != 100 {
		return budget.Breakdown{}, fmt.Errorf("budget percentages sum to %d, want 100", b.PctSum())
	}
	return b, nil
}

package vision

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"strings"
)

var (
	fenceOpen  = regexp.MustCompile("^```(?:json)?\\s*\n?")
	fenceClose = regexp.MustCompile("\n?```\\s*$")
)

// StripFences removes the markdown code fences vision models like to wrap
// JSON in, despite every instruction not to.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = fenceOpen.ReplaceAllString(s, "")
		s = fenceClose.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}

// SanitizeBudgetJSON
// - Renames known synonyms the model drifts into (daily_data -> days)
// - Drops nulls and dash placeholders for optional cells
// - Removes unknown top-level keys (additionalProperties = false friendliness)
func SanitizeBudgetJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}
	renamed("daily_data", "days")
	renamed("daily", "days")
	renamed("footer_kpis", "kpis")

	// Dash and empty-string cells mean "not filled in yet"; schema wants
	// number-or-null.
	if days, ok := m["days"].([]any); ok {
		for _, d := range days {
			row, ok := d.(map[string]any)
			if !ok {
				continue
			}
			for k, v := range maps.Clone(row) {
				if s, ok := v.(string); ok && k != "weekday" {
					t := strings.TrimSpace(s)
					if t == "" || t == "-" || strings.EqualFold(t, "null") {
						delete(row, k)
						dropped = append(dropped, k+"(blank)")
					}
				}
			}
		}
	}

	allowed := map[string]struct{}{
		"header": {}, "days": {}, "totals": {}, "kpis": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("vision.budget.sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

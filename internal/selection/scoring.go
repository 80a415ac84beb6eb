// internal/selection/scoring.go
package selection

import (
	"math"
	"strconv"
	"strings"

	"design-missions/internal/models"
)

func scoreTemplate(tpl models.Template, req models.BusinessRequirements, required []string) models.TemplateScore {
	style := styleScore(req.PreferredStyle, tpl.Style)
	budget := budgetScore(req.Budget, tpl.Style)
	features := featureScore(required, tpl.Features)
	perf := performanceScore(tpl.Performance)

	total := weightStyle*style + weightBudget*budget + weightFeatures*features + weightPerformance*perf

	return models.TemplateScore{
		TemplateID:  tpl.ID,
		Style:       tpl.Style,
		Score:       clampScore(int(math.Round(total * 100))),
		StyleMatch:  style,
		BudgetFit:   budget,
		FeatureFit:  features,
		Performance: perf,
	}
}

func styleScore(requested, offered models.DesignStyle) float64 {
	if requested == offered {
		return 1.0
	}
	return styleAffinity[requested][offered]
}

func budgetScore(budget models.BudgetTier, offered models.DesignStyle) float64 {
	for _, s := range budgetStyles[budget] {
		if s == offered {
			return 1.0
		}
	}
	return 0.5
}

// requiredFeatures merges the subtype and goal tables, first occurrence wins.
func requiredFeatures(req models.BusinessRequirements) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(items []string) {
		for _, f := range items {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}

	add(subtypeFeatures[req.NormalizedType()])
	for _, goal := range req.Goals {
		add(goalFeatures[normalizeGoal(goal)])
	}
	return out
}

func normalizeGoal(goal string) string {
	g := strings.ToLower(strings.TrimSpace(goal))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(g)
}

func featureScore(required, labels []string) float64 {
	if len(required) == 0 {
		return 0.5
	}

	lowered := make([]string, len(labels))
	for i, l := range labels {
		lowered[i] = strings.ToLower(l)
	}

	matched := 0
	for _, f := range required {
		needle := strings.ToLower(f)
		for _, l := range lowered {
			if strings.Contains(l, needle) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(required))
}

func performanceScore(p models.TemplatePerformance) float64 {
	score := math.Max(0, math.Min(100, float64(p.Score))) / 100
	return (score + loadTimeScore(p.LoadTime) + conversionScore(p)) / 3
}

func loadTimeScore(raw string) float64 {
	seconds, ok := parseSeconds(raw)
	switch {
	case !ok:
		return 0.4
	case seconds <= 0.5:
		return 1.0
	case seconds <= 0.7:
		return 0.8
	case seconds <= 1.0:
		return 0.6
	default:
		return 0.4
	}
}

func conversionScore(p models.TemplatePerformance) float64 {
	rate, ok := p.ConversionPercent()
	switch {
	case !ok:
		return 0.4
	case rate >= 60:
		return 1.0
	case rate >= 50:
		return 0.9
	case rate >= 40:
		return 0.8
	case rate >= 30:
		return 0.6
	default:
		return 0.4
	}
}

// parseSeconds accepts "0.6s", "600ms" and bare numbers as seconds.
func parseSeconds(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	factor := 1.0
	switch {
	case strings.HasSuffix(s, "ms"):
		s = strings.TrimSuffix(s, "ms")
		factor = 0.001
	case strings.HasSuffix(s, "s"):
		s = strings.TrimSuffix(s, "s")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v * factor, true
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

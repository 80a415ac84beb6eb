package optimization

import (
	"testing"

	"design-missions/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func bistroTemplate(conversion string) models.Template {
	return models.Template{
		ID:     "restaurant-bistro-modern",
		Sector: models.SectorRestaurant,
		Style:  models.StyleModern,
		Performance: models.TemplatePerformance{
			LoadTime:       "0.6s",
			Score:          94,
			ConversionRate: conversion,
		},
	}
}

func lyonBistro() models.BusinessInfo {
	return models.BusinessInfo{
		Name:     "Chez Paul",
		Sector:   models.SectorRestaurant,
		Location: models.Location{City: "Lyon"},
	}
}

func ids(opts []Optimization) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.ID
	}
	return out
}

// ==========================
// Advisor Tests
// ==========================

func TestOptimize_OrderAndQuality(t *testing.T) {
	opts, quality := NewAdvisor().Optimize(bistroTemplate("48%"), lyonBistro(), "familles du quartier")

	assert.Equal(t, []string{
		"restaurant-booking",
		"generic-cta",
		"business-local-seo",
		"generic-mobile-first",
		"restaurant-menu",
		"generic-social-proof",
		"business-audience",
		"restaurant-hours",
		"style-modern-motion",
	}, ids(opts))

	// 48 + critical 4 + 4 high * 3 + 3 medium * 2 + 1 low
	assert.Equal(t, 71, quality)
}

func TestOptimize_SortInvariant(t *testing.T) {
	for _, sector := range models.Sectors {
		for _, style := range models.DesignStyles {
			tpl := models.Template{ID: "t", Sector: sector, Style: style, Performance: models.TemplatePerformance{ConversionRate: "40%"}}
			opts, quality := NewAdvisor().Optimize(tpl, models.BusinessInfo{Sector: sector}, "")

			require.NotEmpty(t, opts)
			for i := 1; i < len(opts); i++ {
				prev, cur := opts[i-1], opts[i]
				if prev.Impact.Points() == cur.Impact.Points() {
					assert.GreaterOrEqual(t, prev.Priority, cur.Priority, "%s/%s at %d", sector, style, i)
				} else {
					assert.Greater(t, prev.Impact.Points(), cur.Impact.Points(), "%s/%s at %d", sector, style, i)
				}
			}
			assert.GreaterOrEqual(t, quality, 0)
			assert.LessOrEqual(t, quality, 100)
		}
	}
}

func TestOptimize_LocalSEOUsesCity(t *testing.T) {
	opts, _ := NewAdvisor().Optimize(bistroTemplate("48%"), lyonBistro(), "")

	var found bool
	for _, o := range opts {
		if o.ID == "business-local-seo" {
			found = true
			assert.Contains(t, o.Description, "restaurant Lyon")
		}
		assert.NotEqual(t, "business-audience", o.ID)
	}
	assert.True(t, found)
}

func TestOptimize_QualityScore(t *testing.T) {
	tests := []struct {
		name       string
		conversion string
		want       int
	}{
		{name: "parsed rate", conversion: "48%", want: 69},
		{name: "decimal rate rounds", conversion: "47.6 %", want: 69},
		{name: "unparseable rate starts at zero", conversion: "n/a", want: 21},
		{name: "clamped to 100", conversion: "95%", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, quality := NewAdvisor().Optimize(bistroTemplate(tt.conversion), lyonBistro(), "")
			assert.Equal(t, tt.want, quality)
		})
	}
}

func TestStrings(t *testing.T) {
	out := Strings([]Optimization{
		{ID: "a", Title: "Prominent call to action", Description: "Above the fold.", Impact: ImpactHigh},
		{ID: "b", Title: "Hours", Description: "In header.", Impact: ImpactLow},
	})

	assert.Equal(t, []string{
		"[HIGH] Prominent call to action: Above the fold.",
		"[LOW] Hours: In header.",
	}, out)
}

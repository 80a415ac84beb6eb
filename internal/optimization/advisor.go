// Package optimization gathers conversion recommendations for a chosen template
// and derives a quality score from them.
package optimization

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"design-missions/internal/models"
)

type Impact string

const (
	ImpactCritical Impact = "critical"
	ImpactHigh     Impact = "high"
	ImpactMedium   Impact = "medium"
	ImpactLow      Impact = "low"
)

// Points is the quality contribution of one recommendation of this impact.
func (i Impact) Points() int {
	switch i {
	case ImpactCritical:
		return 4
	case ImpactHigh:
		return 3
	case ImpactMedium:
		return 2
	case ImpactLow:
		return 1
	default:
		return 0
	}
}

type Category string

const (
	CategoryConversion  Category = "conversion"
	CategoryUX          Category = "ux"
	CategoryTrust       Category = "trust"
	CategoryContent     Category = "content"
	CategoryPerformance Category = "performance"
	CategorySEO         Category = "seo"
)

type Optimization struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Impact      Impact   `json:"impact"`
	Priority    int      `json:"priority"`
}

func (o Optimization) String() string {
	return fmt.Sprintf("[%s] %s: %s", strings.ToUpper(string(o.Impact)), o.Title, o.Description)
}

type Advisor struct{}

func NewAdvisor() *Advisor {
	return &Advisor{}
}

// Optimize returns the sorted recommendations and the resulting quality score in [0,100].
func (a *Advisor) Optimize(tpl models.Template, business models.BusinessInfo, audience string) ([]Optimization, int) {
	var opts []Optimization
	opts = append(opts, genericItems...)
	opts = append(opts, sectorItems[business.Sector]...)
	opts = append(opts, styleItems[tpl.Style]...)
	opts = append(opts, businessItems(business, audience)...)

	sort.SliceStable(opts, func(i, j int) bool {
		x, y := opts[i], opts[j]
		if x.Impact.Points() != y.Impact.Points() {
			return x.Impact.Points() > y.Impact.Points()
		}
		if x.Priority != y.Priority {
			return x.Priority > y.Priority
		}
		return x.ID < y.ID
	})

	return opts, qualityScore(tpl, opts)
}

func businessItems(business models.BusinessInfo, audience string) []Optimization {
	city := strings.TrimSpace(business.Location.City)
	where := "your area"
	if city != "" {
		where = city
	}

	items := []Optimization{{
		ID:          "business-local-seo",
		Title:       "Local search optimization",
		Description: fmt.Sprintf("Target \"%s %s\" searches: Google Business Profile, consistent address data, local schema markup.", sectorSearchTerm(business.Sector), where),
		Category:    CategorySEO,
		Impact:      ImpactHigh,
		Priority:    9,
	}}

	if a := strings.TrimSpace(audience); a != "" {
		items = append(items, Optimization{
			ID:          "business-audience",
			Title:       "Audience-specific messaging",
			Description: fmt.Sprintf("Write headlines and imagery for %s.", a),
			Category:    CategoryContent,
			Impact:      ImpactMedium,
			Priority:    7,
		})
	}
	return items
}

func sectorSearchTerm(sector models.Sector) string {
	switch sector {
	case models.SectorRealEstate:
		return "real estate agency"
	case "":
		return "business"
	default:
		return string(sector)
	}
}

func qualityScore(tpl models.Template, opts []Optimization) int {
	base := 0.0
	if rate, ok := tpl.Performance.ConversionPercent(); ok {
		base = rate
	}
	total := int(math.Round(base))
	for _, o := range opts {
		total += o.Impact.Points()
	}
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}

// Strings renders recommendations as "[HIGH] Title: Description".
func Strings(opts []Optimization) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.String()
	}
	return out
}

// internal/models/business.go
package models

import "strings"

type Sector string

const (
	SectorRestaurant Sector = "restaurant"
	SectorBeauty     Sector = "beauty"
	SectorArtisan    Sector = "artisan"
	SectorRetail     Sector = "retail"
	SectorHealth     Sector = "health"
	SectorRealEstate Sector = "realestate"
	SectorFitness    Sector = "fitness"
	SectorServices   Sector = "services"
)

// Sectors lists every sector tag accepted by the catalog and the orchestrator.
var Sectors = []Sector{
	SectorRestaurant,
	SectorBeauty,
	SectorArtisan,
	SectorRetail,
	SectorHealth,
	SectorRealEstate,
	SectorFitness,
	SectorServices,
}

func (s Sector) Valid() bool {
	for _, known := range Sectors {
		if s == known {
			return true
		}
	}
	return false
}

type DesignStyle string

const (
	StyleModern       DesignStyle = "modern"
	StyleClassic      DesignStyle = "classic"
	StyleLuxury       DesignStyle = "luxury"
	StylePremium      DesignStyle = "premium"
	StyleMinimalist   DesignStyle = "minimalist"
	StyleBold         DesignStyle = "bold"
	StyleElegant      DesignStyle = "elegant"
	StyleProfessional DesignStyle = "professional"
	StylePlayful      DesignStyle = "playful"
	StyleRustic       DesignStyle = "rustic"
)

var DesignStyles = []DesignStyle{
	StyleModern,
	StyleClassic,
	StyleLuxury,
	StylePremium,
	StyleMinimalist,
	StyleBold,
	StyleElegant,
	StyleProfessional,
	StylePlayful,
	StyleRustic,
}

func (s DesignStyle) Valid() bool {
	for _, known := range DesignStyles {
		if s == known {
			return true
		}
	}
	return false
}

type BudgetTier string

const (
	BudgetBasic      BudgetTier = "basic"
	BudgetStandard   BudgetTier = "standard"
	BudgetPremium    BudgetTier = "premium"
	BudgetEnterprise BudgetTier = "enterprise"
)

type Timeframe string

const (
	TimeframeExpress  Timeframe = "express"
	TimeframeStandard Timeframe = "standard"
	TimeframeCustom   Timeframe = "custom"
)

// Location is where the business operates. City feeds the local search recommendations.
type Location struct {
	City       string `json:"city" yaml:"city"`
	PostalCode string `json:"postalCode,omitempty" yaml:"postalCode,omitempty"`
	Country    string `json:"country,omitempty" yaml:"country,omitempty"`
}

// BusinessInfo describes the submitting business. It is not modified after submission.
type BusinessInfo struct {
	Name        string   `json:"name"`
	Sector      Sector   `json:"sector"`
	Location    Location `json:"location"`
	Description string   `json:"description,omitempty"`
}

type BusinessRequirements struct {
	Sector         Sector      `json:"sector"`
	BusinessType   string      `json:"businessType,omitempty"`
	TargetAudience string      `json:"targetAudience,omitempty"`
	Goals          []string    `json:"goals,omitempty"`
	PreferredStyle DesignStyle `json:"preferredStyle"`
	Budget         BudgetTier  `json:"budget"`
	Timeframe      Timeframe   `json:"timeframe"`
}

// NormalizedType returns the lower-cased, trimmed business subtype used for table lookups.
func (r BusinessRequirements) NormalizedType() string {
	return strings.ToLower(strings.TrimSpace(r.BusinessType))
}

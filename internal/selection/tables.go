package selection

import "design-missions/internal/models"

const (
	weightStyle       = 0.30
	weightBudget      = 0.25
	weightFeatures    = 0.25
	weightPerformance = 0.20

	maxAlternatives = 3
)

// styleAffinity[requested][offered]. Asymmetric: a luxury request accepts premium
// more readily than a premium request accepts luxury.
var styleAffinity = map[models.DesignStyle]map[models.DesignStyle]float64{
	models.StyleModern: {
		models.StyleMinimalist:   0.8,
		models.StyleProfessional: 0.6,
		models.StyleBold:         0.6,
		models.StylePremium:      0.5,
		models.StyleElegant:      0.4,
		models.StylePlayful:      0.3,
	},
	models.StyleClassic: {
		models.StyleElegant:      0.7,
		models.StyleRustic:       0.6,
		models.StyleProfessional: 0.5,
		models.StyleLuxury:       0.4,
	},
	models.StyleLuxury: {
		models.StylePremium: 0.8,
		models.StyleElegant: 0.8,
		models.StyleClassic: 0.5,
		models.StyleModern:  0.3,
	},
	models.StylePremium: {
		models.StyleLuxury:       0.7,
		models.StyleElegant:      0.7,
		models.StyleModern:       0.6,
		models.StyleProfessional: 0.5,
	},
	models.StyleMinimalist: {
		models.StyleModern:       0.8,
		models.StyleElegant:      0.5,
		models.StyleProfessional: 0.5,
	},
	models.StyleBold: {
		models.StylePlayful: 0.7,
		models.StyleModern:  0.6,
	},
	models.StyleElegant: {
		models.StyleLuxury:     0.8,
		models.StylePremium:    0.7,
		models.StyleClassic:    0.6,
		models.StyleMinimalist: 0.5,
	},
	models.StyleProfessional: {
		models.StyleModern:     0.7,
		models.StyleClassic:    0.6,
		models.StyleMinimalist: 0.6,
		models.StylePremium:    0.4,
	},
	models.StylePlayful: {
		models.StyleBold:   0.7,
		models.StyleModern: 0.5,
		models.StyleRustic: 0.3,
	},
	models.StyleRustic: {
		models.StyleClassic: 0.7,
		models.StylePlayful: 0.3,
		models.StyleElegant: 0.3,
	},
}

var budgetStyles = map[models.BudgetTier][]models.DesignStyle{
	models.BudgetBasic: {
		models.StyleMinimalist, models.StyleModern, models.StyleProfessional, models.StyleRustic,
	},
	models.BudgetStandard: {
		models.StyleModern, models.StyleClassic, models.StyleProfessional, models.StyleMinimalist,
		models.StyleBold, models.StylePlayful, models.StyleRustic,
	},
	models.BudgetPremium: {
		models.StylePremium, models.StyleModern, models.StyleElegant, models.StyleLuxury, models.StyleBold,
	},
	models.BudgetEnterprise: {
		models.StyleLuxury, models.StylePremium, models.StyleElegant, models.StyleProfessional, models.StyleModern,
	},
}

// subtypeFeatures maps a lower-cased business subtype to feature fragments matched
// against template feature labels.
var subtypeFeatures = map[string][]string{
	"bistro":      {"menu", "reservation"},
	"brasserie":   {"menu", "reservation"},
	"restaurant":  {"menu", "reservation"},
	"pizzeria":    {"menu", "ordering"},
	"gastronomic": {"menu", "reservation", "private events"},
	"cafe":        {"menu", "opening hours"},
	"food truck":  {"ordering", "social"},
	"salon":       {"booking", "price list"},
	"spa":         {"booking", "treatments"},
	"barber":      {"booking", "gallery"},
	"nail studio": {"booking", "gallery"},
	"plumber":     {"quote", "service area"},
	"electrician": {"quote", "service area"},
	"carpenter":   {"quote", "gallery"},
	"boutique":    {"catalog", "store locator"},
	"grocery":     {"catalog", "click & collect"},
	"clinic":      {"booking", "practitioner"},
	"dentist":     {"booking", "practitioner"},
	"therapist":   {"booking", "contact"},
	"agency":      {"property search", "valuation"},
	"gym":         {"class schedule", "membership"},
	"yoga":        {"class schedule", "booking"},
	"coach":       {"booking", "testimonials"},
	"consulting":  {"contact", "case studies"},
	"law firm":    {"practice areas", "contact"},
	"accountant":  {"contact", "practice areas"},
}

var goalFeatures = map[string][]string{
	"reservations":  {"reservation", "booking"},
	"bookings":      {"booking"},
	"online_sales":  {"ordering", "shop"},
	"ecommerce":     {"shop", "catalog"},
	"visibility":    {"google map", "reviews"},
	"local_seo":     {"google map", "opening hours"},
	"leads":         {"contact", "quote"},
	"trust":         {"reviews", "testimonials"},
	"brand":         {"gallery", "story"},
	"loyalty":       {"loyalty", "newsletter"},
	"memberships":   {"membership"},
	"information":   {"opening hours", "contact"},
	"social_proof":  {"reviews", "testimonials"},
	"content":       {"blog"},
	"appointments":  {"booking"},
	"communication": {"newsletter", "contact"},
}

var estimatedDelivery = map[models.Timeframe]string{
	models.TimeframeExpress:  "24-48 hours",
	models.TimeframeStandard: "5-7 business days",
	models.TimeframeCustom:   "2-3 weeks",
}

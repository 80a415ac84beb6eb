package optimization

import "design-missions/internal/models"

var genericItems = []Optimization{
	{
		ID:          "generic-cta",
		Title:       "Prominent call to action",
		Description: "Place the primary call to action above the fold and repeat it after every key section.",
		Category:    CategoryConversion,
		Impact:      ImpactHigh,
		Priority:    10,
	},
	{
		ID:          "generic-mobile-first",
		Title:       "Mobile-first layout",
		Description: "Design for small screens first: thumb-reachable buttons, single-column sections, compressed images.",
		Category:    CategoryUX,
		Impact:      ImpactHigh,
		Priority:    9,
	},
	{
		ID:          "generic-social-proof",
		Title:       "Social proof near decisions",
		Description: "Show reviews, ratings or client logos next to booking and contact forms.",
		Category:    CategoryTrust,
		Impact:      ImpactMedium,
		Priority:    8,
	},
}

var sectorItems = map[models.Sector][]Optimization{
	models.SectorRestaurant: {
		{ID: "restaurant-booking", Title: "One-tap table booking", Description: "Let guests reserve a table in under three taps, with live availability.", Category: CategoryConversion, Impact: ImpactCritical, Priority: 10},
		{ID: "restaurant-menu", Title: "Readable online menu", Description: "Publish the menu as HTML with prices and allergens instead of a PDF.", Category: CategoryContent, Impact: ImpactHigh, Priority: 8},
		{ID: "restaurant-hours", Title: "Opening hours in the header", Description: "Keep today's opening hours visible on every page.", Category: CategoryUX, Impact: ImpactMedium, Priority: 6},
	},
	models.SectorBeauty: {
		{ID: "beauty-booking", Title: "Online appointment booking", Description: "Offer self-service booking per treatment and practitioner.", Category: CategoryConversion, Impact: ImpactCritical, Priority: 10},
		{ID: "beauty-pricing", Title: "Transparent price list", Description: "List every treatment with duration and price.", Category: CategoryContent, Impact: ImpactHigh, Priority: 7},
		{ID: "beauty-gallery", Title: "Before and after gallery", Description: "Show real results to reassure first-time clients.", Category: CategoryTrust, Impact: ImpactMedium, Priority: 6},
	},
	models.SectorArtisan: {
		{ID: "artisan-quote", Title: "Quote request form", Description: "Collect project type, surface and photos in a short quote form.", Category: CategoryConversion, Impact: ImpactCritical, Priority: 10},
		{ID: "artisan-projects", Title: "Project portfolio", Description: "Document finished jobs with photos and location.", Category: CategoryTrust, Impact: ImpactHigh, Priority: 8},
		{ID: "artisan-certifications", Title: "Certifications and insurance", Description: "Display trade certifications and insurance badges.", Category: CategoryTrust, Impact: ImpactMedium, Priority: 5},
	},
	models.SectorRetail: {
		{ID: "retail-click-collect", Title: "Click and collect", Description: "Allow customers to reserve products online and pick them up in store.", Category: CategoryConversion, Impact: ImpactHigh, Priority: 9},
		{ID: "retail-stock", Title: "In-store availability", Description: "Show product availability for the local shop.", Category: CategoryUX, Impact: ImpactMedium, Priority: 7},
		{ID: "retail-newsletter", Title: "Newsletter capture", Description: "Offer a first-purchase discount in exchange for an email address.", Category: CategoryConversion, Impact: ImpactMedium, Priority: 5},
	},
	models.SectorHealth: {
		{ID: "health-booking", Title: "Online consultation booking", Description: "Connect the site to the practice calendar for self-service appointments.", Category: CategoryConversion, Impact: ImpactCritical, Priority: 10},
		{ID: "health-practitioners", Title: "Practitioner profiles", Description: "Present each practitioner with specialties and credentials.", Category: CategoryTrust, Impact: ImpactHigh, Priority: 8},
		{ID: "health-accessibility", Title: "Accessibility compliance", Description: "Meet WCAG AA contrast and keyboard navigation requirements.", Category: CategoryUX, Impact: ImpactMedium, Priority: 6},
	},
	models.SectorRealEstate: {
		{ID: "realestate-search", Title: "Property search filters", Description: "Filter listings by budget, surface, rooms and neighbourhood.", Category: CategoryUX, Impact: ImpactCritical, Priority: 10},
		{ID: "realestate-valuation", Title: "Free valuation funnel", Description: "Capture seller leads with an online valuation form.", Category: CategoryConversion, Impact: ImpactHigh, Priority: 9},
		{ID: "realestate-virtual-tour", Title: "Virtual tours", Description: "Embed 3D tours or video walkthroughs on listing pages.", Category: CategoryContent, Impact: ImpactMedium, Priority: 6},
	},
	models.SectorFitness: {
		{ID: "fitness-trial", Title: "Free trial offer", Description: "Promote a free first class with a short sign-up form.", Category: CategoryConversion, Impact: ImpactCritical, Priority: 10},
		{ID: "fitness-schedule", Title: "Live class schedule", Description: "Publish the weekly schedule with remaining spots.", Category: CategoryUX, Impact: ImpactHigh, Priority: 8},
		{ID: "fitness-pricing", Title: "Membership comparison", Description: "Compare membership plans side by side.", Category: CategoryContent, Impact: ImpactMedium, Priority: 6},
	},
	models.SectorServices: {
		{ID: "services-lead-form", Title: "Qualified lead form", Description: "Ask for need, budget and timing before the first call.", Category: CategoryConversion, Impact: ImpactCritical, Priority: 10},
		{ID: "services-case-studies", Title: "Case studies", Description: "Publish measurable client outcomes.", Category: CategoryTrust, Impact: ImpactHigh, Priority: 8},
		{ID: "services-calendar", Title: "Meeting scheduler", Description: "Let prospects book a discovery call directly.", Category: CategoryConversion, Impact: ImpactMedium, Priority: 6},
	},
}

var styleItems = map[models.DesignStyle][]Optimization{
	models.StyleModern: {
		{ID: "style-modern-motion", Title: "Restrained motion", Description: "Limit animations to entrance fades so content stays readable.", Category: CategoryPerformance, Impact: ImpactLow, Priority: 4},
	},
	models.StyleClassic: {
		{ID: "style-classic-typography", Title: "Serif body size", Description: "Use at least 18px serif body text for legibility.", Category: CategoryUX, Impact: ImpactLow, Priority: 3},
	},
	models.StyleLuxury: {
		{ID: "style-luxury-images", Title: "Optimized hero imagery", Description: "Serve full-bleed images in AVIF/WebP with lazy loading below the fold.", Category: CategoryPerformance, Impact: ImpactHigh, Priority: 7},
		{ID: "style-luxury-contrast", Title: "Contrast on dark backgrounds", Description: "Check gold-on-black text against WCAG contrast ratios.", Category: CategoryUX, Impact: ImpactMedium, Priority: 5},
	},
	models.StylePremium: {
		{ID: "style-premium-whitespace", Title: "Whitespace with clear paths", Description: "Keep generous spacing but never hide the call to action below it.", Category: CategoryConversion, Impact: ImpactMedium, Priority: 5},
	},
	models.StyleMinimalist: {
		{ID: "style-minimalist-signposting", Title: "Explicit navigation", Description: "Minimal layouts still need visible labels on every navigation item.", Category: CategoryUX, Impact: ImpactMedium, Priority: 5},
	},
	models.StyleBold: {
		{ID: "style-bold-hierarchy", Title: "One dominant color per screen", Description: "Reserve the loudest color for the call to action.", Category: CategoryConversion, Impact: ImpactMedium, Priority: 6},
		{ID: "style-bold-fonts", Title: "Font loading strategy", Description: "Preload display fonts and use font-display: swap.", Category: CategoryPerformance, Impact: ImpactLow, Priority: 3},
	},
	models.StyleElegant: {
		{ID: "style-elegant-script", Title: "Script fonts for accents only", Description: "Keep decorative fonts out of body copy and buttons.", Category: CategoryUX, Impact: ImpactLow, Priority: 4},
	},
	models.StyleProfessional: {
		{ID: "style-professional-credentials", Title: "Credentials above the fold", Description: "Surface accreditations and years of experience in the hero.", Category: CategoryTrust, Impact: ImpactMedium, Priority: 5},
	},
	models.StylePlayful: {
		{ID: "style-playful-clarity", Title: "Playful but clear buttons", Description: "Keep button labels literal even with playful visuals.", Category: CategoryConversion, Impact: ImpactLow, Priority: 4},
	},
	models.StyleRustic: {
		{ID: "style-rustic-textures", Title: "Lightweight textures", Description: "Replace large texture images with CSS patterns.", Category: CategoryPerformance, Impact: ImpactLow, Priority: 4},
	},
}

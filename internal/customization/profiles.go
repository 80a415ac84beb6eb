package customization

import "design-missions/internal/models"

type profile struct {
	Fonts     models.FontSet
	Spacing   models.SpacingProfile
	Animation models.AnimationProfile
	Layout    models.LayoutProfile
}

var (
	spacingCompact = models.SpacingProfile{Scale: "compact", SectionPadding: "48px", ContainerWidth: "1140px", BorderRadius: "4px"}
	spacingMedium  = models.SpacingProfile{Scale: "medium", SectionPadding: "72px", ContainerWidth: "1200px", BorderRadius: "8px"}
	spacingAiry    = models.SpacingProfile{Scale: "airy", SectionPadding: "112px", ContainerWidth: "1280px", BorderRadius: "0px"}
	spacingRounded = models.SpacingProfile{Scale: "medium", SectionPadding: "80px", ContainerWidth: "1200px", BorderRadius: "16px"}
)

// defaultProfile is used when neither the style nor the professional entry of a sector exists.
var defaultProfile = profile{
	Fonts:     models.FontSet{Heading: "Inter", Body: "Inter", Accent: "Inter"},
	Spacing:   spacingMedium,
	Animation: models.AnimationProfile{Type: "subtle", Speed: "normal", Effects: []string{"fade-in"}},
	Layout: models.LayoutProfile{
		HeaderStyle: "standard",
		FooterStyle: "standard",
		Sections:    []string{"hero", "about", "services", "testimonials", "contact"},
	},
}

var profiles = map[models.Sector]map[models.DesignStyle]profile{
	models.SectorRestaurant: {
		models.StyleModern: {
			Fonts:     models.FontSet{Heading: "Poppins", Body: "Inter", Accent: "Caveat"},
			Spacing:   spacingMedium,
			Animation: models.AnimationProfile{Type: "smooth", Speed: "normal", Effects: []string{"fade-in", "parallax-hero"}},
			Layout:    models.LayoutProfile{HeaderStyle: "transparent-sticky", FooterStyle: "map", Sections: []string{"hero", "menu", "reservation", "gallery", "reviews", "contact"}},
		},
		models.StyleLuxury: {
			Fonts:     models.FontSet{Heading: "Playfair Display", Body: "Lato", Accent: "Cormorant Garamond"},
			Spacing:   spacingAiry,
			Animation: models.AnimationProfile{Type: "elegant", Speed: "slow", Effects: []string{"fade-in", "slow-zoom"}},
			Layout:    models.LayoutProfile{HeaderStyle: "centered", FooterStyle: "minimal", Sections: []string{"hero", "chef", "menu", "reservation", "gallery", "contact"}},
		},
		models.StyleRustic: {
			Fonts:     models.FontSet{Heading: "Merriweather", Body: "Source Sans Pro", Accent: "Amatic SC"},
			Spacing:   spacingMedium,
			Animation: models.AnimationProfile{Type: "subtle", Speed: "slow", Effects: []string{"fade-in"}},
			Layout:    models.LayoutProfile{HeaderStyle: "standard", FooterStyle: "map", Sections: []string{"hero", "story", "menu", "gallery", "hours", "contact"}},
		},
		models.StyleProfessional: {
			Fonts:     models.FontSet{Heading: "Montserrat", Body: "Open Sans", Accent: "Montserrat"},
			Spacing:   spacingMedium,
			Animation: models.AnimationProfile{Type: "subtle", Speed: "normal", Effects: []string{"fade-in"}},
			Layout:    models.LayoutProfile{HeaderStyle: "sticky", FooterStyle: "map", Sections: []string{"hero", "menu", "reservation", "reviews", "contact"}},
		},
	},
	models.SectorBeauty: {
		models.StyleElegant: {
			Fonts:     models.FontSet{Heading: "Cormorant Garamond", Body: "Raleway", Accent: "Great Vibes"},
			Spacing:   spacingAiry,
			Animation: models.AnimationProfile{Type: "elegant", Speed: "slow", Effects: []string{"fade-in", "soft-slide"}},
			Layout:    models.LayoutProfile{HeaderStyle: "centered", FooterStyle: "social", Sections: []string{"hero", "services", "pricing", "booking", "gallery", "contact"}},
		},
		models.StyleLuxury: {
			Fonts:     models.FontSet{Heading: "Playfair Display", Body: "Montserrat", Accent: "Cormorant Garamond"},
			Spacing:   spacingAiry,
			Animation: models.AnimationProfile{Type: "elegant", Speed: "slow", Effects: []string{"fade-in", "slow-zoom"}},
			Layout:    models.LayoutProfile{HeaderStyle: "transparent-sticky", FooterStyle: "minimal", Sections: []string{"hero", "treatments", "booking", "gallery", "contact"}},
		},
		models.StyleProfessional: {
			Fonts:     models.FontSet{Heading: "Raleway", Body: "Open Sans", Accent: "Raleway"},
			Spacing:   spacingRounded,
			Animation: models.AnimationProfile{Type: "subtle", Speed: "normal", Effects: []string{"fade-in"}},
			Layout:    models.LayoutProfile{HeaderStyle: "sticky", FooterStyle: "social", Sections: []string{"hero", "services", "booking", "reviews", "contact"}},
		},
	},
	models.SectorArtisan: {
		models.StyleRustic: {
			Fonts:     models.FontSet{Heading: "Merriweather", Body: "Lato", Accent: "Merriweather"},
			Spacing:   spacingMedium,
			Animation: models.AnimationProfile{Type: "subtle", Speed: "normal", Effects: []string{"fade-in"}},
			Layout:    models.LayoutProfile{HeaderStyle: "standard", FooterStyle: "contact", Sections: []string{"hero", "services", "projects", "about", "quote", "contact"}},
		},
		models.StyleProfessional: {
			Fonts:     models.FontSet{Heading: "Roboto Slab", Body: "Roboto", Accent: "Roboto"},
			Spacing:   spacingCompact,
			Animation: models.AnimationProfile{Type: "subtle", Speed: "fast", Effects: []string{"fade-in"}},
			Layout:    models.LayoutProfile{HeaderStyle: "sticky", FooterStyle: "contact", Sections: []string{"hero", "services", "projects", "quote", "reviews", "contact"}},
		},
	},
	models.SectorRetail: {
		models.StyleModern: {
			Fonts:     models.FontSet{Heading: "Poppins", Body: "Inter", Accent: "Poppins"},
			Spacing:   spacingRounded,
			Animation: models.AnimationProfile{Type: "smooth", Speed: "normal", Effects: []string{"fade-in", "hover-lift"}},
			Layout:    models.LayoutProfile{HeaderStyle: "sticky", FooterStyle: "newsletter", Sections: []string{"hero", "collections", "products", "about", "store", "contact"}},
		},
		models.StylePremium: {
			Fonts:     models.FontSet{Heading: "DM Serif Display", Body: "DM Sans", Accent: "DM Sans"},
			Spacing:   spacingAiry,
			Animation: models.AnimationProfile{Type: "smooth", Speed: "slow", Effects: []string{"fade-in", "image-reveal"}},
			Layout:    models.LayoutProfile{HeaderStyle: "centered", FooterStyle: "newsletter", Sections: []string{"hero", "collections", "story", "products", "contact"}},
		},
		models.StyleProfessional: {
			Fonts:     models.FontSet{Heading: "Inter", Body: "Inter", Accent: "Inter"},
			Spacing:   spacingMedium,
			Animation: models.AnimationProfile{Type: "subtle", Speed: "normal", Effects: []string{"fade-in"}},
			Layout:    models.LayoutProfile{HeaderStyle: "sticky", FooterStyle: "standard", Sections: []string{"hero", "products", "about", "store", "contact"}},
		},
	},
	models.SectorHealth: {
		models.StyleProfessional: {
			Fonts:     models.FontSet{Heading: "Nunito Sans", Body: "Source Sans Pro", Accent: "Nunito Sans"},
			Spacing:   spacingRounded,
			Animation: models.AnimationProfile{Type: "subtle", Speed: "normal", Effects: []string{"fade-in"}},
			Layout:    models.LayoutProfile{HeaderStyle: "sticky", FooterStyle: "contact", Sections: []string{"hero", "services", "practitioners", "booking", "faq", "contact"}},
		},
		models.StyleMinimalist: {
			Fonts:     models.FontSet{Heading: "Work Sans", Body: "Work Sans", Accent: "Work Sans"},
			Spacing:   spacingAiry,
			Animation: models.AnimationProfile{Type: "none", Speed: "normal", Effects: []string{}},
			Layout:    models.LayoutProfile{HeaderStyle: "minimal", FooterStyle: "minimal", Sections: []string{"hero", "approach", "booking", "contact"}},
		},
	},
	models.SectorRealEstate: {
		models.StylePremium: {
			Fonts:     models.FontSet{Heading: "Libre Baskerville", Body: "Montserrat", Accent: "Montserrat"},
			Spacing:   spacingAiry,
			Animation: models.AnimationProfile{Type: "smooth", Speed: "slow", Effects: []string{"fade-in", "image-reveal"}},
			Layout:    models.LayoutProfile{HeaderStyle: "transparent-sticky", FooterStyle: "contact", Sections: []string{"hero", "search", "listings", "valuation", "agents", "contact"}},
		},
		models.StyleProfessional: {
			Fonts:     models.FontSet{Heading: "Montserrat", Body: "Open Sans", Accent: "Montserrat"},
			Spacing:   spacingMedium,
			Animation: models.AnimationProfile{Type: "subtle", Speed: "normal", Effects: []string{"fade-in"}},
			Layout:    models.LayoutProfile{HeaderStyle: "sticky", FooterStyle: "contact", Sections: []string{"hero", "search", "listings", "agents", "contact"}},
		},
	},
	models.SectorFitness: {
		models.StyleBold: {
			Fonts:     models.FontSet{Heading: "Bebas Neue", Body: "Roboto", Accent: "Oswald"},
			Spacing:   spacingCompact,
			Animation: models.AnimationProfile{Type: "dynamic", Speed: "fast", Effects: []string{"slide-up", "counter", "hover-scale"}},
			Layout:    models.LayoutProfile{HeaderStyle: "sticky", FooterStyle: "social", Sections: []string{"hero", "classes", "schedule", "pricing", "coaches", "contact"}},
		},
		models.StyleProfessional: {
			Fonts:     models.FontSet{Heading: "Oswald", Body: "Roboto", Accent: "Oswald"},
			Spacing:   spacingMedium,
			Animation: models.AnimationProfile{Type: "smooth", Speed: "normal", Effects: []string{"fade-in", "slide-up"}},
			Layout:    models.LayoutProfile{HeaderStyle: "sticky", FooterStyle: "social", Sections: []string{"hero", "classes", "pricing", "testimonials", "contact"}},
		},
	},
	models.SectorServices: {
		models.StyleClassic: {
			Fonts:     models.FontSet{Heading: "Libre Baskerville", Body: "Source Serif Pro", Accent: "Libre Baskerville"},
			Spacing:   spacingMedium,
			Animation: models.AnimationProfile{Type: "subtle", Speed: "slow", Effects: []string{"fade-in"}},
			Layout:    models.LayoutProfile{HeaderStyle: "standard", FooterStyle: "contact", Sections: []string{"hero", "expertise", "team", "contact"}},
		},
		models.StyleProfessional: {
			Fonts:     models.FontSet{Heading: "IBM Plex Sans", Body: "IBM Plex Sans", Accent: "IBM Plex Serif"},
			Spacing:   spacingMedium,
			Animation: models.AnimationProfile{Type: "subtle", Speed: "normal", Effects: []string{"fade-in"}},
			Layout:    models.LayoutProfile{HeaderStyle: "sticky", FooterStyle: "contact", Sections: []string{"hero", "services", "case-studies", "team", "contact"}},
		},
	},
}

func lookupProfile(sector models.Sector, style models.DesignStyle) profile {
	bySector, ok := profiles[sector]
	if !ok {
		return defaultProfile
	}
	if p, ok := bySector[style]; ok {
		return p
	}
	if p, ok := bySector[models.StyleProfessional]; ok {
		return p
	}
	return defaultProfile
}

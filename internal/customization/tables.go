package customization

import "design-missions/internal/models"

// sectorPalette is the base-color pair of a sector. Soft is a light tint of Base.
type sectorPalette struct {
	Base string
	Soft string
}

// styleTone adjusts the sector palette for a design style.
type styleTone struct {
	Adjust     string
	Background string
	Mood       string
}

var sectorPalettes = map[models.Sector]sectorPalette{
	models.SectorRestaurant: {Base: "#C0392B", Soft: "#FDF2E9"},
	models.SectorBeauty:     {Base: "#D98BA3", Soft: "#FCEFF3"},
	models.SectorArtisan:    {Base: "#8D5A2B", Soft: "#F6EEE3"},
	models.SectorRetail:     {Base: "#2E86AB", Soft: "#EAF4F8"},
	models.SectorHealth:     {Base: "#0E9F9A", Soft: "#E6F6F5"},
	models.SectorRealEstate: {Base: "#1F3A5F", Soft: "#EDF1F6"},
	models.SectorFitness:    {Base: "#E4572E", Soft: "#FDEEE9"},
	models.SectorServices:   {Base: "#34495E", Soft: "#EEF1F4"},
}

var defaultSectorPalette = sectorPalette{Base: "#4B5563", Soft: "#F3F4F6"}

var styleTones = map[models.DesignStyle]styleTone{
	models.StyleModern:       {Adjust: "#3B82F6", Background: "#FFFFFF", Mood: "bright"},
	models.StyleClassic:      {Adjust: "#7B4B2A", Background: "#FBF8F3", Mood: "timeless"},
	models.StyleLuxury:       {Adjust: "#C9A227", Background: "#0F0F0F", Mood: "refined"},
	models.StylePremium:      {Adjust: "#6D28D9", Background: "#FAFAFA", Mood: "polished"},
	models.StyleMinimalist:   {Adjust: "#9CA3AF", Background: "#FFFFFF", Mood: "calm"},
	models.StyleBold:         {Adjust: "#FF3B30", Background: "#111111", Mood: "energetic"},
	models.StyleElegant:      {Adjust: "#B68D40", Background: "#FFFDF9", Mood: "graceful"},
	models.StyleProfessional: {Adjust: "#1E40AF", Background: "#FFFFFF", Mood: "trustworthy"},
	models.StylePlayful:      {Adjust: "#F59E0B", Background: "#FFFBEB", Mood: "cheerful"},
	models.StyleRustic:       {Adjust: "#6B8E23", Background: "#F7F3EA", Mood: "warm"},
}

type colorKeyword struct {
	Word   string
	Colors models.ColorTriple
}

// colorKeywords is scanned in order; the first keyword present wins.
var colorKeywords = []colorKeyword{
	{"rouge", models.ColorTriple{Primary: "#DC2626", Secondary: "#FCA5A5", Accent: "#7F1D1D"}},
	{"bleu", models.ColorTriple{Primary: "#2563EB", Secondary: "#93C5FD", Accent: "#1E3A8A"}},
	{"vert", models.ColorTriple{Primary: "#16A34A", Secondary: "#86EFAC", Accent: "#14532D"}},
	{"jaune", models.ColorTriple{Primary: "#EAB308", Secondary: "#FDE68A", Accent: "#713F12"}},
	{"orange", models.ColorTriple{Primary: "#EA580C", Secondary: "#FDBA74", Accent: "#7C2D12"}},
	{"violet", models.ColorTriple{Primary: "#7C3AED", Secondary: "#C4B5FD", Accent: "#4C1D95"}},
	{"rose", models.ColorTriple{Primary: "#DB2777", Secondary: "#F9A8D4", Accent: "#831843"}},
	{"noir", models.ColorTriple{Primary: "#111827", Secondary: "#6B7280", Accent: "#D4AF37"}},
	{"or", models.ColorTriple{Primary: "#D4AF37", Secondary: "#F5E6B3", Accent: "#1F2937"}},
	{"turquoise", models.ColorTriple{Primary: "#14B8A6", Secondary: "#99F6E4", Accent: "#134E4A"}},
}

var neutralScale = []models.NeutralShade{
	{Step: 50, Hex: "#F9FAFB"},
	{Step: 100, Hex: "#F3F4F6"},
	{Step: 200, Hex: "#E5E7EB"},
	{Step: 300, Hex: "#D1D5DB"},
	{Step: 400, Hex: "#9CA3AF"},
	{Step: 500, Hex: "#6B7280"},
	{Step: 600, Hex: "#4B5563"},
	{Step: 700, Hex: "#374151"},
	{Step: 800, Hex: "#1F2937"},
	{Step: 900, Hex: "#111827"},
}

var semanticColors = models.SemanticColors{
	Success: "#16A34A",
	Warning: "#F59E0B",
	Error:   "#DC2626",
	Info:    "#2563EB",
}

type photoSlot struct {
	Category string
	Keywords []string
}

var contentAreas = []string{"hero", "about", "services", "gallery"}

var sectorPhotos = map[models.Sector]map[string]photoSlot{
	models.SectorRestaurant: {
		"hero":     {"food", []string{"signature dish", "dining room"}},
		"about":    {"team", []string{"chef", "kitchen"}},
		"services": {"food", []string{"menu", "plating"}},
		"gallery":  {"ambiance", []string{"terrace", "tables"}},
	},
	models.SectorBeauty: {
		"hero":     {"beauty", []string{"salon interior", "treatment"}},
		"about":    {"team", []string{"stylist", "beautician"}},
		"services": {"beauty", []string{"haircut", "skincare"}},
		"gallery":  {"results", []string{"before after", "styling"}},
	},
	models.SectorArtisan: {
		"hero":     {"craft", []string{"workshop", "tools"}},
		"about":    {"portrait", []string{"craftsman", "hands"}},
		"services": {"craft", []string{"renovation", "installation"}},
		"gallery":  {"projects", []string{"finished work", "details"}},
	},
	models.SectorRetail: {
		"hero":     {"store", []string{"shop front", "display"}},
		"about":    {"team", []string{"shopkeeper", "counter"}},
		"services": {"products", []string{"product shot", "shelves"}},
		"gallery":  {"products", []string{"collection", "lifestyle"}},
	},
	models.SectorHealth: {
		"hero":     {"care", []string{"practitioner", "consultation"}},
		"about":    {"team", []string{"medical staff", "reception"}},
		"services": {"care", []string{"treatment room", "equipment"}},
		"gallery":  {"facility", []string{"waiting room", "clinic"}},
	},
	models.SectorRealEstate: {
		"hero":     {"property", []string{"house exterior", "living room"}},
		"about":    {"team", []string{"agent", "office"}},
		"services": {"property", []string{"keys", "visit"}},
		"gallery":  {"property", []string{"interior", "neighbourhood"}},
	},
	models.SectorFitness: {
		"hero":     {"sport", []string{"workout", "gym floor"}},
		"about":    {"team", []string{"coach", "trainer"}},
		"services": {"sport", []string{"group class", "equipment"}},
		"gallery":  {"community", []string{"members", "training"}},
	},
	models.SectorServices: {
		"hero":     {"business", []string{"office", "meeting"}},
		"about":    {"team", []string{"consultant", "handshake"}},
		"services": {"business", []string{"workspace", "laptop"}},
		"gallery":  {"business", []string{"clients", "collaboration"}},
	},
}

var defaultPhotoSlot = photoSlot{Category: "business", Keywords: []string{"team", "workspace"}}

// audienceStopwords are dropped when turning the audience text into photo keywords.
var audienceStopwords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "who": true, "from": true,
	"les": true, "des": true, "pour": true, "avec": true, "une": true, "aux": true, "qui": true, "dans": true,
}

// Package customization derives the visual identity of a mission from the business,
// the chosen style and the target audience. Generation is pure and deterministic.
package customization

import (
	"strings"
	"unicode"

	"design-missions/internal/models"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	sectorWeight   = 0.7
	secondaryShift = 30.0
	accentShift    = 60.0
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(business models.BusinessInfo, style models.DesignStyle, audience string) models.CustomizationResult {
	palette, keyword := buildPalette(business, style)
	p := lookupProfile(business.Sector, style)

	return models.CustomizationResult{
		Colors:       palette,
		Photos:       buildPhotos(business.Sector, style, audience),
		Fonts:        p.Fonts,
		Spacing:      p.Spacing,
		Animation:    models.AnimationProfile{Type: p.Animation.Type, Speed: p.Animation.Speed, Effects: cloneStrings(p.Animation.Effects)},
		Layout:       models.LayoutProfile{HeaderStyle: p.Layout.HeaderStyle, FooterStyle: p.Layout.FooterStyle, Sections: cloneStrings(p.Layout.Sections)},
		Personalized: keyword != "",
		ColorKeyword: keyword,
	}
}

func buildPalette(business models.BusinessInfo, style models.DesignStyle) (models.ColorPalette, string) {
	sector, ok := sectorPalettes[business.Sector]
	if !ok {
		sector = defaultSectorPalette
	}
	tone, ok := styleTones[style]
	if !ok {
		tone = styleTones[models.StyleProfessional]
	}

	var (
		triple  models.ColorTriple
		keyword string
	)
	if kw, ok := findColorKeyword(business.Name + " " + business.Description); ok {
		triple = kw.Colors
		keyword = kw.Word
	} else {
		primary := blend(mustParse(sector.Base), mustParse(tone.Adjust), sectorWeight)
		triple = models.ColorTriple{
			Primary:   hexOf(primary),
			Secondary: derive(primary, secondaryShift),
			Accent:    derive(primary, accentShift),
		}
	}

	bg := mustParse(tone.Background)
	dark := relativeLuminance(bg) < 0.5

	palette := models.ColorPalette{
		Primary:   triple.Primary,
		Secondary: triple.Secondary,
		Accent:    triple.Accent,
		Neutrals:  append([]models.NeutralShade(nil), neutralScale...),
		Semantic:  semanticColors,
		Background: models.BackgroundColors{
			Default: hexOf(bg),
		},
	}

	if dark {
		palette.Text = models.TextColors{Primary: neutral(50), Secondary: neutral(300), Inverse: neutral(900)}
		palette.Background.Surface = neutral(800)
		palette.Background.Muted = neutral(700)
	} else {
		palette.Text = models.TextColors{Primary: neutral(900), Secondary: neutral(600), Inverse: neutral(50)}
		palette.Background.Surface = neutral(50)
		palette.Background.Muted = hexOf(mustParse(sector.Soft))
	}

	return palette, keyword
}

// derive rotates the hue of c. When rounding cancels the rotation out, the
// lightness path of rotateHue is used so the result never equals c.
func derive(c colorful.Color, degrees float64) string {
	out := hexOf(rotateHue(c, degrees))
	if out != hexOf(c) {
		return out
	}
	h, _, l := c.Hsl()
	return hexOf(rotateHue(colorful.Hsl(h, 0, l), degrees))
}

func findColorKeyword(text string) (colorKeyword, bool) {
	tokens := make(map[string]bool)
	for _, tok := range tokenize(text) {
		tokens[tok] = true
	}
	for _, kw := range colorKeywords {
		for _, form := range []string{kw.Word, kw.Word + "s", kw.Word + "e", kw.Word + "es"} {
			if tokens[form] {
				return kw, true
			}
		}
	}
	return colorKeyword{}, false
}

func buildPhotos(sector models.Sector, style models.DesignStyle, audience string) []models.PhotoConfig {
	slots := sectorPhotos[sector]
	mood := "neutral"
	if tone, ok := styleTones[style]; ok {
		mood = tone.Mood
	}

	photos := make([]models.PhotoConfig, 0, len(contentAreas))
	for _, area := range contentAreas {
		slot, ok := slots[area]
		if !ok {
			slot = defaultPhotoSlot
		}
		keywords := cloneStrings(slot.Keywords)
		if area == "hero" {
			keywords = appendUnique(keywords, audienceKeywords(audience)...)
		}
		photos = append(photos, models.PhotoConfig{
			Area:     area,
			Category: slot.Category,
			Mood:     mood,
			Keywords: keywords,
		})
	}
	return photos
}

func audienceKeywords(audience string) []string {
	var out []string
	for _, tok := range tokenize(audience) {
		if len([]rune(tok)) < 3 || audienceStopwords[tok] {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func appendUnique(dst []string, items ...string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range items {
		if !seen[s] {
			seen[s] = true
			dst = append(dst, s)
		}
	}
	return dst
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func neutral(step int) string {
	for _, n := range neutralScale {
		if n.Step == step {
			return n.Hex
		}
	}
	return neutralScale[len(neutralScale)/2].Hex
}

// mustParse is only used on the static tables above.
func mustParse(hex string) colorful.Color {
	c, err := parseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// internal/models/customization.go
package models

type SemanticColors struct {
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`
}

type TextColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Inverse   string `json:"inverse"`
}

type BackgroundColors struct {
	Default string `json:"default"`
	Surface string `json:"surface"`
	Muted   string `json:"muted"`
}

// NeutralShade is one step of the gray scale (50..900).
type NeutralShade struct {
	Step int    `json:"step"`
	Hex  string `json:"hex"`
}

type ColorPalette struct {
	Primary    string           `json:"primary"`
	Secondary  string           `json:"secondary"`
	Accent     string           `json:"accent"`
	Neutrals   []NeutralShade   `json:"neutrals"`
	Semantic   SemanticColors   `json:"semantic"`
	Text       TextColors       `json:"text"`
	Background BackgroundColors `json:"background"`
}

// PhotoConfig describes the imagery wanted for one content area. No media is produced here.
type PhotoConfig struct {
	Area     string   `json:"area"`
	Category string   `json:"category"`
	Mood     string   `json:"mood"`
	Keywords []string `json:"keywords"`
}

type FontSet struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Accent  string `json:"accent"`
}

type SpacingProfile struct {
	Scale          string `json:"scale"`
	SectionPadding string `json:"sectionPadding"`
	ContainerWidth string `json:"containerWidth"`
	BorderRadius   string `json:"borderRadius"`
}

type AnimationProfile struct {
	Type    string   `json:"type"`
	Speed   string   `json:"speed"`
	Effects []string `json:"effects"`
}

type LayoutProfile struct {
	HeaderStyle string   `json:"headerStyle"`
	FooterStyle string   `json:"footerStyle"`
	Sections    []string `json:"sections"`
}

type CustomizationResult struct {
	Colors       ColorPalette     `json:"colors"`
	Photos       []PhotoConfig    `json:"photos"`
	Fonts        FontSet          `json:"fonts"`
	Spacing      SpacingProfile   `json:"spacing"`
	Animation    AnimationProfile `json:"animation"`
	Layout       LayoutProfile    `json:"layout"`
	Personalized bool             `json:"personalized"`
	ColorKeyword string           `json:"colorKeyword,omitempty"`
}

func (c CustomizationResult) Clone() CustomizationResult {
	c.Colors.Neutrals = append([]NeutralShade(nil), c.Colors.Neutrals...)
	if c.Photos != nil {
		photos := make([]PhotoConfig, len(c.Photos))
		for i, p := range c.Photos {
			p.Keywords = append([]string(nil), p.Keywords...)
			photos[i] = p
		}
		c.Photos = photos
	}
	c.Animation.Effects = append([]string(nil), c.Animation.Effects...)
	c.Layout.Sections = append([]string(nil), c.Layout.Sections...)
	return c
}

// internal/models/template.go
package models

import (
	"strconv"
	"strings"
)

type ColorTriple struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Accent    string `json:"accent" yaml:"accent"`
}

// TemplatePerformance keeps the catalog's raw stat strings ("0.6s", "45%").
type TemplatePerformance struct {
	LoadTime       string `json:"loadTime" yaml:"loadTime"`
	Score          int    `json:"score" yaml:"score"`
	ConversionRate string `json:"conversionRate" yaml:"conversionRate"`
}

// Template is a read-only catalog entry.
type Template struct {
	ID          string              `json:"id" yaml:"id"`
	Name        string              `json:"name" yaml:"name"`
	Sector      Sector              `json:"sector" yaml:"sector"`
	Style       DesignStyle         `json:"style" yaml:"style"`
	Features    []string            `json:"features" yaml:"features"`
	Colors      ColorTriple         `json:"colors" yaml:"colors"`
	Performance TemplatePerformance `json:"performance" yaml:"performance"`
}

// ConversionPercent parses ConversionRate ("45%", "12.5 %").
func (p TemplatePerformance) ConversionPercent() (float64, bool) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(p.ConversionRate), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Clone detaches the feature list.
func (t Template) Clone() Template {
	t.Features = append([]string(nil), t.Features...)
	return t
}

// internal/models/result.go
package models

// TemplateScore is the per-template breakdown produced by the scoring engine.
type TemplateScore struct {
	TemplateID  string      `json:"templateId"`
	Style       DesignStyle `json:"style"`
	Score       int         `json:"score"`
	StyleMatch  float64     `json:"styleMatch"`
	BudgetFit   float64     `json:"budgetFit"`
	FeatureFit  float64     `json:"featureFit"`
	Performance float64     `json:"performance"`
}

type SmartSelectionResult struct {
	Primary           Template            `json:"primary"`
	Alternatives      []Template          `json:"alternatives"`
	MatchScore        int                 `json:"matchScore"`
	Customization     CustomizationResult `json:"customization"`
	Optimizations     []string            `json:"optimizations"`
	EstimatedDelivery string              `json:"estimatedDelivery"`
	Reasoning         string              `json:"reasoning"`
	Scores            []TemplateScore     `json:"scores,omitempty"`
}

// AssetRef is an opaque reference to a generated asset; rendering happens elsewhere.
type AssetRef struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

type Deliverable struct {
	Kind    string `json:"kind"`
	Locator string `json:"locator"`
}

type DesignMissionResult struct {
	MissionID      string               `json:"missionId"`
	BusinessInfo   BusinessInfo         `json:"businessInfo"`
	Selection      SmartSelectionResult `json:"selection"`
	Customization  CustomizationResult  `json:"customization"`
	Assets         []AssetRef           `json:"assets"`
	Deliverables   []Deliverable        `json:"deliverables"`
	QualityScore   int                  `json:"qualityScore"`
	CompletionTime string               `json:"completionTime"`
	Optimizations  []string             `json:"optimizations"`
}

// Clone returns a copy that shares no slices with r.
func (r *DesignMissionResult) Clone() *DesignMissionResult {
	if r == nil {
		return nil
	}
	out := *r
	out.Selection = r.Selection.Clone()
	out.Customization = r.Customization.Clone()
	out.Assets = append([]AssetRef(nil), r.Assets...)
	out.Deliverables = append([]Deliverable(nil), r.Deliverables...)
	out.Optimizations = append([]string(nil), r.Optimizations...)
	return &out
}

func (s SmartSelectionResult) Clone() SmartSelectionResult {
	s.Primary = s.Primary.Clone()
	alts := make([]Template, len(s.Alternatives))
	for i, t := range s.Alternatives {
		alts[i] = t.Clone()
	}
	if s.Alternatives == nil {
		alts = nil
	}
	s.Alternatives = alts
	s.Customization = s.Customization.Clone()
	s.Optimizations = append([]string(nil), s.Optimizations...)
	s.Scores = append([]TemplateScore(nil), s.Scores...)
	return s
}

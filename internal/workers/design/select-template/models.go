// internal/workers/design/select-template/models.go
package selecttemplate

import "design-missions/internal/models"

type Input struct {
	BusinessName   string   `json:"businessName"`
	Sector         string   `json:"sector"`
	City           string   `json:"city,omitempty"`
	Description    string   `json:"description,omitempty"`
	BusinessType   string   `json:"businessType,omitempty"`
	TargetAudience string   `json:"targetAudience,omitempty"`
	Goals          []string `json:"goals,omitempty"`
	PreferredStyle string   `json:"preferredStyle,omitempty"`
	Budget         string   `json:"budget"`
	Timeframe      string   `json:"timeframe,omitempty"`
}

type Output struct {
	SelectedTemplateId     string   `json:"selectedTemplateId"`
	TemplateName           string   `json:"templateName"`
	TemplateStyle          string   `json:"templateStyle"`
	AlternativeTemplateIds []string `json:"alternativeTemplateIds"`
	MatchScore             int      `json:"matchScore"`
	EstimatedDelivery      string   `json:"estimatedDelivery"`
	PrimaryColor           string   `json:"primaryColor"`
	Optimizations          []string `json:"optimizations"`
	Reasoning              string   `json:"reasoning"`
}

func (i *Input) Requirements() models.BusinessRequirements {
	tf := models.Timeframe(i.Timeframe)
	if tf == "" {
		tf = models.TimeframeStandard
	}
	return models.BusinessRequirements{
		Sector:         models.Sector(i.Sector),
		BusinessType:   i.BusinessType,
		TargetAudience: i.TargetAudience,
		Goals:          i.Goals,
		PreferredStyle: models.DesignStyle(i.PreferredStyle),
		Budget:         models.BudgetTier(i.Budget),
		Timeframe:      tf,
	}
}

func (i *Input) Business() models.BusinessInfo {
	return models.BusinessInfo{
		Name:        i.BusinessName,
		Sector:      models.Sector(i.Sector),
		Location:    models.Location{City: i.City},
		Description: i.Description,
	}
}

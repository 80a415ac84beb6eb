// cmd/mission-manager/select.go
package main

import (
	"context"
	"encoding/json"
	"io"

	"design-missions/internal/catalog"
	"design-missions/internal/customization"
	"design-missions/internal/models"
	"design-missions/internal/optimization"
	"design-missions/internal/selection"

	"github.com/spf13/cobra"
)

type selectOptions struct {
	catalogPath string
	name        string
	city        string
	description string
	sector      string
	style       string
	budget      string
	timeframe   string
	subtype     string
	audience    string
	goals       []string
}

var selectOpts selectOptions

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Run one template selection and print the result as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSelect(cmd.Context(), selectOpts, cmd.OutOrStdout())
	},
}

func init() {
	f := selectCmd.Flags()
	f.StringVar(&selectOpts.catalogPath, "catalog", "", "Catalog file (YAML or JSON); built-in catalog when empty")
	f.StringVar(&selectOpts.name, "name", "", "Business name")
	f.StringVar(&selectOpts.city, "city", "", "Business city")
	f.StringVar(&selectOpts.description, "description", "", "Business description")
	f.StringVar(&selectOpts.sector, "sector", "", "Business sector")
	f.StringVar(&selectOpts.style, "style", "", "Preferred design style")
	f.StringVar(&selectOpts.budget, "budget", "standard", "Budget tier")
	f.StringVar(&selectOpts.timeframe, "timeframe", "standard", "Delivery timeframe")
	f.StringVar(&selectOpts.subtype, "type", "", "Business subtype")
	f.StringVar(&selectOpts.audience, "audience", "", "Target audience")
	f.StringSliceVar(&selectOpts.goals, "goal", nil, "Business goal (repeatable)")
	_ = selectCmd.MarkFlagRequired("sector")
	rootCmd.AddCommand(selectCmd)
}

func (o selectOptions) request() (models.BusinessRequirements, models.BusinessInfo) {
	sector := models.Sector(o.sector)
	req := models.BusinessRequirements{
		Sector:         sector,
		BusinessType:   o.subtype,
		TargetAudience: o.audience,
		Goals:          o.goals,
		PreferredStyle: models.DesignStyle(o.style),
		Budget:         models.BudgetTier(o.budget),
		Timeframe:      models.Timeframe(o.timeframe),
	}
	business := models.BusinessInfo{
		Name:        o.name,
		Sector:      sector,
		Location:    models.Location{City: o.city},
		Description: o.description,
	}
	return req, business
}

func runSelect(ctx context.Context, opts selectOptions, out io.Writer) error {
	cat, err := catalog.Load(ctx, catalog.NewFileSource(opts.catalogPath))
	if err != nil {
		return err
	}

	engine := selection.NewEngine(cat, customization.NewGenerator(), optimization.NewAdvisor())
	req, business := opts.request()
	result, err := engine.SelectOptimalTemplate(ctx, req, business)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

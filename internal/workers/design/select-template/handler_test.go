// internal/workers/design/select-template/handler_test.go
package selecttemplate

import (
	"context"
	"errors"
	"testing"
	"time"

	"design-missions/internal/catalog"
	"design-missions/internal/common/config"
	apperrors "design-missions/internal/common/errors"
	"design-missions/internal/common/logger"
	"design-missions/internal/customization"
	"design-missions/internal/models"
	"design-missions/internal/optimization"
	"design-missions/internal/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}

func createTestHandler(t *testing.T, selector Selector) *Handler {
	if selector == nil {
		selector = selection.NewEngine(catalog.Default(), customization.NewGenerator(), optimization.NewAdvisor())
	}
	return NewHandler(createTestConfig(), selector, logger.NewTestLogger(t))
}

func createInput(sector, style, budget string) *Input {
	return &Input{
		BusinessName:   "Chez Paul",
		Sector:         sector,
		City:           "Lyon",
		PreferredStyle: style,
		Budget:         budget,
	}
}

type failingSelector struct {
	err error
}

func (f failingSelector) SelectOptimalTemplate(context.Context, models.BusinessRequirements, models.BusinessInfo) (*models.SmartSelectionResult, error) {
	return nil, f.err
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	tests := []struct {
		name           string
		input          *Input
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name:  "restaurant modern premium",
			input: createInput("restaurant", "modern", "premium"),
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, "restaurant-bistro-modern", output.SelectedTemplateId)
				assert.Equal(t, "modern", output.TemplateStyle)
				assert.Equal(t, 84, output.MatchScore)
				assert.Len(t, output.AlternativeTemplateIds, 3)
				assert.Equal(t, "5-7 business days", output.EstimatedDelivery)
			},
		},
		{
			name: "express timeframe",
			input: func() *Input {
				in := createInput("health", "luxury", "enterprise")
				in.Timeframe = "express"
				return in
			}(),
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, "health-dental-modern", output.SelectedTemplateId)
				assert.Equal(t, "24-48 hours", output.EstimatedDelivery)
			},
		},
		{
			name:  "no preferred style",
			input: createInput("fitness", "", "standard"),
			validateOutput: func(t *testing.T, output *Output) {
				assert.NotEmpty(t, output.SelectedTemplateId)
				assert.GreaterOrEqual(t, output.MatchScore, 0)
				assert.LessOrEqual(t, output.MatchScore, 100)
				assert.Regexp(t, `^#[0-9A-F]{6}$`, output.PrimaryColor)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := createTestHandler(t, nil)

			output, err := handler.Execute(context.Background(), tt.input)
			require.NoError(t, err)
			require.NotNil(t, output)
			assert.NotEmpty(t, output.Optimizations)
			assert.NotEmpty(t, output.Reasoning)
			tt.validateOutput(t, output)
		})
	}
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    *Input
		contains string
	}{
		{name: "missing business name", input: &Input{Sector: "retail", Budget: "basic"}, contains: "businessName is required"},
		{name: "unknown sector", input: createInput("bakery", "", "basic"), contains: `unknown sector "bakery"`},
		{name: "unknown style", input: createInput("retail", "gothic", "basic"), contains: `unknown preferredStyle "gothic"`},
		{name: "unknown budget", input: createInput("retail", "", "unlimited"), contains: `unknown budget "unlimited"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := createTestHandler(t, nil)

			output, err := handler.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidationFailed))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestHandler_Execute_SelectorError(t *testing.T) {
	handler := createTestHandler(t, failingSelector{err: apperrors.NewTemplateNotFoundError("retail")})

	_, err := handler.Execute(context.Background(), createInput("retail", "", "basic"))
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeTemplateNotFound))

	handler = createTestHandler(t, failingSelector{err: errors.New("boom")})
	_, err = handler.Execute(context.Background(), createInput("retail", "", "basic"))
	assert.EqualError(t, err, "boom")
}

func TestParseInput(t *testing.T) {
	input, err := parseInput(`{"businessName":"Atelier Bois","sector":"artisan","goals":["visibility"],"budget":"basic"}`)
	require.NoError(t, err)
	assert.Equal(t, models.SectorArtisan, input.Requirements().Sector)
	assert.Equal(t, models.TimeframeStandard, input.Requirements().Timeframe)
	assert.Equal(t, []string{"visibility"}, input.Requirements().Goals)
	assert.Equal(t, "Atelier Bois", input.Business().Name)

	_, err = parseInput(`{"businessName":`)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidationFailed))
}

func TestFromWorkerConfig(t *testing.T) {
	assert.Equal(t, 10*time.Second, FromWorkerConfig(config.WorkerConfig{}).Timeout)
	assert.Equal(t, 2500*time.Millisecond, FromWorkerConfig(config.WorkerConfig{Timeout: 2500}).Timeout)
}

// internal/common/validation/schema.go
package validation

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"design-missions/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error joins the individual failures into one line, sorted by field.
func (r *ValidationResult) Error() string {
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

var (
	missionSchemaOnce sync.Once
	missionSchema     *gojsonschema.Schema
	missionSchemaErr  error
)

func enumOf[T ~string](values []T, allowEmpty bool) []interface{} {
	out := make([]interface{}, 0, len(values)+1)
	if allowEmpty {
		out = append(out, "")
	}
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

// MissionSchema is the JSON schema every submitted mission must satisfy.
func MissionSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"businessInfo", "requirements"},
		"properties": map[string]interface{}{
			"businessInfo": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"name"},
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":      "string",
						"minLength": 1,
						"pattern":   `\S`,
					},
					"sector": map[string]interface{}{
						"enum": enumOf(models.Sectors, true),
					},
				},
			},
			"requirements": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"sector", "budget", "timeframe"},
				"properties": map[string]interface{}{
					"sector": map[string]interface{}{
						"enum": enumOf(models.Sectors, false),
					},
					"preferredStyle": map[string]interface{}{
						"enum": enumOf(models.DesignStyles, true),
					},
					"budget": map[string]interface{}{
						"enum": []interface{}{
							string(models.BudgetBasic),
							string(models.BudgetStandard),
							string(models.BudgetPremium),
							string(models.BudgetEnterprise),
						},
					},
					"timeframe": map[string]interface{}{
						"enum": []interface{}{
							string(models.TimeframeExpress),
							string(models.TimeframeStandard),
							string(models.TimeframeCustom),
						},
					},
					"goals": map[string]interface{}{
						"type":  []interface{}{"array", "null"},
						"items": map[string]interface{}{"type": "string"},
					},
				},
			},
			"priority": map[string]interface{}{
				"enum": []interface{}{
					string(models.PriorityLow),
					string(models.PriorityMedium),
					string(models.PriorityHigh),
					string(models.PriorityUrgent),
				},
			},
		},
	}
}

func compiledMissionSchema() (*gojsonschema.Schema, error) {
	missionSchemaOnce.Do(func() {
		missionSchema, missionSchemaErr = gojsonschema.NewSchema(gojsonschema.NewGoLoader(MissionSchema()))
	})
	return missionSchema, missionSchemaErr
}

// ValidateMission checks a mission against the schema and the cross-field rules.
func ValidateMission(m *models.BusinessMission) (*ValidationResult, error) {
	if m == nil {
		return &ValidationResult{Errors: []ValidationError{{
			Field:   "(root)",
			Message: "mission is required",
			Code:    "REQUIRED_FIELD_MISSING",
		}}}, nil
	}

	schema, err := compiledMissionSchema()
	if err != nil {
		return nil, fmt.Errorf("compile mission schema: %w", err)
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode mission: %w", err)
	}

	res, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("validate mission: %w", err)
	}

	result := &ValidationResult{}
	for _, re := range res.Errors() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   re.Field(),
			Message: re.Description(),
			Code:    strings.ToUpper(re.Type()),
		})
	}

	if s := m.BusinessInfo.Sector; s != "" && m.Requirements.Sector != "" && s != m.Requirements.Sector {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "requirements.sector",
			Message: fmt.Sprintf("must match businessInfo.sector %q", s),
			Code:    "SECTOR_MISMATCH",
		})
	}

	result.Valid = len(result.Errors) == 0
	return result, nil
}

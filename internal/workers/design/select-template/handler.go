// internal/workers/design/select-template/handler.go
package selecttemplate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	apperrors "design-missions/internal/common/errors"
	"design-missions/internal/common/logger"
	"design-missions/internal/common/metrics"
	"design-missions/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "select-template"
)

// Selector is satisfied by selection.Engine.
type Selector interface {
	SelectOptimalTemplate(ctx context.Context, req models.BusinessRequirements, business models.BusinessInfo) (*models.SmartSelectionResult, error)
}

type Handler struct {
	config       *Config
	selector     Selector
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, selector Selector, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		selector:     selector,
		errorHandler: apperrors.NewErrorHandler(log),
		logger:       log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	input, err := parseInput(job.Variables)
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	output, err := h.execute(ctx, input)
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

func parseInput(variables string) (*Input, error) {
	var input Input
	if err := json.Unmarshal([]byte(variables), &input); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("parse input: %v", err))
	}
	return &input, nil
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	result, err := h.selector.SelectOptimalTemplate(ctx, input.Requirements(), input.Business())
	if err != nil {
		return nil, err
	}

	alternatives := make([]string, len(result.Alternatives))
	for i, alt := range result.Alternatives {
		alternatives[i] = alt.ID
	}

	return &Output{
		SelectedTemplateId:     result.Primary.ID,
		TemplateName:           result.Primary.Name,
		TemplateStyle:          string(result.Primary.Style),
		AlternativeTemplateIds: alternatives,
		MatchScore:             result.MatchScore,
		EstimatedDelivery:      result.EstimatedDelivery,
		PrimaryColor:           result.Customization.Colors.Primary,
		Optimizations:          result.Optimizations,
		Reasoning:              result.Reasoning,
	}, nil
}

func validateInput(input *Input) error {
	var problems []string
	if strings.TrimSpace(input.BusinessName) == "" {
		problems = append(problems, "businessName is required")
	}
	if !models.Sector(input.Sector).Valid() {
		problems = append(problems, fmt.Sprintf("unknown sector %q", input.Sector))
	}
	if input.PreferredStyle != "" && !models.DesignStyle(input.PreferredStyle).Valid() {
		problems = append(problems, fmt.Sprintf("unknown preferredStyle %q", input.PreferredStyle))
	}
	switch models.BudgetTier(input.Budget) {
	case models.BudgetBasic, models.BudgetStandard, models.BudgetPremium, models.BudgetEnterprise:
	default:
		problems = append(problems, fmt.Sprintf("unknown budget %q", input.Budget))
	}
	if len(problems) > 0 {
		return apperrors.NewValidationError(strings.Join(problems, "; "))
	}
	return nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(apperrors.Normalize(err).Code)).Inc()
	h.errorHandler.HandleJobError(ctx, client, job, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

// internal/workers/design/design-mission/handler.go
package designmission

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "design-missions/internal/common/errors"
	"design-missions/internal/common/logger"
	"design-missions/internal/common/metrics"
	"design-missions/internal/mission"
	"design-missions/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "design-mission"
)

// Submitter is satisfied by mission.Orchestrator.
type Submitter interface {
	Submit(ctx context.Context, m *models.BusinessMission) (mission.Submission, error)
}

type Handler struct {
	config       *Config
	submitter    Submitter
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, submitter Submitter, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		submitter:    submitter,
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

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.fail(ctx, client, job, apperrors.NewValidationError(fmt.Sprintf("parse input: %v", err)))
		return
	}
	input.ensureMissionID(job.Key)

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

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
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	sub, err := h.submitter.Submit(ctx, input.Mission())
	if err != nil {
		return nil, err
	}

	switch s := sub.(type) {
	case mission.Ready:
		locators := make([]string, len(s.Result.Deliverables))
		for i, d := range s.Result.Deliverables {
			locators[i] = d.Locator
		}
		return &Output{
			MissionID:      s.Result.MissionID,
			MissionStatus:  StatusCompleted,
			TemplateID:     s.Result.Selection.Primary.ID,
			QualityScore:   s.Result.QualityScore,
			CompletionTime: s.Result.CompletionTime,
			Deliverables:   locators,
		}, nil
	case mission.Accepted:
		h.logger.Info("mission queued", map[string]interface{}{
			"missionId": s.MissionID,
		})
		return &Output{MissionID: s.MissionID, MissionStatus: StatusAccepted}, nil
	default:
		return nil, apperrors.NewProcessingError("submit", fmt.Errorf("unexpected submission %T", sub))
	}
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(apperrors.Normalize(err).Code)).Inc()
	h.errorHandler.HandleJobError(ctx, client, job, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

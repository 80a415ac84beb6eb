// internal/mission/orchestrator.go
package mission

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"design-missions/internal/common/config"
	apperrors "design-missions/internal/common/errors"
	"design-missions/internal/common/logger"
	"design-missions/internal/common/metrics"
	"design-missions/internal/common/observability"
	"design-missions/internal/common/validation"
	"design-missions/internal/models"
	"design-missions/internal/optimization"
	"design-missions/internal/selection"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const (
	modeImmediate = "immediate"
	modeBatch     = "batch"
)

// Selector ranks the catalog for a set of requirements.
type Selector interface {
	Choose(ctx context.Context, req models.BusinessRequirements) (*selection.Choice, error)
}

type Customizer interface {
	Generate(business models.BusinessInfo, style models.DesignStyle, audience string) models.CustomizationResult
}

type Advisor interface {
	Optimize(tpl models.Template, business models.BusinessInfo, audience string) ([]optimization.Optimization, int)
}

// Deps are the collaborators of an orchestrator. A nil Observability records nothing.
type Deps struct {
	Selector      Selector
	Customizer    Customizer
	Advisor       Advisor
	Observability *observability.Observability
}

type Config struct {
	BatchDelay       time.Duration
	MissionTimeout   time.Duration
	SubscriberBuffer int
}

func ConfigFrom(c config.OrchestratorConfig) Config {
	return Config{
		BatchDelay:       c.BatchDelayDuration(),
		MissionTimeout:   c.MissionTimeoutDuration(),
		SubscriberBuffer: c.SubscriberBuffer,
	}
}

func (c Config) withDefaults() Config {
	if c.BatchDelay <= 0 {
		c.BatchDelay = 2 * time.Second
	}
	if c.MissionTimeout <= 0 {
		c.MissionTimeout = 30 * time.Second
	}
	if c.SubscriberBuffer <= 0 {
		c.SubscriberBuffer = 64
	}
	return c
}

// Submission is what Submit hands back: Ready for missions executed in the
// caller's call, Accepted for missions left to the batch pass.
type Submission interface {
	isSubmission()
}

type Ready struct {
	Result *models.DesignMissionResult
}

type Accepted struct {
	MissionID string
}

func (Ready) isSubmission()    {}
func (Accepted) isSubmission() {}

type Status struct {
	IsProcessing       bool `json:"isProcessing"`
	IsPaused           bool `json:"isPaused"`
	MissionsInQueue    int  `json:"missionsInQueue"`
	MissionsInProgress int  `json:"missionsInProgress"`
	MissionsCompleted  int  `json:"missionsCompleted"`
	TotalMissions      int  `json:"totalMissions"`
}

type Orchestrator struct {
	deps   Deps
	cfg    Config
	queue  *queue
	bus    *Bus
	logger logger.Logger

	baseCtx    context.Context
	cancelBase context.CancelFunc
}

func New(deps Deps, cfg Config, log logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if deps.Observability == nil {
		deps.Observability = observability.NewNoop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Orchestrator{
		deps:       deps,
		cfg:        cfg.withDefaults(),
		queue:      newQueue(),
		bus:        NewBus(log),
		logger:     log,
		baseCtx:    ctx,
		cancelBase: cancel,
	}
}

// Subscribe attaches a named listener with the configured buffer size.
func (o *Orchestrator) Subscribe(name string) *Subscription {
	return o.bus.Subscribe(name, o.cfg.SubscriberBuffer)
}

func (o *Orchestrator) Unsubscribe(sub *Subscription) {
	o.bus.Unsubscribe(sub)
}

// AddSink forwards every subsequent event to sink.
func (o *Orchestrator) AddSink(sink Sink) {
	o.bus.Attach(sink, o.cfg.SubscriberBuffer)
}

// Submit validates and registers a mission. Express or urgent missions run
// before Submit returns; all others are queued for the next batch pass.
func (o *Orchestrator) Submit(ctx context.Context, in *models.BusinessMission) (Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := o.prepare(in)
	if err != nil {
		return nil, err
	}

	immediate := m.Immediate()
	mode := modeBatch
	if immediate {
		mode = modeImmediate
	}

	stored, known, err := o.queue.insert(m, !immediate)
	if err != nil {
		return nil, err
	}
	if known {
		return o.resubmit(ctx, stored)
	}
	metrics.MissionsSubmitted.WithLabelValues(mode).Inc()

	o.publish(EventReceived, m.ID, map[string]interface{}{
		"priority": m.Priority,
		"sector":   m.Requirements.Sector,
		"mode":     mode,
	})

	if immediate {
		result, err := o.execute(ctx, m.ID, mode)
		if err != nil {
			return nil, err
		}
		return Ready{Result: result}, nil
	}

	o.scheduleBatch()
	return Accepted{MissionID: m.ID}, nil
}

// resubmit answers a repeated submission of a known mission without registering
// it again, so a retried job reaches the same mission.
func (o *Orchestrator) resubmit(ctx context.Context, m models.BusinessMission) (Submission, error) {
	o.logger.Info("mission resubmitted", map[string]interface{}{
		"missionId": m.ID,
		"status":    m.Status,
		"attempts":  m.Attempts,
	})

	switch m.Status {
	case models.StatusCompleted, models.StatusDelivered:
		result, err := o.Result(m.ID)
		if err != nil {
			return nil, err
		}
		return Ready{Result: result}, nil
	case models.StatusInProgress:
		return nil, apperrors.NewMissionInProgressError(m.ID)
	}

	if !m.Immediate() {
		o.scheduleBatch()
		return Accepted{MissionID: m.ID}, nil
	}
	result, err := o.execute(ctx, m.ID, modeImmediate)
	if err != nil {
		return nil, err
	}
	return Ready{Result: result}, nil
}

func (o *Orchestrator) prepare(in *models.BusinessMission) (*models.BusinessMission, error) {
	if in == nil {
		return nil, apperrors.NewValidationError("mission is required")
	}

	m := *in
	m.Requirements.Goals = append([]string(nil), in.Requirements.Goals...)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if m.Priority == "" {
		m.Priority = models.PriorityMedium
	}
	m.Status = models.StatusPending
	m.Attempts = 0
	m.LastError = ""
	if m.BusinessInfo.Sector == "" {
		m.BusinessInfo.Sector = m.Requirements.Sector
	}

	result, err := validation.ValidateMission(&m)
	if err != nil {
		return nil, apperrors.NewProcessingError("validation", err)
	}
	if !result.Valid {
		return nil, apperrors.NewValidationError(result.Error())
	}
	return &m, nil
}

type stageOutput struct {
	result *models.DesignMissionResult
	err    error
}

// execute runs one mission through every stage under the mission timeout.
func (o *Orchestrator) execute(ctx context.Context, id, mode string) (*models.DesignMissionResult, error) {
	m, err := o.queue.claim(id)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	o.publish(EventStarted, id, map[string]interface{}{
		"mode":    mode,
		"attempt": m.Attempts,
	})

	ctx, cancel := context.WithTimeout(ctx, o.cfg.MissionTimeout)
	defer cancel()

	ctx, endSpan := o.deps.Observability.StartSpan(ctx, "mission.execute",
		attribute.String("mission.id", id),
		attribute.String("mission.mode", mode),
	)

	done := make(chan stageOutput, 1)
	go func() {
		r, err := o.run(ctx, m, start)
		done <- stageOutput{result: r, err: err}
	}()

	var out stageOutput
	select {
	case out = <-done:
	case <-ctx.Done():
		out = stageOutput{err: ctx.Err()}
	}
	if out.err != nil && errors.Is(out.err, context.DeadlineExceeded) {
		out.err = apperrors.NewMissionTimeoutError(id, out.err).
			WithMetadata("timeout", o.cfg.MissionTimeout.String())
	}
	endSpan(out.err)

	elapsed := time.Since(start)
	if out.err != nil {
		o.onFailure(ctx, m, mode, out.err, elapsed)
		return nil, out.err
	}

	o.queue.complete(id, out.result)
	metrics.MissionsCompleted.WithLabelValues(mode).Inc()
	metrics.MissionDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	o.deps.Observability.RecordMissionProcessed(ctx, mode, "completed")
	o.deps.Observability.RecordMissionDuration(ctx, elapsed, "completed")

	o.publish(EventCompleted, id, map[string]interface{}{
		"templateId":   out.result.Selection.Primary.ID,
		"qualityScore": out.result.QualityScore,
		"duration":     out.result.CompletionTime,
	})
	return out.result, nil
}

func (o *Orchestrator) onFailure(ctx context.Context, m models.BusinessMission, mode string, err error, elapsed time.Duration) {
	stdErr := apperrors.Normalize(err)
	o.queue.fail(m.ID, err)

	metrics.MissionsFailed.WithLabelValues(mode, string(stdErr.Code)).Inc()
	o.deps.Observability.RecordMissionProcessed(context.WithoutCancel(ctx), mode, "failed")
	o.deps.Observability.RecordMissionDuration(context.WithoutCancel(ctx), elapsed, "failed")

	o.logger.Error("mission execution failed", map[string]interface{}{
		"missionId": m.ID,
		"mode":      mode,
		"attempt":   m.Attempts,
		"errorCode": stdErr.Code,
		"error":     err.Error(),
	})

	o.publish(EventError, m.ID, map[string]interface{}{
		"message":   err.Error(),
		"code":      stdErr.Code,
		"retryable": stdErr.Retryable,
		"attempt":   m.Attempts,
	})
}

// run executes the selection, customization and optimization stages and
// assembles the result. A panic in any stage becomes a processing error.
func (o *Orchestrator) run(ctx context.Context, m models.BusinessMission, start time.Time) (result *models.DesignMissionResult, err error) {
	stage := "selection"
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.NewProcessingError(stage, fmt.Errorf("panic: %v", r))
		}
	}()

	sctx, end := o.deps.Observability.StartSpan(ctx, "mission.selection")
	choice, err := o.deps.Selector.Choose(sctx, m.Requirements)
	end(err)
	if err != nil {
		return nil, stageError(stage, err)
	}

	stage = "customization"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	style := selection.StyleFor(m.Requirements, choice)
	_, end = o.deps.Observability.StartSpan(ctx, "mission.customization")
	custom := o.deps.Customizer.Generate(m.BusinessInfo, style, m.Requirements.TargetAudience)
	end(nil)

	stage = "optimization"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, end = o.deps.Observability.StartSpan(ctx, "mission.optimization")
	opts, advisorQuality := o.deps.Advisor.Optimize(choice.Primary, m.BusinessInfo, m.Requirements.TargetAudience)
	end(nil)

	stage = "assembly"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	optimizations := optimization.Strings(opts)
	sel := selection.Compose(choice, m.Requirements, custom, optimizations)

	return &models.DesignMissionResult{
		MissionID:      m.ID,
		BusinessInfo:   m.BusinessInfo,
		Selection:      *sel,
		Customization:  custom,
		Assets:         assetsFor(m.ID),
		Deliverables:   deliverablesFor(m.ID),
		QualityScore:   qualityScore(choice, custom, advisorQuality, style),
		CompletionTime: time.Since(start).Round(time.Millisecond).String(),
		Optimizations:  optimizations,
	}, nil
}

// stageError keeps typed errors as they are and wraps anything else.
func stageError(stage string, err error) error {
	var stdErr *apperrors.StandardError
	if errors.As(err, &stdErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	return apperrors.NewProcessingError(stage, err)
}

var assetKinds = []string{"logo", "palette", "hero-photo", "gallery"}

var deliverableKinds = []string{"website-mockup", "style-guide", "brand-kit"}

func assetsFor(id string) []models.AssetRef {
	out := make([]models.AssetRef, len(assetKinds))
	for i, kind := range assetKinds {
		out[i] = models.AssetRef{ID: fmt.Sprintf("asset:%s:%s", id, kind), Kind: kind}
	}
	return out
}

func deliverablesFor(id string) []models.Deliverable {
	out := make([]models.Deliverable, len(deliverableKinds))
	for i, kind := range deliverableKinds {
		out[i] = models.Deliverable{Kind: kind, Locator: fmt.Sprintf("missions/%s/%s", id, kind)}
	}
	return out
}

// qualityScore weights match 40%, advisor quality 30%, customization 15% and
// the primary template's own performance score 15%.
func qualityScore(choice *selection.Choice, custom models.CustomizationResult, advisorQuality int, style models.DesignStyle) int {
	customQuality := 80.0
	switch {
	case custom.Personalized:
		customQuality = 100
	case choice.Primary.Style == style:
		customQuality = 90
	}

	score := 0.40*float64(choice.MatchScore) +
		0.30*float64(advisorQuality) +
		0.15*customQuality +
		0.15*float64(choice.Primary.Performance.Score)

	q := int(math.Round(score))
	if q < 0 {
		return 0
	}
	if q > 100 {
		return 100
	}
	return q
}

// ==========================
// Batch pass
// ==========================

func (o *Orchestrator) scheduleBatch() {
	if o.queue.schedule(o.cfg.BatchDelay, o.runBatch) {
		o.logger.Debug("batch pass scheduled", map[string]interface{}{
			"delay": o.cfg.BatchDelay.String(),
		})
	}
}

// runBatch executes pending missions one at a time, including missions queued
// while the pass runs. Each mission is attempted at most once per pass.
func (o *Orchestrator) runBatch() {
	if !o.queue.beginPass() {
		return
	}
	defer o.queue.passes.Done()

	attempted := make(map[string]bool)
	var completed, failed int
	for {
		id, ok := o.queue.next(attempted)
		if !ok {
			break
		}
		attempted[id] = true

		if _, err := o.execute(o.baseCtx, id, modeBatch); err != nil {
			if apperrors.Is(err, apperrors.ErrCodeMissionNotFound) {
				continue
			}
			failed++
			continue
		}
		completed++
	}

	o.logger.Info("batch pass finished", map[string]interface{}{
		"completed": completed,
		"failed":    failed,
	})
}

// ==========================
// Auxiliary operations
// ==========================

func (o *Orchestrator) Prioritize(id string) error {
	if err := o.queue.prioritize(id); err != nil {
		return err
	}
	o.publish(EventPrioritized, id, map[string]interface{}{"priority": models.PriorityUrgent})
	return nil
}

// Cancel forgets a mission that is not executing. No event for id follows the cancellation.
func (o *Orchestrator) Cancel(id string) error {
	if err := o.queue.cancel(id); err != nil {
		return err
	}
	o.publish(EventCancelled, id, nil)
	return nil
}

func (o *Orchestrator) MarkDelivered(id string) error {
	if err := o.queue.markDelivered(id); err != nil {
		return err
	}
	o.publish(EventDelivered, id, nil)
	return nil
}

// Pause stops batch passes between missions. Immediate missions still run.
func (o *Orchestrator) Pause() {
	o.queue.setPaused(true)
	o.publish(EventPaused, "", nil)
}

func (o *Orchestrator) Resume() {
	o.queue.setPaused(false)
	o.publish(EventResumed, "", nil)
	o.scheduleBatch()
}

func (o *Orchestrator) Status() Status {
	return o.queue.status()
}

// ReportStatus returns the status and publishes it as a statusReport event.
func (o *Orchestrator) ReportStatus() Status {
	s := o.queue.status()
	o.publish(EventStatusReport, "", map[string]interface{}{
		"isProcessing":       s.IsProcessing,
		"isPaused":           s.IsPaused,
		"missionsInQueue":    s.MissionsInQueue,
		"missionsInProgress": s.MissionsInProgress,
		"missionsCompleted":  s.MissionsCompleted,
		"totalMissions":      s.TotalMissions,
	})
	return s
}

func (o *Orchestrator) Mission(id string) (models.BusinessMission, error) {
	m, ok := o.queue.mission(id)
	if !ok {
		return models.BusinessMission{}, apperrors.NewMissionNotFoundError(id)
	}
	return m, nil
}

func (o *Orchestrator) Result(id string) (*models.DesignMissionResult, error) {
	r, ok := o.queue.result(id)
	if !ok {
		return nil, apperrors.NewMissionNotFoundError(id)
	}
	return r, nil
}

func (o *Orchestrator) List() []models.BusinessMission {
	return o.queue.list()
}

// Pending returns the ids the next batch pass will execute, in order.
func (o *Orchestrator) Pending() []string {
	return o.queue.pendingIDs()
}

// Close stops scheduling, waits for a running pass and closes the event bus.
// When ctx expires first, the running mission is cancelled.
func (o *Orchestrator) Close(ctx context.Context) error {
	if !o.queue.close() {
		return nil
	}

	done := make(chan struct{})
	go func() {
		o.queue.passes.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		err = ctx.Err()
		o.cancelBase()
		<-done
	}
	o.cancelBase()
	o.bus.Close()
	return err
}

func (o *Orchestrator) publish(t EventType, id string, data map[string]interface{}) {
	o.bus.Publish(Event{Type: t, MissionID: id, Data: data, Timestamp: time.Now().UTC()})
}

// internal/mission/queue.go
package mission

import (
	"reflect"
	"sort"
	"sync"
	"time"

	apperrors "design-missions/internal/common/errors"
	"design-missions/internal/common/metrics"
	"design-missions/internal/models"
)

// queue owns every piece of mutable orchestrator state. All reads and writes go
// through its mutex; nothing else in the package touches these fields.
type queue struct {
	mu sync.Mutex

	missions map[string]*models.BusinessMission
	results  map[string]*models.DesignMissionResult
	order    []string // pending ids in processing order

	processing bool
	scheduled  bool
	paused     bool
	closed     bool
	timer      *time.Timer
	passes     sync.WaitGroup
}

func newQueue() *queue {
	return &queue{
		missions: make(map[string]*models.BusinessMission),
		results:  make(map[string]*models.DesignMissionResult),
	}
}

// insert stores a new mission. Batched missions also join the pending order.
// When the id is already known with the same request, the stored mission is
// returned with known set and nothing changes.
func (q *queue) insert(m *models.BusinessMission, batched bool) (models.BusinessMission, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return models.BusinessMission{}, false, apperrors.NewOrchestratorClosedError()
	}
	if prev, exists := q.missions[m.ID]; exists {
		if !sameRequest(prev, m) {
			return models.BusinessMission{}, false, apperrors.NewValidationError("mission id already submitted with a different request: " + m.ID)
		}
		return *prev, true, nil
	}
	q.missions[m.ID] = m
	if batched {
		q.order = append(q.order, m.ID)
		q.sortPendingLocked()
	}
	q.updateDepthLocked()
	return *m, false, nil
}

// sameRequest compares what the submitter controls. Priority is left out since
// Prioritize may have raised it.
func sameRequest(a, b *models.BusinessMission) bool {
	return a.ClientID == b.ClientID &&
		a.Notes == b.Notes &&
		a.BusinessInfo == b.BusinessInfo &&
		reflect.DeepEqual(a.Requirements, b.Requirements)
}

// claim moves a pending mission to in_progress and returns a copy of it.
func (q *queue) claim(id string) (models.BusinessMission, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, ok := q.missions[id]
	if !ok {
		return models.BusinessMission{}, apperrors.NewMissionNotFoundError(id)
	}
	if m.Status != models.StatusPending {
		return models.BusinessMission{}, apperrors.NewInvalidTransitionError(id, string(m.Status), string(models.StatusInProgress))
	}
	m.Status = models.StatusInProgress
	m.Attempts++
	q.removePendingLocked(id)
	q.updateDepthLocked()
	return *m, nil
}

func (q *queue) complete(id string, result *models.DesignMissionResult) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if m, ok := q.missions[id]; ok {
		m.Status = models.StatusCompleted
		m.LastError = ""
		q.results[id] = result.Clone()
	}
}

// fail reverts an executing mission to pending at the back of the order.
func (q *queue) fail(id string, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, ok := q.missions[id]
	if !ok {
		return
	}
	m.Status = models.StatusPending
	m.LastError = err.Error()
	q.order = append(q.order, id)
	q.updateDepthLocked()
}

func (q *queue) prioritize(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, ok := q.missions[id]
	if !ok {
		return apperrors.NewMissionNotFoundError(id)
	}
	m.Priority = models.PriorityUrgent
	q.sortPendingLocked()
	return nil
}

func (q *queue) cancel(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, ok := q.missions[id]
	if !ok {
		return apperrors.NewMissionNotFoundError(id)
	}
	if m.Status == models.StatusInProgress {
		return apperrors.NewMissionInProgressError(id)
	}
	delete(q.missions, id)
	delete(q.results, id)
	q.removePendingLocked(id)
	q.updateDepthLocked()
	return nil
}

func (q *queue) markDelivered(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, ok := q.missions[id]
	if !ok {
		return apperrors.NewMissionNotFoundError(id)
	}
	if m.Status != models.StatusCompleted {
		return apperrors.NewInvalidTransitionError(id, string(m.Status), string(models.StatusDelivered))
	}
	m.Status = models.StatusDelivered
	return nil
}

func (q *queue) mission(id string) (models.BusinessMission, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, ok := q.missions[id]
	if !ok {
		return models.BusinessMission{}, false
	}
	return *m, true
}

func (q *queue) result(id string) (*models.DesignMissionResult, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	r, ok := q.results[id]
	return r.Clone(), ok
}

// list returns every mission ordered by creation time, then id.
func (q *queue) list() []models.BusinessMission {
	q.mu.Lock()
	out := make([]models.BusinessMission, 0, len(q.missions))
	for _, m := range q.missions {
		out = append(out, *m)
	}
	q.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (q *queue) pendingIDs() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string(nil), q.order...)
}

func (q *queue) status() Status {
	q.mu.Lock()
	defer q.mu.Unlock()

	s := Status{
		IsProcessing:  q.processing,
		IsPaused:      q.paused,
		TotalMissions: len(q.missions),
	}
	for _, m := range q.missions {
		switch m.Status {
		case models.StatusPending:
			s.MissionsInQueue++
		case models.StatusInProgress:
			s.MissionsInProgress++
		case models.StatusCompleted, models.StatusDelivered:
			s.MissionsCompleted++
		}
	}
	return s
}

// schedule arms the batch timer unless a pass is already armed or running,
// the queue is paused or closed, or nothing is pending.
func (q *queue) schedule(delay time.Duration, fn func()) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed || q.paused || q.scheduled || q.processing || len(q.order) == 0 {
		return false
	}
	q.scheduled = true
	q.timer = time.AfterFunc(delay, fn)
	return true
}

// beginPass marks a pass as running. It fails when another pass is running
// or the queue was paused or closed after the timer was armed.
func (q *queue) beginPass() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.scheduled = false
	q.timer = nil
	if q.closed || q.paused || q.processing {
		return false
	}
	q.processing = true
	q.passes.Add(1)
	return true
}

// next returns the first pending mission not yet attempted in this pass. When
// there is none, or the queue was paused, the pass ends in the same critical
// section so a concurrent insert either is seen here or schedules a new pass.
func (q *queue) next(attempted map[string]bool) (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed && !q.paused {
		for _, id := range q.order {
			if !attempted[id] {
				return id, true
			}
		}
	}
	q.processing = false
	return "", false
}

func (q *queue) setPaused(paused bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.paused = paused
	if paused {
		q.stopTimerLocked()
	}
}

// close stops the batch timer and refuses further inserts.
func (q *queue) close() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.closed = true
	q.stopTimerLocked()
	return true
}

func (q *queue) stopTimerLocked() {
	if q.timer != nil && q.timer.Stop() {
		q.scheduled = false
		q.timer = nil
	}
}

// sortPendingLocked orders pending ids by priority, keeping relative order on ties.
func (q *queue) sortPendingLocked() {
	sort.SliceStable(q.order, func(i, j int) bool {
		return q.missions[q.order[i]].Priority.Rank() > q.missions[q.order[j]].Priority.Rank()
	})
}

func (q *queue) removePendingLocked(id string) {
	for i, pid := range q.order {
		if pid == id {
			q.order = append(q.order[:i], q.order[i+1:]...)
			return
		}
	}
}

func (q *queue) updateDepthLocked() {
	metrics.MissionQueueDepth.Set(float64(len(q.order)))
}

// internal/models/mission.go
package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank orders priorities; unknown values rank with low.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

type MissionStatus string

const (
	StatusPending    MissionStatus = "pending"
	StatusInProgress MissionStatus = "in_progress"
	StatusCompleted  MissionStatus = "completed"
	StatusDelivered  MissionStatus = "delivered"
)

type BusinessMission struct {
	ID           string               `json:"id"`
	CreatedAt    time.Time            `json:"createdAt"`
	BusinessInfo BusinessInfo         `json:"businessInfo"`
	Requirements BusinessRequirements `json:"requirements"`
	Priority     Priority             `json:"priority"`
	Deadline     *time.Time           `json:"deadline,omitempty"`
	Status       MissionStatus        `json:"status"`
	ClientID     string               `json:"clientId,omitempty"`
	Notes        string               `json:"notes,omitempty"`
	Attempts     int                  `json:"attempts"`
	LastError    string               `json:"lastError,omitempty"`
}

// Immediate reports whether the mission skips the batch queue.
func (m *BusinessMission) Immediate() bool {
	return m.Requirements.Timeframe == TimeframeExpress || m.Priority == PriorityUrgent
}

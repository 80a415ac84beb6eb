// internal/workers/design/design-mission/models.go
package designmission

import (
	"strconv"

	"design-missions/internal/models"

	"github.com/google/uuid"
)

// Input carries the mission as process variables.
type Input struct {
	MissionID    string                      `json:"missionId,omitempty"`
	ClientID     string                      `json:"clientId,omitempty"`
	BusinessInfo models.BusinessInfo         `json:"businessInfo"`
	Requirements models.BusinessRequirements `json:"requirements"`
	Priority     string                      `json:"priority,omitempty"`
	Notes        string                      `json:"notes,omitempty"`
}

const (
	StatusCompleted = "completed"
	StatusAccepted  = "accepted"
)

// Output is written back to the process. Result fields are empty for accepted missions.
type Output struct {
	MissionID      string   `json:"missionId"`
	MissionStatus  string   `json:"missionStatus"`
	TemplateID     string   `json:"templateId,omitempty"`
	QualityScore   int      `json:"qualityScore,omitempty"`
	CompletionTime string   `json:"completionTime,omitempty"`
	Deliverables   []string `json:"deliverables,omitempty"`
}

func (i *Input) Mission() *models.BusinessMission {
	return &models.BusinessMission{
		ID:           i.MissionID,
		ClientID:     i.ClientID,
		BusinessInfo: i.BusinessInfo,
		Requirements: i.Requirements,
		Priority:     models.Priority(i.Priority),
		Notes:        i.Notes,
	}
}

// ensureMissionID derives the mission id from the job key when the process did
// not supply one. Zeebe keeps the key across retries, so a retried job resubmits
// the same mission.
func (i *Input) ensureMissionID(jobKey int64) {
	if i.MissionID == "" {
		i.MissionID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(TaskType+"/"+strconv.FormatInt(jobKey, 10))).String()
	}
}

// internal/mission/control.go
package mission

import (
	"context"
	"strings"

	apperrors "design-missions/internal/common/errors"
)

const (
	CommandPause      = "pause"
	CommandResume     = "resume"
	CommandPrioritize = "prioritize"
	CommandCancel     = "cancel"
	CommandGetStatus  = "getStatus"
)

// Command is one control message. Reply, when set, receives the outcome.
type Command struct {
	Name  string                 `json:"command"`
	Data  map[string]interface{} `json:"data,omitempty"`
	Reply chan<- Reply           `json:"-"`
}

type Reply struct {
	Value interface{}
	Err   error
}

// Handle applies a control command. Unknown commands are ignored and return (nil, nil).
func (o *Orchestrator) Handle(cmd Command) (interface{}, error) {
	switch strings.TrimSpace(cmd.Name) {
	case CommandPause:
		o.Pause()
		return o.Status(), nil
	case CommandResume:
		o.Resume()
		return o.Status(), nil
	case CommandGetStatus:
		return o.ReportStatus(), nil
	case CommandPrioritize:
		id, err := missionIDFrom(cmd)
		if err != nil {
			return nil, err
		}
		return nil, o.Prioritize(id)
	case CommandCancel:
		id, err := missionIDFrom(cmd)
		if err != nil {
			return nil, err
		}
		return nil, o.Cancel(id)
	default:
		o.logger.Debug("ignoring unknown control command", map[string]interface{}{
			"command": cmd.Name,
		})
		return nil, nil
	}
}

func missionIDFrom(cmd Command) (string, error) {
	id, _ := cmd.Data["missionId"].(string)
	if strings.TrimSpace(id) == "" {
		return "", apperrors.NewInvalidCommandError(cmd.Name, "data.missionId must be a non-empty string")
	}
	return id, nil
}

// ServeControl handles commands until ctx is done or cmds is closed.
func (o *Orchestrator) ServeControl(ctx context.Context, cmds <-chan Command) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-cmds:
			if !ok {
				return nil
			}

			value, err := o.Handle(cmd)
			if err != nil {
				o.logger.Warn("control command failed", map[string]interface{}{
					"command":   cmd.Name,
					"errorCode": apperrors.CodeOf(err),
					"error":     err.Error(),
				})
			}

			if cmd.Reply != nil {
				select {
				case cmd.Reply <- Reply{Value: value, Err: err}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	}
}

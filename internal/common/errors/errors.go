// Package errors provides standardized error handling for the design mission service.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeProcessingFailed ErrorCode = "PROCESSING_FAILED"

	ErrCodeMissionNotFound    ErrorCode = "MISSION_NOT_FOUND"
	ErrCodeMissionInProgress  ErrorCode = "MISSION_IN_PROGRESS"
	ErrCodeMissionTimeout     ErrorCode = "MISSION_TIMEOUT"
	ErrCodeInvalidTransition  ErrorCode = "INVALID_TRANSITION"
	ErrCodeOrchestratorClosed ErrorCode = "ORCHESTRATOR_CLOSED"

	ErrCodeCatalogLoadFailed    ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeEventBroadcastFailed ErrorCode = "EVENT_BROADCAST_FAILED"
	ErrCodeInvalidCommand       ErrorCode = "INVALID_COMMAND"
	ErrCodeInternal             ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata returns the error with an extra metadata entry.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewValidationError rejects a submission before it is enqueued.
func NewValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Mission validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateNotFoundError is returned when the catalog has nothing for a sector.
func NewTemplateNotFoundError(sector string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "No catalog template for sector",
		Details:   fmt.Sprintf("sector: %s", sector),
		Retryable: false,
		Metadata:  map[string]interface{}{"sector": sector},
		Timestamp: time.Now().UTC(),
	}
}

// NewProcessingError wraps a failure in one of the generator stages.
func NewProcessingError(stage string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProcessingFailed,
		Message:   fmt.Sprintf("Mission stage '%s' failed", stage),
		Details:   err.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"stage": stage},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewMissionNotFoundError(missionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissionNotFound,
		Message:   "Mission not found",
		Details:   fmt.Sprintf("missionId: %s", missionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewMissionInProgressError(missionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissionInProgress,
		Message:   "Mission is executing and cannot be changed",
		Details:   fmt.Sprintf("missionId: %s", missionID),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewMissionTimeoutError(missionID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissionTimeout,
		Message:   "Mission execution exceeded its time budget",
		Details:   fmt.Sprintf("missionId: %s, error: %v", missionID, err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewInvalidTransitionError(missionID string, from, to string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidTransition,
		Message:   "Mission status transition not allowed",
		Details:   fmt.Sprintf("missionId: %s, from: %s, to: %s", missionID, from, to),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewOrchestratorClosedError rejects submissions after shutdown began. Another
// instance may still take the mission, so it is retryable.
func NewOrchestratorClosedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeOrchestratorClosed,
		Message:   "Mission orchestrator is closed",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewCatalogLoadError(source string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   fmt.Sprintf("Catalog source '%s' could not be loaded", source),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewEventBroadcastError(sink string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEventBroadcastFailed,
		Message:   fmt.Sprintf("Event sink '%s' rejected the event", sink),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewInvalidCommandError(command, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidCommand,
		Message:   fmt.Sprintf("Control command '%s' has invalid data", command),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// GetRetryCount returns the recommended job retry count for an error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeProcessingFailed,
		ErrCodeCatalogLoadFailed,
		ErrCodeEventBroadcastFailed:
		return 3

	case ErrCodeMissionTimeout,
		ErrCodeMissionInProgress,
		ErrCodeOrchestratorClosed:
		return 2

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      string(stdErr.Code),
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// CodeOf extracts the code of a StandardError anywhere in the chain.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	case strings.Contains(codeStr, "TEMPLATE") || strings.Contains(codeStr, "CATALOG"):
		return "CATALOG"
	case strings.Contains(codeStr, "MISSION") || strings.Contains(codeStr, "PROCESSING"):
		return "MISSION"
	case strings.Contains(codeStr, "EVENT"):
		return "NOTIFICATION"
	default:
		return "OTHER"
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeOf_WrappedStandardError(t *testing.T) {
	base := NewTemplateNotFoundError("restaurant")
	wrapped := fmt.Errorf("select: %w", base)

	assert.Equal(t, ErrCodeTemplateNotFound, CodeOf(wrapped))
	assert.True(t, Is(wrapped, ErrCodeTemplateNotFound))
	assert.False(t, Is(wrapped, ErrCodeValidationFailed))
	assert.False(t, Is(nil, ErrCodeTemplateNotFound))
}

func TestNewProcessingError_UnwrapsCause(t *testing.T) {
	cause := stderrors.New("palette table missing")
	err := NewProcessingError("customization", cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "customization", err.Metadata["stage"])
	assert.True(t, err.Retryable)
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, Normalize(nil))

	plain := Normalize(stderrors.New("boom"))
	require.NotNil(t, plain)
	assert.Equal(t, ErrCodeInternal, plain.Code)

	std := NewValidationError("name is required")
	assert.Same(t, std, Normalize(fmt.Errorf("wrap: %w", std)))
}

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name            string
		err             *StandardError
		expectedRetries int
	}{
		{"processing is retried", NewProcessingError("selection", stderrors.New("x")), 3},
		{"timeout is retried less", NewMissionTimeoutError("m-1", stderrors.New("deadline")), 2},
		{"validation is not retried", NewValidationError("bad"), 0},
		{"not found is not retried", NewTemplateNotFoundError("beauty"), 0},
		{"closed orchestrator is retried", NewOrchestratorClosedError(), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmn := ConvertToBPMNError(tt.err)
			assert.Equal(t, string(tt.err.Code), bpmn.Code)
			assert.Equal(t, tt.expectedRetries, bpmn.Retries)

			vars := bpmn.ToErrorVariables()
			assert.Equal(t, string(tt.err.Code), vars["originalErrorCode"])
			assert.Equal(t, tt.err.Message, vars["errorMessage"])
		})
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeValidationFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInvalidCommand))
	assert.Equal(t, "CATALOG", GetErrorCategory(ErrCodeTemplateNotFound))
	assert.Equal(t, "MISSION", GetErrorCategory(ErrCodeProcessingFailed))
	assert.Equal(t, "NOTIFICATION", GetErrorCategory(ErrCodeEventBroadcastFailed))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestWithMetadata(t *testing.T) {
	err := NewMissionTimeoutError("m-1", stderrors.New("deadline")).WithMetadata("timeout", "30s")
	assert.Equal(t, "30s", err.Metadata["timeout"])

	err = NewTemplateNotFoundError("beauty").WithMetadata("missionId", "m-2")
	assert.Equal(t, "beauty", err.Metadata["sector"])
	assert.Equal(t, "m-2", err.Metadata["missionId"])
}

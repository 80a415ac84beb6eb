// internal/server/server_test.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "design-missions/internal/common/errors"
	"design-missions/internal/common/logger"
	"design-missions/internal/mission"
	"design-missions/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrchestrator struct {
	missions map[string]models.BusinessMission
	results  map[string]*models.DesignMissionResult
}

func (f *fakeOrchestrator) Status() mission.Status {
	return mission.Status{MissionsInQueue: 2, TotalMissions: 3, MissionsCompleted: 1}
}

func (f *fakeOrchestrator) List() []models.BusinessMission {
	return []models.BusinessMission{f.missions["m1"]}
}

func (f *fakeOrchestrator) Mission(id string) (models.BusinessMission, error) {
	m, ok := f.missions[id]
	if !ok {
		return models.BusinessMission{}, apperrors.NewMissionNotFoundError(id)
	}
	return m, nil
}

func (f *fakeOrchestrator) Result(id string) (*models.DesignMissionResult, error) {
	r, ok := f.results[id]
	if !ok {
		return nil, apperrors.NewMissionNotFoundError(id)
	}
	return r, nil
}

func newTestServer(t *testing.T, checks ...Check) *httptest.Server {
	o := &fakeOrchestrator{
		missions: map[string]models.BusinessMission{
			"m1": {ID: "m1", Status: models.StatusCompleted, Priority: models.PriorityHigh},
		},
		results: map[string]*models.DesignMissionResult{
			"m1": {MissionID: "m1", QualityScore: 82},
		},
	}
	ts := httptest.NewServer(New(o, checks, logger.NewTestLogger(t)).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// ==========================
// Ops Endpoint Tests
// ==========================

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	var body map[string]string
	assert.Equal(t, http.StatusOK, get(t, ts.URL+"/health", &body))
	assert.Equal(t, "ok", body["status"])
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		checks     []Check
		wantStatus int
	}{
		{name: "no checks", wantStatus: http.StatusOK},
		{
			name:       "all checks pass",
			checks:     []Check{{Name: "redis", Ping: func(context.Context) error { return nil }}},
			wantStatus: http.StatusOK,
		},
		{
			name: "one check fails",
			checks: []Check{
				{Name: "redis", Ping: func(context.Context) error { return nil }},
				{Name: "zeebe", Ping: func(context.Context) error { return errors.New("unavailable") }},
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, tt.checks...)
			var body map[string]interface{}
			assert.Equal(t, tt.wantStatus, get(t, ts.URL+"/ready", &body))
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, map[string]interface{}{"zeebe": "unavailable"}, body["failed"])
			}
		})
	}
}

func TestStatus(t *testing.T) {
	ts := newTestServer(t)
	var status mission.Status
	assert.Equal(t, http.StatusOK, get(t, ts.URL+"/status", &status))
	assert.Equal(t, mission.Status{MissionsInQueue: 2, TotalMissions: 3, MissionsCompleted: 1}, status)
}

func TestMetrics(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMissions(t *testing.T) {
	ts := newTestServer(t)

	var list []models.BusinessMission
	assert.Equal(t, http.StatusOK, get(t, ts.URL+"/missions", &list))
	require.Len(t, list, 1)

	var m models.BusinessMission
	assert.Equal(t, http.StatusOK, get(t, ts.URL+"/missions/m1", &m))
	assert.Equal(t, models.PriorityHigh, m.Priority)

	var res models.DesignMissionResult
	assert.Equal(t, http.StatusOK, get(t, ts.URL+"/missions/m1/result", &res))
	assert.Equal(t, 82, res.QualityScore)

	var stdErr apperrors.StandardError
	assert.Equal(t, http.StatusNotFound, get(t, ts.URL+"/missions/nope", &stdErr))
	assert.Equal(t, apperrors.ErrCodeMissionNotFound, stdErr.Code)
}

func TestListenAndServe_ShutsDownOnCancel(t *testing.T) {
	s := New(&fakeOrchestrator{}, nil, logger.NewTestLogger(t))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0", time.Second) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

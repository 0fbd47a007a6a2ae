package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/simulation"
	"github.com/osse101/DropLuck_Go/internal/worker"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeRuns struct {
	runs       []domain.SimulationRun
	histogram  []domain.HistogramRecord
	err        error
	lastLimit  int
	histograms map[string]bool
	bests      map[string]*domain.ScoredSummary
	bestErr    error
}

func (f *fakeRuns) GetRun(_ context.Context, id string) (*domain.SimulationRun, error) {
	for i := range f.runs {
		if f.runs[i].ID == id {
			return &f.runs[i], nil
		}
	}
	return nil, domain.ErrRunNotFound
}

func (f *fakeRuns) GetBest(_ context.Context, runID string) (*domain.ScoredSummary, error) {
	if f.bestErr != nil {
		return nil, f.bestErr
	}
	best, ok := f.bests[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return best, nil
}

func (f *fakeRuns) ListRuns(_ context.Context, limit int) ([]domain.SimulationRun, error) {
	f.lastLimit = limit
	return f.runs, f.err
}

func (f *fakeRuns) GetHistogram(_ context.Context, runID string) ([]domain.HistogramRecord, error) {
	if !f.histograms[runID] {
		return nil, domain.ErrRunNotFound
	}
	return f.histogram, nil
}

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := serve(t, NewRouter(Deps{}), RouteHealthz)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderNoSniff))

	var body HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, StatusOK, body.Status)
}

func TestReadyz(t *testing.T) {
	tests := []struct {
		name   string
		store  Pinger
		status int
	}{
		{"no store", nil, http.StatusOK},
		{"healthy store", fakePinger{}, http.StatusOK},
		{"unreachable store", fakePinger{err: errors.New("connection refused")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, NewRouter(Deps{Store: tt.store}), RouteReadyz)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	rec := serve(t, NewRouter(Deps{}), RouteMetrics)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestProgress(t *testing.T) {
	tracker := simulation.NewTracker()
	router := NewRouter(Deps{Progress: tracker})

	rec := serve(t, router, RouteAPIPrefix+RouteProgress)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	tracker.Report(context.Background(), simulation.Event{
		Kind:         simulation.EventProgress,
		RunID:        "run-1",
		Mode:         domain.ModeCycles,
		Workers:      2,
		StreamCount:  3,
		Cycles:       50,
		TargetCycles: 100,
		Elapsed:      time.Second,
		Best:         &worker.Candidate{Luck: 0.25},
	})

	rec = serve(t, router, RouteAPIPrefix+RouteProgress)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "run-1", body["run_id"])
	assert.InDelta(t, 150, body["streams_simulated"], 0)
	assert.InDelta(t, 0.5, body["fraction"], 1e-12)
	assert.InDelta(t, 0.25, body["best_luck"], 1e-12)
}

func TestRoutesDisabledWithoutDeps(t *testing.T) {
	router := NewRouter(Deps{})
	assert.Equal(t, http.StatusNotFound, serve(t, router, RouteAPIPrefix+RouteProgress).Code)
	assert.Equal(t, http.StatusNotFound, serve(t, router, RouteAPIPrefix+RouteRuns).Code)
	assert.Equal(t, http.StatusNotFound, serve(t, router, RouteEvents).Code)
}

func TestListRuns(t *testing.T) {
	runs := &fakeRuns{runs: []domain.SimulationRun{{ID: "a", Mode: domain.ModeCycles}}}
	router := NewRouter(Deps{Runs: runs})

	rec := serve(t, router, RouteAPIPrefix+RouteRuns)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, DefaultRunsLimit, runs.lastLimit)

	var body []domain.SimulationRun
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "a", body[0].ID)

	rec = serve(t, router, RouteAPIPrefix+RouteRuns+"?limit=5")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, runs.lastLimit)

	for _, bad := range []string{"0", "-1", "abc", "100000"} {
		rec = serve(t, router, RouteAPIPrefix+RouteRuns+"?limit="+bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
	}

	runs.err = errors.New("boom")
	rec = serve(t, router, RouteAPIPrefix+RouteRuns)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRunHistogram(t *testing.T) {
	runs := &fakeRuns{
		histogram:  []domain.HistogramRecord{{Observed: 4, Count: 2, Frequency: 0.5, EstimatedProbability: 0.4}},
		histograms: map[string]bool{"known": true},
	}
	router := NewRouter(Deps{Runs: runs})

	rec := serve(t, router, RouteAPIPrefix+"/runs/known/histogram")
	require.Equal(t, http.StatusOK, rec.Code)
	var body []domain.HistogramRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, runs.histogram, body)

	rec = serve(t, router, RouteAPIPrefix+"/runs/missing/histogram")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRunDetailAndBest(t *testing.T) {
	best := &domain.ScoredSummary{
		Summary:     domain.StreamSummary{Runs: 1, RangedDraws: 12, BinaryDraws: 9},
		Luck:        1e-6,
		Probability: 1e-7,
	}
	runs := &fakeRuns{
		runs: []domain.SimulationRun{
			{ID: "scored", Mode: domain.ModeUntil, BestLuck: 1e-6},
			{ID: "bare", Mode: domain.ModeCycles},
		},
		bests: map[string]*domain.ScoredSummary{"scored": best},
	}
	router := NewRouter(Deps{Runs: runs})

	rec := serve(t, router, RouteAPIPrefix+"/runs/scored")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail RunDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	assert.Equal(t, "scored", detail.Run.ID)
	require.NotNil(t, detail.Best)
	assert.Equal(t, *best, *detail.Best)

	rec = serve(t, router, RouteAPIPrefix+"/runs/bare")
	require.Equal(t, http.StatusOK, rec.Code)
	detail = RunDetail{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	assert.Equal(t, "bare", detail.Run.ID)
	assert.Nil(t, detail.Best)

	rec = serve(t, router, RouteAPIPrefix+"/runs/scored/best")
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.ScoredSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, *best, got)

	assert.Equal(t, http.StatusNotFound, serve(t, router, RouteAPIPrefix+"/runs/bare/best").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, router, RouteAPIPrefix+"/runs/missing").Code)

	runs.bestErr = errors.New("boom")
	assert.Equal(t, http.StatusInternalServerError, serve(t, router, RouteAPIPrefix+"/runs/scored").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(t, router, RouteAPIPrefix+"/runs/scored/best").Code)
}

func TestServerStop(t *testing.T) {
	srv := NewServer(0, Deps{})
	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	time.Sleep(20 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}

//go:build integration
// +build integration

package integration_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	experimentv1 "github.com/qubosched/experiment-core/gen/go/experiment/v1"
	"github.com/qubosched/experiment-core/internal/expd"
)

const daemonSpecYAML = "num_runs: 5\nmax_iterations: 20\ntrials: 200\nseed: 17\n"

func newDaemon(t *testing.T) (http.Handler, *expd.ExperimentStore) {
	t.Helper()
	store := expd.NewExperimentStore()
	reg := prometheus.NewRegistry()
	executor := expd.NewExecutor(store, expd.NewMetrics(reg))
	return expd.NewHTTPServer(store, executor, reg).Handler(), store
}

func postJSON(t *testing.T, h http.Handler, path, payload string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload)))
	return rr
}

func getJSON(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON from %s: %v", path, err)
	}
	return rr, body
}

// TestIntegration_ExperimentLifecycleHTTP drives an experiment through the
// HTTP API from creation to results.
func TestIntegration_ExperimentLifecycleHTTP(t *testing.T) {
	h, store := newDaemon(t)

	payload, _ := json.Marshal(map[string]any{
		"name":      "lifecycle",
		"spec_yaml": daemonSpecYAML,
	})
	rr := postJSON(t, h, "/v1/experiments", string(payload))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var created map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid create response: %v", err)
	}
	id := created["experiment"].(map[string]any)["id"].(string)

	rr = postJSON(t, h, "/v1/experiments/"+id+":start", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		rec, ok := store.Get(id)
		if ok && rec.Experiment.Status == experimentv1.ExperimentStatus_EXPERIMENT_STATUS_COMPLETED {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	rr, exp := getJSON(t, h, "/v1/experiments/"+id)
	if rr.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rr.Code)
	}
	expObj := exp["experiment"].(map[string]any)
	if expObj["status"] != "EXPERIMENT_STATUS_COMPLETED" {
		t.Fatalf("expected completed experiment, got %v", expObj["status"])
	}
	if expObj["completed_runs"].(float64) != 5 {
		t.Fatalf("expected 5 completed runs, got %v", expObj["completed_runs"])
	}

	rr, results := getJSON(t, h, "/v1/experiments/"+id+"/results")
	if rr.Code != http.StatusOK {
		t.Fatalf("results: expected 200, got %d", rr.Code)
	}
	runs := results["runs"].([]any)
	if len(runs) != 5 {
		t.Fatalf("expected 5 runs in results, got %d", len(runs))
	}
	summary := results["summary"].(map[string]any)
	if summary["threshold"].(float64) != -7.5 {
		t.Fatalf("expected threshold -7.5, got %v", summary["threshold"])
	}
	// The sampled couplings never dip below the double-assignment optimum
	if summary["best_value"].(float64) < -8.0-1e-9 {
		t.Fatalf("best value below attainable minimum: %v", summary["best_value"])
	}

	// Metrics exposition reflects the finished experiment
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "expd_runs_completed_total 5") {
		t.Fatalf("expected 5 completed runs in metrics exposition")
	}
}

// TestIntegration_EventStreamSSE follows the SSE event feed of a running
// experiment until it completes.
func TestIntegration_EventStreamSSE(t *testing.T) {
	store := expd.NewExperimentStore()
	reg := prometheus.NewRegistry()
	executor := expd.NewExecutor(store, expd.NewMetrics(reg))
	h := expd.NewHTTPServer(store, executor, reg).Handler()

	srv := httptest.NewServer(h)
	defer srv.Close()

	rec, err := store.Create(&experimentv1.ExperimentInput{
		Name:     "sse",
		SpecYaml: daemonSpecYAML,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	id := rec.Experiment.Id
	if _, err := executor.Start(id); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	resp, err := http.Get(srv.URL + "/v1/experiments/" + id + "/events")
	if err != nil {
		t.Fatalf("GET events error: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected text/event-stream, got %q", ct)
	}

	buf := make([]byte, 64*1024)
	var stream strings.Builder
	for {
		n, err := resp.Body.Read(buf)
		stream.Write(buf[:n])
		if err != nil {
			break
		}
		if strings.Contains(stream.String(), "event: complete") {
			break
		}
	}

	events := stream.String()
	if !strings.Contains(events, "event: status_change") {
		t.Errorf("expected a status_change event, got:\n%s", events)
	}
	if !strings.Contains(events, "event: run_completed") {
		t.Errorf("expected run_completed events, got:\n%s", events)
	}
	if !strings.Contains(events, "event: complete") {
		t.Errorf("expected a complete event, got:\n%s", events)
	}
}

// TestIntegration_StopCancelsExperiment stops a long experiment mid-flight
// and verifies the terminal status sticks.
func TestIntegration_StopCancelsExperiment(t *testing.T) {
	h, store := newDaemon(t)

	payload, _ := json.Marshal(map[string]any{
		"spec_yaml": "num_runs: 5000\nmax_iterations: 200\ntrials: 100\nseed: 5\n",
	})
	rr := postJSON(t, h, "/v1/experiments", string(payload))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rr.Code)
	}
	var created map[string]any
	json.Unmarshal(rr.Body.Bytes(), &created)
	id := created["experiment"].(map[string]any)["id"].(string)

	if rr = postJSON(t, h, "/v1/experiments/"+id+":start", ""); rr.Code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d", rr.Code)
	}
	time.Sleep(50 * time.Millisecond)

	if rr = postJSON(t, h, "/v1/experiments/"+id+":stop", ""); rr.Code != http.StatusOK {
		t.Fatalf("stop: expected 200, got %d", rr.Code)
	}

	time.Sleep(200 * time.Millisecond)
	rec, _ := store.Get(id)
	if rec.Experiment.Status != experimentv1.ExperimentStatus_EXPERIMENT_STATUS_CANCELLED {
		t.Fatalf("expected cancelled, got %v", rec.Experiment.Status)
	}
}

package expd

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	experimentv1 "github.com/qubosched/experiment-core/gen/go/experiment/v1"
	"github.com/qubosched/experiment-core/pkg/logger"
)

// HTTPServer exposes the experiment REST API plus health and metrics
// endpoints.
type HTTPServer struct {
	store    *ExperimentStore
	executor *Executor
	mux      *http.ServeMux
}

func NewHTTPServer(store *ExperimentStore, executor *Executor, gatherer prometheus.Gatherer) *HTTPServer {
	s := &HTTPServer{
		store:    store,
		executor: executor,
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("/healthz", s.handleHealthz)
	s.mux.HandleFunc("/v1/experiments", s.handleExperiments)
	s.mux.HandleFunc("/v1/experiments/", s.handleExperimentByID)
	if gatherer != nil {
		s.mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return s
}

// Handler returns the root HTTP handler
func (s *HTTPServer) Handler() http.Handler {
	return s.mux
}

func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *HTTPServer) handleExperiments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateExperiment(w, r)
	case http.MethodGet:
		s.handleListExperiments(w, r)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleExperimentByID handles /v1/experiments/{id} and related endpoints
func (s *HTTPServer) handleExperimentByID(w http.ResponseWriter, r *http.Request) {
	// Parse path: /v1/experiments/{id}, {id}:start, {id}:stop,
	// {id}/results or {id}/events
	path := strings.TrimPrefix(r.URL.Path, "/v1/experiments/")
	if path == "" {
		s.writeError(w, http.StatusBadRequest, "experiment ID is required")
		return
	}

	if strings.HasSuffix(path, ":start") {
		id := strings.TrimSuffix(path, ":start")
		if r.Method == http.MethodPost {
			s.handleStartExperiment(w, r, id)
		} else {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	if strings.HasSuffix(path, ":stop") {
		id := strings.TrimSuffix(path, ":stop")
		if r.Method == http.MethodPost {
			s.handleStopExperiment(w, r, id)
		} else {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	if strings.HasSuffix(path, "/results") {
		id := strings.TrimSuffix(path, "/results")
		if r.Method == http.MethodGet {
			s.handleGetResults(w, r, id)
		} else {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	if strings.HasSuffix(path, "/events") {
		id := strings.TrimSuffix(path, "/events")
		if r.Method == http.MethodGet {
			s.handleEventStream(w, r, id)
		} else {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	// Otherwise it's GET /v1/experiments/{id}
	if r.Method == http.MethodGet {
		s.handleGetExperiment(w, r, path)
	} else {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleCreateExperiment handles POST /v1/experiments
func (s *HTTPServer) handleCreateExperiment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		SpecYAML string `json:"spec_yaml"`
		Seed     int64  `json:"seed,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.SpecYAML == "" {
		s.writeError(w, http.StatusBadRequest, "spec_yaml is required")
		return
	}

	rec, err := s.store.Create(&experimentv1.ExperimentInput{
		Name:     req.Name,
		SpecYaml: req.SpecYAML,
		Seed:     req.Seed,
	})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Info("experiment created (HTTP)", "id", rec.Experiment.Id)
	s.writeJSON(w, http.StatusCreated, map[string]any{
		"experiment": convertExperimentToJSON(rec.Experiment),
	})
}

// handleListExperiments handles GET /v1/experiments with status filtering
func (s *HTTPServer) handleListExperiments(w http.ResponseWriter, r *http.Request) {
	filter := parseExperimentStatus(r.URL.Query().Get("status"))
	recs := s.store.List(filter)

	experiments := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		experiments = append(experiments, convertExperimentToJSON(rec.Experiment))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"experiments": experiments,
		"count":       len(experiments),
	})
}

func parseExperimentStatus(statusStr string) experimentv1.ExperimentStatus {
	switch strings.ToLower(statusStr) {
	case "pending":
		return experimentv1.ExperimentStatus_EXPERIMENT_STATUS_PENDING
	case "running":
		return experimentv1.ExperimentStatus_EXPERIMENT_STATUS_RUNNING
	case "completed":
		return experimentv1.ExperimentStatus_EXPERIMENT_STATUS_COMPLETED
	case "failed":
		return experimentv1.ExperimentStatus_EXPERIMENT_STATUS_FAILED
	case "cancelled":
		return experimentv1.ExperimentStatus_EXPERIMENT_STATUS_CANCELLED
	default:
		return experimentv1.ExperimentStatus_EXPERIMENT_STATUS_UNSPECIFIED
	}
}

func (s *HTTPServer) handleGetExperiment(w http.ResponseWriter, _ *http.Request, id string) {
	rec, ok := s.store.Get(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "experiment not found")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"experiment": convertExperimentToJSON(rec.Experiment),
	})
}

func (s *HTTPServer) handleStartExperiment(w http.ResponseWriter, _ *http.Request, id string) {
	exp, err := s.executor.Start(id)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			s.writeError(w, http.StatusNotFound, err.Error())
		case strings.Contains(err.Error(), "finished"):
			s.writeError(w, http.StatusConflict, err.Error())
		default:
			s.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"experiment": convertExperimentToJSON(exp),
	})
}

func (s *HTTPServer) handleStopExperiment(w http.ResponseWriter, _ *http.Request, id string) {
	exp, err := s.executor.Stop(id)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			s.writeError(w, http.StatusNotFound, err.Error())
		case strings.Contains(err.Error(), "finished"):
			s.writeError(w, http.StatusConflict, err.Error())
		default:
			s.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"experiment": convertExperimentToJSON(exp),
	})
}

func (s *HTTPServer) handleGetResults(w http.ResponseWriter, _ *http.Request, id string) {
	rec, ok := s.store.Get(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "experiment not found")
		return
	}
	if rec.Results == nil {
		s.writeError(w, http.StatusConflict, "results not available")
		return
	}
	s.writeJSON(w, http.StatusOK, convertResultsToJSON(rec.Results))
}

// handleEventStream handles GET /v1/experiments/{id}/events via SSE
func (s *HTTPServer) handleEventStream(w http.ResponseWriter, r *http.Request, id string) {
	rec, ok := s.store.Get(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "experiment not found")
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, _ := w.(http.Flusher)
	flush := func() {
		if flusher != nil {
			flusher.Flush()
		}
	}

	previousStatus := rec.Experiment.Status
	s.sendSSEEvent(w, "status_change", map[string]any{
		"status": rec.Experiment.Status.String(),
	})
	flush()

	sentRuns := 0
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	ctx := r.Context()

	for {
		select {
		case <-ctx.Done():
			// Client disconnected
			return
		case <-ticker.C:
			rec, ok := s.store.Get(id)
			if !ok {
				s.sendSSEEvent(w, "error", map[string]any{"error": "experiment not found"})
				flush()
				return
			}

			runs, err := s.store.RunsSince(id, sentRuns)
			if err == nil {
				for _, run := range runs {
					s.sendSSEEvent(w, "run_completed", convertRunResultToJSON(run))
				}
				sentRuns += len(runs)
			}

			if rec.Experiment.Status != previousStatus {
				s.sendSSEEvent(w, "status_change", map[string]any{
					"status": rec.Experiment.Status.String(),
					"error":  rec.Experiment.Error,
				})
				previousStatus = rec.Experiment.Status
			}
			flush()

			if rec.Experiment.Status == experimentv1.ExperimentStatus_EXPERIMENT_STATUS_COMPLETED ||
				rec.Experiment.Status == experimentv1.ExperimentStatus_EXPERIMENT_STATUS_FAILED ||
				rec.Experiment.Status == experimentv1.ExperimentStatus_EXPERIMENT_STATUS_CANCELLED {
				s.sendSSEEvent(w, "complete", map[string]any{
					"status": rec.Experiment.Status.String(),
				})
				flush()
				return
			}
		}
	}
}

func (s *HTTPServer) sendSSEEvent(w http.ResponseWriter, eventType string, data map[string]any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to marshal SSE event data", "error", err)
		return
	}
	if _, err := w.Write([]byte("event: " + eventType + "\n")); err != nil {
		logger.Error("failed to write SSE event header", "error", err)
		return
	}
	if _, err := w.Write([]byte("data: " + string(jsonData) + "\n\n")); err != nil {
		logger.Error("failed to write SSE event data", "error", err)
		return
	}
}

// Helper functions

func (s *HTTPServer) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

func (s *HTTPServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]any{
		"error": message,
	})
}

func convertExperimentToJSON(exp *experimentv1.Experiment) map[string]any {
	return map[string]any{
		"id":                   exp.Id,
		"name":                 exp.Name,
		"status":               exp.Status.String(),
		"error":                exp.Error,
		"created_at_unix_ms":   exp.CreatedAtUnixMs,
		"started_at_unix_ms":   exp.StartedAtUnixMs,
		"completed_at_unix_ms": exp.CompletedAtUnixMs,
		"completed_runs":       exp.CompletedRuns,
		"total_runs":           exp.TotalRuns,
	}
}

func convertRunResultToJSON(run *experimentv1.RunResult) map[string]any {
	return map[string]any{
		"index":              run.Index,
		"seed":               run.Seed,
		"final_value":        run.FinalValue,
		"evaluations":        run.Evaluations,
		"converged":          run.Converged,
		"convergence_reason": run.ConvergenceReason,
		"reached_global":     run.ReachedGlobal,
	}
}

func convertResultsToJSON(results *experimentv1.ExperimentResults) map[string]any {
	runs := make([]map[string]any, 0, len(results.Runs))
	for _, run := range results.Runs {
		runs = append(runs, convertRunResultToJSON(run))
	}

	histogram := make([]map[string]any, 0, len(results.Summary.Histogram))
	for _, bin := range results.Summary.Histogram {
		histogram = append(histogram, map[string]any{
			"lower": bin.Lower,
			"upper": bin.Upper,
			"count": bin.Count,
		})
	}

	return map[string]any{
		"experiment_id": results.ExperimentId,
		"penalty":       results.Penalty,
		"runs":          runs,
		"summary": map[string]any{
			"total_runs":        results.Summary.TotalRuns,
			"best_value":        results.Summary.BestValue,
			"worst_value":       results.Summary.WorstValue,
			"mean_value":        results.Summary.MeanValue,
			"std_dev":           results.Summary.StdDev,
			"global_count":      results.Summary.GlobalCount,
			"global_fraction":   results.Summary.GlobalFraction,
			"threshold":         results.Summary.Threshold,
			"total_evaluations": results.Summary.TotalEvaluations,
			"histogram":         histogram,
		},
	}
}

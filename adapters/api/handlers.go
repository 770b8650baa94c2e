package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"bayesgrid/adapters/stats/sampler"
	"bayesgrid/app"
	"bayesgrid/domain/bernoulli"
	"bayesgrid/domain/core"
	"bayesgrid/domain/prior"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	obs, err := s.obsParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	points, err := intParam(r, "points", s.cfg.Estimation.GridPoints)
	if err != nil {
		s.writeError(w, err)
		return
	}
	pr, err := s.priorParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.estimate.Run(r.Context(), app.EstimateRequest{
		Observation: obs,
		GridPoints:  points,
		Prior:       pr,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleLaplace(w http.ResponseWriter, r *http.Request) {
	obs, err := s.obsParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	fit, err := s.laplace.Approximate(r.Context(), obs)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, fit)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	obs, err := s.obsParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	points, err := intParam(r, "points", s.cfg.Estimation.GridPoints)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.compare.Run(r.Context(), app.CompareRequest{
		Observation: obs,
		GridPoints:  points,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	obs, err := s.obsParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	resolutions, err := intListParam(r, "points", []int{20, 100, 1000})
	if err != nil {
		s.writeError(w, err)
		return
	}
	priors, err := s.priorListParam(r, "priors")
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.sweep.Run(r.Context(), app.SweepRequest{
		Observation: obs,
		Resolutions: resolutions,
		Priors:      priors,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	obs, err := s.obsParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	points, err := intParam(r, "points", s.cfg.Estimation.GridPoints)
	if err != nil {
		s.writeError(w, err)
		return
	}
	pr, err := s.priorParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	draws, err := intParam(r, "draws", s.cfg.Sampling.Draws)
	if err != nil {
		s.writeError(w, err)
		return
	}
	seed, err := int64Param(r, "seed", s.cfg.Sampling.Seed)
	if err != nil {
		s.writeError(w, err)
		return
	}
	interval, err := floatParam(r, "interval", s.cfg.Sampling.Interval)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.estimate.Run(r.Context(), app.EstimateRequest{
		Observation: obs,
		GridPoints:  points,
		Prior:       pr,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	samples, err := s.sampler.Draw(r.Context(), result.Table, draws, seed)
	if err != nil {
		s.writeError(w, err)
		return
	}
	summary, err := sampler.Summarize(samples, interval)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

// Parameter helpers. Omitted parameters fall back to the configured
// estimation and sampling defaults.

func (s *Server) obsParam(r *http.Request) (bernoulli.Observation, error) {
	trials, err := intParam(r, "trials", s.cfg.Estimation.Trials)
	if err != nil {
		return bernoulli.Observation{}, err
	}
	successes, err := intParam(r, "successes", s.cfg.Estimation.Successes)
	if err != nil {
		return bernoulli.Observation{}, err
	}
	return bernoulli.NewObservation(successes, trials)
}

func (s *Server) priorParam(r *http.Request) (prior.Prior, error) {
	v := r.URL.Query().Get("prior")
	if v == "" {
		return s.cfg.Estimation.Prior, nil
	}
	return prior.Parse(v)
}

func intParam(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, core.NewInvalidParameterError(key, "is not an integer")
	}
	return n, nil
}

func int64Param(r *http.Request, key string, fallback int64) (int64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, core.NewInvalidParameterError(key, "is not an integer")
	}
	return n, nil
}

func floatParam(r *http.Request, key string, fallback float64) (float64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, core.NewInvalidParameterError(key, "is not a number")
	}
	return f, nil
}

func intListParam(r *http.Request, key string, fallback []int) ([]int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	parts := strings.Split(v, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, core.NewInvalidParameterError(key, "must be a comma-separated list of integers")
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *Server) priorListParam(r *http.Request, key string) ([]prior.Prior, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return []prior.Prior{s.cfg.Estimation.Prior}, nil
	}
	// Semicolon-separated because laplace specs contain commas.
	parts := strings.Split(v, ";")
	out := make([]prior.Prior, 0, len(parts))
	for _, part := range parts {
		pr, err := prior.Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, nil
}

// Response helpers

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("response encode failed: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsInvalidParameter(err):
		status = http.StatusBadRequest
	case core.IsDegenerate(err):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		s.log.Error("request failed: %v", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

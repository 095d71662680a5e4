package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// NewRouter builds the HTTP mux fronting s: the websocket choice
// transport at /ws, Prometheus metrics at /metrics, and a liveness probe
// at /healthz. Request-ID correlation, structured logging, panic
// recovery and rate limiting wrap every route.
func (s *Server) NewRouter() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWebSocket)
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.GetHandler())
	}
	mux.HandleFunc("/healthz", s.handleHealthz)

	var handler http.Handler = mux
	handler = RecoveryMiddleware(handler)
	if s.rateLimiter != nil {
		handler = RateLimitingMiddleware(s.rateLimiter)(handler)
	}
	handler = LoggingMiddleware(handler)
	handler = RequestIDMiddleware(handler)
	return handler
}

// handleHealthz reports liveness: the battle is reachable and its turn
// counter is readable. It never checks gameplay state — a battle in any
// legal state is "healthy" by this probe's definition.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	turn := s.battle.Field.Turn
	sessions := len(s.sessions)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordHealthCheck("liveness", "success")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthzResponse{
		Status:   "ok",
		Turn:     turn,
		Sessions: sessions,
		Time:     time.Now().UTC().Format(time.RFC3339),
	})
}

type healthzResponse struct {
	Status   string `json:"status"`
	Turn     int    `json:"turn"`
	Sessions int    `json:"sessions"`
	Time     string `json:"time"`
}

// Package server exposes the scanner over HTTP JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/IykeSol/Token-safety-scanner/internal/cache"
	"github.com/IykeSol/Token-safety-scanner/internal/models"
)

// Scanner is the single entry point into the scanning core.
type Scanner interface {
	Scan(ctx context.Context, network models.Network, address string) (*models.ScanResult, error)
}

type Server struct {
	scanner Scanner
	limiter *rate.Limiter
	results *cache.TTLMap
	logger  *slog.Logger
}

type errorResponse struct {
	Error   string               `json:"error"`
	Kind    models.ErrorKind     `json:"kind"`
	Partial *models.TokenProfile `json:"partial,omitempty"`
}

func New(scanner Scanner, rps float64, burst int, resultTTL time.Duration, logger *slog.Logger) *Server {
	return &Server{
		scanner: scanner,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		results: cache.NewTTLMap(resultTTL),
		logger:  logger,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/scan/", s.handleScan)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// handleScan serves GET /scan/{network}/{address}.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	logger := s.logger.With("request_id", requestID)

	if !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, errorResponse{
			Error: "rate limit exceeded", Kind: models.ErrInternalFailure,
		})
		return
	}

	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/scan/"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		writeError(w, http.StatusBadRequest, errorResponse{
			Error: "expected /scan/{network}/{address}", Kind: models.ErrInvalidAddress,
		})
		return
	}

	network, err := models.ParseNetwork(parts[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{
			Error: err.Error(), Kind: models.ErrInvalidNetwork,
		})
		return
	}
	addr := parts[1]

	cacheKey := string(network) + ":" + addr
	if cached, ok := s.results.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	result, err := s.scanner.Scan(r.Context(), network, addr)
	if err != nil {
		var se *models.ScanError
		if errors.As(err, &se) {
			logger.Warn("scan failed", "network", network, "address", addr, "kind", se.Kind, "error", se.Message)
			writeError(w, statusFor(se.Kind), errorResponse{Error: se.Message, Kind: se.Kind, Partial: se.Partial})
			return
		}
		logger.Error("scan failed unexpectedly", "network", network, "address", addr, "error", err)
		writeError(w, http.StatusInternalServerError, errorResponse{
			Error: err.Error(), Kind: models.ErrInternalFailure,
		})
		return
	}

	s.results.Set(cacheKey, result)
	writeJSON(w, http.StatusOK, result)
}

func statusFor(kind models.ErrorKind) int {
	switch kind {
	case models.ErrInvalidNetwork, models.ErrInvalidAddress:
		return http.StatusBadRequest
	case models.ErrSecurityDataUnavailable:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, resp errorResponse) {
	writeJSON(w, status, resp)
}

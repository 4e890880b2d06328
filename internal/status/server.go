// Package status serves the health, metrics and last-tick endpoints of a
// running dispatch loop.
package status

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/moznion/go-optional"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/rxtech-lab/argo-market-strategy/internal/version"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// ReportSource exposes the most recent dispatch report.
type ReportSource interface {
	LastReport() optional.Option[types.DispatchReport]
}

// Response is the body of GET /status.
type Response struct {
	Version    string                `json:"version"`
	LastReport *types.DispatchReport `json:"last_report"`
}

// Server serves /healthz, /metrics and /status.
type Server struct {
	source     ReportSource
	router     *mux.Router
	httpServer *http.Server
	listener   net.Listener
	log        *logger.Logger
}

func NewServer(source ReportSource, log *logger.Logger) *Server {
	s := &Server{
		source:     source,
		router:     mux.NewRouter(),
		httpServer: nil,
		listener:   nil,
		log:        log.Named("status"),
	}

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	s.router.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)

	return s
}

// Handler returns the router, for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on address and serves in the background.
// An empty address or ":0" picks a free port.
func (s *Server) Start(address string) error {
	if address == "" {
		address = ":0"
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to listen on %s", address)
	}

	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("Status server stopped", zap.Error(err))
		}
	}()

	s.log.Info("Status server listening", zap.String("address", listener.Addr().String()))

	return nil
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

// Address returns the address the server is listening on.
func (s *Server) Address() string {
	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	response := Response{Version: version.GetVersion(), LastReport: nil}

	if last := s.source.LastReport(); last.IsSome() {
		report := last.Unwrap()
		response.LastReport = &report
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

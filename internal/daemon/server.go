// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

// Package daemon exposes the analysis pipeline as a JSON-RPC 2.0 service so
// fee-estimation tooling can call it without shelling out to the CLI.
package daemon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gasguard/gasguard/internal/costmodel"
	"github.com/gasguard/gasguard/internal/logger"
	"github.com/gasguard/gasguard/internal/netconfig"
	"github.com/gasguard/gasguard/internal/telemetry"
)

// Server is the JSON-RPC service carrier. Methods are registered under the
// "GasGuard" namespace.
type Server struct {
	analyzer  *costmodel.Analyzer
	authToken string
}

// Config holds daemon configuration.
type Config struct {
	Port      string
	AuthToken string
}

// AnalyzeRequest carries one simulation result plus the configuration to
// evaluate it against: either a preset label or a full inline config.
type AnalyzeRequest struct {
	Simulation    costmodel.SimulationResult `json:"simulation"`
	ConfigVersion string                     `json:"config_version,omitempty"`
	Config        *costmodel.Config          `json:"config,omitempty"`
}

// AnalyzeResponse wraps the resulting analysis record.
type AnalyzeResponse struct {
	Analysis *costmodel.Analysis `json:"analysis"`
}

// NetworksRequest is empty; the method takes no parameters.
type NetworksRequest struct{}

// NetworksResponse lists the known configuration preset labels.
type NetworksResponse struct {
	Labels []string `json:"labels"`
}

// NewServer creates a JSON-RPC server around a fresh analyzer.
func NewServer(config Config) *Server {
	return &Server{
		analyzer:  costmodel.NewAnalyzer(),
		authToken: config.AuthToken,
	}
}

// authenticate validates the authorization token.
func (s *Server) authenticate(r *http.Request) bool {
	if s.authToken == "" {
		return true // No auth required
	}

	auth := r.Header.Get("Authorization")
	if auth == "" {
		return false
	}

	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ") == s.authToken
	}
	return auth == s.authToken
}

// resolveConfig picks the config for a request: inline config first, then a
// preset label, then the default preset.
func resolveConfig(req *AnalyzeRequest) (costmodel.Config, error) {
	if req.Config != nil {
		return *req.Config, nil
	}
	if req.ConfigVersion != "" {
		return netconfig.Get(req.ConfigVersion)
	}
	return netconfig.Default(), nil
}

// Analyze handles GasGuard.Analyze RPC calls.
func (s *Server) Analyze(r *http.Request, req *AnalyzeRequest, resp *AnalyzeResponse) error {
	if !s.authenticate(r) {
		return fmt.Errorf("unauthorized")
	}

	tracer := telemetry.GetTracer()
	_, span := tracer.Start(r.Context(), "rpc_analyze")
	span.SetAttributes(attribute.String("config.version", req.ConfigVersion))
	defer span.End()

	cfg, err := resolveConfig(req)
	if err != nil {
		span.RecordError(err)
		return err
	}

	logger.Logger.Info("Processing analyze RPC",
		"config_version", cfg.Version,
		"instructions", req.Simulation.Instructions,
	)

	analysis, err := s.analyzer.Analyze(&req.Simulation, &cfg)
	if err != nil {
		span.RecordError(err)
		return err
	}

	resp.Analysis = analysis
	return nil
}

// Networks handles GasGuard.Networks RPC calls.
func (s *Server) Networks(r *http.Request, _ *NetworksRequest, resp *NetworksResponse) error {
	if !s.authenticate(r) {
		return fmt.Errorf("unauthorized")
	}

	resp.Labels = netconfig.Labels()
	return nil
}

// Start starts the JSON-RPC server and blocks until ctx is cancelled.
func (s *Server) Start(ctx context.Context, port string) error {
	server := rpc.NewServer()
	server.RegisterCodec(json2.NewCodec(), "application/json")
	server.RegisterCodec(json2.NewCodec(), "application/json;charset=UTF-8")

	if err := server.RegisterService(s, "GasGuard"); err != nil {
		return fmt.Errorf("failed to register service: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/rpc", server)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	logger.Logger.Info("Starting JSON-RPC server", "port", port)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Error("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Logger.Info("Shutting down JSON-RPC server")
	return srv.Shutdown(context.Background())
}

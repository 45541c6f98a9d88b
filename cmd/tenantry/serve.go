package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tenantry-Labs/tenantry/core/pkg/audit"
	"github.com/Tenantry-Labs/tenantry/core/pkg/deposit"
	"github.com/Tenantry-Labs/tenantry/core/pkg/engine"
	"github.com/Tenantry-Labs/tenantry/core/pkg/latefee"
	"github.com/Tenantry-Labs/tenantry/core/pkg/notice"
	"github.com/Tenantry-Labs/tenantry/core/pkg/statelaw"
)

type server struct {
	engine *engine.Engine
	audit  *audit.SQLiteStore
	logger *slog.Logger
}

func runServe(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", ":8080", "Listen address")
	overlay := fs.String("overlay", "", "Path to a YAML rule overlay")
	auditDB := fs.String("audit-db", "", "Path to a sqlite audit database (empty disables auditing)")
	rps := fs.Int("rps", 10, "Per-IP requests per second")
	burst := fs.Int("burst", 20, "Per-IP burst size")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewJSONHandler(stderr, nil))

	catalog, err := loadCatalog(*overlay)
	if err != nil {
		return fail(stderr, err)
	}

	srv := &server{
		engine: engine.New(catalog, logger),
		logger: logger,
	}
	if *auditDB != "" {
		store, err := audit.Open(*auditDB)
		if err != nil {
			return fail(stderr, err)
		}
		defer func() { _ = store.Close() }()
		srv.audit = store
	}

	limiter := newIPRateLimiter(*rps, *burst)
	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           limiter.middleware(srv.routes()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", *addr, "revision", catalog.Revision(), "hash", catalog.Hash())
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fail(stderr, err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fail(stderr, err)
		}
	}

	_, _ = fmt.Fprintln(stdout, "stopped")
	return 0
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/latefee", s.handleLateFee)
	mux.HandleFunc("POST /v1/deposit", s.handleDeposit)
	mux.HandleFunc("POST /v1/notice", s.handleNotice)
	mux.HandleFunc("GET /v1/states", s.handleStates)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

func (s *server) handleLateFee(w http.ResponseWriter, r *http.Request) {
	var in latefee.Input
	if !decodeJSON(w, r, &in) {
		return
	}

	out, err := s.engine.EvaluateLateFee(r.Context(), in)
	if err != nil {
		writeEvaluationError(w, err)
		return
	}

	s.appendAudit(r.Context(), &audit.Record{
		RequestID:   out.RequestID,
		Tool:        string(engine.ToolLateFee),
		State:       string(in.State),
		Verdict:     string(out.Result.Verdict),
		CatalogHash: out.CatalogHash,
		Input:       mustJSON(in),
		Output:      mustJSON(out.Result),
		Timestamp:   time.Now(),
	})
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	var in deposit.Input
	if !decodeJSON(w, r, &in) {
		return
	}

	out, err := s.engine.EvaluateDepositCap(r.Context(), in)
	if err != nil {
		writeEvaluationError(w, err)
		return
	}

	s.appendAudit(r.Context(), &audit.Record{
		RequestID:   out.RequestID,
		Tool:        string(engine.ToolDeposit),
		State:       string(in.State),
		CatalogHash: out.CatalogHash,
		Input:       mustJSON(in),
		Output:      mustJSON(out.Result),
		Timestamp:   time.Now(),
	})
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleNotice(w http.ResponseWriter, r *http.Request) {
	var req notice.Request
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := s.engine.ComposeTerminationNotice(r.Context(), req)
	if err != nil {
		writeEvaluationError(w, err)
		return
	}

	s.appendAudit(r.Context(), &audit.Record{
		RequestID:   out.RequestID,
		Tool:        string(engine.ToolNotice),
		State:       string(req.State),
		CatalogHash: out.CatalogHash,
		Input:       mustJSON(req),
		Output:      mustJSON(out.Letter),
		Timestamp:   time.Now(),
	})
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleStates(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Code statelaw.StateCode `json:"code"`
		Name string             `json:"name"`
	}
	codes := s.engine.States()
	entries := make([]entry, 0, len(codes))
	for _, c := range codes {
		entries = append(entries, entry{Code: c, Name: statelaw.StateName(c)})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"revision": s.engine.Revision(),
		"hash":     s.engine.CatalogHash(),
		"states":   entries,
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// appendAudit is best-effort: a failed write is logged, never surfaced
// to the client.
func (s *server) appendAudit(ctx context.Context, rec *audit.Record) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Append(ctx, rec); err != nil {
		s.logger.Warn("audit append failed", "request_id", rec.RequestID, "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func writeEvaluationError(w http.ResponseWriter, err error) {
	var verr *statelaw.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}
	var unsupported *statelaw.UnsupportedJurisdictionError
	if errors.As(err, &unsupported) {
		writeError(w, http.StatusNotFound, unsupported.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

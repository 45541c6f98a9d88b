// Package engine is the evaluation facade over the pure rule
// components. It stamps each call with a request ID, the active
// catalog hash, and timing, and records counters; all verdicts come
// from the pure evaluators underneath.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Tenantry-Labs/tenantry/core/pkg/deposit"
	"github.com/Tenantry-Labs/tenantry/core/pkg/latefee"
	"github.com/Tenantry-Labs/tenantry/core/pkg/notice"
	"github.com/Tenantry-Labs/tenantry/core/pkg/statelaw"
)

const meterName = "github.com/Tenantry-Labs/tenantry/core/pkg/engine"

// Tool names the three evaluation entry points, used in logs, metrics,
// and audit records.
type Tool string

const (
	ToolLateFee Tool = "latefee"
	ToolDeposit Tool = "deposit"
	ToolNotice  Tool = "notice"
)

// LateFeeEvaluation wraps a late-fee result with call metadata.
type LateFeeEvaluation struct {
	RequestID   string          `json:"request_id"`
	CatalogHash string          `json:"catalog_hash"`
	Duration    time.Duration   `json:"duration_ns"`
	Result      *latefee.Result `json:"result"`
}

// DepositEvaluation wraps a deposit-cap result with call metadata.
type DepositEvaluation struct {
	RequestID   string          `json:"request_id"`
	CatalogHash string          `json:"catalog_hash"`
	Duration    time.Duration   `json:"duration_ns"`
	Result      *deposit.Result `json:"result"`
}

// NoticeComposition wraps a composed letter with call metadata.
type NoticeComposition struct {
	RequestID   string         `json:"request_id"`
	CatalogHash string         `json:"catalog_hash"`
	Duration    time.Duration  `json:"duration_ns"`
	Letter      *notice.Letter `json:"letter"`
}

// Metrics is an in-process snapshot of evaluation counts.
type Metrics struct {
	ByTool    map[Tool]int64            `json:"by_tool"`
	ByVerdict map[latefee.Verdict]int64 `json:"by_verdict"`
	Errors    int64                     `json:"errors"`
}

// Engine is safe for concurrent use.
type Engine struct {
	catalog  *statelaw.Catalog
	composer *notice.Composer
	logger   *slog.Logger

	evalCounter metric.Int64Counter

	mu        sync.Mutex
	byTool    map[Tool]int64
	byVerdict map[latefee.Verdict]int64
	errors    int64
}

// New builds an engine over the given catalog. A nil logger falls back
// to slog.Default(). The OpenTelemetry counter uses the global meter
// provider and is a no-op until the host process installs one.
func New(catalog *statelaw.Catalog, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	counter, err := otel.Meter(meterName).Int64Counter(
		"tenantry.evaluations",
		metric.WithDescription("Evaluations performed, by tool and verdict."),
	)
	if err != nil {
		logger.Warn("metric counter unavailable", "error", err)
	}
	return &Engine{
		catalog:     catalog,
		composer:    notice.NewComposer(catalog, nil),
		logger:      logger,
		evalCounter: counter,
		byTool:      map[Tool]int64{},
		byVerdict:   map[latefee.Verdict]int64{},
	}
}

// WithComposer replaces the letter composer, letting callers inject a
// fixed clock.
func (e *Engine) WithComposer(c *notice.Composer) *Engine {
	e.composer = c
	return e
}

// CatalogHash exposes the active catalog's content hash.
func (e *Engine) CatalogHash() string { return e.catalog.Hash() }

// Revision exposes the active catalog's revision string.
func (e *Engine) Revision() string { return e.catalog.Revision() }

// States returns the published jurisdiction key set.
func (e *Engine) States() []statelaw.StateCode { return statelaw.AllStates() }

// EvaluateLateFee classifies a late fee and stamps call metadata.
func (e *Engine) EvaluateLateFee(ctx context.Context, in latefee.Input) (*LateFeeEvaluation, error) {
	id := uuid.NewString()
	start := time.Now()

	res, err := latefee.Evaluate(e.catalog, in)
	elapsed := time.Since(start)
	if err != nil {
		e.recordError(ctx, ToolLateFee)
		e.logger.Warn("late fee evaluation failed",
			"request_id", id, "state", in.State, "error", err)
		return nil, err
	}

	e.record(ctx, ToolLateFee, res.Verdict)
	e.logger.Info("late fee evaluated",
		"request_id", id, "state", in.State, "verdict", res.Verdict,
		"duration", elapsed)
	return &LateFeeEvaluation{
		RequestID:   id,
		CatalogHash: e.catalog.Hash(),
		Duration:    elapsed,
		Result:      res,
	}, nil
}

// EvaluateDepositCap checks a requested deposit and stamps call
// metadata.
func (e *Engine) EvaluateDepositCap(ctx context.Context, in deposit.Input) (*DepositEvaluation, error) {
	id := uuid.NewString()
	start := time.Now()

	res, err := deposit.Evaluate(e.catalog, in)
	elapsed := time.Since(start)
	if err != nil {
		e.recordError(ctx, ToolDeposit)
		e.logger.Warn("deposit evaluation failed",
			"request_id", id, "state", in.State, "error", err)
		return nil, err
	}

	e.record(ctx, ToolDeposit, "")
	e.logger.Info("deposit evaluated",
		"request_id", id, "state", in.State, "within_cap", res.WithinCap,
		"duration", elapsed)
	return &DepositEvaluation{
		RequestID:   id,
		CatalogHash: e.catalog.Hash(),
		Duration:    elapsed,
		Result:      res,
	}, nil
}

// ComposeTerminationNotice renders a notice letter and stamps call
// metadata.
func (e *Engine) ComposeTerminationNotice(ctx context.Context, req notice.Request) (*NoticeComposition, error) {
	id := uuid.NewString()
	start := time.Now()

	letter, err := e.composer.Compose(req)
	elapsed := time.Since(start)
	if err != nil {
		e.recordError(ctx, ToolNotice)
		e.logger.Warn("notice composition failed",
			"request_id", id, "state", req.State, "error", err)
		return nil, err
	}

	e.record(ctx, ToolNotice, "")
	e.logger.Info("notice composed",
		"request_id", id, "state", req.State, "reason", req.Reason,
		"duration", elapsed)
	return &NoticeComposition{
		RequestID:   id,
		CatalogHash: e.catalog.Hash(),
		Duration:    elapsed,
		Letter:      letter,
	}, nil
}

// Snapshot returns a copy of the in-process counters.
func (e *Engine) Snapshot() Metrics {
	e.mu.Lock()
	defer e.mu.Unlock()
	m := Metrics{
		ByTool:    make(map[Tool]int64, len(e.byTool)),
		ByVerdict: make(map[latefee.Verdict]int64, len(e.byVerdict)),
		Errors:    e.errors,
	}
	for k, v := range e.byTool {
		m.ByTool[k] = v
	}
	for k, v := range e.byVerdict {
		m.ByVerdict[k] = v
	}
	return m
}

func (e *Engine) record(ctx context.Context, tool Tool, verdict latefee.Verdict) {
	attrs := []attribute.KeyValue{attribute.String("tool", string(tool))}
	if verdict != "" {
		attrs = append(attrs, attribute.String("verdict", string(verdict)))
	}
	if e.evalCounter != nil {
		e.evalCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	}

	e.mu.Lock()
	e.byTool[tool]++
	if verdict != "" {
		e.byVerdict[verdict]++
	}
	e.mu.Unlock()
}

func (e *Engine) recordError(ctx context.Context, tool Tool) {
	if e.evalCounter != nil {
		e.evalCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("tool", string(tool)),
			attribute.String("outcome", "error"),
		))
	}
	e.mu.Lock()
	e.errors++
	e.mu.Unlock()
}

// Package finance is the settlement engine. It moves money between the team
// fund, the personal accounts and the member-dues pool, and every operation
// it exposes commits as a single store transaction.
package finance

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/calculator"
	"github.com/alumnifc/clubledger/internal/metrics"
	"github.com/alumnifc/clubledger/internal/storage"
)

// DefaultBailoutHandler is stamped on team-fund bailout rows.
const DefaultBailoutHandler = "treasurer"

// Engine applies ledger operations against a Store.
type Engine struct {
	store          storage.Store
	metrics        *metrics.Metrics
	diningCap      decimal.Decimal
	bailoutHandler string
	log            *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics records operation outcomes and bailouts.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithDiningCap sets the per-person cap used when a bill does not carry one.
func WithDiningCap(limit decimal.Decimal) Option {
	return func(e *Engine) { e.diningCap = limit }
}

// WithBailoutHandler sets the handler name on team-fund bailout rows.
func WithBailoutHandler(name string) Option {
	return func(e *Engine) { e.bailoutHandler = name }
}

// WithLogger replaces slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an Engine over store.
func New(store storage.Store, opts ...Option) *Engine {
	e := &Engine{
		store:          store,
		diningCap:      calculator.DefaultDiningCap,
		bailoutHandler: DefaultBailoutHandler,
		log:            slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DiningCap is the configured default per-person cap.
func (e *Engine) DiningCap() decimal.Decimal {
	return e.diningCap
}

// run executes fn as one atomic unit and counts the outcome.
func (e *Engine) run(ctx context.Context, op string, fn func(tx storage.Tx) error) error {
	err := e.store.InTx(ctx, fn)
	e.metrics.Operation(op, outcome(err))
	return err
}

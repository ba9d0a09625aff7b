package ctxkeys

import (
	"errors"
	"time"

	"github.com/goliatone/go-contextkeys/internal/coerce"
)

// ErrNilService indicates a When was constructed without a Service.
var ErrNilService = errors.New("ctxkeys: service is required")

// ErrNilEvaluator indicates a When was constructed without an Evaluator.
var ErrNilEvaluator = errors.New("ctxkeys: evaluator is required")

// When evaluates when-clause predicates against the live context key state.
// Each evaluation snapshots the service so every key referenced by the clause
// belongs to the same consistent state, then coerces the engine result to a
// boolean by truthiness.
type When struct {
	service   Service
	evaluator Evaluator
	logger    EvaluatorLogger
}

// WhenOption configures a When instance.
type WhenOption func(*When)

// WhenWithLogger attaches an evaluator logger; every evaluation is reported
// with engine, expression, duration, and error.
func WhenWithLogger(logger EvaluatorLogger) WhenOption {
	return func(w *When) {
		if logger == nil {
			w.logger = noopEvaluatorLogger{}
			return
		}
		w.logger = logger
	}
}

// NewWhen constructs the predicate surface over service using evaluator.
func NewWhen(service Service, evaluator Evaluator, opts ...WhenOption) (*When, error) {
	if service == nil {
		return nil, ErrNilService
	}
	if evaluator == nil {
		return nil, ErrNilEvaluator
	}
	w := &When{
		service:   service,
		evaluator: evaluator,
		logger:    noopEvaluatorLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// Evaluate runs expression against the current key snapshot.
func (w *When) Evaluate(expression string) (bool, error) {
	ctx := EvalContext{Snapshot: w.service.Snapshot()}
	engine := evaluatorEngineName(w.evaluator)
	start := time.Now()
	value, err := w.evaluator.Evaluate(ctx, expression)
	duration := time.Since(start)
	err = wrapEvaluationError(engine, expression, err)
	w.logger.LogEvaluation(EvaluatorLogEvent{
		Engine:   engine,
		Expr:     expression,
		Duration: duration,
		Err:      err,
	})
	if err != nil {
		return false, err
	}
	return coerce.Bool(value), nil
}

// Compile pre-compiles expression for repeated evaluation; the snapshot is
// still taken fresh per Evaluate call.
func (w *When) Compile(expression string) (*CompiledWhen, error) {
	rule, err := w.evaluator.Compile(expression)
	if err != nil {
		return nil, wrapEvaluationError(evaluatorEngineName(w.evaluator), expression, err)
	}
	return &CompiledWhen{
		when:       w,
		rule:       rule,
		expression: expression,
	}, nil
}

// CompiledWhen is a reusable, pre-compiled when clause.
type CompiledWhen struct {
	when       *When
	rule       CompiledRule
	expression string
}

// Evaluate runs the compiled clause against the current key snapshot.
func (c *CompiledWhen) Evaluate() (bool, error) {
	engine := evaluatorEngineName(c.when.evaluator)
	ctx := EvalContext{Snapshot: c.when.service.Snapshot()}
	start := time.Now()
	value, err := c.rule.Evaluate(ctx)
	duration := time.Since(start)
	err = wrapEvaluationError(engine, c.expression, err)
	c.when.logger.LogEvaluation(EvaluatorLogEvent{
		Engine:   engine,
		Expr:     c.expression,
		Duration: duration,
		Err:      err,
	})
	if err != nil {
		return false, err
	}
	return coerce.Bool(value), nil
}

type namedEngine interface {
	engineName() string
}

func evaluatorEngineName(e Evaluator) string {
	if named, ok := e.(namedEngine); ok {
		return named.engineName()
	}
	return "custom"
}

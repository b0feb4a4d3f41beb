// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/circuitsmith/quantity-service/internal/domain"
	"github.com/circuitsmith/quantity-service/internal/domain/units"
	"github.com/circuitsmith/quantity-service/internal/ports"
)

// defaultBatchWorkers bounds concurrent batch validation when no limit is
// configured or supplied via feature flag.
const defaultBatchWorkers = 8

// defaultMaxBatchItems caps batch validation size when not configured.
const defaultMaxBatchItems = 500

// QuantityService orchestrates quantity parsing, validation, normalization
// and comparison use cases. It depends on port interfaces, not concrete
// implementations, following the Dependency Inversion Principle.
type QuantityService struct {
	engine        ports.QuantityEngine
	flags         ports.FeatureFlags
	executor      *Executor
	logger        *slog.Logger
	batchWorkers  int
	maxBatchItems int
}

// QuantityServiceConfig contains configuration for the quantity service.
type QuantityServiceConfig struct {
	Engine        ports.QuantityEngine
	Flags         ports.FeatureFlags
	Logger        *slog.Logger
	BatchWorkers  int
	MaxBatchItems int
}

// NewQuantityService creates a new quantity service with the provided dependencies.
func NewQuantityService(cfg QuantityServiceConfig) *QuantityService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	workers := cfg.BatchWorkers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	maxItems := cfg.MaxBatchItems
	if maxItems <= 0 {
		maxItems = defaultMaxBatchItems
	}

	return &QuantityService{
		engine:        cfg.Engine,
		flags:         cfg.Flags,
		executor:      NewExecutor(logger),
		logger:        logger,
		batchWorkers:  workers,
		maxBatchItems: maxItems,
	}
}

// BatchLimit returns the maximum number of entries accepted per batch
// validation request.
func (s *QuantityService) BatchLimit() int {
	return s.maxBatchItems
}

// Parse parses a raw magnitude-with-unit string, optionally validating it
// against an engineering context, and returns the value in both the unit
// the caller wrote and the context's storage form.
func (s *QuantityService) Parse(ctx context.Context, raw, contextName string) (*domain.AttributeValue, error) {
	engCtx, err := s.contextNamed(contextName)
	if err != nil {
		return nil, err
	}

	q, err := s.engine.ParseQuantity(raw, engCtx)
	if err != nil {
		s.logger.DebugContext(ctx, "parse rejected",
			slog.String("value", raw),
			slog.String("context", contextName),
			slog.Any("error", err),
		)

		return nil, err
	}

	return s.attributeValue(raw, q, engCtx), nil
}

// Validate runs the full validation use case through the transactional
// pattern: the input is parsed, the normalized form is verified to round-trip
// back into the unit the caller wrote, and only then is a result returned.
func (s *QuantityService) Validate(ctx context.Context, raw, contextName string) (*domain.AttributeValue, error) {
	engCtx, err := s.contextNamed(contextName)
	if err != nil {
		return nil, err
	}

	type verified struct {
		parsed     units.Quantity
		normalized units.Quantity
	}

	op := Operation[string, units.Quantity, verified, *domain.AttributeValue]{
		Name: "validate_quantity",
		Validate: func(_ context.Context, input string) error {
			if input == "" {
				return domain.NewValidationError("value", "value must not be empty")
			}

			return nil
		},
		Perform: func(_ context.Context, input string) (units.Quantity, error) {
			return s.engine.ParseQuantity(input, engCtx)
		},
		Verify: func(_ context.Context, _ string, parsed units.Quantity) (verified, error) {
			normalized := s.engine.Normalize(parsed, engCtx)

			// The normalized form must convert back into the unit the
			// caller wrote, or the table definitions are inconsistent.
			if !parsed.Unit().IsBare() {
				_, err := normalized.To(parsed.Unit())
				if err != nil {
					return verified{}, err
				}
			}

			return verified{parsed: parsed, normalized: normalized}, nil
		},
		Respond: func(_ context.Context, input string, v verified) (*domain.AttributeValue, error) {
			return s.attributeValue(input, v.parsed, engCtx), nil
		},
	}

	result, err := Execute(ctx, s.executor, op, raw)
	if err != nil {
		// Surface the domain error, not the execution wrapper.
		var execErr *ExecutionError
		if errors.As(err, &execErr) && execErr.Cause != nil {
			return nil, execErr.Cause
		}

		return nil, err
	}

	return result, nil
}

// BatchItem is one entry in a batch validation request.
type BatchItem struct {
	Value   string
	Context string
}

// BatchOutcome pairs a batch entry with its validation result. Exactly one
// of Result and Err is set.
type BatchOutcome struct {
	Item   BatchItem
	Result *domain.AttributeValue
	Err    error
}

// ValidateBatch validates many values concurrently with bounded parallelism.
// Individual failures do not abort the batch; each entry carries its own
// outcome in input order.
func (s *QuantityService) ValidateBatch(ctx context.Context, items []BatchItem) []BatchOutcome {
	workers := s.batchWorkers
	if s.flags != nil {
		workers = s.flags.GetInt(ctx, "validate.batch-workers", workers)
	}

	fns := make([]func(context.Context) (*domain.AttributeValue, error), len(items))
	for i, item := range items {
		fns[i] = func(ctx context.Context) (*domain.AttributeValue, error) {
			return s.Parse(ctx, item.Value, item.Context)
		}
	}

	partials := ParallelPartialLimit(ctx, workers, fns...)

	outcomes := make([]BatchOutcome, len(items))
	failures := 0

	for i, p := range partials {
		outcomes[i] = BatchOutcome{Item: items[i], Result: p.Value, Err: p.Err}
		if p.Err != nil {
			failures++
		}
	}

	s.logger.InfoContext(ctx, "batch validation completed",
		slog.Int("total", len(items)),
		slog.Int("failed", failures),
	)

	return outcomes
}

// Normalize parses a raw value and rewrites it into its context's default
// unit. Values outside every context come back unchanged.
func (s *QuantityService) Normalize(ctx context.Context, raw, contextName string) (*domain.AttributeValue, error) {
	return s.Parse(ctx, raw, contextName)
}

// Comparison is the outcome of comparing two quantities.
type Comparison struct {
	// Comparable reports whether the two units convert into one another.
	Comparable bool

	// Relation is "lt", "eq" or "gt" when both inputs carried magnitudes
	// and the units are comparable; empty otherwise.
	Relation string
}

// Compare parses two raw values concurrently and reports whether their
// units are comparable, along with the ordering of the magnitudes when
// they are.
func (s *QuantityService) Compare(ctx context.Context, rawA, rawB string) (*Comparison, error) {
	qa, qb, err := Parallel2(ctx,
		func(context.Context) (units.Quantity, error) { return s.engine.ParseQuantity(rawA, "") },
		func(context.Context) (units.Quantity, error) { return s.engine.ParseQuantity(rawB, "") },
	)
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{Comparable: s.engine.Comparable(qa.Unit(), qb.Unit())}
	if !cmp.Comparable {
		return cmp, nil
	}

	converted, err := qb.To(qa.Unit())
	if err != nil {
		// Comparable units always convert; a failure here means the unit
		// table is inconsistent.
		return nil, err
	}

	switch {
	case qa.Magnitude() < converted.Magnitude():
		cmp.Relation = "lt"
	case qa.Magnitude() > converted.Magnitude():
		cmp.Relation = "gt"
	default:
		cmp.Relation = "eq"
	}

	return cmp, nil
}

// ComparableUnits reports whether two unit spellings are comparable.
// Unknown symbols are not comparable rather than an error.
func (s *QuantityService) ComparableUnits(_ context.Context, a, b string) bool {
	return s.engine.ComparableSymbols(a, b)
}

// UnitDetail describes a resolved unit for catalog consumers.
type UnitDetail struct {
	// Symbol is the spelling the caller asked about.
	Symbol string

	// Canonical is the engine's spelling for the resolved unit.
	Canonical string

	// Context is the engineering context the unit belongs to, if any.
	Context string

	// Dimensionless marks units carrying no physical dimension.
	Dimensionless bool
}

// UnitInfo resolves a unit symbol and describes it. Unknown symbols return
// domain.ErrNotFound.
func (s *QuantityService) UnitInfo(_ context.Context, symbol string) (*UnitDetail, error) {
	u, err := s.engine.Resolve(symbol)
	if err != nil {
		return nil, domain.NewNotFoundError("unit", symbol)
	}

	detail := &UnitDetail{
		Symbol:        symbol,
		Canonical:     u.String(),
		Dimensionless: u.IsDimensionless(),
	}

	if engCtx, ok := s.engine.ContextOf(symbol); ok {
		detail.Context = string(engCtx)
	}

	return detail, nil
}

// UnitContext reports the engineering context a unit symbol belongs to.
// A resolvable unit outside every context yields an empty context name;
// an unknown symbol is domain.ErrNotFound.
func (s *QuantityService) UnitContext(_ context.Context, symbol string) (string, error) {
	if !s.engine.IsUnit(symbol) {
		return "", domain.NewNotFoundError("unit", symbol)
	}

	engCtx, ok := s.engine.ContextOf(symbol)
	if !ok {
		return "", nil
	}

	return string(engCtx), nil
}

// ContextInfo describes one engineering context.
type ContextInfo struct {
	Name        string
	BaseUnit    string
	DefaultUnit string
}

// Contexts lists every engineering context with its canonical and storage
// units, in the engine's stable order.
func (s *QuantityService) Contexts(context.Context) []ContextInfo {
	names := s.engine.Contexts()
	infos := make([]ContextInfo, 0, len(names))

	for _, name := range names {
		info := ContextInfo{Name: string(name)}

		if base, ok := s.engine.BaseUnit(name); ok {
			info.BaseUnit = base.String()
		}

		if def, ok := s.engine.DefaultUnit(name); ok {
			info.DefaultUnit = def.String()
		}

		infos = append(infos, info)
	}

	return infos
}

// UnitSymbols lists every registered unit spelling in sorted order.
// Derived prefixed and compound spellings are not enumerated.
func (s *QuantityService) UnitSymbols(context.Context) []string {
	return s.engine.Symbols()
}

// IsNumber reports whether a raw string is a plain number with no unit.
func (s *QuantityService) IsNumber(_ context.Context, raw string) bool {
	return units.IsNumber(raw)
}

// IsUnit reports whether a symbol resolves to a known unit.
func (s *QuantityService) IsUnit(_ context.Context, symbol string) bool {
	return s.engine.IsUnit(symbol)
}

// contextNamed validates a context name supplied by the caller. The empty
// name means no context restriction.
func (s *QuantityService) contextNamed(name string) (units.Context, error) {
	if name == "" {
		return "", nil
	}

	for _, known := range s.engine.Contexts() {
		if string(known) == name {
			return known, nil
		}
	}

	return "", domain.NewValidationErrorWithValue("context", "unknown context", name)
}

// attributeValue assembles the parse result plus its storage form.
func (s *QuantityService) attributeValue(raw string, q units.Quantity, engCtx units.Context) *domain.AttributeValue {
	normalized := s.engine.Normalize(q, engCtx)

	return &domain.AttributeValue{
		Raw:                 raw,
		Context:             string(engCtx),
		Magnitude:           q.Magnitude(),
		Unit:                q.Unit().String(),
		NormalizedMagnitude: normalized.Magnitude(),
		NormalizedUnit:      normalized.Unit().String(),
		Dimensionless:       q.Unit().IsDimensionless(),
	}
}

// Package ports defines interfaces for the application layer's dependencies.
// Ports are contracts that concrete implementations satisfy, allowing the
// application layer to depend on abstractions rather than concrete types.
//
// Port Design Principles:
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrValidation)
//   - Methods represent business operations, not CRUD operations
//   - Keep interfaces small and focused (Interface Segregation Principle)
//
// The engine port carries no context.Context: every operation is a pure
// in-memory computation over an immutable unit table, with nothing to
// cancel and no deadline to honor.
package ports

import (
	"github.com/circuitsmith/quantity-service/internal/domain/units"
)

// QuantityEngine is the contract the application layer uses to reach the
// unit engine. The canonical implementation is *units.Registry; tests may
// substitute fakes to exercise failure paths.
type QuantityEngine interface {
	// ParseQuantity parses a magnitude-with-unit string, optionally
	// validating it against an engineering context. Failures unwrap to
	// domain.ErrValidation.
	ParseQuantity(text string, ctx units.Context) (units.Quantity, error)

	// ParserFor returns a parse function bound to one context.
	ParserFor(ctx units.Context) func(text string) (units.Quantity, error)

	// Normalize rewrites a quantity into its context's default unit.
	// Quantities outside every context are returned unchanged.
	Normalize(q units.Quantity, ctx units.Context) units.Quantity

	// Comparable reports whether two units can be converted into one
	// another for ordering and range checks.
	Comparable(a, b units.Unit) bool

	// ComparableSymbols is Comparable over raw unit spellings. Unknown
	// symbols are not comparable rather than an error.
	ComparableSymbols(a, b string) bool

	// Resolve looks up a unit by symbol, deriving prefixed and compound
	// spellings on demand.
	Resolve(symbol string) (units.Unit, error)

	// IsUnit reports whether a symbol resolves to a known unit.
	IsUnit(symbol string) bool

	// Symbols lists every registered unit spelling in sorted order.
	Symbols() []string

	// ContextOf reports which engineering context a unit symbol belongs
	// to, if any.
	ContextOf(symbol string) (units.Context, bool)

	// Contexts lists every known engineering context in stable order.
	Contexts() []units.Context

	// BaseUnit returns the canonical unit a context validates against.
	BaseUnit(ctx units.Context) (units.Unit, bool)

	// DefaultUnit returns the unit a context normalizes into.
	DefaultUnit(ctx units.Context) (units.Unit, bool)
}

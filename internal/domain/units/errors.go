package units

import (
	"fmt"

	"github.com/circuitsmith/quantity-service/internal/domain"
)

// UnknownUnitError indicates a symbol that does not resolve in the
// vocabulary, either directly or via SI prefixes and compound forms.
type UnknownUnitError struct {
	Symbol string
}

// Error implements the error interface.
func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Symbol)
}

// Unwrap returns the domain validation sentinel for errors.Is() support.
func (e *UnknownUnitError) Unwrap() error {
	return domain.ErrValidation
}

// ParseErrorKind identifies the class of a quantity parse failure so
// callers can produce a specific user-facing message for each.
type ParseErrorKind string

const (
	// ParseErrorNoMagnitude means the text does not start with a number.
	ParseErrorNoMagnitude ParseErrorKind = "no_magnitude"

	// ParseErrorUnknownUnit means the unit suffix did not resolve.
	ParseErrorUnknownUnit ParseErrorKind = "unknown_unit"

	// ParseErrorMissingUnit means a bare number was supplied where the
	// requested context requires an explicit unit.
	ParseErrorMissingUnit ParseErrorKind = "missing_unit"

	// ParseErrorWrongContext means the unit resolved but is not
	// convertible to the context's canonical unit.
	ParseErrorWrongContext ParseErrorKind = "wrong_context"
)

// ParseError is returned by ParseQuantity. It carries the offending
// text, unit and context for user-facing messages.
type ParseError struct {
	Kind    ParseErrorKind
	Text    string
	Unit    string
	Context Context
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseErrorNoMagnitude:
		return fmt.Sprintf("no magnitude supplied in %s value %q", e.contextName(), e.Text)
	case ParseErrorUnknownUnit:
		return fmt.Sprintf("unknown unit %q", e.Unit)
	case ParseErrorMissingUnit:
		return fmt.Sprintf("%q has no unit", e.Text)
	case ParseErrorWrongContext:
		return fmt.Sprintf("unit %q is not a valid %s unit", e.Unit, e.Context)
	default:
		return fmt.Sprintf("cannot parse quantity %q", e.Text)
	}
}

// Unwrap returns the domain validation sentinel for errors.Is() support.
func (e *ParseError) Unwrap() error {
	return domain.ErrValidation
}

func (e *ParseError) contextName() string {
	if e.Context == "" {
		return "quantity"
	}
	return string(e.Context)
}

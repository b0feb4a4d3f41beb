package units

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// magnitudeGrammar is the single numeric grammar shared by ParseQuantity
// and IsNumber so the two can never drift apart: optional sign, then a
// decimal number or the literal "inf".
const magnitudeGrammar = `-?(?:[0-9]+(?:\.[0-9]+)?|inf)`

var (
	magnitudePrefixRe = regexp.MustCompile(`^` + magnitudeGrammar)
	bareNumberRe      = regexp.MustCompile(`^` + magnitudeGrammar + `$`)
)

// Quantity is an immutable magnitude/unit pair. The magnitude is finite
// or one of the two signed infinities; the unit comes from the
// vocabulary. Conversion produces a new Quantity.
type Quantity struct {
	magnitude float64
	unit      Unit
}

// NewQuantity pairs a magnitude with a unit.
func NewQuantity(magnitude float64, unit Unit) Quantity {
	return Quantity{magnitude: magnitude, unit: unit}
}

// Magnitude returns the numeric magnitude.
func (q Quantity) Magnitude() float64 { return q.magnitude }

// Unit returns the unit.
func (q Quantity) Unit() Unit { return q.unit }

// Equal reports whether two quantities have the same magnitude and unit.
func (q Quantity) Equal(other Quantity) bool {
	return q.magnitude == other.magnitude && q.unit.Equal(other.unit)
}

// String renders the quantity for logs and messages, e.g. "100 kiloohm".
func (q Quantity) String() string {
	if q.unit.IsBare() {
		return strconv.FormatFloat(q.magnitude, 'g', -1, 64)
	}
	return fmt.Sprintf("%s %s", strconv.FormatFloat(q.magnitude, 'g', -1, 64), q.unit)
}

// To converts the quantity into the target unit. It fails when the two
// units do not share a dimension.
func (q Quantity) To(target Unit) (Quantity, error) {
	if !q.unit.Compatible(target) {
		return Quantity{}, fmt.Errorf("cannot convert %s to %s: dimensionality mismatch", q.unit, target)
	}
	return Quantity{
		magnitude: q.unit.convert(q.magnitude, target),
		unit:      target,
	}, nil
}

// ParseQuantity parses a textual magnitude+unit value such as "100k",
// "3.3V" or "inf" into a Quantity, optionally validated against a
// context. The returned quantity keeps the unit the caller wrote;
// context validation only checks convertibility to the context's
// canonical unit.
func (r *Registry) ParseQuantity(text string, ctx Context) (Quantity, error) {
	if !magnitudePrefixRe.MatchString(text) {
		return Quantity{}, &ParseError{Kind: ParseErrorNoMagnitude, Text: text, Context: ctx}
	}

	magnitude, unitText := splitMagnitude(text)

	q, err := r.quantityFor(magnitude, unitText, text, ctx)
	if err != nil {
		return Quantity{}, err
	}

	if ctx != "" {
		base, ok := r.baseUnits[ctx]
		if !ok {
			return Quantity{}, fmt.Errorf("unknown context %q", ctx)
		}
		if _, err := q.To(base); err != nil {
			return Quantity{}, &ParseError{
				Kind:    ParseErrorWrongContext,
				Text:    text,
				Unit:    q.unit.Symbol(),
				Context: ctx,
			}
		}
	}

	return q, nil
}

// ParserFor returns a parser bound to one context, for form-binding
// callers that validate many values against the same attribute.
func (r *Registry) ParserFor(ctx Context) func(string) (Quantity, error) {
	return func(text string) (Quantity, error) {
		return r.ParseQuantity(text, ctx)
	}
}

// splitMagnitude separates the numeric prefix from the unit suffix.
// "inf" and "-inf" need special handling since they are words, not
// digits.
func splitMagnitude(text string) (float64, string) {
	switch {
	case strings.HasPrefix(text, "inf"):
		return math.Inf(1), text[len("inf"):]
	case strings.HasPrefix(text, "-inf"):
		return math.Inf(-1), text[len("-inf"):]
	default:
		numeric := magnitudePrefixRe.FindString(text)
		magnitude, _ := strconv.ParseFloat(numeric, 64)
		return magnitude, text[len(numeric):]
	}
}

// quantityFor resolves the unit suffix and applies the dimensionless
// guard: under a context a bare number is an error, never silently a
// dimensionless quantity.
func (r *Registry) quantityFor(magnitude float64, unitText, text string, ctx Context) (Quantity, error) {
	unitText = strings.TrimSpace(unitText)

	if unitText == "" {
		if ctx != "" {
			return Quantity{}, &ParseError{Kind: ParseErrorMissingUnit, Text: text, Context: ctx}
		}
		return NewQuantity(magnitude, One), nil
	}

	unit, err := r.Resolve(unitText)
	if err != nil {
		return Quantity{}, &ParseError{Kind: ParseErrorUnknownUnit, Text: text, Unit: unitText, Context: ctx}
	}

	return NewQuantity(magnitude, unit), nil
}

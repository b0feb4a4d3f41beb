package units

import "math"

// Unit is an immutable symbol over the dimensional algebra. A unit is
// fully described by its dimension vector, its scale factor to the
// coherent base unit of that dimension, and an optional additive offset
// (degrees Celsius). The symbol is cosmetic and does not participate in
// equality.
type Unit struct {
	symbol string
	dim    Dimension
	scale  float64
	offset float64

	// family separates dimensionless vocabularies (angle, count,
	// information) that the dimension vector alone cannot tell apart.
	// It is part of unit identity but never blocks conversion: the
	// dimensionless normalization table owns those semantics.
	family string
}

// One is the dimensionless unit carried by bare numbers. It is distinct
// from dimensionless units with a symbol (percent, degree, bit): a bare
// number can never be normalized or validated against a context.
var One = Unit{scale: 1}

// Symbol returns the display symbol, e.g. "kiloohm" or "uF".
// The bare-number unit has an empty symbol.
func (u Unit) Symbol() string { return u.symbol }

// String implements fmt.Stringer.
func (u Unit) String() string {
	if u.symbol == "" {
		return "dimensionless"
	}
	return u.symbol
}

// Dimension returns the unit's dimension vector.
func (u Unit) Dimension() Dimension { return u.dim }

// IsDimensionless reports whether the unit's dimension vector is zero.
// Percent, degrees, bits and counts are all dimensionless; the algebra
// alone cannot tell them apart, which is what the dimensionless
// normalization table is for.
func (u Unit) IsDimensionless() bool { return u.dim.IsZero() }

// IsBare reports whether this is the unit of a plain number (no symbol).
func (u Unit) IsBare() bool { return u == One }

// Equal reports whether two units are the same unit: identical dimension
// vectors, scale factors and offsets. Symbols are ignored, so "kohm" and
// "kiloohm" are equal.
func (u Unit) Equal(other Unit) bool {
	return u.dim == other.dim && u.scale == other.scale &&
		u.offset == other.offset && u.family == other.family
}

// Compatible reports whether a defined conversion exists between the two
// units, i.e. they share a dimension vector.
func (u Unit) Compatible(other Unit) bool {
	return u.dim == other.dim
}

// factorTo returns the multiplicative factor converting a magnitude in u
// to a magnitude in target. Valid only for offset-free compatible units.
func (u Unit) factorTo(target Unit) float64 {
	return u.scale / target.scale
}

// convert maps a magnitude in u to a magnitude in target, honoring
// additive offsets (Celsius to Kelvin and back).
func (u Unit) convert(magnitude float64, target Unit) float64 {
	if u.offset == 0 && target.offset == 0 {
		return magnitude * u.factorTo(target)
	}
	base := magnitude*u.scale + u.offset
	return (base - target.offset) / target.scale
}

// mul returns the product unit, used when deriving compound symbols.
// Multiplying by the bare unit preserves the other operand's family.
func (u Unit) mul(other Unit) Unit {
	return Unit{
		symbol: joinSymbols(u.symbol, "*", other.symbol),
		dim:    u.dim.Mul(other.dim),
		scale:  u.scale * other.scale,
		family: combineFamilies(u, other),
	}
}

// div returns the quotient unit.
func (u Unit) div(other Unit) Unit {
	return Unit{
		symbol: joinSymbols(u.symbol, "/", other.symbol),
		dim:    u.dim.Div(other.dim),
		scale:  u.scale / other.scale,
		family: combineFamilies(u, other),
	}
}

// pow returns the unit raised to an exponent.
func (u Unit) pow(exp float64) Unit {
	return Unit{
		symbol: u.symbol,
		dim:    u.dim.Pow(exp),
		scale:  math.Pow(u.scale, exp),
		family: u.family,
	}
}

func combineFamilies(a, b Unit) string {
	switch {
	case b.IsBare() || b.family == "":
		return a.family
	case a.IsBare() || a.family == "":
		return b.family
	default:
		return ""
	}
}

func joinSymbols(a, op, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + op + b
}

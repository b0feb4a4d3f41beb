// Package units implements the quantity engine: a fixed vocabulary of
// engineering units over a small dimensional algebra, plus parsing,
// normalization and comparability checks for textual magnitudes such as
// "100k", "3.3V" or "10uF".
package units

// Dimension is a vector of exponents over the base physical dimensions.
// The zero value is dimensionless. Exponents are floats so derived units
// with fractional powers (root-hertz) stay representable.
//
// The three decibel dimensions are not physical: each logarithmic unit
// family gets its own axis so decibel values never silently convert into
// one another or into plain numbers.
type Dimension struct {
	Length      float64
	Mass        float64
	Time        float64
	Current     float64
	Temperature float64
	Substance   float64
	Luminosity  float64

	Decibel          float64
	DecibelMilliwatt float64
	DecibelAWeighted float64
}

// IsZero reports whether the dimension is dimensionless.
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// Mul returns the dimension of a product of two units.
func (d Dimension) Mul(other Dimension) Dimension {
	return Dimension{
		Length:           d.Length + other.Length,
		Mass:             d.Mass + other.Mass,
		Time:             d.Time + other.Time,
		Current:          d.Current + other.Current,
		Temperature:      d.Temperature + other.Temperature,
		Substance:        d.Substance + other.Substance,
		Luminosity:       d.Luminosity + other.Luminosity,
		Decibel:          d.Decibel + other.Decibel,
		DecibelMilliwatt: d.DecibelMilliwatt + other.DecibelMilliwatt,
		DecibelAWeighted: d.DecibelAWeighted + other.DecibelAWeighted,
	}
}

// Div returns the dimension of a quotient of two units.
func (d Dimension) Div(other Dimension) Dimension {
	return d.Mul(other.Pow(-1))
}

// Pow returns the dimension raised to the given exponent.
func (d Dimension) Pow(exp float64) Dimension {
	return Dimension{
		Length:           d.Length * exp,
		Mass:             d.Mass * exp,
		Time:             d.Time * exp,
		Current:          d.Current * exp,
		Temperature:      d.Temperature * exp,
		Substance:        d.Substance * exp,
		Luminosity:       d.Luminosity * exp,
		Decibel:          d.Decibel * exp,
		DecibelMilliwatt: d.DecibelMilliwatt * exp,
		DecibelAWeighted: d.DecibelAWeighted * exp,
	}
}

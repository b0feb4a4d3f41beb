// Package domain contains core business entities and rules.
package domain

// AttributeValue is a catalog attribute value after validation: the raw
// text the user supplied, the engineering context it was validated
// against, and the parsed and normalized forms. It has no knowledge of
// external systems; the catalog layer owns persistence.
type AttributeValue struct {
	// Raw is the text exactly as supplied, e.g. "100k".
	Raw string

	// Context is the engineering domain the value was validated
	// against; empty when no context was requested.
	Context string

	// Magnitude and Unit are the parsed value in the unit the user
	// wrote.
	Magnitude float64
	Unit      string

	// NormalizedMagnitude and NormalizedUnit are the storage form, in
	// the context's default unit.
	NormalizedMagnitude float64
	NormalizedUnit      string

	// Dimensionless marks values whose unit carries no physical
	// dimension (percent, angle, information sizes, bare numbers).
	Dimensionless bool
}

package units

// Comparable decides whether two units can be meaningfully converted
// into each other. Equal units always compare; dimensionless units
// compare only within their normalization group (the algebra alone
// would convert bits into degrees); everything else reduces to a
// conversion attempt of a magnitude-1 quantity, the final authority on
// dimensional compatibility. It never fails.
func (r *Registry) Comparable(a, b Unit) bool {
	if a.Equal(b) {
		return true
	}

	if a.IsDimensionless() || b.IsDimensionless() {
		grouped := false
		for _, group := range r.dimensionless {
			inA, inB := group.Contains(a), group.Contains(b)
			if inA && inB {
				return true
			}
			grouped = grouped || inA || inB
		}
		// A grouped unit never compares outside its group.
		if grouped {
			return false
		}
	}

	_, err := NewQuantity(1, a).To(b)

	return err == nil
}

// ComparableSymbols resolves both symbols and compares them. Unknown
// symbols are simply not comparable; no error is reported.
func (r *Registry) ComparableSymbols(a, b string) bool {
	unitA, err := r.Resolve(a)
	if err != nil {
		return false
	}
	unitB, err := r.Resolve(b)
	if err != nil {
		return false
	}
	return r.Comparable(unitA, unitB)
}

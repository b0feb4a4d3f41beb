package units

// Normalize converts a quantity to the default unit of the context it
// belongs to. It is total over well-formed quantities and idempotent:
// anything that matches no context comes back unchanged, and a quantity
// already in its default unit is returned as-is.
//
// An explicit context narrows the search to that context's tables; the
// zero Context scans all of them.
func (r *Registry) Normalize(q Quantity, ctx Context) Quantity {
	if q.unit.IsDimensionless() {
		return r.normalizeDimensionless(q)
	}
	return r.normalizeDimensional(q, ctx)
}

// normalizeDimensionless consults the dimensionless normalization table.
// The algebra happily converts any dimensionless unit into any other
// (1 byte would become 458.37 degrees), so only the hardcoded groups are
// allowed to normalize.
func (r *Registry) normalizeDimensionless(q Quantity) Quantity {
	// Plain numbers can never be normalized.
	if q.unit.IsBare() {
		return q
	}

	for _, group := range r.dimensionless {
		if q.unit.Equal(group.Default) {
			return q
		}
		if group.Contains(q.unit) {
			converted, err := q.To(group.Default)
			if err != nil {
				return q
			}
			return converted
		}
	}

	return q
}

// normalizeDimensional finds the context whose canonical unit shares the
// quantity's dimension and converts to that context's default unit.
func (r *Registry) normalizeDimensional(q Quantity, ctx Context) Quantity {
	order := r.contextOrder
	if ctx != "" {
		order = []Context{ctx}
	}

	for _, candidate := range order {
		base, ok := r.baseUnits[candidate]
		if !ok || !base.Compatible(q.unit) {
			continue
		}

		target := r.defaultUnits[candidate]
		if q.unit.Equal(target) {
			return q
		}

		converted, err := q.To(target)
		if err != nil {
			return q
		}
		return converted
	}

	// Not part of any context; nothing to normalize.
	return q
}

package units

// IsNumber reports whether a value is a plain number: a numeric scalar,
// or a string matching the bare numeric grammar with no unit suffix
// ("5", "-2.5", "inf"). A Quantity is not a plain number even when its
// unit is dimensionless.
func IsNumber(value any) bool {
	switch v := value.(type) {
	case Quantity:
		return false
	case string:
		return bareNumberRe.MatchString(v)
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// IsUnit reports whether the symbol resolves in the vocabulary.
func (r *Registry) IsUnit(symbol string) bool {
	_, err := r.Resolve(symbol)
	return err == nil
}

// ContextOf resolves a symbol and returns the context it belongs to.
// The dimensionless normalization groups are consulted first, then the
// canonical-unit table. A unit outside every context (and an unknown
// symbol) yields ok=false; that is a valid outcome, not a failure.
func (r *Registry) ContextOf(symbol string) (Context, bool) {
	unit, err := r.Resolve(symbol)
	if err != nil {
		return "", false
	}

	compatible := func(base Unit) bool { return base.Compatible(unit) }

	if unit.IsDimensionless() {
		group, ok := r.groupOf(unit)
		if !ok {
			return "", false
		}
		compatible = group.Contains
	}

	for _, ctx := range r.contextOrder {
		if compatible(r.baseUnits[ctx]) {
			return ctx, true
		}
	}

	return "", false
}

// groupOf finds the dimensionless group containing the unit.
func (r *Registry) groupOf(unit Unit) (DimensionlessGroup, bool) {
	for _, group := range r.dimensionless {
		if group.Contains(unit) {
			return group, true
		}
	}
	return DimensionlessGroup{}, false
}

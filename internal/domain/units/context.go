package units

// Context is an engineering domain with exactly one canonical unit.
// The set is closed and defined at build time.
type Context string

const (
	ContextResistance  Context = "resistance"
	ContextCurrent     Context = "current"
	ContextVoltage     Context = "voltage"
	ContextPower       Context = "power"
	ContextCapacitance Context = "capacitance"
	ContextInductance  Context = "inductance"
	ContextTemperature Context = "temperature"
	ContextLength      Context = "length"
	ContextAngle       Context = "angle"
	ContextFrequency   Context = "frequency"
	ContextTime        Context = "time"
	ContextInformation Context = "information"
	ContextPressure    Context = "pressure"
)

// DimensionlessGroup manually groups dimensionless units the algebra
// cannot distinguish into one normalization family. Default is the unit
// the family normalizes to and is itself a member.
type DimensionlessGroup struct {
	Default Unit
	Members []Unit
}

// Contains reports whether the unit is a member of the group.
func (g DimensionlessGroup) Contains(u Unit) bool {
	for _, member := range g.Members {
		if member.Equal(u) {
			return true
		}
	}
	return false
}

// defineContexts wires the context tables. Base units are the SI-style
// canonical units used for membership checks; default units are what
// values normalize to for storage and are identical except for
// capacitance (uF) and length (mm), which match the scale of the
// catalog's data.
func (r *Registry) defineContexts() {
	r.contextOrder = []Context{
		ContextResistance,
		ContextCurrent,
		ContextVoltage,
		ContextPower,
		ContextCapacitance,
		ContextInductance,
		ContextTemperature,
		ContextLength,
		ContextAngle,
		ContextFrequency,
		ContextTime,
		ContextInformation,
		ContextPressure,
	}

	base := map[Context]string{
		ContextResistance:  "ohm",
		ContextCurrent:     "A",
		ContextVoltage:     "V",
		ContextPower:       "W",
		ContextCapacitance: "F",
		ContextInductance:  "H",
		ContextTemperature: "degC",
		ContextLength:      "m",
		ContextAngle:       "deg",
		ContextFrequency:   "Hz",
		ContextTime:        "s",
		ContextInformation: "bit",
		ContextPressure:    "Pa",
	}

	for ctx, symbol := range base {
		u := r.MustResolve(symbol)
		r.baseUnits[ctx] = u
		r.defaultUnits[ctx] = u
	}

	r.defaultUnits[ContextCapacitance] = r.MustResolve("uF")
	r.defaultUnits[ContextLength] = r.MustResolve("mm")

	r.dimensionless = []DimensionlessGroup{
		{
			Default: r.MustResolve("deg"),
			Members: []Unit{
				r.MustResolve("rad"),
				r.MustResolve("mrad"),
				r.MustResolve("deg"),
			},
		},
		{
			Default: r.MustResolve("bit"),
			Members: []Unit{
				r.MustResolve("bit"),
				r.MustResolve("kbit"),
				r.MustResolve("Mbit"),
				r.MustResolve("gigabit"),
				r.MustResolve("byte"),
				r.MustResolve("kbyte"),
				r.MustResolve("Mbyte"),
				r.MustResolve("gigabyte"),
			},
		},
	}
}

// Contexts returns the closed set of contexts in a stable order.
func (r *Registry) Contexts() []Context {
	out := make([]Context, len(r.contextOrder))
	copy(out, r.contextOrder)
	return out
}

// BaseUnit returns the canonical unit for a context.
func (r *Registry) BaseUnit(ctx Context) (Unit, bool) {
	u, ok := r.baseUnits[ctx]
	return u, ok
}

// DefaultUnit returns the storage unit values normalize to for a context.
func (r *Registry) DefaultUnit(ctx Context) (Unit, bool) {
	u, ok := r.defaultUnits[ctx]
	return u, ok
}

// DimensionlessGroups returns the dimensionless normalization table.
func (r *Registry) DimensionlessGroups() []DimensionlessGroup {
	return r.dimensionless
}

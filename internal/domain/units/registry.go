package units

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Registry is the process-wide unit vocabulary and context table. It is
// built exactly once with NewRegistry, before any concurrent use, and is
// immutable afterwards: there are no setters, and every resolver method
// is a pure read. Callers receive it by reference through constructor
// injection.
type Registry struct {
	byName   map[string]Unit
	prefixes []prefix

	baseUnits     map[Context]Unit
	defaultUnits  map[Context]Unit
	contextOrder  []Context
	dimensionless []DimensionlessGroup
}

type prefix struct {
	text   string
	factor float64
}

// standardGravity is the conventional g0 in m/s^2.
const standardGravity = 9.80665

// NewRegistry builds the full vocabulary: SI base and derived units, SI
// prefixes, the catalog's custom definitions, and the context tables.
func NewRegistry() *Registry {
	r := &Registry{
		byName:       make(map[string]Unit),
		baseUnits:    make(map[Context]Unit),
		defaultUnits: make(map[Context]Unit),
	}

	r.definePrefixes()
	r.defineBaseUnits()
	r.defineDerivedUnits()
	r.defineCatalogUnits()
	r.defineContexts()

	return r
}

func (r *Registry) definePrefixes() {
	factors := map[string]float64{
		"da": 1e1, "h": 1e2, "k": 1e3, "M": 1e6, "G": 1e9,
		"T": 1e12, "P": 1e15, "E": 1e18,
		"d": 1e-1, "c": 1e-2, "m": 1e-3, "u": 1e-6, "µ": 1e-6,
		"n": 1e-9, "p": 1e-12, "f": 1e-15, "a": 1e-18,
		"deca": 1e1, "hecto": 1e2, "kilo": 1e3, "mega": 1e6, "giga": 1e9,
		"tera": 1e12, "peta": 1e15, "exa": 1e18,
		"deci": 1e-1, "centi": 1e-2, "milli": 1e-3, "micro": 1e-6,
		"nano": 1e-9, "pico": 1e-12, "femto": 1e-15, "atto": 1e-18,
	}

	r.prefixes = make([]prefix, 0, len(factors))
	for text, factor := range factors {
		r.prefixes = append(r.prefixes, prefix{text: text, factor: factor})
	}

	// Longest first so "milli" beats "m" for full-name symbols.
	sort.Slice(r.prefixes, func(i, j int) bool {
		if len(r.prefixes[i].text) != len(r.prefixes[j].text) {
			return len(r.prefixes[i].text) > len(r.prefixes[j].text)
		}
		return r.prefixes[i].text < r.prefixes[j].text
	})
}

func (r *Registry) defineBaseUnits() {
	r.add(Unit{symbol: "m", dim: Dimension{Length: 1}, scale: 1}, "meter", "metre")
	r.add(Unit{symbol: "g", dim: Dimension{Mass: 1}, scale: 1e-3}, "gram")
	r.add(Unit{symbol: "s", dim: Dimension{Time: 1}, scale: 1}, "sec", "second")
	r.add(Unit{symbol: "A", dim: Dimension{Current: 1}, scale: 1}, "amp", "ampere")
	r.add(Unit{symbol: "K", dim: Dimension{Temperature: 1}, scale: 1}, "kelvin")
	r.add(Unit{symbol: "mol", dim: Dimension{Substance: 1}, scale: 1}, "mole")
	r.add(Unit{symbol: "cd", dim: Dimension{Luminosity: 1}, scale: 1}, "candela")
}

func (r *Registry) defineDerivedUnits() {
	r.add(Unit{symbol: "degC", dim: Dimension{Temperature: 1}, scale: 1, offset: 273.15},
		"celsius", "degreeC")

	r.add(Unit{symbol: "Hz", dim: Dimension{Time: -1}, scale: 1}, "hertz")
	r.add(Unit{symbol: "N", dim: Dimension{Mass: 1, Length: 1, Time: -2}, scale: 1}, "newton")
	r.add(Unit{symbol: "J", dim: Dimension{Mass: 1, Length: 2, Time: -2}, scale: 1}, "joule")
	r.add(Unit{symbol: "W", dim: Dimension{Mass: 1, Length: 2, Time: -3}, scale: 1}, "watt")
	r.add(Unit{symbol: "C", dim: Dimension{Current: 1, Time: 1}, scale: 1}, "coulomb")
	r.add(Unit{symbol: "V", dim: Dimension{Mass: 1, Length: 2, Time: -3, Current: -1}, scale: 1},
		"volt")
	r.add(Unit{symbol: "ohm", dim: Dimension{Mass: 1, Length: 2, Time: -3, Current: -2}, scale: 1})
	r.add(Unit{symbol: "F", dim: Dimension{Mass: -1, Length: -2, Time: 4, Current: 2}, scale: 1},
		"farad")
	r.add(Unit{symbol: "H", dim: Dimension{Mass: 1, Length: 2, Time: -2, Current: -2}, scale: 1},
		"henry")
	r.add(Unit{symbol: "Pa", dim: Dimension{Mass: 1, Length: -1, Time: -2}, scale: 1}, "pascal")

	r.add(Unit{symbol: "min", dim: Dimension{Time: 1}, scale: 60}, "minute")
	r.add(Unit{symbol: "h", dim: Dimension{Time: 1}, scale: 3600}, "hr", "hour")

	// Dimensionless families. The family tag keeps angle, count and
	// information units distinct for identity and grouping while the
	// algebra still treats them all as plain scale factors.
	r.add(Unit{symbol: "rad", family: "angle", scale: 1}, "radian")
	r.add(Unit{symbol: "deg", family: "angle", scale: math.Pi / 180}, "degree")
	r.add(Unit{symbol: "count", family: "count", scale: 1})
	r.add(Unit{symbol: "bit", family: "information", scale: 1})
	r.add(Unit{symbol: "byte", family: "information", scale: 8}, "B")
}

// defineCatalogUnits registers the catalog's own definitions on top of
// the standard vocabulary. percent is a thousandth of a count, not a
// hundredth: that is what the stored attribute data assumes, so the
// relation is preserved exactly (see DESIGN.md).
func (r *Registry) defineCatalogUnits() {
	ohm := r.byName["ohm"]

	r.add(Unit{symbol: "kiloohm", dim: ohm.dim, scale: 1e3}, "k")
	r.add(Unit{symbol: "megaohm", dim: ohm.dim, scale: 1e6}, "M")
	r.alias("ohm", "R")

	r.add(Unit{symbol: "percent", family: "count", scale: 0.001}, "%")
	r.add(Unit{symbol: "ppm", family: "count", scale: 1e-6})

	// Board-layout length unit used by specctra exports: 0.1 um.
	r.add(Unit{symbol: "specctra", dim: Dimension{Length: 1}, scale: 1e-7})

	r.add(Unit{symbol: "gee", dim: Dimension{Length: 1, Time: -2}, scale: standardGravity},
		"g0", "g_0")

	// Logarithmic units each live on their own dimension axis so they
	// never convert into each other or into bare numbers.
	r.add(Unit{symbol: "decibel", dim: Dimension{Decibel: 1}, scale: 1}, "db", "dB")
	r.add(Unit{symbol: "dBm", dim: Dimension{DecibelMilliwatt: 1}, scale: 1})
	r.add(Unit{symbol: "dBA", dim: Dimension{DecibelAWeighted: 1}, scale: 1})

	r.add(Unit{symbol: "rtHz", dim: Dimension{Time: -0.5}, scale: 1})
}

// add registers a unit under its symbol and any extra names. Existing
// names are left untouched, so redefinition during construction is a
// no-op rather than a conflict.
func (r *Registry) add(u Unit, names ...string) {
	if _, ok := r.byName[u.symbol]; !ok {
		r.byName[u.symbol] = u
	}
	for _, name := range names {
		if _, ok := r.byName[name]; !ok {
			r.byName[name] = u
		}
	}
}

// alias registers an additional name for an already-registered unit.
func (r *Registry) alias(existing, name string) {
	if u, ok := r.byName[existing]; ok {
		r.add(u, name)
	}
}

// Resolve looks up a unit symbol in the vocabulary. Beyond exact symbols
// and aliases it derives SI-prefixed variants ("uF", "mrad", "gigabit")
// and compound symbols built with "*", "/" and "^" ("m/s^2", "V*s").
func (r *Registry) Resolve(symbol string) (Unit, error) {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return Unit{}, &UnknownUnitError{Symbol: symbol}
	}

	if u, ok := r.lookup(s); ok {
		return u, nil
	}

	if strings.ContainsAny(s, "*/^") {
		return r.resolveCompound(s)
	}

	return Unit{}, &UnknownUnitError{Symbol: s}
}

// Symbols lists every registered spelling, aliases included, in sorted
// order. Prefixed and compound spellings are derived on demand and do
// not appear here.
func (r *Registry) Symbols() []string {
	symbols := make([]string, 0, len(r.byName))
	for name := range r.byName {
		symbols = append(symbols, name)
	}
	sort.Strings(symbols)

	return symbols
}

// MustResolve is Resolve for initialization-time symbols that are known
// to exist; it panics on failure.
func (r *Registry) MustResolve(symbol string) Unit {
	u, err := r.Resolve(symbol)
	if err != nil {
		panic(err)
	}
	return u
}

// lookup resolves a single (non-compound) symbol: exact match first,
// then a single SI prefix applied to a registered name.
func (r *Registry) lookup(s string) (Unit, bool) {
	if u, ok := r.byName[s]; ok {
		return u, true
	}

	for _, p := range r.prefixes {
		rest, ok := strings.CutPrefix(s, p.text)
		if !ok || rest == "" {
			continue
		}
		base, ok := r.byName[rest]
		if !ok {
			continue
		}
		return Unit{
			symbol: s,
			dim:    base.dim,
			family: base.family,
			scale:  base.scale * p.factor,
			offset: base.offset,
		}, true
	}

	return Unit{}, false
}

// resolveCompound parses "a*b/c^2" style symbols. Division is
// left-associative over "*" groups; exponents may be fractional.
func (r *Registry) resolveCompound(s string) (Unit, error) {
	result := One

	for i, quotPart := range strings.Split(s, "/") {
		part := One
		for _, factor := range strings.Split(quotPart, "*") {
			u, err := r.resolveFactor(factor)
			if err != nil {
				return Unit{}, err
			}
			part = part.mul(u)
		}
		if i == 0 {
			result = part
		} else {
			result = result.div(part)
		}
	}

	// Keep the caller's spelling as the display symbol.
	result.symbol = s

	return result, nil
}

// resolveFactor parses a single "name" or "name^exp" factor.
func (r *Registry) resolveFactor(factor string) (Unit, error) {
	name, expText, hasExp := strings.Cut(strings.TrimSpace(factor), "^")
	name = strings.TrimSpace(name)

	u, ok := r.lookup(name)
	if !ok {
		return Unit{}, &UnknownUnitError{Symbol: name}
	}

	if !hasExp {
		return u, nil
	}

	exp, err := strconv.ParseFloat(strings.TrimSpace(expText), 64)
	if err != nil {
		return Unit{}, &UnknownUnitError{Symbol: factor}
	}

	return u.pow(exp), nil
}

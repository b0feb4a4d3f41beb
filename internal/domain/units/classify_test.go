package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumber(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "integer string", value: "5", want: true},
		{name: "float string", value: "3.14", want: true},
		{name: "negative string", value: "-2.5", want: true},
		{name: "infinity string", value: "inf", want: true},
		{name: "negative infinity string", value: "-inf", want: true},
		{name: "unit-bearing string", value: "5V", want: false},
		{name: "resistance shorthand", value: "100k", want: false},
		{name: "empty string", value: "", want: false},
		{name: "letters", value: "abc", want: false},
		{name: "float", value: 3.14, want: true},
		{name: "int", value: 42, want: true},
		{name: "quantity", value: NewQuantity(5, r.MustResolve("V")), want: false},
		{name: "dimensionless quantity", value: NewQuantity(5, One), want: false},
		{name: "nil", value: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNumber(tt.value))
		})
	}
}

func TestIsUnit(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		symbol string
		want   bool
	}{
		{symbol: "ohm", want: true},
		{symbol: "R", want: true},
		{symbol: "uF", want: true},
		{symbol: "m/s^2", want: true},
		{symbol: "widgets", want: false},
		{symbol: "", want: false},
		{symbol: "5V", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsUnit(tt.symbol))
		})
	}
}

func TestContextOf(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		symbol string
		ctx    Context
		found  bool
	}{
		{symbol: "ohm", ctx: ContextResistance, found: true},
		{symbol: "k", ctx: ContextResistance, found: true},
		{symbol: "kohm", ctx: ContextResistance, found: true},
		{symbol: "mA", ctx: ContextCurrent, found: true},
		{symbol: "V", ctx: ContextVoltage, found: true},
		{symbol: "W", ctx: ContextPower, found: true},
		{symbol: "pF", ctx: ContextCapacitance, found: true},
		{symbol: "H", ctx: ContextInductance, found: true},
		{symbol: "K", ctx: ContextTemperature, found: true},
		{symbol: "specctra", ctx: ContextLength, found: true},
		{symbol: "deg", ctx: ContextAngle, found: true},
		{symbol: "rad", ctx: ContextAngle, found: true},
		{symbol: "MHz", ctx: ContextFrequency, found: true},
		{symbol: "min", ctx: ContextTime, found: true},
		{symbol: "byte", ctx: ContextInformation, found: true},
		{symbol: "gigabit", ctx: ContextInformation, found: true},
		{symbol: "kPa", ctx: ContextPressure, found: true},

		// No context: unregistered symbols and units outside every
		// context are both valid, non-error outcomes.
		{symbol: "widgets", found: false},
		{symbol: "percent", found: false},
		{symbol: "ppm", found: false},
		{symbol: "count", found: false},
		{symbol: "db", found: false},
		{symbol: "dBm", found: false},
		{symbol: "rtHz", found: false},
		{symbol: "gee", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			ctx, found := r.ContextOf(tt.symbol)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.ctx, ctx)
			}
		})
	}
}

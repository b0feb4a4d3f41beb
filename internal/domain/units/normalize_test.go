package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Dimensional(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name      string
		text      string
		magnitude float64
		unit      string
	}{
		{name: "kiloohm to ohm", text: "1k", magnitude: 1000, unit: "ohm"},
		{name: "megaohm to ohm", text: "2M", magnitude: 2e6, unit: "ohm"},
		{name: "millivolt to volt", text: "330mV", magnitude: 0.33, unit: "V"},
		{name: "nanofarad to microfarad", text: "100nF", magnitude: 0.1, unit: "uF"},
		{name: "meter to millimeter", text: "2m", magnitude: 2000, unit: "mm"},
		{name: "specctra to millimeter", text: "10000specctra", magnitude: 1, unit: "mm"},
		{name: "megahertz to hertz", text: "1MHz", magnitude: 1e6, unit: "Hz"},
		{name: "minute to second", text: "2min", magnitude: 120, unit: "s"},
		{name: "already canonical", text: "47ohm", magnitude: 47, unit: "ohm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := r.ParseQuantity(tt.text, "")
			require.NoError(t, err)

			n := r.Normalize(q, "")
			assert.InDelta(t, tt.magnitude, n.Magnitude(), tt.magnitude*1e-9)
			assert.True(t, n.Unit().Equal(r.MustResolve(tt.unit)),
				"expected %s, got %s", tt.unit, n.Unit())
		})
	}
}

func TestNormalize_Temperature(t *testing.T) {
	r := NewRegistry()

	q, err := r.ParseQuantity("300K", "")
	require.NoError(t, err)

	n := r.Normalize(q, "")
	assert.True(t, n.Unit().Equal(r.MustResolve("degC")))
	assert.InDelta(t, 26.85, n.Magnitude(), 1e-9)
}

func TestNormalize_Dimensionless(t *testing.T) {
	r := NewRegistry()

	t.Run("radians to degrees", func(t *testing.T) {
		q := NewQuantity(1, r.MustResolve("rad"))
		n := r.Normalize(q, "")
		assert.True(t, n.Unit().Equal(r.MustResolve("deg")))
		assert.InDelta(t, 57.29577951308232, n.Magnitude(), 1e-9)
	})

	t.Run("byte to bit", func(t *testing.T) {
		q := NewQuantity(2, r.MustResolve("kbyte"))
		n := r.Normalize(q, "")
		assert.True(t, n.Unit().Equal(r.MustResolve("bit")))
		assert.InDelta(t, 16000, n.Magnitude(), 1e-9)
	})

	t.Run("group default stays put", func(t *testing.T) {
		q := NewQuantity(90, r.MustResolve("deg"))
		n := r.Normalize(q, "")
		assert.True(t, n.Equal(q))
	})

	t.Run("ungrouped dimensionless stays put", func(t *testing.T) {
		q := NewQuantity(5, r.MustResolve("percent"))
		n := r.Normalize(q, "")
		assert.True(t, n.Equal(q))
	})

	t.Run("bare number stays put", func(t *testing.T) {
		q := NewQuantity(5, One)
		n := r.Normalize(q, "")
		assert.True(t, n.Equal(q))
	})
}

func TestNormalize_NoMatchingContext(t *testing.T) {
	r := NewRegistry()

	// rtHz belongs to no context; normalization is a no-op.
	q := NewQuantity(3, r.MustResolve("rtHz"))
	n := r.Normalize(q, "")
	assert.True(t, n.Equal(q))

	// Decibels likewise.
	q = NewQuantity(-3, r.MustResolve("dBm"))
	n = r.Normalize(q, "")
	assert.True(t, n.Equal(q))
}

func TestNormalize_WithExplicitContext(t *testing.T) {
	r := NewRegistry()

	q, err := r.ParseQuantity("1k", ContextResistance)
	require.NoError(t, err)

	n := r.Normalize(q, ContextResistance)
	assert.InDelta(t, 1000, n.Magnitude(), 1e-9)
	assert.True(t, n.Unit().Equal(r.MustResolve("ohm")))

	// A context the unit does not belong to leaves it unchanged.
	n = r.Normalize(q, ContextVoltage)
	assert.True(t, n.Equal(q))
}

func TestNormalize_Idempotent(t *testing.T) {
	r := NewRegistry()

	inputs := []string{"1k", "100nF", "2m", "90deg", "1rad", "3byte", "5%", "42", "47ohm", "3rtHz"}

	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			q, err := r.ParseQuantity(text, "")
			require.NoError(t, err)

			once := r.Normalize(q, "")
			twice := r.Normalize(once, "")
			assert.True(t, twice.Equal(once), "normalize must be idempotent for %s", text)
		})
	}
}

package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 96, 144, 1000}
	for _, pt := range samples {
		back := pt * PtToMm * MmToPt
		assert.LessOrEqual(t, math.Abs(back-pt), 1e-9, "pt=%g", pt)
	}
}

func TestLengthToPT(t *testing.T) {
	assert.InDelta(t, 72.0, Length{Value: 1, Unit: UnitIN}.ToPT(), 1e-9)
	assert.InDelta(t, 25.4, Length{Value: 1, Unit: UnitIN}.ToMM(), 1e-3)
	assert.InDelta(t, Length{Value: 25.4, Unit: UnitMM}.ToPT(), Length{Value: 2.54, Unit: UnitCM}.ToPT(), 1e-9)
	assert.Equal(t, 12.0, Length{Value: 12, Unit: UnitPT}.ToPT())
	assert.Equal(t, 12.0, Length{Value: 12}.ToPT())
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want Length
	}{
		{in: "50", want: Length{Value: 50}},
		{in: "50pt", want: Length{Value: 50, Unit: UnitPT}},
		{in: " 18mm ", want: Length{Value: 18, Unit: UnitMM}},
		{in: "1.5cm", want: Length{Value: 1.5, Unit: UnitCM}},
		{in: "1IN", want: Length{Value: 1, Unit: UnitIN}},
	}
	for _, tt := range tests {
		got, err := ParseLength(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, UnitToString(tt.want.Unit), UnitToString(got.Unit))
	}

	for _, bad := range []string{"", "pt", "12px", "abc"} {
		_, err := ParseLength(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseLineHeight(t *testing.T) {
	spec, err := ParseLineHeight("1.2x")
	require.NoError(t, err)
	assert.Equal(t, LineHeightFactor, spec.Kind)
	assert.InDelta(t, 12.0, spec.Resolve(10), 1e-9)

	var c Config
	spec.ApplyTo(&c)
	assert.Equal(t, Config{LineHeightFactor: 1.2}, c)

	spec, err = ParseLineHeight("11pt")
	require.NoError(t, err)
	assert.Equal(t, LineHeightAbsolute, spec.Kind)
	assert.Equal(t, 11.0, spec.Resolve(30))

	spec.ApplyTo(&c)
	assert.Equal(t, Config{LineHeight: 11}, c)

	_, err = ParseLineHeight("tallx")
	assert.Error(t, err)
}

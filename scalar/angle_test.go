// SPDX-License-Identifier: MIT

package scalar_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zetaml/scalar"
)

func TestToDegreesToRadians(t *testing.T) {
	require.InDelta(t, 180.0, scalar.ToDegrees(math.Pi), 1e-12)
	require.InDelta(t, math.Pi, scalar.ToRadians(180), 1e-12)
	require.InDelta(t, math.Pi/2, scalar.ToRadians(90), 1e-12)

	for _, deg := range []float64{-720, -45, 0, 1, 33.3, 360} {
		require.InDelta(t, deg, scalar.ToDegrees(scalar.ToRadians(deg)), 1e-9)
	}
}

func TestAngle(t *testing.T) {
	a := scalar.Angle{Value: 90, Unit: scalar.Degrees}
	require.InDelta(t, math.Pi/2, a.Radians(), 1e-12)
	require.Equal(t, 90.0, a.Degrees())

	r := scalar.Angle{Value: math.Pi, Unit: scalar.Radians}
	require.Equal(t, math.Pi, r.Radians())
	require.InDelta(t, 180, r.Degrees(), 1e-12)
}

func TestAngleUnit(t *testing.T) {
	require.True(t, scalar.Radians.Valid())
	require.True(t, scalar.Degrees.Valid())
	require.False(t, scalar.AngleUnit(7).Valid())
	require.Equal(t, "degrees", scalar.Degrees.String())
	require.Equal(t, "unknown", scalar.AngleUnit(-1).String())
}

func TestLerp(t *testing.T) {
	cases := []struct {
		name string
		in   [5]float64
		want float64
	}{
		{"midpoint", [5]float64{5, 0, 10, 0, 100}, 50},
		{"downscale", [5]float64{50, 0, 100, 0, 10}, 5},
		{"start", [5]float64{0, 0, 10, 20, 30}, 20},
		{"extrapolate", [5]float64{20, 0, 10, 0, 1}, 2},
		{"reversed output", [5]float64{2.5, 0, 10, 100, 0}, 75},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, scalar.Lerp(tc.in[0], tc.in[1], tc.in[2], tc.in[3], tc.in[4]), 1e-12)
		})
	}

	require.True(t, math.IsNaN(scalar.Lerp(1, 1, 1, 0, 1)))
}

func ExampleLerp() {
	fmt.Println(scalar.Lerp(5, 0, 10, 0, 100))
	fmt.Println(scalar.Lerp(50, 0, 100, 0, 10))
	// Output:
	// 50
	// 5
}

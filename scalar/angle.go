// SPDX-License-Identifier: MIT

package scalar

import "math"

// degPerRad is the conversion factor radians → degrees.
const degPerRad = 180.0 / math.Pi

// AngleUnit selects how raw angle inputs are interpreted.
type AngleUnit int

const (
	// Radians interprets angles as radians (the default everywhere).
	Radians AngleUnit = iota
	// Degrees interprets angles as degrees.
	Degrees
)

// String implements fmt.Stringer.
func (u AngleUnit) String() string {
	switch u {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	default:
		return "unknown"
	}
}

// Valid reports whether u is one of the declared units.
func (u AngleUnit) Valid() bool { return u == Radians || u == Degrees }

// ToDegrees converts rad, expressed in radians, to degrees.
func ToDegrees(rad float64) float64 { return rad * degPerRad }

// ToRadians converts deg, expressed in degrees, to radians.
func ToRadians(deg float64) float64 { return deg / degPerRad }

// Angle is an angle value tagged with the unit it was given in.
type Angle struct {
	Value float64
	Unit  AngleUnit
}

// Radians returns the angle in radians regardless of its unit.
func (a Angle) Radians() float64 {
	if a.Unit == Degrees {
		return ToRadians(a.Value)
	}

	return a.Value
}

// Degrees returns the angle in degrees regardless of its unit.
func (a Angle) Degrees() float64 {
	if a.Unit == Degrees {
		return a.Value
	}

	return ToDegrees(a.Value)
}

// Lerp linearly maps val from the range [start1, stop1] onto [start2, stop2].
// Values outside the input range are extrapolated, not clamped.
// A degenerate input range (start1 == stop1) yields ±Inf or NaN per IEEE-754.
func Lerp(val, start1, stop1, start2, stop2 float64) float64 {
	return start2 + (stop2-start2)*((val-start1)/(stop1-start1))
}

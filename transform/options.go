// SPDX-License-Identifier: MIT

// Package transform: Builder configuration.
//
// Design goals:
//   - No package-level switches: the handedness and angle unit a Builder uses
//     are fixed at New and carried in its Config.
//   - With* constructors panic only on values outside the declared enums
//     (programmer error), never on geometry.
package transform

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/zetaml/scalar"
)

// Handedness selects the coordinate-system convention used by Builder.
type Handedness int

const (
	// RightHanded: +Z points out of the screen, the camera looks down -Z.
	RightHanded Handedness = iota
	// LeftHanded: +Z points into the screen, the camera looks down +Z.
	LeftHanded
)

// String implements fmt.Stringer.
func (h Handedness) String() string {
	switch h {
	case RightHanded:
		return "right-handed"
	case LeftHanded:
		return "left-handed"
	default:
		return "unknown"
	}
}

// Defaults applied by New when no option overrides them.
const (
	DefaultHandedness = RightHanded
	DefaultAngleUnit  = scalar.Radians
)

const (
	panicHandednessInvalid = "transform: WithHandedness: unknown handedness"
	panicAngleUnitInvalid  = "transform: WithAngleUnit: unknown angle unit"
)

// Config is the resolved configuration of a Builder.
type Config struct {
	Handedness Handedness
	AngleUnit  scalar.AngleUnit
	Logger     *slog.Logger // never nil after New
}

// Option mutates a Config. Nil options are skipped.
type Option func(*Config)

// WithHandedness selects the LH or RH variants. Panics on an unknown value.
func WithHandedness(h Handedness) Option {
	if h != RightHanded && h != LeftHanded {
		panic(panicHandednessInvalid)
	}

	return func(c *Config) { c.Handedness = h }
}

// WithAngleUnit sets how angle arguments (rotation angle, fovy) are read.
// Panics on an unknown unit.
func WithAngleUnit(u scalar.AngleUnit) Option {
	if !u.Valid() {
		panic(panicAngleUnitInvalid)
	}

	return func(c *Config) { c.AngleUnit = u }
}

// WithDegrees is shorthand for WithAngleUnit(scalar.Degrees).
func WithDegrees() Option { return WithAngleUnit(scalar.Degrees) }

// WithRadians is shorthand for WithAngleUnit(scalar.Radians).
func WithRadians() Option { return WithAngleUnit(scalar.Radians) }

// WithLogger routes Builder diagnostics to l. A nil l restores the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func defaultConfig() Config {
	return Config{
		Handedness: DefaultHandedness,
		AngleUnit:  DefaultAngleUnit,
	}
}

func gatherOptions(opts ...Option) Config {
	c := defaultConfig()
	for _, fn := range opts {
		if fn != nil {
			fn(&c)
		}
	}
	if c.Logger == nil {
		c.Logger = discardLogger()
	}

	return c
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

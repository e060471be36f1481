// SPDX-License-Identifier: MIT

package transform

import (
	"log/slog"

	"github.com/katalvlaran/zetaml/linalg"
	"github.com/katalvlaran/zetaml/scalar"
)

// Builder applies the package-level transforms under one Config: angles are
// read in the configured unit, and Ortho, Perspective and LookAt pick the
// LH or RH variant from the configured handedness.
//
// Methods that return an error log each failure once at Warn level
// (attributes "op" and "error") and then return it unchanged. RotateIdentity,
// Ortho and Perspective cannot fail and never log. A Builder is immutable after New and may be
// shared between goroutines; the matrices it touches may not.
type Builder struct {
	cfg Config
}

// New returns a Builder configured by opts (right-handed, radians and a
// discarding logger by default).
func New(opts ...Option) *Builder {
	return &Builder{cfg: gatherOptions(opts...)}
}

// Config returns a copy of the resolved configuration.
func (b *Builder) Config() Config { return b.cfg }

// Radians converts an angle given in the configured unit to radians.
func (b *Builder) Radians(angle float64) float64 {
	return scalar.Angle{Value: angle, Unit: b.cfg.AngleUnit}.Radians()
}

func (b *Builder) leftHanded() bool { return b.cfg.Handedness == LeftHanded }

// report logs err (when non-nil) under op and returns it.
func (b *Builder) report(op string, err error) error {
	if err != nil {
		b.cfg.Logger.Warn("transform failed",
			slog.String("op", op),
			slog.String("handedness", b.cfg.Handedness.String()),
			slog.String("error", err.Error()))
	}

	return err
}

// Translate forwards to the package-level Translate.
func (b *Builder) Translate(m *linalg.Matrix, v *linalg.Vector) error {
	return b.report(opTranslate, Translate(m, v))
}

// Translated forwards to the package-level Translated.
func (b *Builder) Translated(m *linalg.Matrix, v *linalg.Vector) (*linalg.Matrix, error) {
	out, err := Translated(m, v)

	return out, b.report(opTranslated, err)
}

// TranslateIdentity forwards to the package-level TranslateIdentity.
func (b *Builder) TranslateIdentity(v *linalg.Vector) (*linalg.Matrix, error) {
	out, err := TranslateIdentity(v)

	return out, b.report(opTranslateIdentity, err)
}

// Rotate rotates m by angle (in the configured unit) about (x, y, z).
func (b *Builder) Rotate(m *linalg.Matrix, angle, x, y, z float64) error {
	return b.report(opRotate, Rotate(m, b.Radians(angle), x, y, z))
}

// Rotated returns a rotated copy of m.
func (b *Builder) Rotated(m *linalg.Matrix, angle, x, y, z float64) (*linalg.Matrix, error) {
	out, err := Rotated(m, b.Radians(angle), x, y, z)

	return out, b.report(opRotated, err)
}

// RotateIdentity returns the pure rotation for angle about (x, y, z).
func (b *Builder) RotateIdentity(angle, x, y, z float64) *linalg.Matrix {
	return RotateIdentity(b.Radians(angle), x, y, z)
}

// Scale forwards to the package-level Scale.
func (b *Builder) Scale(m *linalg.Matrix, v *linalg.Vector) error {
	return b.report(opScale, Scale(m, v))
}

// Scaled forwards to the package-level Scaled.
func (b *Builder) Scaled(m *linalg.Matrix, v *linalg.Vector) (*linalg.Matrix, error) {
	out, err := Scaled(m, v)

	return out, b.report(opScaled, err)
}

// ScaleIdentity forwards to the package-level ScaleIdentity.
func (b *Builder) ScaleIdentity(v *linalg.Vector) (*linalg.Matrix, error) {
	out, err := ScaleIdentity(v)

	return out, b.report(opScaleIdentity, err)
}

// Ortho returns the orthographic projection in the configured handedness.
func (b *Builder) Ortho(left, right, bottom, top, near, far float64) *linalg.Matrix {
	if b.leftHanded() {
		return OrthoLH(left, right, bottom, top, near, far)
	}

	return OrthoRH(left, right, bottom, top, near, far)
}

// UpdateOrtho writes the orthographic projection into m.
func (b *Builder) UpdateOrtho(m *linalg.Matrix, left, right, bottom, top, near, far float64) error {
	if b.leftHanded() {
		return b.report(opUpdateOrtho, UpdateOrthoLH(m, left, right, bottom, top, near, far))
	}

	return b.report(opUpdateOrtho, UpdateOrthoRH(m, left, right, bottom, top, near, far))
}

// Perspective returns the perspective projection in the configured
// handedness; fovy is read in the configured angle unit.
func (b *Builder) Perspective(near, far, fovy, aspect float64) *linalg.Matrix {
	if b.leftHanded() {
		return PerspectiveLH(near, far, b.Radians(fovy), aspect)
	}

	return PerspectiveRH(near, far, b.Radians(fovy), aspect)
}

// UpdatePerspective writes the perspective projection into m.
func (b *Builder) UpdatePerspective(m *linalg.Matrix, near, far, fovy, aspect float64) error {
	if b.leftHanded() {
		return b.report(opUpdatePerspective, UpdatePerspectiveLH(m, near, far, b.Radians(fovy), aspect))
	}

	return b.report(opUpdatePerspective, UpdatePerspectiveRH(m, near, far, b.Radians(fovy), aspect))
}

// LookAt returns the view matrix in the configured handedness.
func (b *Builder) LookAt(pos, focus, up *linalg.Vector) (*linalg.Matrix, error) {
	if b.leftHanded() {
		out, err := LookAtLH(pos, focus, up)
		return out, b.report(opLookAt, err)
	}
	out, err := LookAtRH(pos, focus, up)

	return out, b.report(opLookAt, err)
}

// UpdateLookAt writes the view matrix into m.
func (b *Builder) UpdateLookAt(m *linalg.Matrix, pos, focus, up *linalg.Vector) error {
	if b.leftHanded() {
		return b.report(opUpdateLookAt, UpdateLookAtLH(m, pos, focus, up))
	}

	return b.report(opUpdateLookAt, UpdateLookAtRH(m, pos, focus, up))
}

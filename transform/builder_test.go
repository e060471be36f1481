// SPDX-License-Identifier: MIT

package transform_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/zetaml/linalg"
	"github.com/katalvlaran/zetaml/scalar"
	"github.com/katalvlaran/zetaml/transform"
)

func TestNew_Defaults(t *testing.T) {
	cfg := transform.New().Config()
	require.Equal(t, transform.RightHanded, cfg.Handedness)
	require.Equal(t, scalar.Radians, cfg.AngleUnit)
	require.NotNil(t, cfg.Logger)

	cfg = transform.New(nil, transform.WithLogger(nil)).Config()
	require.NotNil(t, cfg.Logger)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { transform.WithHandedness(transform.Handedness(9)) })
	require.Panics(t, func() { transform.WithAngleUnit(scalar.AngleUnit(-1)) })
	require.NotPanics(t, func() { transform.WithHandedness(transform.LeftHanded) })
}

func TestHandedness_String(t *testing.T) {
	require.Equal(t, "right-handed", transform.RightHanded.String())
	require.Equal(t, "left-handed", transform.LeftHanded.String())
	require.Equal(t, "unknown", transform.Handedness(5).String())
}

// BuilderSuite runs the same scene through differently configured builders.
type BuilderSuite struct {
	suite.Suite
	logs *bytes.Buffer
	lh   *transform.Builder
	rh   *transform.Builder
}

func (s *BuilderSuite) SetupTest() {
	s.logs = new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(s.logs, nil))
	s.lh = transform.New(
		transform.WithHandedness(transform.LeftHanded),
		transform.WithDegrees(),
		transform.WithLogger(logger),
	)
	s.rh = transform.New(transform.WithRadians(), transform.WithLogger(logger))
}

func (s *BuilderSuite) requireSame(want, got *linalg.Matrix) {
	ok, err := linalg.AllClose(want, got)
	s.Require().NoError(err)
	s.Require().True(ok, "want %s\n got %s", want, got)
}

func (s *BuilderSuite) TestDegreesAreConverted() {
	s.InDelta(math.Pi/2, s.lh.Radians(90), 1e-12)
	s.Equal(1.5, s.rh.Radians(1.5))

	s.requireSame(transform.RotateIdentity(math.Pi/2, 0, 0, 1), s.lh.RotateIdentity(90, 0, 0, 1))
	s.requireSame(transform.RotateIdentity(math.Pi/2, 0, 0, 1), s.rh.RotateIdentity(math.Pi/2, 0, 0, 1))

	m := transform.RotateIdentity(0.3, 1, 0, 0)
	s.Require().NoError(s.lh.Rotate(m, 45, 0, 1, 0))
	want, err := transform.Rotated(transform.RotateIdentity(0.3, 1, 0, 0), math.Pi/4, 0, 1, 0)
	s.Require().NoError(err)
	s.requireSame(want, m)

	small, err := linalg.Identity(3, 3)
	s.Require().NoError(err)
	out, err := s.lh.Rotated(small, 10, 0, 0, 1)
	s.ErrorIs(err, linalg.ErrShape)
	s.requireSame(small, out)
}

func (s *BuilderSuite) TestHandednessDispatch() {
	s.requireSame(transform.OrthoLH(-1, 1, -1, 1, 0.1, 100), s.lh.Ortho(-1, 1, -1, 1, 0.1, 100))
	s.requireSame(transform.OrthoRH(-1, 1, -1, 1, 0.1, 100), s.rh.Ortho(-1, 1, -1, 1, 0.1, 100))

	s.requireSame(transform.PerspectiveLH(0.1, 100, math.Pi/3, 1.5), s.lh.Perspective(0.1, 100, 60, 1.5))
	s.requireSame(transform.PerspectiveRH(0.1, 100, math.Pi/3, 1.5), s.rh.Perspective(0.1, 100, math.Pi/3, 1.5))

	pos, focus, up := linalg.VectorOf(1, 2, 3), linalg.VectorOf(0, 0, 0), linalg.VectorOf(0, 1, 0)
	lhView, err := s.lh.LookAt(pos, focus, up)
	s.Require().NoError(err)
	want, err := transform.LookAtLH(pos, focus, up)
	s.Require().NoError(err)
	s.requireSame(want, lhView)

	rhView, err := s.rh.LookAt(pos, focus, up)
	s.Require().NoError(err)
	requireMat4(s.T(), mgl64.LookAtV(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}), rhView)
}

func (s *BuilderSuite) TestUpdateForms() {
	m := s.lh.Ortho(0, 1, 0, 1, 0, 1)
	s.Require().NoError(s.lh.UpdateOrtho(m, -1, 1, -1, 1, 0.1, 100))
	s.requireSame(transform.OrthoLH(-1, 1, -1, 1, 0.1, 100), m)

	m = transform.New().Perspective(1, 2, 1, 1)
	s.Require().NoError(s.rh.UpdatePerspective(m, 0.1, 100, math.Pi/4, 2))
	requireMat4(s.T(), mgl64.Perspective(math.Pi/4, 2, 0.1, 100), m)

	m = identity(s.T())
	s.Require().NoError(s.rh.UpdateLookAt(m, linalg.VectorOf(0, 0, 5), linalg.VectorOf(0, 0, 0), linalg.VectorOf(0, 1, 0)))
	requireMat4(s.T(), mgl64.LookAtV(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}), m)

	s.Empty(s.logs.String())
}

func (s *BuilderSuite) TestAffineForwarding() {
	m, err := s.rh.TranslateIdentity(linalg.VectorOf(1, 2, 3))
	s.Require().NoError(err)
	s.Require().NoError(s.rh.Scale(m, linalg.VectorOf(2, 2, 2)))
	s.Require().NoError(s.rh.Translate(m, linalg.VectorOf(1, 0, 0)))
	requireMat4(s.T(), mgl64.Translate3D(1, 2, 3).Mul4(mgl64.Scale3D(2, 2, 2)).Mul4(mgl64.Translate3D(1, 0, 0)), m)

	sc, err := s.rh.ScaleIdentity(linalg.VectorOf(1, 2, 3))
	s.Require().NoError(err)
	requireMat4(s.T(), mgl64.Scale3D(1, 2, 3), sc)

	tr, err := s.rh.Translated(sc, linalg.VectorOf(1, 1, 1))
	s.Require().NoError(err)
	requireMat4(s.T(), mgl64.Scale3D(1, 2, 3).Mul4(mgl64.Translate3D(1, 1, 1)), tr)

	scaled, err := s.rh.Scaled(tr, linalg.VectorOf(1, 1, 1))
	s.Require().NoError(err)
	s.requireSame(tr, scaled)
}

func (s *BuilderSuite) TestFailuresAreLogged() {
	err := s.rh.Translate(linalg.NullMatrix(), linalg.VectorOf(1, 2, 3))
	s.ErrorIs(err, linalg.ErrShape)

	out := s.logs.String()
	s.Contains(out, "level=WARN")
	s.Contains(out, `msg="transform failed"`)
	s.Contains(out, "op=Translate")
	s.Contains(out, "handedness=right-handed")

	s.logs.Reset()
	_, err = s.lh.LookAt(linalg.VectorOf(1, 2), linalg.VectorOf(0, 0, 0), linalg.VectorOf(0, 1, 0))
	s.ErrorIs(err, linalg.ErrDimensionMismatch)
	s.Contains(s.logs.String(), "op=LookAt")
	s.Contains(s.logs.String(), "handedness=left-handed")

	s.logs.Reset()
	s.ErrorIs(s.lh.UpdatePerspective(linalg.NullMatrix(), 1, 2, 3, 4), linalg.ErrShape)
	s.ErrorIs(s.lh.UpdateOrtho(nil, 0, 1, 0, 1, 0, 1), linalg.ErrNilMatrix)
	_, err = s.lh.ScaleIdentity(linalg.VectorOf(1))
	s.ErrorIs(err, linalg.ErrDimensionMismatch)
	s.Equal(3, bytes.Count(s.logs.Bytes(), []byte("level=WARN")))
}

func (s *BuilderSuite) TestInfallibleMethodsNeverLog() {
	s.logs.Reset()
	s.NotNil(s.lh.RotateIdentity(90, 0, 0, 0))
	s.NotNil(s.rh.Ortho(1, 1, 1, 1, 1, 1))
	s.NotNil(s.lh.Perspective(1, 1, 0, 0))
	s.Empty(s.logs.String())
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

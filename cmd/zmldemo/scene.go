// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/zetaml/linalg"
	"github.com/katalvlaran/zetaml/transform"
)

// Camera and clip planes of the demo scene.
var (
	cameraEye   = [3]float64{3, 2, 5}
	cameraFocus = [3]float64{0, 0, 0}
	cameraUp    = [3]float64{0, 1, 0}
)

const (
	clipNear = 0.1
	clipFar  = 100
)

// cubeCorners are the vertices of a unit cube centred on the origin.
var cubeCorners = [8][3]float64{
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
}

// cubeEdges index pairs of cubeCorners.
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
}

type scene struct {
	model, view, proj *linalg.Matrix
}

// buildScene assembles the model, view and projection matrices with b.
// spin and fov are in b's angle unit.
func buildScene(b *transform.Builder, spin, fov, aspect float64) (*scene, error) {
	view, err := b.LookAt(vec(cameraEye), vec(cameraFocus), vec(cameraUp))
	if err != nil {
		return nil, err
	}

	return &scene{
		model: b.RotateIdentity(spin, 0, 1, 0),
		view:  view,
		proj:  b.Perspective(clipNear, clipFar, fov, aspect),
	}, nil
}

// mvp returns proj·view·model.
func (s *scene) mvp() (*linalg.Matrix, error) {
	pv, err := linalg.MulMat(s.proj, s.view)
	if err != nil {
		return linalg.NullMatrix(), err
	}

	return linalg.MulMat(pv, s.model)
}

// projectCorners returns the normalised device coordinates (x, y, z) of every
// cube corner after the perspective divide.
func (s *scene) projectCorners() ([]*linalg.Vector, error) {
	mvp, err := s.mvp()
	if err != nil {
		return nil, err
	}
	out := make([]*linalg.Vector, 0, len(cubeCorners))
	for _, c := range cubeCorners {
		clip, err := linalg.MulVecMat(linalg.VectorOf(c[0], c[1], c[2], 1), mvp)
		if err != nil {
			return nil, err
		}
		w := clip.W()
		out = append(out, linalg.VectorOf(clip.X()/w, clip.Y()/w, clip.Z()/w))
	}

	return out, nil
}

func vec(a [3]float64) *linalg.Vector { return linalg.VectorOf(a[0], a[1], a[2]) }

// SPDX-License-Identifier: MIT

package transform_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/zetaml/linalg"
	"github.com/katalvlaran/zetaml/transform"
)

func ExampleRotateIdentity() {
	r := transform.RotateIdentity(math.Pi/2, 0, 0, 1)
	p, _ := linalg.MulVecMat(linalg.VectorOf(1, 0, 0, 1), r)
	fmt.Printf("%.1f %.1f %.1f\n", p.X(), p.Y(), p.Z())
	// Output: 0.0 1.0 0.0
}

func ExampleOrthoLH() {
	m := transform.OrthoLH(-1, 1, -1, 1, 0.1, 100)
	z, _ := m.At(2, 2)
	tz, _ := m.At(2, 3)
	fmt.Printf("%.5f %.5f\n", z, tz)
	// Output: 0.02002 -1.00200
}

func ExampleBuilder() {
	b := transform.New(transform.WithHandedness(transform.LeftHanded), transform.WithDegrees())
	m, _ := b.TranslateIdentity(linalg.VectorOf(1, 2, 3))
	_ = b.Rotate(m, 180, 0, 1, 0)

	p, _ := linalg.MulVecMat(linalg.VectorOf(1, 0, 0, 1), m)
	fmt.Printf("%.3f %.3f %.3f\n", p.X(), p.Y(), p.Z())
	// Output: 0.000 2.000 3.000
}

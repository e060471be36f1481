// SPDX-License-Identifier: MIT

package linalg_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zetaml/linalg"
)

func TestVector_String(t *testing.T) {
	require.Equal(t, "'vec3' ( 1.00000, 2.00000, 3.00000 )", linalg.VectorOf(1, 2, 3).String())
	require.Equal(t, "'vec0' ( )", linalg.NullVector().String())
	require.Equal(t, "'vec1' ( -0.12346 )", linalg.VectorOf(-0.123456).String())
}

func TestMatrix_String(t *testing.T) {
	require.Equal(t,
		"'mat2x2' ( ( 1.00000, 0.00000 ), ( 0.00000, 1.00000 ) )",
		mustIdentity(t, 2).String())
	require.Equal(t, "'mat0x0' ( )", linalg.NullMatrix().String())
	require.Equal(t,
		"'mat1x3' ( ( 1.50000, 2.00000, 3.00000 ) )",
		mustRows(t, []float64{1.5, 2, 3}).String())
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	n, err := linalg.Fprintln(&buf, linalg.VectorOf(1))
	require.NoError(t, err)
	require.Equal(t, "'vec1' ( 1.00000 )\n", buf.String())
	require.Equal(t, buf.Len(), n)

	buf.Reset()
	_, err = linalg.Fprint(&buf, mustIdentity(t, 1))
	require.NoError(t, err)
	require.Equal(t, "'mat1x1' ( ( 1.00000 ) )", buf.String())
}

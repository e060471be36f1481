// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Formatting literals.
const (
	_fmtPrecision = 5
	_fmtOpen      = "( "
	_fmtClose     = " )"
	_fmtSep       = ", "
)

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Vector)(nil)
	_ fmt.Stringer = (*Matrix)(nil)
)

// String renders v as 'vecN' ( e0, e1, ... ) with five decimal places,
// e.g. 'vec3' ( 1.00000, 2.00000, 3.00000 ). The null vector renders as 'vec0' ( ).
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString("'vec")
	sb.WriteString(strconv.Itoa(v.Size()))
	sb.WriteString("' ")
	writeElements(&sb, v.Elements())

	return sb.String()
}

// String renders m as 'matRxC' ( ( row0 ), ( row1 ), ... ) with five decimal
// places per element.
func (m *Matrix) String() string {
	var sb strings.Builder
	rows, cols := m.Shape()
	sb.WriteString("'mat")
	sb.WriteString(strconv.Itoa(rows))
	sb.WriteByte('x')
	sb.WriteString(strconv.Itoa(cols))
	sb.WriteString("' ")
	if rows == 0 {
		sb.WriteString("( )")
		return sb.String()
	}
	sb.WriteString(_fmtOpen)
	for i := 0; i < rows; i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		writeElements(&sb, m.data[i*cols:(i+1)*cols])
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// writeElements writes "( e0, e1, ... )" or "( )" for no elements.
func writeElements(sb *strings.Builder, elems []float64) {
	if len(elems) == 0 {
		sb.WriteString("( )")
		return
	}
	var buf [32]byte
	sb.WriteString(_fmtOpen)
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.Write(strconv.AppendFloat(buf[:0], e, 'f', _fmtPrecision, 64))
	}
	sb.WriteString(_fmtClose)
}

// Fprint writes the text form of s (a *Vector or *Matrix) to w.
func Fprint(w io.Writer, s fmt.Stringer) (int, error) {
	return io.WriteString(w, s.String())
}

// Fprintln writes the text form of s followed by a newline to w.
func Fprintln(w io.Writer, s fmt.Stringer) (int, error) {
	return io.WriteString(w, s.String()+"\n")
}

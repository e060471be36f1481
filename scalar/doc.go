// SPDX-License-Identifier: MIT

// Package scalar holds the plain-number helpers that sit next to the linear
// algebra core: degree/radian conversion, linear range mapping (Lerp) and the
// AngleUnit switch consumed by transform.Builder.
//
// Everything here is stateless. The unit an angle is expressed in is always
// passed explicitly (AngleUnit), never read from package-level flags.
package scalar

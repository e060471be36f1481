// SPDX-License-Identifier: MIT

package transform

import "fmt"

// transformErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("transform.%s: %w", tag, err)
}

// Operation tags used in error wrapping and Builder log records.
const (
	opTranslate         = "Translate"
	opTranslated        = "Translated"
	opTranslateIdentity = "TranslateIdentity"
	opRotate            = "Rotate"
	opRotated           = "Rotated"
	opRotateIdentity    = "RotateIdentity"
	opScale             = "Scale"
	opScaled            = "Scaled"
	opScaleIdentity     = "ScaleIdentity"
	opUpdateOrtho       = "UpdateOrtho"
	opUpdatePerspective = "UpdatePerspective"
	opUpdateLookAt      = "UpdateLookAt"
	opLookAt            = "LookAt"
)

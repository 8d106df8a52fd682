// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

import (
	"errors"

	"github.com/bassosimone/errclass"
)

// ErrClassifier classifies errors into categorical strings for analysis.
//
// Implementations map errors to short, descriptive labels (e.g.,
// "EINVALIDSELECTOR") suitable for structured logging.
type ErrClassifier interface {
	Classify(err error) string
}

// ErrClassifierFunc adapts a function to the [ErrClassifier] interface.
type ErrClassifierFunc func(error) string

var _ ErrClassifier = ErrClassifierFunc(nil)

// Classify implements [ErrClassifier].
func (f ErrClassifierFunc) Classify(err error) string {
	return f(err)
}

const (
	// EINVALIDSELECTOR is the class of [ErrInvalidSelector].
	EINVALIDSELECTOR = "EINVALIDSELECTOR"

	// ENOTMETHOD is the class of [ErrNotMethod].
	ENOTMETHOD = "ENOTMETHOD"
)

// DefaultErrClassifier classifies construction errors of this package and
// delegates anything else to [errclass.New]. A nil error maps to "".
var DefaultErrClassifier = ErrClassifierFunc(classifyError)

func classifyError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidSelector):
		return EINVALIDSELECTOR
	case errors.Is(err, ErrNotMethod):
		return ENOTMETHOD
	default:
		return errclass.New(err)
	}
}

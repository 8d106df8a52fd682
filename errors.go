// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

import "errors"

// ErrInvalidSelector indicates that [ProcureMethod] received a nil selector.
var ErrInvalidSelector = errors.New("procedure: invalid selector")

// ErrNotMethod indicates that [ProcureMethod] received a selector that is
// not a method expression of the receiver type.
var ErrNotMethod = errors.New("procedure: selector is not a method")

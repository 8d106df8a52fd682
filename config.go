// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

import "fmt"

// Config holds the capability flags for constructing procedures.
//
// Pass this to construction functions at the call site. Each field is
// independent of the others. All fields have defaults set by [NewConfig].
type Config struct {
	// SignalErrors controls whether construction reports invalid input
	// as an error. When false, a nil selector is not checked and calling
	// the resulting wrapper panics, and a failed selector validation panics.
	//
	// Set by [NewConfig] to true.
	SignalErrors bool

	// Equality is the strategy used by [*Comparable].
	//
	// Set by [NewConfig] to [IdentityChecked].
	Equality EqualityMode

	// ValidateSelectors controls whether [ProcureMethod] checks that the
	// selector is a method expression of the receiver type.
	//
	// Set by [NewConfig] to true.
	ValidateSelectors bool
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		SignalErrors:      true,
		Equality:          IdentityChecked,
		ValidateSelectors: true,
	}
}

// EqualityMode selects how [*Comparable] compares procedures.
type EqualityMode int

const (
	// IdentityChecked compares the kind and binding of both wrappers.
	IdentityChecked EqualityMode = iota

	// AddressOnly compares the identity of the wrapper instances.
	//
	// Distinct wrappers bound to the same callable are unequal in this
	// mode, so callers must keep one wrapper per callable.
	AddressOnly
)

// String returns "identity" or "address".
func (m EqualityMode) String() string {
	switch m {
	case IdentityChecked:
		return "identity"
	case AddressOnly:
		return "address"
	default:
		return fmt.Sprintf("EqualityMode(%d)", int(m))
	}
}

// ParseEqualityMode parses the names returned by [EqualityMode.String].
func ParseEqualityMode(value string) (EqualityMode, error) {
	switch value {
	case "identity":
		return IdentityChecked, nil
	case "address":
		return AddressOnly, nil
	default:
		return 0, fmt.Errorf("procedure: unknown equality mode %q", value)
	}
}

package domain

import (
	"strconv"
	"strings"
)

// iterableScanCap bounds the number of indices scanned for iterable
// derivation modes.
const iterableScanCap = 255

// DerivationMode describes how an account index maps to a concrete HD
// derivation path. The empty mode name identifies the default mode of a
// currency. Modes are configuration data consumed by account discovery.
type DerivationMode struct {
	// Name of the mode. Empty for the default mode.
	Name string
	// Scheme is the path template, e.g. "44'/111'/<account>'/0/0".
	Scheme string
	// Iterable modes support scanning many indices; non-iterable modes a
	// single one.
	Iterable bool
	// UnsupportedIndexes lists indices the mode cannot derive.
	UnsupportedIndexes []int
}

// IsDefault returns whether this is the currency's default derivation mode.
func (m DerivationMode) IsDefault() bool {
	return m.Name == ""
}

// ScanCap returns the exclusive upper bound of indices to scan.
func (m DerivationMode) ScanCap() int {
	if m.Iterable {
		return iterableScanCap
	}
	return 1
}

// SupportsIndex returns whether the mode can derive the given index.
func (m DerivationMode) SupportsIndex(index int) bool {
	if index < 0 {
		return false
	}
	for _, unsupported := range m.UnsupportedIndexes {
		if index == unsupported {
			return false
		}
	}
	return true
}

// RunScheme materializes the path template for the given account index.
func (m DerivationMode) RunScheme(index int) string {
	return strings.ReplaceAll(m.Scheme, "<account>", strconv.Itoa(index))
}

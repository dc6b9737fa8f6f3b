// Package shared provides common utility functions used across
// multiple packages in the modemfw codebase.
package shared

import "strings"

// NormalizeCarrierID trims surrounding whitespace from a carrier or
// OEM identifier as supplied on the command line or over IPC. Carrier
// IDs are matched byte-for-byte against manifest keys, so no case
// folding is applied.
func NormalizeCarrierID(value string) string {
	return strings.TrimSpace(value)
}

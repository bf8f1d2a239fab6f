// Package version provides the build identifier embedded in error
// strings by btcutil/er.
package version

// Version is a fixed build tag. This module has no CLI/ldflags
// injection point, so it is not overridden at link time.
func Version() string {
	return "utxochain"
}

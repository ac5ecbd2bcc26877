//go:build !tensedebug

package tensor

// boundsChecked enables per-component index checks in Ref, At and Set.
// Build with -tags tensedebug to turn them on.
const boundsChecked = false

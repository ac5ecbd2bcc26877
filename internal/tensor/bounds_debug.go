//go:build tensedebug

package tensor

// boundsChecked enables per-component index checks in Ref, At and Set.
const boundsChecked = true

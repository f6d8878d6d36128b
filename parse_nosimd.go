//go:build !(goexperiment.simd && amd64)

package simdatoi

// No archsimd front end on this build.
var useSIMD = false

// parseVariableSIMD is never reached on this build; it keeps ParseVariable's
// dispatch identical everywhere.
func parseVariableSIMD(b []byte) (uint64, int) { return parseVariableGeneric(b) }

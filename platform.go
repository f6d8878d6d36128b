package simdatoi

import (
	"golang.org/x/sys/cpu"
)

// VariableKernel returns the name of the front end ParseVariable uses.
func VariableKernel() string {
	if useSIMD {
		return "archsimd"
	}
	return "generic"
}

// CPUFeatures lists the instruction set extensions relevant to the vector
// kernels that this CPU reports: SSSE3 for byte shuffles, SSE4.1 for 32-bit
// lane multiplies, AVX for archsimd's 128-bit ops and ASIMD on arm64.
func CPUFeatures() []string {
	var features []string
	if cpu.X86.HasSSSE3 {
		features = append(features, "ssse3")
	}
	if cpu.X86.HasSSE41 {
		features = append(features, "sse4.1")
	}
	if cpu.X86.HasAVX {
		features = append(features, "avx")
	}
	if cpu.X86.HasAVX2 {
		features = append(features, "avx2")
	}
	if cpu.ARM64.HasASIMD {
		features = append(features, "asimd")
	}
	return features
}

package simdatoi

import (
	"fmt"
	"strings"
)

const (
	// RegisterWidth is the number of characters one register-wide pass examines.
	// It is also the longest digit run ParseVariable can parse in one call.
	RegisterWidth = 16

	// Fixed8Width is the exact input width of ParseFixed8.
	Fixed8Width = 8

	// MaxDigits is the number of decimal digits in math.MaxUint64.
	MaxDigits = 20
)

// Kernel identifies one of the conversion kernels, so a harness can run them
// side by side through a single signature.
type Kernel int

const (
	KernelSimple      Kernel = iota // digit-by-digit accumulation
	KernelStrconv                   // strconv.ParseUint baseline
	KernelFixed8                    // 8-digit SWAR bit trick
	KernelFixed16                   // 16-lane register reduction network
	KernelFixed16Pair               // two 8-digit bit tricks recombined
	KernelVariable                  // leading digit run of length 0..16
)

var kernelNames = [...]string{
	KernelSimple:      "simple",
	KernelStrconv:     "strconv",
	KernelFixed8:      "fixed8",
	KernelFixed16:     "fixed16",
	KernelFixed16Pair: "fixed16pair",
	KernelVariable:    "variable",
}

// Kernels returns every kernel in declaration order.
func Kernels() []Kernel {
	return []Kernel{KernelSimple, KernelStrconv, KernelFixed8, KernelFixed16, KernelFixed16Pair, KernelVariable}
}

func (k Kernel) String() string {
	if k < 0 || int(k) >= len(kernelNames) {
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
	return kernelNames[k]
}

// ParseKernel returns the kernel with the given name.
func ParseKernel(name string) (Kernel, error) {
	for k, n := range kernelNames {
		if strings.EqualFold(n, name) {
			return Kernel(k), nil
		}
	}
	return 0, fmt.Errorf("unknown kernel %q", name)
}

// Width returns the number of bytes that must be addressable for the kernel to
// run. Zero means the kernel accepts input of any length.
func (k Kernel) Width() int {
	switch k {
	case KernelFixed8:
		return Fixed8Width
	case KernelFixed16, KernelFixed16Pair, KernelVariable:
		return RegisterWidth
	default:
		return 0
	}
}

// Parse runs the kernel over b. Fixed-width kernels report their width as
// consumed, the scalar baselines report len(b). The caller guarantees
// len(b) >= k.Width().
func (k Kernel) Parse(b []byte) (uint64, int) {
	switch k {
	case KernelSimple:
		return ParseSimple(b), len(b)
	case KernelStrconv:
		return ParseStrconv(b), len(b)
	case KernelFixed8:
		return ParseFixed8(b), Fixed8Width
	case KernelFixed16:
		return ParseFixed16(b), RegisterWidth
	case KernelFixed16Pair:
		return ParseFixed16Pair(b), RegisterWidth
	case KernelVariable:
		return ParseVariable(b)
	default:
		panic("simdatoi: unknown kernel " + k.String())
	}
}

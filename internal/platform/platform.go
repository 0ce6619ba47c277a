// Package platform reports floating-point capabilities of the host CPU.
//
// The solvers round every product explicitly, so results do not depend on
// these flags; the probe documents the machine a report was produced on.
package platform

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features lists the CPU capabilities relevant to float64 kernels.
type Features struct {
	Architecture string
	HasFMA       bool // fused multiply-add instructions available
	HasSSE2      bool
	HasAVX2      bool
	HasNEON      bool
}

// Detect reports the features of the current process.
func Detect() Features {
	return Features{
		Architecture: runtime.GOARCH,
		HasFMA:       cpu.X86.HasFMA || cpu.ARM64.HasASIMD || cpu.S390X.HasVX,
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasNEON:      cpu.ARM64.HasASIMD,
	}
}

// String renders f as a single line, e.g. "amd64 fma=true sse2=true avx2=true neon=false".
func (f Features) String() string {
	var sb strings.Builder
	sb.WriteString(f.Architecture)
	fmt.Fprintf(&sb, " fma=%t sse2=%t avx2=%t neon=%t", f.HasFMA, f.HasSSE2, f.HasAVX2, f.HasNEON)

	return sb.String()
}

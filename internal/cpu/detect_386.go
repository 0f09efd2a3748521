//go:build 386

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on 386 systems.
//
// golang.org/x/sys/cpu exposes CPUID flags for 32-bit x86 builds as well.
// AVX-512 is not reported here: 32-bit mode only has eight vector registers,
// too few for the eight-lane base network.
func detectFeaturesImpl() Features {
	return Features{
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		Architecture: runtime.GOARCH,
	}
}

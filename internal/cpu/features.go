// Package cpu detects the CPU capabilities that decide which lane width the
// transform kernels run at.
package cpu

import (
	"os"
	"strings"
	"sync"
)

// EnvSIMD names the environment variable that overrides kernel selection.
// Accepted values are "generic" (or "scalar"), "avx", "avx2", "avx512" and
// "neon". A value naming an ISA the CPU lacks is ignored.
const EnvSIMD = "FWHT_SIMD"

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	ForceGeneric bool
	Architecture string
}

var (
	detectOnce sync.Once
	mu         sync.RWMutex
	detected   Features
	forced     *Features
)

// DetectFeatures reports the available CPU features for the current process.
// Results are cached after the first call. A forced feature set installed
// with SetForcedFeatures takes precedence.
func DetectFeatures() Features {
	mu.RLock()
	if forced != nil {
		f := *forced
		mu.RUnlock()

		return f
	}
	mu.RUnlock()

	detectOnce.Do(func() {
		f := detectFeaturesImpl()
		applyEnvOverride(&f, os.Getenv(EnvSIMD))

		mu.Lock()
		detected = f
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()

	return detected
}

// SetForcedFeatures overrides detection for the whole process.
// Intended for tests and benchmarks.
func SetForcedFeatures(f Features) {
	mu.Lock()
	defer mu.Unlock()

	forced = &f
}

// ResetDetection drops any forced features so DetectFeatures reports the
// hardware again.
func ResetDetection() {
	mu.Lock()
	defer mu.Unlock()

	forced = nil
}

// applyEnvOverride narrows f to the ISA named by value. Naming a wider ISA
// than the hardware supports leaves f untouched.
func applyEnvOverride(f *Features, value string) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return
	case "generic", "scalar", "purego":
		f.ForceGeneric = true
	case "avx", "avx2":
		if f.HasAVX {
			f.HasAVX512 = false
		}
	case "avx512":
		// Widest level; nothing to narrow.
	case "neon":
		if f.HasNEON {
			f.HasAVX, f.HasAVX2, f.HasAVX512 = false, false, false
		}
	}
}

//go:build !amd64 && !386 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl reports no vector features on other architectures.
func detectFeaturesImpl() Features {
	return Features{Architecture: runtime.GOARCH}
}

//go:build !debug

package smix

// assertAligned is a no-op outside debug builds; see align_debug.go.
func assertAligned(_ *block) {}

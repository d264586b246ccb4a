//go:build !opencv

package track

// DefaultLocator returns the pure-Go NCC search. Build with -tags opencv to
// match on OpenCV instead.
func DefaultLocator() Locator { return Locate }

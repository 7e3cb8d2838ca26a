//go:build test

package audio

// Stubs used with -tags test so CI never touches an audio device.

func PlayTone(freq, vol float64, when ...float64) {}

func PlayShimmer(vol float64, when ...float64) {}

func PlayChime(freq, vol float64, when ...float64) {}

// Now returns 0 during tests.
func Now() float64 { return 0 }

// Resume is a no-op in tests.
func Resume() {}

// Reset is a no-op in tests.
func Reset() {}

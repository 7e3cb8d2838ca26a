package ritual

import "time"

// Phase targets. A ritual is ready to seal once every counter has reached
// its target; counters only grow (or reset to zero when sealed).
const (
	TargetRippleBursts = 18
	TargetToneBursts   = 8
	TargetGlide        = 2500 * time.Millisecond
	TargetReflection   = 40 // characters

	// Contacts shorter than this never count as a glide.
	MinGlide = 420 * time.Millisecond
)

// Tracker accumulates progress through the four ritual phases and owns the
// sealed/unsealed outcome. All methods are single-goroutine; the frame loop
// is the only caller.
type Tracker struct {
	rippleBursts int
	toneBursts   int
	longestGlide time.Duration
	reflection   string
	completions  int
}

func NewTracker() *Tracker { return &Tracker{} }

// AddRippleBurst counts one ripple burst.
func (t *Tracker) AddRippleBurst() { t.rippleBursts++ }

// AddToneBurst counts one tone burst.
func (t *Tracker) AddToneBurst() { t.toneBursts++ }

// RecordGlide folds one continuous-contact duration into the longest-glide
// phase. Contacts below MinGlide are ignored; otherwise the phase keeps the
// maximum seen, it never decays.
func (t *Tracker) RecordGlide(d time.Duration) {
	if d < MinGlide {
		return
	}
	if d > t.longestGlide {
		t.longestGlide = d
	}
}

// SetReflection replaces the student's reflection text.
func (t *Tracker) SetReflection(s string) { t.reflection = s }

func (t *Tracker) Reflection() string { return t.reflection }

func (t *Tracker) RippleBursts() int          { return t.rippleBursts }
func (t *Tracker) ToneBursts() int            { return t.toneBursts }
func (t *Tracker) LongestGlide() time.Duration { return t.longestGlide }
func (t *Tracker) Completions() int           { return t.completions }

// Ready reports whether every phase counter has met its target.
func (t *Tracker) Ready() bool {
	return t.rippleBursts >= TargetRippleBursts &&
		t.toneBursts >= TargetToneBursts &&
		t.longestGlide >= TargetGlide &&
		len(t.reflection) >= TargetReflection
}

// Seal completes the ritual. It is rejected (no state change) unless Ready.
// Sealing zeroes the four phase counters, clears the reflection text and
// increments the completion count; the completion count is never discarded.
func (t *Tracker) Seal() bool {
	if !t.Ready() {
		return false
	}
	t.rippleBursts = 0
	t.toneBursts = 0
	t.longestGlide = 0
	t.reflection = ""
	t.completions++
	return true
}

// FocusScore derives a 0..100 progress metric: four terms, each the phase
// counter capped at its target, as a fraction of the target, times 25.
func (t *Tracker) FocusScore() float64 {
	return phaseTerm(float64(t.rippleBursts), TargetRippleBursts) +
		phaseTerm(float64(t.toneBursts), TargetToneBursts) +
		phaseTerm(t.longestGlide.Seconds(), TargetGlide.Seconds()) +
		phaseTerm(float64(len(t.reflection)), TargetReflection)
}

func phaseTerm(have, target float64) float64 {
	if target <= 0 {
		return 25
	}
	if have > target {
		have = target
	}
	return have / target * 25
}

package tempo

import "time"

// Sequencer steps through a fixed number of slots at a tempo-derived
// interval. The frame loop calls Tick; OnStep fires at most once per step.
// It does not loop: after the last step it reports done and goes idle, so a
// "play full sequence" action self-terminates after its computed duration.
type Sequencer struct {
	BPM    int
	Steps  int
	OnStep func(step int)

	now     func() time.Time
	last    time.Time
	next    int
	running bool
}

func NewSequencer() *Sequencer {
	return &Sequencer{BPM: 120, Steps: 16, now: time.Now}
}

// Interval is the spacing between steps at the current tempo. Eighth notes:
// two steps per beat.
func (s *Sequencer) Interval() time.Duration {
	if s.BPM <= 0 {
		return 0
	}
	return time.Minute / time.Duration(s.BPM) / 2
}

// Duration is the total playback time for all steps at the current tempo.
func (s *Sequencer) Duration() time.Duration {
	return s.Interval() * time.Duration(s.Steps)
}

// Start begins playback from step zero. The first step fires on the next
// Tick, immediately.
func (s *Sequencer) Start() {
	s.running = true
	s.next = 0
	s.last = time.Time{}
}

// Stop halts playback; pending steps are discarded.
func (s *Sequencer) Stop() { s.running = false }

// Playing reports whether a run is in progress.
func (s *Sequencer) Playing() bool { return s.running }

// Tick advances the sequencer. Call once per frame while playing.
func (s *Sequencer) Tick() {
	if !s.running || s.BPM <= 0 {
		return
	}
	if s.last.IsZero() {
		s.last = s.now()
		s.fire()
		return
	}
	if s.now().Sub(s.last) < s.Interval() {
		return
	}
	s.last = s.now()
	s.fire()
}

func (s *Sequencer) fire() {
	if s.next >= s.Steps {
		s.running = false
		return
	}
	if s.OnStep != nil {
		s.OnStep(s.next)
	}
	s.next++
	if s.next >= s.Steps {
		s.running = false
	}
}

package progress

import (
	"strings"
	"time"
)

// Recorder is the lesson-progress collaborator. The engine only ever calls
// through this interface; the backing store lives outside the core.
type Recorder interface {
	RecordInteraction(lessonID, studentAlias string)
	RecordPostReflectionText(lessonID, studentAlias, text string)
	MarkLessonComplete(lessonID, studentAlias string)
}

// Nop discards all progress calls. Used when no store is attached.
type Nop struct{}

func (Nop) RecordInteraction(string, string) {}

func (Nop) RecordPostReflectionText(string, string, string) {}

func (Nop) MarkLessonComplete(string, string) {}

const (
	// Continuous interaction (drags, particle stirring) counts at most one
	// tick per this interval; discrete events bypass the throttle.
	tickInterval = 34 * time.Millisecond
	// One RecordInteraction call per this many ticks.
	batchSize = 5
)

// Tally throttles and batches interaction ticks before forwarding them to a
// Recorder. One Tally serves the currently active mode; Flush attributes any
// partial batch to that mode before it is torn down.
type Tally struct {
	rec      Recorder
	lessonID string
	alias    string

	now       func() time.Time
	last      time.Time
	pending   int
	reflected bool
	completed bool
}

func NewTally(rec Recorder, lessonID, alias string) *Tally {
	if rec == nil {
		rec = Nop{}
	}
	return &Tally{rec: rec, lessonID: lessonID, alias: alias, now: time.Now}
}

// Tick counts one continuous-interaction sample, subject to the throttle.
// It reports whether the sample was counted.
func (t *Tally) Tick() bool {
	n := t.now()
	if !t.last.IsZero() && n.Sub(t.last) < tickInterval {
		return false
	}
	t.last = n
	t.count()
	return true
}

// Force counts one discrete interaction (press, release, tap) regardless of
// the throttle.
func (t *Tally) Force() {
	t.last = t.now()
	t.count()
}

func (t *Tally) count() {
	t.pending++
	if t.pending >= batchSize {
		t.pending = 0
		t.rec.RecordInteraction(t.lessonID, t.alias)
	}
}

// Flush forwards a partial batch, if any. Call on mode or session teardown.
func (t *Tally) Flush() {
	if t.pending > 0 {
		t.pending = 0
		t.rec.RecordInteraction(t.lessonID, t.alias)
	}
}

// SubmitReflection forwards the student's reflection text once. Empty and
// whitespace-only text is never forwarded.
func (t *Tally) SubmitReflection(text string) {
	if t.reflected || strings.TrimSpace(text) == "" {
		return
	}
	t.reflected = true
	t.rec.RecordPostReflectionText(t.lessonID, t.alias, text)
}

// Complete marks the lesson finished once.
func (t *Tally) Complete() {
	if t.completed {
		return
	}
	t.completed = true
	t.rec.MarkLessonComplete(t.lessonID, t.alias)
}

package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedloom/seedloom/core/progress"
	"github.com/seedloom/seedloom/core/ritual"
)

type recorderStub struct {
	interactions int
	reflections  []string
	completes    int
}

func (r *recorderStub) RecordInteraction(string, string) { r.interactions++ }

func (r *recorderStub) RecordPostReflectionText(_, _, text string) {
	r.reflections = append(r.reflections, text)
}

func (r *recorderStub) MarkLessonComplete(string, string) { r.completes++ }

func newFlowRig(t *testing.T) (*FlowMode, *ritual.Tracker, *recorderStub) {
	t.Helper()
	quietInput(t)
	rec := &recorderStub{}
	tracker := ritual.NewTracker()
	m := NewFlowMode(testConfig(), tracker, progress.NewTally(rec, "lesson-1", "ada"), testLogger())
	m.Activate(newTestSurface(t, 800, 600))
	return m, tracker, rec
}

func TestContactBeginCountsBothBursts(t *testing.T) {
	var ac audioCounter
	ac.install(t)
	m, tracker, _ := newFlowRig(t)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &Session{ID: 1, X: 100, Y: 100, Started: now}
	m.Update(&Frame{Now: now, Events: []Event{{Kind: ContactBegin, S: s}}, Pointers: NewPointers(testLogger())})

	assert.Equal(t, 1, tracker.RippleBursts())
	assert.Equal(t, 1, tracker.ToneBursts())
	assert.Equal(t, 1, ac.tones)
	assert.Equal(t, 1, ac.shimmers)
}

func TestMoveSamplingAndToneGates(t *testing.T) {
	var ac audioCounter
	ac.install(t)
	m, tracker, _ := newFlowRig(t)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &Session{ID: 1, X: 100, Y: 100, Started: base}
	m.Update(&Frame{Now: base, Events: []Event{{Kind: ContactBegin, S: s}}, Pointers: NewPointers(testLogger())})
	require.Equal(t, 1, tracker.RippleBursts())

	// a move inside the per-contact sample gap is dropped entirely
	m.Update(&Frame{Now: base.Add(20 * time.Millisecond), Events: []Event{{Kind: ContactMove, S: s}}, Pointers: NewPointers(testLogger())})
	assert.Equal(t, 1, tracker.RippleBursts())

	// past the sample gap but inside the tone gate: ripple yes, tone no
	m.Update(&Frame{Now: base.Add(70 * time.Millisecond), Events: []Event{{Kind: ContactMove, S: s}}, Pointers: NewPointers(testLogger())})
	assert.Equal(t, 2, tracker.RippleBursts())
	assert.Equal(t, 1, tracker.ToneBursts())

	// past both gates the tone fires again
	m.Update(&Frame{Now: base.Add(200 * time.Millisecond), Events: []Event{{Kind: ContactMove, S: s}}, Pointers: NewPointers(testLogger())})
	assert.Equal(t, 3, tracker.RippleBursts())
	assert.Equal(t, 2, tracker.ToneBursts())
}

func TestGlideRecordedOnContactEnd(t *testing.T) {
	var ac audioCounter
	ac.install(t)
	m, tracker, _ := newFlowRig(t)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &Session{ID: 1, X: 100, Y: 100, Started: now.Add(-3 * time.Second)}
	m.Update(&Frame{Now: now, Events: []Event{{Kind: ContactEnd, S: s}}, Pointers: NewPointers(testLogger())})
	assert.Equal(t, 3*time.Second, tracker.LongestGlide())

	// taps shorter than the glide floor leave the record alone
	tap := &Session{ID: 2, X: 50, Y: 50, Started: now.Add(-100 * time.Millisecond)}
	m.Update(&Frame{Now: now, Events: []Event{{Kind: ContactEnd, S: tap}}, Pointers: NewPointers(testLogger())})
	assert.Equal(t, 3*time.Second, tracker.LongestGlide())
}

func TestSealSubmitsReflectionAndCompletes(t *testing.T) {
	var ac audioCounter
	ac.install(t)
	rec := &recorderStub{}
	tracker := ritual.NewTracker()
	m := NewFlowMode(testConfig(), tracker, progress.NewTally(rec, "lesson-1", "ada"), testLogger())
	m.Activate(newTestSurface(t, 800, 600))

	for i := 0; i < ritual.TargetRippleBursts; i++ {
		tracker.AddRippleBurst()
	}
	for i := 0; i < ritual.TargetToneBursts; i++ {
		tracker.AddToneBurst()
	}
	tracker.RecordGlide(3 * time.Second)
	reflection := strings.Repeat("a stillness settles ", 3)
	tracker.SetReflection(reflection)
	require.True(t, tracker.Ready())

	sealKey := true
	restore := SetInputForTest(TestInput{
		Key:   func(k ebiten.Key) bool { return sealKey && k == ebiten.KeyS },
		Chars: func() []rune { return nil },
	})
	t.Cleanup(restore)

	m.Update(&Frame{Now: time.Now(), Pointers: NewPointers(testLogger())})

	assert.Equal(t, 1, tracker.Completions())
	require.Len(t, rec.reflections, 1)
	assert.Equal(t, reflection, rec.reflections[0])
	assert.Equal(t, 1, rec.completes)
	assert.Equal(t, 1, ac.chimes)
	assert.NotEmpty(t, m.sparks)

	// key held across frames must not double-seal
	m.Update(&Frame{Now: time.Now(), Pointers: NewPointers(testLogger())})
	assert.Equal(t, 1, tracker.Completions())
	assert.Equal(t, 1, rec.completes)
}

func TestSealRejectedLeavesProgressUntouched(t *testing.T) {
	var ac audioCounter
	ac.install(t)
	rec := &recorderStub{}
	tracker := ritual.NewTracker()
	m := NewFlowMode(testConfig(), tracker, progress.NewTally(rec, "lesson-1", "ada"), testLogger())
	m.Activate(newTestSurface(t, 800, 600))

	restore := SetInputForTest(TestInput{
		Key:   func(k ebiten.Key) bool { return k == ebiten.KeyS },
		Chars: func() []rune { return nil },
	})
	t.Cleanup(restore)

	m.Update(&Frame{Now: time.Now(), Pointers: NewPointers(testLogger())})
	assert.Equal(t, 0, tracker.Completions())
	assert.Empty(t, rec.reflections)
	assert.Equal(t, 0, ac.chimes)
}

func TestReflectionEditorCapturesKeyboard(t *testing.T) {
	var ac audioCounter
	ac.install(t)
	m, tracker, _ := newFlowRig(t)

	enter := true
	chars := []rune("the helix hummed like slow water tonight..")
	restore := SetInputForTest(TestInput{
		Key:   func(k ebiten.Key) bool { return enter && k == ebiten.KeyEnter },
		Chars: func() []rune { c := chars; chars = nil; return c },
	})
	t.Cleanup(restore)

	// Enter opens the editor; the typed runes land in the draft
	m.Update(&Frame{Now: time.Now(), Pointers: NewPointers(testLogger())})
	assert.True(t, m.CapturesKeyboard())

	// Enter again saves the draft to the tracker
	enter = false
	m.Update(&Frame{Now: time.Now(), Pointers: NewPointers(testLogger())})
	enter = true
	m.Update(&Frame{Now: time.Now(), Pointers: NewPointers(testLogger())})
	assert.False(t, m.CapturesKeyboard())
	assert.Equal(t, "the helix hummed like slow water tonight..", tracker.Reflection())
}

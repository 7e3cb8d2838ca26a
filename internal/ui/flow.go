package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/seedloom/seedloom/core/progress"
	"github.com/seedloom/seedloom/core/ritual"
	"github.com/seedloom/seedloom/core/seed"
	"github.com/seedloom/seedloom/internal/config"
	game_log "github.com/seedloom/seedloom/internal/log"
)

const (
	// Contact moves are sampled at most this often per session.
	flowMoveGap = 66 * time.Millisecond
	// Move-triggered tones are gated separately, a little slower.
	flowToneGap = 92 * time.Millisecond
)

// FlowMode is the goal-gated ripple/spark ritual canvas. Interaction feeds
// the four ritual phases; sealing is offered once every phase target is met.
type FlowMode struct {
	cfg     *config.Settings
	logger  *game_log.Logger
	tracker *ritual.Tracker
	tally   *progress.Tally

	surf       *Surface
	ripples    []ripple
	sparks     []spark
	toneGate   noteGate
	lastSample map[ContactID]time.Time
	t          float64

	editing   bool
	draft     []rune
	enterPrev bool
	sealPrev  bool
	backPrev  bool
}

func NewFlowMode(cfg *config.Settings, tracker *ritual.Tracker, tally *progress.Tally, logger *game_log.Logger) *FlowMode {
	return &FlowMode{
		cfg:      cfg,
		logger:   logger,
		tracker:  tracker,
		tally:    tally,
		toneGate: noteGate{min: flowToneGap},
	}
}

func (m *FlowMode) Name() string { return ModeFlow }

func (m *FlowMode) Activate(s *Surface) {
	m.surf = s
	m.ripples = nil
	m.sparks = nil
	m.toneGate.reset()
	m.lastSample = map[ContactID]time.Time{}
	m.draft = []rune(m.tracker.Reflection())
	m.logger.Infof("[RITUAL] flow activated, focus=%.1f completions=%d", m.tracker.FocusScore(), m.tracker.Completions())
}

func (m *FlowMode) Deactivate() {
	m.ripples = nil
	m.sparks = nil
	m.lastSample = nil
	m.editing = false
	m.surf = nil
}

// CapturesKeyboard suspends app shortcuts while the reflection is typed.
func (m *FlowMode) CapturesKeyboard() bool { return m.editing }

func (m *FlowMode) Update(f *Frame) {
	m.t += 1.0 / 60.0
	m.handleReflection()
	m.handleSeal()

	w, _ := m.surf.Size()
	sd := m.cfg.ActiveSeed()

	for _, ev := range f.Events {
		d := digitAtX(sd, ev.S.X, float64(w))
		col := seed.Luminous(d)
		switch ev.Kind {
		case ContactBegin:
			m.burst(ev.S.X, ev.S.Y, col, d, f.Now, true)
			m.lastSample[ev.S.ID] = f.Now
		case ContactMove:
			last, ok := m.lastSample[ev.S.ID]
			if ok && f.Now.Sub(last) < flowMoveGap {
				continue
			}
			m.lastSample[ev.S.ID] = f.Now
			m.burst(ev.S.X, ev.S.Y, col, d, f.Now, false)
		case ContactEnd:
			m.ripples = append(m.ripples, newRipple(ev.S.X, ev.S.Y, col, true))
			m.sparks = append(m.sparks, sparkBurst(ev.S.X, ev.S.Y, 10, col)...)
			delete(m.lastSample, ev.S.ID)
			m.tracker.RecordGlide(ev.S.Age(f.Now))
		}
	}

	m.ripples = stepRipples(m.ripples)
	m.sparks = stepSparks(m.sparks)
}

// burst emits the ripple/spark/tone bundle for one counted sample.
func (m *FlowMode) burst(x, y float64, col seed.LuminousColor, digit int, now time.Time, intense bool) {
	m.ripples = append(m.ripples, newRipple(x, y, col, intense))
	n := 4
	if intense {
		n = 14
	}
	m.sparks = append(m.sparks, sparkBurst(x, y, n, col)...)
	m.tracker.AddRippleBurst()

	if intense {
		playDigit(digit, 0.6)
		playShimmer(0.25)
		m.tracker.AddToneBurst()
		m.toneGate.allow(now)
	} else if m.toneGate.allow(now) {
		playDigit(digit, 0.4)
		m.tracker.AddToneBurst()
	}
}

func (m *FlowMode) handleReflection() {
	enter := isKeyPressed(ebiten.KeyEnter)
	if enter && !m.enterPrev {
		if m.editing {
			m.tracker.SetReflection(string(m.draft))
			m.logger.Infof("[RITUAL] reflection saved (%d chars)", len(m.draft))
		}
		m.editing = !m.editing
	}
	m.enterPrev = enter

	if !m.editing {
		return
	}
	for _, r := range inputChars() {
		if r >= 32 {
			m.draft = append(m.draft, r)
		}
	}
	back := isKeyPressed(ebiten.KeyBackspace)
	if back && !m.backPrev && len(m.draft) > 0 {
		m.draft = m.draft[:len(m.draft)-1]
	}
	m.backPrev = back
}

func (m *FlowMode) handleSeal() {
	if m.editing {
		return
	}
	sealKey := isKeyPressed(ebiten.KeyS)
	defer func() { m.sealPrev = sealKey }()
	if !sealKey || m.sealPrev {
		return
	}

	text := m.tracker.Reflection()
	if !m.tracker.Seal() {
		m.logger.Infof("[RITUAL] seal rejected, focus=%.1f", m.tracker.FocusScore())
		return
	}
	m.logger.Infof("[RITUAL] sealed, completions=%d", m.tracker.Completions())
	m.draft = nil
	m.tally.SubmitReflection(text)
	m.tally.Complete()

	// celebration: chime on the seed's root note plus a spark fountain
	sd := m.cfg.ActiveSeed()
	playChime(seed.NoteFor(sd.DigitAt(0)).Freq, 0.7)
	cx, cy := m.surf.Center()
	for d := 0; d < 10; d++ {
		m.sparks = append(m.sparks, sparkBurst(cx, cy, 6, seed.Luminous(d))...)
	}
}

func (m *FlowMode) Draw(s *Surface) {
	s.Fill(asQuad(colCanvasBG))
	m.drawMandala(s)
	m.drawPhases(s)
	drawRipples(s, m.ripples)
	drawSparks(s, m.sparks)
}

// drawMandala is the static centerpiece under the interaction layer.
func (m *FlowMode) drawMandala(s *Surface) {
	cx, cy := s.Center()
	sd := m.cfg.ActiveSeed()
	base := math.Min(cx, cy) * 0.35
	for i := 0; i < sd.Len(); i += 3 {
		r := base + float64(i)*4 + 5*math.Sin(m.t+float64(i)*0.5)
		strokeRing(s, cx, cy, r, 1, seed.Luminous(sd.DigitAt(i)).WithAlpha(22))
	}
}

// drawPhases renders the four goal meters and the focus score.
func (m *FlowMode) drawPhases(s *Surface) {
	w, h := s.Size()
	labels := [4]string{"ripples", "tones", "glide", "words"}
	fills := [4]float64{
		capRatio(float64(m.tracker.RippleBursts()), ritual.TargetRippleBursts),
		capRatio(float64(m.tracker.ToneBursts()), ritual.TargetToneBursts),
		capRatio(m.tracker.LongestGlide().Seconds(), ritual.TargetGlide.Seconds()),
		capRatio(float64(len(m.tracker.Reflection())), ritual.TargetReflection),
	}
	barW := float64(w-100) / 4
	y := float64(h) - 36
	for i := 0; i < 4; i++ {
		x := 50 + float64(i)*barW
		fillBox(s, x, y, barW-12, 10, colButton)
		col := colButtonEdge
		if fills[i] >= 1 {
			col = colReadyGlow
		}
		fillBox(s, x, y, (barW-12)*fills[i], 10, col)
		textAt(s, labels[i], int(x), int(y)-16)
	}

	status := fmt.Sprintf("focus %3.0f  seals %d", m.tracker.FocusScore(), m.tracker.Completions())
	if m.editing {
		status = "reflect: " + string(m.draft) + "_"
	} else if m.tracker.Ready() {
		status += "  [S] seal the ritual"
	}
	textAt(s, status, 50, int(y)-36)
}

func capRatio(have, target float64) float64 {
	if target <= 0 {
		return 1
	}
	if have > target {
		return 1
	}
	return have / target
}

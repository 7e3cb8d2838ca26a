package ui

import (
	"fmt"
	"image"

	"github.com/seedloom/seedloom/core/seed"
	"github.com/seedloom/seedloom/core/tempo"
	"github.com/seedloom/seedloom/internal/config"
	game_log "github.com/seedloom/seedloom/internal/log"
)

const (
	barMinH      = 26.0
	barMaxH      = 210.0
	barGap       = 6.0
	barPanelPadX = 48.0
)

// BarsMode draws the seed's digits as a row of tone bars on a light panel.
// Tapping a bar plays its digit; the play button walks the whole row through
// the sequencer at the configured tempo.
type BarsMode struct {
	cfg    *config.Settings
	logger *game_log.Logger

	surf    *Surface
	seq     *tempo.Sequencer
	bars    []image.Rectangle // logical-coordinate hit boxes
	playBtn image.Rectangle
	lit     int // bar flashed by the sequencer, -1 when idle
	litTTL  int
	prev    bool // pointer held last frame
}

func NewBarsMode(cfg *config.Settings, logger *game_log.Logger) *BarsMode {
	return &BarsMode{cfg: cfg, logger: logger, lit: -1}
}

func (m *BarsMode) Name() string { return ModeBars }

func (m *BarsMode) Activate(s *Surface) {
	m.surf = s
	m.seq = tempo.NewSequencer()
	m.seq.Steps = m.barCount()
	m.seq.OnStep = m.step
	m.lit = -1
	m.layout()
}

func (m *BarsMode) Deactivate() {
	if m.seq != nil {
		m.seq.Stop()
	}
	m.seq = nil
	m.bars = nil
	m.surf = nil
}

func (m *BarsMode) barCount() int { return m.cfg.ActiveSeed().Len() }

// layout recomputes bar hit boxes from the surface size.
func (m *BarsMode) layout() {
	wi, hi := m.surf.Size()
	w, h := float64(wi), float64(hi)
	n := m.barCount()
	m.bars = m.bars[:0]
	bw := (w - 2*barPanelPadX - float64(n-1)*barGap) / float64(n)
	base := h * 0.72
	sd := m.cfg.ActiveSeed()
	for i := 0; i < n; i++ {
		bh := barHeight(sd.DigitAt(i))
		x := barPanelPadX + float64(i)*(bw+barGap)
		m.bars = append(m.bars, image.Rect(int(x), int(base-bh), int(x+bw), int(base)))
	}
	m.playBtn = image.Rect(int(w/2-54), int(h*0.82), int(w/2+54), int(h*0.82+40))
}

// barHeight maps a digit to bar height; digit 0 still gets a visible stub.
func barHeight(d int) float64 {
	return barMinH + (barMaxH-barMinH)*float64(seed.ClampDigit(d))/9.0
}

func (m *BarsMode) Update(f *Frame) {
	m.layout()
	m.seq.BPM = m.cfg.Tempo
	m.seq.Tick()
	if m.litTTL > 0 {
		m.litTTL--
		if m.litTTL == 0 {
			m.lit = -1
		}
	}

	held := false
	var hx, hy int
	f.Pointers.Each(func(s *Session) {
		held = true
		hx, hy = int(s.X), int(s.Y)
	})
	if held && !m.prev {
		m.tap(f, hx, hy)
	}
	m.prev = held
}

func (m *BarsMode) tap(f *Frame, x, y int) {
	p := image.Pt(x, y)
	if p.In(m.playBtn) {
		m.togglePlay()
		return
	}
	sd := m.cfg.ActiveSeed()
	for i, r := range m.bars {
		if p.In(r) {
			playDigit(sd.DigitAt(i), 0.5)
			m.lit = i
			m.litTTL = 10
			return
		}
	}
}

func (m *BarsMode) togglePlay() {
	if m.seq.Playing() {
		m.seq.Stop()
		m.lit = -1
		m.logger.Infof("[BARS] playback stopped")
		return
	}
	m.seq.Steps = m.barCount()
	m.seq.Start()
	m.logger.Infof("[BARS] playback started at %d BPM", m.seq.BPM)
}

// step is the sequencer callback: sound the digit and flash its bar.
func (m *BarsMode) step(i int) {
	d := m.cfg.ActiveSeed().DigitAt(i)
	playDigit(d, 0.5)
	m.lit = i
	m.litTTL = 8
}

func (m *BarsMode) Draw(s *Surface) {
	s.Fill(asQuad(colPanelBG))
	sd := m.cfg.ActiveSeed()

	// bars use the structural palette: saturated enough to hold up on the
	// light panel, unlike the luminous shades tuned for dark canvases
	for i, r := range m.bars {
		d := sd.DigitAt(i)
		c := seed.Structural(d)
		x, y := float64(r.Min.X), float64(r.Min.Y)
		w, h := float64(r.Dx()), float64(r.Dy())
		fillBox(s, x, y, w, h, c)
		if i == m.lit {
			strokeBox(s, x-2, y-2, w+4, h+4, 2, colButtonEdge)
		}
		textAt(s, fmt.Sprintf("%d", d), r.Min.X+r.Dx()/2-3, r.Max.Y+8)
	}

	fillBox(s, float64(m.playBtn.Min.X), float64(m.playBtn.Min.Y),
		float64(m.playBtn.Dx()), float64(m.playBtn.Dy()), colButton)
	strokeBox(s, float64(m.playBtn.Min.X), float64(m.playBtn.Min.Y),
		float64(m.playBtn.Dx()), float64(m.playBtn.Dy()), 1, colButtonEdge)
	label := "PLAY"
	if m.seq != nil && m.seq.Playing() {
		label = "STOP"
	}
	textAt(s, label, m.playBtn.Min.X+m.playBtn.Dx()/2-12, m.playBtn.Min.Y+14)
}

package ui

import (
	"fmt"
	"image"

	"github.com/seedloom/seedloom/core/seed"
	"github.com/seedloom/seedloom/internal/config"
	game_log "github.com/seedloom/seedloom/internal/log"
)

// Wizard steps, walked strictly in order.
const (
	stepSeed = iota
	stepTempo
	stepResponse
	stepHarmony
	stepLaunch
	stepCount
)

var stepTitles = [stepCount]string{
	"CHOOSE A SEED", "SET THE TEMPO", "SET RESPONSIVENESS", "SET HARMONY", "READY",
}

// WizardMode is a stepped control surface that edits the shared settings one
// parameter at a time, then hands off to the helix.
type WizardMode struct {
	cfg    *config.Settings
	logger *game_log.Logger

	// OnLaunch is invoked when the final step's launch button is tapped.
	OnLaunch func()

	surf   *Surface
	step   int
	slider *Slider
	seeds  []image.Rectangle
	nextB  image.Rectangle
	backB  image.Rectangle
	prev   bool
}

func NewWizardMode(cfg *config.Settings, logger *game_log.Logger) *WizardMode {
	return &WizardMode{cfg: cfg, logger: logger, slider: NewSlider(0)}
}

func (m *WizardMode) Name() string { return ModeWizard }

func (m *WizardMode) Activate(s *Surface) {
	m.surf = s
	m.step = stepSeed
	m.prev = true // swallow the press that switched modes
	m.loadSlider()
}

func (m *WizardMode) Deactivate() {
	m.surf = nil
	m.seeds = nil
}

// loadSlider seeds the slider with the current value of the active step.
func (m *WizardMode) loadSlider() {
	switch m.step {
	case stepTempo:
		m.slider.Value = float64(m.cfg.Tempo-config.MinTempo) / float64(config.MaxTempo-config.MinTempo)
	case stepResponse:
		m.slider.Value = float64(m.cfg.Responsiveness) / 100
	case stepHarmony:
		m.slider.Value = float64(m.cfg.Harmony-config.MinHarmony) / float64(config.MaxHarmony-config.MinHarmony)
	}
}

// applySlider writes the slider back into settings for the active step.
func (m *WizardMode) applySlider() {
	switch m.step {
	case stepTempo:
		m.cfg.Tempo = config.MinTempo + int(m.slider.Value*float64(config.MaxTempo-config.MinTempo)+0.5)
	case stepResponse:
		m.cfg.Responsiveness = int(m.slider.Value*100 + 0.5)
	case stepHarmony:
		m.cfg.Harmony = config.MinHarmony + int(m.slider.Value*float64(config.MaxHarmony-config.MinHarmony)+0.5)
	}
	m.cfg.Clamp()
}

func (m *WizardMode) layout() {
	wi, hi := m.surf.Size()
	w, h := float64(wi), float64(hi)
	cx := w / 2

	m.seeds = m.seeds[:0]
	for i := range seed.All() {
		y := h*0.3 + float64(i)*54
		m.seeds = append(m.seeds, image.Rect(int(cx-130), int(y), int(cx+130), int(y+42)))
	}
	m.slider.SetRect(image.Rect(int(cx-160), int(h/2-16), int(cx+160), int(h/2+16)))
	m.backB = image.Rect(int(cx-180), int(h*0.82), int(cx-60), int(h*0.82+40))
	m.nextB = image.Rect(int(cx+60), int(h*0.82), int(cx+180), int(h*0.82+40))
}

func (m *WizardMode) Update(f *Frame) {
	m.layout()

	held := false
	var hx, hy int
	f.Pointers.Each(func(s *Session) {
		held = true
		hx, hy = int(s.X), int(s.Y)
	})

	if m.sliderStep() && m.slider.Handle(hx, hy, held) {
		m.applySlider()
	}
	if held && !m.prev {
		m.tap(hx, hy)
	}
	m.prev = held
}

func (m *WizardMode) sliderStep() bool {
	return m.step == stepTempo || m.step == stepResponse || m.step == stepHarmony
}

func (m *WizardMode) tap(x, y int) {
	p := image.Pt(x, y)
	cat := seed.All()

	if m.step == stepSeed {
		for i, r := range m.seeds {
			if p.In(r) {
				m.cfg.Seed = cat[i].ID
				m.logger.Infof("[WIZARD] seed set to %s", cat[i].ID)
				return
			}
		}
	}
	if p.In(m.backB) && m.step > stepSeed {
		m.step--
		m.loadSlider()
		return
	}
	if p.In(m.nextB) {
		if m.step < stepLaunch {
			m.step++
			m.loadSlider()
			return
		}
		m.logger.Infof("[WIZARD] launch: seed=%s tempo=%d resp=%d harmony=%d",
			m.cfg.Seed, m.cfg.Tempo, m.cfg.Responsiveness, m.cfg.Harmony)
		if m.OnLaunch != nil {
			m.OnLaunch()
		}
	}
}

func (m *WizardMode) Draw(s *Surface) {
	s.Fill(asQuad(colCanvasBG))
	wi, _ := s.Size()
	cx := wi / 2

	textAt(s, fmt.Sprintf("STEP %d/%d  %s", m.step+1, stepCount, stepTitles[m.step]), cx-90, 40)

	switch m.step {
	case stepSeed:
		cat := seed.All()
		for i, r := range m.seeds {
			bg := colButton
			if cat[i].ID == m.cfg.Seed {
				bg = colPanelEdge
			}
			fillBox(s, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), bg)
			strokeBox(s, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), 1, colButtonEdge)
			textAt(s, cat[i].Name, r.Min.X+12, r.Min.Y+14)
		}
	case stepTempo:
		m.slider.Draw(s)
		textAt(s, fmt.Sprintf("%d BPM", m.cfg.Tempo), cx-24, m.slider.Rect().Max.Y+12)
	case stepResponse:
		m.slider.Draw(s)
		textAt(s, fmt.Sprintf("responsiveness %d", m.cfg.Responsiveness), cx-60, m.slider.Rect().Max.Y+12)
	case stepHarmony:
		m.slider.Draw(s)
		textAt(s, fmt.Sprintf("%d strands", m.cfg.Harmony), cx-30, m.slider.Rect().Max.Y+12)
	case stepLaunch:
		sd := m.cfg.ActiveSeed()
		textAt(s, fmt.Sprintf("%s / %d BPM / %d strands", sd.Name, m.cfg.Tempo, m.cfg.Harmony), cx-100, 120)
	}

	if m.step > stepSeed {
		m.button(s, m.backB, "BACK")
	}
	label := "NEXT"
	if m.step == stepLaunch {
		label = "BEGIN"
	}
	m.button(s, m.nextB, label)
}

func (m *WizardMode) button(s *Surface, r image.Rectangle, label string) {
	fillBox(s, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), colButton)
	strokeBox(s, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), 1, colButtonEdge)
	textAt(s, label, r.Min.X+r.Dx()/2-12, r.Min.Y+14)
}

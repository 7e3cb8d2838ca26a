package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/seedloom/seedloom/core/progress"
	"github.com/seedloom/seedloom/core/ritual"
	"github.com/seedloom/seedloom/internal/config"
	game_log "github.com/seedloom/seedloom/internal/log"
)

// modeKeys maps the digit shortcuts to mode names, in key order 1..6.
var modeKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.Key1, ModeHelix},
	{ebiten.Key2, ModePaint},
	{ebiten.Key3, ModeField},
	{ebiten.Key4, ModeFlow},
	{ebiten.Key5, ModeBars},
	{ebiten.Key6, ModeWizard},
}

// App is the ebiten.Game host. It owns the shared surface, the pointer
// multiplexer, the ritual tracker, and the single active-mode slot; exactly
// one mode is live at a time.
type App struct {
	cfg    *config.Settings
	logger *game_log.Logger

	surf     *Surface
	pointers *Pointers
	tracker  *ritual.Tracker
	tally    *progress.Tally
	pattern  *PaintPattern

	modes  map[string]Mode
	active Mode

	frame   int64
	resumed bool
	now     func() time.Time
}

func NewApp(cfg *config.Settings, rec progress.Recorder, logger *game_log.Logger, startMode string) *App {
	a := &App{
		cfg:      cfg,
		logger:   logger,
		surf:     NewSurface(logger),
		pointers: NewPointers(logger),
		tracker:  ritual.NewTracker(),
		tally:    progress.NewTally(rec, cfg.LessonID, cfg.StudentAlias),
		pattern:  NewPaintPattern(),
		now:      time.Now,
	}

	wizard := NewWizardMode(cfg, logger)
	wizard.OnLaunch = func() { a.SwitchTo(ModeHelix) }

	a.modes = map[string]Mode{
		ModeHelix:  NewHelixMode(cfg, logger),
		ModePaint:  NewPaintMode(cfg, a.pattern, logger),
		ModeField:  NewFieldMode(cfg, logger),
		ModeFlow:   NewFlowMode(cfg, a.tracker, a.tally, logger),
		ModeBars:   NewBarsMode(cfg, logger),
		ModeWizard: wizard,
	}

	if _, ok := a.modes[startMode]; !ok {
		startMode = ModeWizard
	}
	a.surf.Configure(cfg.WindowW, cfg.WindowH, deviceScale())
	a.SwitchTo(startMode)
	return a
}

// ActiveMode returns the live mode's name.
func (a *App) ActiveMode() string {
	if a.active == nil {
		return ""
	}
	return a.active.Name()
}

// SwitchTo tears the current mode down, flushes pending progress, and brings
// the named mode up. Deactivate always completes before Activate starts.
func (a *App) SwitchTo(name string) {
	next, ok := a.modes[name]
	if !ok {
		a.logger.Warnf("[APP] unknown mode %q", name)
		return
	}
	if a.active == next {
		return
	}
	if a.active != nil {
		a.logger.Infof("[APP] leaving %s", a.active.Name())
		a.active.Deactivate()
		a.tally.Flush()
		a.pointers.DropAll()
	}
	a.active = next
	a.active.Activate(a.surf)
	a.logger.Infof("[APP] entered %s", name)
}

// capturing reports whether the active mode owns the keyboard.
func (a *App) capturing() bool {
	if c, ok := a.active.(keyboardCapturer); ok {
		return c.CapturesKeyboard()
	}
	return false
}

func (a *App) handleModeKeys() {
	if a.capturing() {
		return
	}
	for _, mk := range modeKeys {
		if isKeyPressed(mk.key) {
			a.SwitchTo(mk.name)
			return
		}
	}
}

func (a *App) Update() error {
	a.frame++
	events := a.pointers.Gather(a.surf)

	// audio contexts start suspended until a user gesture
	for _, ev := range events {
		if ev.Kind == ContactBegin && !a.resumed {
			audioResume()
			a.resumed = true
		}
		switch ev.Kind {
		case ContactBegin, ContactEnd:
			a.tally.Force()
		case ContactMove:
			a.tally.Tick()
		}
	}

	a.handleModeKeys()

	f := &Frame{Now: a.now(), Events: events, Pointers: a.pointers}
	a.active.Update(f)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if !a.surf.Ready() {
		return
	}
	a.active.Draw(a.surf)
	a.drawHUD()
	a.surf.Present(screen)
}

func (a *App) drawHUD() {
	sd := a.cfg.ActiveSeed()
	textAt(a.surf, fmt.Sprintf("%s  |  %s  |  1-6 modes", a.active.Name(), sd.Name), 8, 4)
}

// Layout sizes the surface for the window, keeping the backing canvas
// within the pixel-ratio cap, and reports the logical screen size.
func (a *App) Layout(outsideW, outsideH int) (int, int) {
	return a.surf.Configure(outsideW, outsideH, deviceScale())
}

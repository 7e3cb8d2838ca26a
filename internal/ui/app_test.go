package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedloom/seedloom/core/progress"
)

// probeMode records its lifecycle transitions for slot-invariant checks.
type probeMode struct {
	name   string
	log    *[]string
	active bool
}

func (p *probeMode) Name() string { return p.name }

func (p *probeMode) Activate(*Surface) {
	*p.log = append(*p.log, "activate "+p.name)
	p.active = true
}

func (p *probeMode) Deactivate() {
	*p.log = append(*p.log, "deactivate "+p.name)
	p.active = false
}

func (p *probeMode) Update(*Frame) { *p.log = append(*p.log, "update "+p.name) }

func (p *probeMode) Draw(*Surface) {}

func newTestApp(t *testing.T, startMode string) *App {
	t.Helper()
	quietInput(t)
	var ac audioCounter
	ac.install(t)
	prev := newImage
	newImage = func(int, int) *ebiten.Image { return nil }
	t.Cleanup(func() { newImage = prev })
	return NewApp(testConfig(), progress.Nop{}, testLogger(), startMode)
}

func TestUnknownStartModeFallsBackToWizard(t *testing.T) {
	a := newTestApp(t, "sculpt")
	assert.Equal(t, ModeWizard, a.ActiveMode())
}

func TestStartModeIsHonored(t *testing.T) {
	a := newTestApp(t, ModePaint)
	assert.Equal(t, ModePaint, a.ActiveMode())
}

func TestSwitchDeactivatesBeforeActivating(t *testing.T) {
	a := newTestApp(t, ModeWizard)

	var log []string
	pa := &probeMode{name: "probe-a", log: &log}
	pb := &probeMode{name: "probe-b", log: &log}
	a.modes["probe-a"] = pa
	a.modes["probe-b"] = pb

	a.SwitchTo("probe-a")
	a.SwitchTo("probe-b")
	require.Equal(t, []string{"activate probe-a", "deactivate probe-a", "activate probe-b"}, log)
	assert.False(t, pa.active)
	assert.True(t, pb.active)
}

func TestSwitchToSameModeIsNoOp(t *testing.T) {
	a := newTestApp(t, ModeWizard)
	var log []string
	p := &probeMode{name: "probe", log: &log}
	a.modes["probe"] = p

	a.SwitchTo("probe")
	a.SwitchTo("probe")
	assert.Equal(t, []string{"activate probe"}, log)
}

func TestSwitchToUnknownModeKeepsCurrent(t *testing.T) {
	a := newTestApp(t, ModeHelix)
	a.SwitchTo("nope")
	assert.Equal(t, ModeHelix, a.ActiveMode())
}

func TestOnlyActiveModeReceivesUpdates(t *testing.T) {
	a := newTestApp(t, ModeWizard)
	var log []string
	pa := &probeMode{name: "probe-a", log: &log}
	pb := &probeMode{name: "probe-b", log: &log}
	a.modes["probe-a"] = pa
	a.modes["probe-b"] = pb

	a.SwitchTo("probe-a")
	require.NoError(t, a.Update())
	a.SwitchTo("probe-b")
	require.NoError(t, a.Update())

	assert.Equal(t, []string{
		"activate probe-a", "update probe-a",
		"deactivate probe-a", "activate probe-b", "update probe-b",
	}, log)
}

func TestRapidSwitchingAcrossAllModesIsStable(t *testing.T) {
	a := newTestApp(t, ModeWizard)
	names := []string{ModeHelix, ModePaint, ModeField, ModeFlow, ModeBars, ModeWizard}
	for i := 0; i < 4; i++ {
		for _, n := range names {
			a.SwitchTo(n)
			require.NoError(t, a.Update())
			assert.Equal(t, n, a.ActiveMode())
		}
	}
}

func TestModeKeySwitches(t *testing.T) {
	a := newTestApp(t, ModeWizard)

	restore := SetInputForTest(TestInput{
		Key: func(k ebiten.Key) bool { return k == ebiten.Key3 },
	})
	defer restore()

	require.NoError(t, a.Update())
	assert.Equal(t, ModeField, a.ActiveMode())
}

func TestDrawWithoutContextIsSafe(t *testing.T) {
	a := newTestApp(t, ModeHelix)
	require.NoError(t, a.Update())
	a.Draw(nil)
}

func TestLayoutReportsLogicalSize(t *testing.T) {
	a := newTestApp(t, ModeWizard)
	w, h := a.Layout(1280, 720)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)

	// degenerate windows still get the minimum working area
	w, h = a.Layout(20, 20)
	assert.Equal(t, minSurfaceDim, w)
	assert.Equal(t, minSurfaceDim, h)
}

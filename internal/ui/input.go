package ui

import "github.com/hajimehoshi/ebiten/v2"

// Ebiten input access lives behind package vars so tests can drive the
// engine headless.
var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	isKeyPressed         = ebiten.IsKeyPressed
	inputChars           = func() []rune { return ebiten.AppendInputChars(nil) }
	touchIDs             = func() []ebiten.TouchID { return ebiten.AppendTouchIDs(nil) }
	touchPosition        = ebiten.TouchPosition
	deviceScale          = func() float64 { return ebiten.Monitor().DeviceScaleFactor() }
)

// TestInput bundles replacement input functions for headless tests. Nil
// fields keep the current function.
type TestInput struct {
	Cursor        func() (int, int)
	Mouse         func(ebiten.MouseButton) bool
	Key           func(ebiten.Key) bool
	Chars         func() []rune
	Touches       func() []ebiten.TouchID
	TouchPosition func(ebiten.TouchID) (int, int)
	DeviceScale   func() float64
}

// SetInputForTest swaps the input functions and returns a restore func.
func SetInputForTest(in TestInput) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldKey := isKeyPressed
	oldChars := inputChars
	oldTouches := touchIDs
	oldTouchPos := touchPosition
	oldScale := deviceScale
	if in.Cursor != nil {
		cursorPosition = in.Cursor
	}
	if in.Mouse != nil {
		isMouseButtonPressed = in.Mouse
	}
	if in.Key != nil {
		isKeyPressed = in.Key
	}
	if in.Chars != nil {
		inputChars = in.Chars
	}
	if in.Touches != nil {
		touchIDs = in.Touches
	}
	if in.TouchPosition != nil {
		touchPosition = in.TouchPosition
	}
	if in.DeviceScale != nil {
		deviceScale = in.DeviceScale
	}
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		isKeyPressed = oldKey
		inputChars = oldChars
		touchIDs = oldTouches
		touchPosition = oldTouchPos
		deviceScale = oldScale
	}
}

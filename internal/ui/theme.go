package ui

import "image/color"

// Chrome colors. Per-digit content colors come from core/seed's palettes;
// nothing here may be used to color seed content.
var (
	colCanvasBG   = color.RGBA{8, 9, 18, 255}
	colTrailWash  = color.RGBA{8, 9, 18, 42} // low-alpha overwrite for motion trails
	colPanelBG    = color.RGBA{228, 230, 238, 255}
	colPanelEdge  = color.RGBA{70, 76, 96, 255}
	colGuideLine  = color.RGBA{70, 80, 110, 70}
	colHUDText    = color.RGBA{200, 205, 220, 255}
	colButton     = color.RGBA{54, 60, 84, 255}
	colButtonEdge = color.RGBA{150, 160, 190, 255}
	colReadyGlow  = color.RGBA{120, 230, 160, 255}
)

package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the bitmap font shared by every screen
var Face text.Face = text.NewGoXFace(basicfont.Face7x13)

const lineSpacing = 16

// Colors shared between screens
var (
	ColorBG    = color.RGBA{10, 10, 24, 255}
	ColorText  = color.RGBA{230, 230, 230, 255}
	ColorTitle = color.RGBA{120, 255, 120, 255}
	ColorDim   = color.RGBA{140, 140, 160, 255}
	ColorWarn  = color.RGBA{255, 90, 90, 255}
)

// DrawText draws s with its top-left corner at (x, y)
func DrawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineSpacing
	text.Draw(dst, s, Face, op)
}

// DrawCentered draws s horizontally centered on cx
func DrawCentered(dst *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	w, _ := text.Measure(s, Face, lineSpacing)
	DrawText(dst, s, cx-w*scale/2, y, scale, clr)
}

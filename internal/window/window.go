// Package window shows a rendered contour plot in a desktop window.
package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/equipot/internal/render"
)

// Viewer is an ebiten game that shows a fixed raster, rescaled to the
// window whenever the window size changes.
type Viewer struct {
	source  image.Image
	caption string

	frame     *ebiten.Image
	frameW    int
	frameH    int
	showLabel bool
}

func NewViewer(img image.Image, caption string) *Viewer {
	return &Viewer{source: img, caption: caption, showLabel: true}
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.showLabel = !v.showLabel
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if v.frame == nil || v.frameW != b.Dx() || v.frameH != b.Dy() {
		v.frame = ebiten.NewImageFromImage(render.Fit(v.source, b.Dx(), b.Dy()))
		v.frameW, v.frameH = b.Dx(), b.Dy()
	}
	screen.DrawImage(v.frame, nil)
	if v.showLabel {
		ebitenutil.DebugPrint(screen, v.caption+"  [H] label  [Esc] close")
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Show opens a window sized to img and blocks until it is closed.
func Show(img image.Image, title string) error {
	b := img.Bounds()
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewViewer(img, title))
}

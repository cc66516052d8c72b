package backdrop

import (
	"image"
	"math"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

const (
	maxScreenX = 1366
	maxScreenY = 768
)

// showPreview spawns a new Gio GUI window displaying the composited image
// and blocks until the window is closed, either through the window manager
// or by pressing the ESC key.
func (p *Processor) showPreview(img *image.NRGBA) error {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	w, h := float64(width), float64(height)

	// Resize the window but retain the aspect ratio in case the
	// image width and height is greater than the predefined window.
	if width > maxScreenX && height > maxScreenY {
		widthRatio := float64(maxScreenX) / w
		heightRatio := float64(maxScreenY) / h
		ratio := math.Min(widthRatio, heightRatio)

		w *= ratio
		h *= ratio
	}

	win := app.NewWindow(
		app.Title("Backdrop preview"),
		app.Size(unit.Px(float32(w)), unit.Px(float32(h))),
	)

	var ops op.Ops
	for e := range win.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)

			src := paint.NewImageOp(img)
			src.Add(gtx.Ops)

			widget.Image{
				Src:   src,
				Scale: 1 / float32(gtx.Px(unit.Dp(1))),
				Fit:   widget.Contain,
			}.Layout(gtx)

			e.Frame(gtx.Ops)
		case key.Event:
			if e.Name == key.NameEscape {
				win.Close()
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

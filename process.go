package backdrop

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/esimov/backdrop/utils"
)

// Processor wires the background fill operation into a
// decode-apply-encode pipeline.
type Processor struct {
	// BgColor is the background color expressed as a hex string (e.g. "#2e86de").
	BgColor string
	// BlendMode selects the compositing formula used to combine the
	// background color with the existing image content.
	BlendMode string
	// Opacity sets how much of the background color shows through the
	// existing content, in the [0, 1] range.
	Opacity float64
	// X, Y, Width and Height define the target rectangle. When both Width
	// and Height are left zero the fill covers the whole image.
	X, Y, Width, Height int
	// NewWidth and NewHeight rescale the source image by preserving the
	// image aspect ratio before the fill is applied. Zero values leave the
	// image at its original size.
	NewWidth, NewHeight int
	// Workers caps the number of goroutines used for the row processing.
	Workers int
	// Preview pops up a Gio window displaying the composited result.
	Preview bool
	// Spinner used to instantiate and call the progress indicator.
	Spinner *utils.Spinner
}

// Apply runs the background fill over the provided image, mutating it in place.
func (p *Processor) Apply(img *image.NRGBA) error {
	col, err := utils.HexToNRGBA(p.BgColor)
	if err != nil {
		return err
	}

	rect := img.Bounds()
	if p.Width != 0 || p.Height != 0 {
		rect = image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
	}

	opts := &GraphicsOptions{
		BlendPercentage: p.Opacity,
		BlendMode:       p.BlendMode,
		Workers:         p.Workers,
	}
	return ApplyBackgroundColor(img, col, opts, rect)
}

// Process decodes the source image, composites the background color over
// the target region and encodes the result into the destination writer.
// We are using the io package, since we can provide different input and
// output types, as long as they implement the io.Reader and io.Writer interface.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return err
	}
	img := imgToNRGBA(src)

	if p.NewWidth > 0 || p.NewHeight > 0 {
		img = imaging.Resize(img, p.NewWidth, p.NewHeight, imaging.Lanczos)
	}

	if err := p.Apply(img); err != nil {
		return err
	}

	if p.Preview {
		if err := p.showPreview(img); err != nil {
			return err
		}
	}

	return encodeImg(w, img)
}

package backdrop

import (
	"fmt"
	"image"
	"image/color"

	"github.com/esimov/backdrop/utils"
	"github.com/pkg/errors"
)

// ErrUnsupportedBlendMode is returned when the requested blend mode is not
// part of the supported catalog. The returned error wraps the mode name.
var ErrUnsupportedBlendMode = errors.New("unsupported blend mode")

// GraphicsOptions controls how the background color is combined with the
// existing image content.
type GraphicsOptions struct {
	// BlendPercentage sets how much of the background color shows through
	// the existing content. It must be inside the [0, 1] range.
	BlendPercentage float64
	// BlendMode selects the compositing formula.
	// The empty string selects the Normal mode.
	BlendMode string
	// Workers caps the number of goroutines processing the image rows.
	// Zero or a negative value means one worker per CPU.
	Workers int
}

// RowRangeError reports a failure raised while a worker was processing a
// contiguous range of image rows. Rows outside the failing range may or may
// not have been mutated already.
type RowRangeError struct {
	StartRow int
	EndRow   int
	Err      error
}

func (e *RowRangeError) Error() string {
	return fmt.Sprintf("row processing failed on rows [%d, %d): %v", e.StartRow, e.EndRow, e.Err)
}

func (e *RowRangeError) Unwrap() error {
	return e.Err
}

// ApplyBackgroundColor composites bgColor underneath the image content
// enclosed by rect, mutating img in place. The rectangle is clamped to the
// image bounds; an empty intersection leaves the image untouched and
// returns nil. The rows of the clamped region are processed in parallel,
// the call returns only after every worker has finished.
//
// The blend percentage controls how much of the background color shows
// through relative to the content already present, so a percentage of zero
// keeps the image unchanged and a percentage of one replaces the region
// with the background color under the Normal mode.
func ApplyBackgroundColor(img *image.NRGBA, bgColor color.NRGBA, opts *GraphicsOptions, rect image.Rectangle) error {
	if opts == nil {
		opts = &GraphicsOptions{BlendPercentage: 1.0}
	}
	if opts.BlendPercentage < 0 || opts.BlendPercentage > 1 {
		return errors.Errorf("blend percentage %v is outside the [0, 1] range", opts.BlendPercentage)
	}

	// The engine is resolved once, before any pixel is touched, which keeps
	// unsupported modes from mutating the image and the row loop free of
	// mode dispatch.
	blendRow, err := resolveBlendMode(opts.BlendMode)
	if err != nil {
		return err
	}

	region := clampRegion(rect, img.Bounds())
	if region.Empty() {
		return nil
	}

	s := acquireScratch(region.Dx(), bgColor, opts.BlendPercentage)
	defer s.release()

	width := region.Dx() * 4
	return forEachRowChunk(region, opts.Workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			offset := img.PixOffset(region.Min.X, y)
			row := img.Pix[offset : offset+width : offset+width]
			blendRow(row, s.overlay, s.amount)
		}
	})
}

// clampRegion intersects the requested rectangle with the image bounds.
// A rectangle reaching outside the bounds is cut back to the covered part;
// when nothing remains the zero rectangle is returned.
func clampRegion(rect, bounds image.Rectangle) image.Rectangle {
	minX := utils.Max(bounds.Min.X, rect.Min.X)
	minY := utils.Max(bounds.Min.Y, rect.Min.Y)
	maxX := utils.Min(bounds.Max.X, rect.Max.X)
	maxY := utils.Min(bounds.Max.Y, rect.Max.Y)

	if maxX <= minX || maxY <= minY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}

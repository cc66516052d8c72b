package backdrop

import (
	"github.com/esimov/backdrop/utils"
	"github.com/pkg/errors"
)

// The supported blend modes.
const (
	Normal     = "normal"
	Darken     = "darken"
	Lighten    = "lighten"
	Multiply   = "multiply"
	Screen     = "screen"
	Overlay    = "overlay"
	Difference = "difference"
	Exclusion  = "exclusion"
)

// blendRowFunc combines one destination row with the broadcast background
// row, writing the result back into dst in place. dst holds 8 bit NRGBA
// channels, overlay holds the same channel layout normalized to [0, 1] and
// amount holds one blend factor per pixel.
type blendRowFunc func(dst []uint8, overlay, amount []float64)

// blendFunc combines a single normalized channel of the backdrop color (b)
// with the corresponding channel of the existing content (s).
type blendFunc func(b, s float64) float64

// resolveBlendMode maps the option value to a concrete row kernel.
func resolveBlendMode(mode string) (blendRowFunc, error) {
	switch mode {
	case "", Normal:
		return normalRow, nil
	case Darken:
		return darkenRow, nil
	case Lighten:
		return lightenRow, nil
	case Multiply:
		return multiplyRow, nil
	case Screen:
		return screenRow, nil
	case Overlay:
		return overlayRow, nil
	case Difference:
		return differenceRow, nil
	case Exclusion:
		return exclusionRow, nil
	default:
		return nil, errors.Wrap(ErrUnsupportedBlendMode, mode)
	}
}

// normalRow is the default engine, a plain linear interpolation between the
// existing content and the background color.
func normalRow(dst []uint8, overlay, amount []float64) {
	for i, a := range amount {
		for c := 0; c < 4; c++ {
			j := i*4 + c
			d := float64(dst[j]) / 255
			dst[j] = denormalize(d*(1-a) + overlay[j]*a)
		}
	}
}

// The non trivial modes share a single kernel shape, precombined at package
// init so that the inner loop runs a concrete function value resolved once
// per operation.
var (
	darkenRow     = makeBlendRow(darken)
	lightenRow    = makeBlendRow(lighten)
	multiplyRow   = makeBlendRow(multiply)
	screenRow     = makeBlendRow(screen)
	overlayRow    = makeBlendRow(overlay)
	differenceRow = makeBlendRow(difference)
	exclusionRow  = makeBlendRow(exclusion)
)

// makeBlendRow lifts a per channel formula into a row kernel. The background
// color is composited underneath the existing content: fn receives the
// background channel as the backdrop operand and the current content as the
// source operand, and the blend amount interpolates between the untouched
// content and the combined value. The formula only shapes the color
// channels, the alpha channel always interpolates linearly.
func makeBlendRow(fn blendFunc) blendRowFunc {
	return func(dst []uint8, overlay, amount []float64) {
		for i, a := range amount {
			for c := 0; c < 3; c++ {
				j := i*4 + c
				s := float64(dst[j]) / 255
				v := fn(overlay[j], s)
				dst[j] = denormalize(s*(1-a) + v*a)
			}
			j := i*4 + 3
			s := float64(dst[j]) / 255
			dst[j] = denormalize(s*(1-a) + overlay[j]*a)
		}
	}
}

// denormalize converts a normalized channel back to its 8 bit storage form.
func denormalize(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

func darken(b, s float64) float64 {
	return utils.Min(b, s)
}

func lighten(b, s float64) float64 {
	return utils.Max(b, s)
}

func multiply(b, s float64) float64 {
	return b * s
}

func screen(b, s float64) float64 {
	return 1 - (1-b)*(1-s)
}

func overlay(b, s float64) float64 {
	if b <= 0.5 {
		return 2 * b * s
	}
	return 1 - 2*(1-b)*(1-s)
}

func difference(b, s float64) float64 {
	return utils.Abs(b - s)
}

func exclusion(b, s float64) float64 {
	return b + s - 2*b*s
}

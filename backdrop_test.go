package backdrop

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const (
	imgWidth  = 10
	imgHeight = 10
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{R: 0, G: 0, B: 0, A: 0xff}
	red   = color.NRGBA{R: 0xff, G: 0, B: 0, A: 0xff}
)

// newUniformImage creates a new image with every pixel set to the provided color.
func newUniformImage(width, height int, col color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = col.R
		img.Pix[i+1] = col.G
		img.Pix[i+2] = col.B
		img.Pix[i+3] = col.A
	}
	return img
}

// newPatternImage creates a new image with a deterministic pixel pattern.
func newPatternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = uint8(i * 7)
		img.Pix[i+1] = uint8(i * 13)
		img.Pix[i+2] = uint8(i * 31)
		img.Pix[i+3] = 0xff
	}
	return img
}

func cloneImage(img *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(img.Bounds())
	copy(dst.Pix, img.Pix)
	return dst
}

func TestApply_FullOpacityReplacesRegion(t *testing.T) {
	assert := assert.New(t)

	img := newUniformImage(4, 4, black)
	opts := &GraphicsOptions{BlendPercentage: 1.0}

	err := ApplyBackgroundColor(img, white, opts, img.Bounds())
	assert.NoError(err)

	for i := 0; i < len(img.Pix); i++ {
		assert.Equal(uint8(0xff), img.Pix[i])
	}
}

func TestApply_ZeroOpacityKeepsContent(t *testing.T) {
	assert := assert.New(t)

	img := newPatternImage(imgWidth, imgHeight)
	orig := cloneImage(img)
	opts := &GraphicsOptions{BlendPercentage: 0.0}

	err := ApplyBackgroundColor(img, white, opts, img.Bounds())
	assert.NoError(err)
	assert.EqualValues(orig.Pix, img.Pix)
}

func TestApply_RectangleOutsideBounds(t *testing.T) {
	assert := assert.New(t)

	img := newPatternImage(imgWidth, imgHeight)
	orig := cloneImage(img)
	opts := &GraphicsOptions{BlendPercentage: 1.0}

	rects := []image.Rectangle{
		image.Rect(-20, -20, -10, -10),
		image.Rect(imgWidth, imgHeight, imgWidth+5, imgHeight+5),
		image.Rect(0, -10, imgWidth, -1),
		image.Rect(3, 3, 3, 8), // zero width
	}
	for _, rect := range rects {
		err := ApplyBackgroundColor(img, white, opts, rect)
		assert.NoError(err)
		assert.EqualValues(orig.Pix, img.Pix)
	}
}

func TestApply_ClampsOversizedRectangle(t *testing.T) {
	assert := assert.New(t)

	img := newUniformImage(imgWidth, imgHeight, black)
	opts := &GraphicsOptions{BlendPercentage: 0.5}

	err := ApplyBackgroundColor(img, red, opts, image.Rect(5, 5, 25, 25))
	assert.NoError(err)

	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			i := img.PixOffset(x, y)
			if x >= 5 && y >= 5 {
				// 50% linear blend between black and red
				assert.Equal(uint8(128), img.Pix[i+0])
				assert.Equal(uint8(0), img.Pix[i+1])
				assert.Equal(uint8(0), img.Pix[i+2])
				assert.Equal(uint8(0xff), img.Pix[i+3])
			} else {
				assert.Equal(uint8(0), img.Pix[i+0])
				assert.Equal(uint8(0), img.Pix[i+1])
				assert.Equal(uint8(0), img.Pix[i+2])
				assert.Equal(uint8(0xff), img.Pix[i+3])
			}
		}
	}

	// An oversized rectangle has to produce the same result
	// as the same rectangle intersected against the bounds upfront.
	a := newPatternImage(imgWidth, imgHeight)
	b := cloneImage(a)

	assert.NoError(ApplyBackgroundColor(a, red, opts, image.Rect(5, 5, 25, 25)))
	assert.NoError(ApplyBackgroundColor(b, red, opts, image.Rect(5, 5, imgWidth, imgHeight)))
	assert.EqualValues(a.Pix, b.Pix)
}

func TestApply_WorkerCountDoesNotChangeTheOutput(t *testing.T) {
	assert := assert.New(t)

	single := newPatternImage(64, 47)
	multi := cloneImage(single)

	err := ApplyBackgroundColor(single, red, &GraphicsOptions{
		BlendPercentage: 0.3,
		BlendMode:       Multiply,
		Workers:         1,
	}, single.Bounds())
	assert.NoError(err)

	err = ApplyBackgroundColor(multi, red, &GraphicsOptions{
		BlendPercentage: 0.3,
		BlendMode:       Multiply,
		Workers:         8,
	}, multi.Bounds())
	assert.NoError(err)

	assert.EqualValues(single.Pix, multi.Pix)
}

func TestApply_FullOpacityIsIdempotent(t *testing.T) {
	assert := assert.New(t)

	img := newPatternImage(imgWidth, imgHeight)
	opts := &GraphicsOptions{BlendPercentage: 1.0}
	rect := image.Rect(2, 3, 8, 9)

	assert.NoError(ApplyBackgroundColor(img, red, opts, rect))
	once := cloneImage(img)

	assert.NoError(ApplyBackgroundColor(img, red, opts, rect))
	assert.EqualValues(once.Pix, img.Pix)
}

func TestApply_EmptyBuffer(t *testing.T) {
	assert := assert.New(t)

	img := image.NewNRGBA(image.Rect(0, 0, 0, imgHeight))
	err := ApplyBackgroundColor(img, white, &GraphicsOptions{BlendPercentage: 1.0}, image.Rect(0, 0, 100, 100))
	assert.NoError(err)
	assert.Empty(img.Pix)
}

func TestApply_RejectsInvalidOptions(t *testing.T) {
	assert := assert.New(t)

	img := newPatternImage(imgWidth, imgHeight)
	orig := cloneImage(img)

	err := ApplyBackgroundColor(img, white, &GraphicsOptions{BlendPercentage: 1.5}, img.Bounds())
	assert.Error(err)
	assert.EqualValues(orig.Pix, img.Pix)

	err = ApplyBackgroundColor(img, white, &GraphicsOptions{
		BlendPercentage: 1.0,
		BlendMode:       "dissolve",
	}, img.Bounds())
	assert.Error(err)
	assert.True(errors.Is(err, ErrUnsupportedBlendMode))
	assert.EqualValues(orig.Pix, img.Pix)
}

func TestApply_NilOptionsDefaultsToFullOpacity(t *testing.T) {
	assert := assert.New(t)

	img := newUniformImage(4, 4, black)
	err := ApplyBackgroundColor(img, white, nil, img.Bounds())
	assert.NoError(err)

	for i := 0; i < len(img.Pix); i++ {
		assert.Equal(uint8(0xff), img.Pix[i])
	}
}

func TestClampRegion_AlwaysSubsetOfBounds(t *testing.T) {
	assert := assert.New(t)

	bounds := image.Rect(0, 0, imgWidth, imgHeight)
	rects := []image.Rectangle{
		image.Rect(-5, -5, 5, 5),
		image.Rect(5, 5, 25, 25),
		image.Rect(-100, -100, 100, 100),
		image.Rect(2, 3, 4, 5),
		image.Rect(-1, 0, 0, 10),
	}

	for _, rect := range rects {
		region := clampRegion(rect, bounds)
		if region.Empty() {
			continue
		}
		assert.True(region.In(bounds))
		assert.True(region.In(rect))
	}

	assert.True(clampRegion(image.Rect(-10, -10, -5, -5), bounds).Empty())
	assert.True(clampRegion(image.Rect(0, 0, 10, 10), image.Rectangle{}).Empty())
}

package backdrop

import (
	"image/color"
	"sync"
)

// scratch holds the per call broadcast buffers shared read-only by all the
// row workers: the background color repeated across the clamped width as
// normalized channels and the blend factor repeated per pixel.
type scratch struct {
	overlay []float64
	amount  []float64
}

var scratchPool = sync.Pool{
	New: func() any { return new(scratch) },
}

// acquireScratch returns a scratch pair sized to the clamped region width,
// with the background color and the blend percentage broadcast across the
// buffers. The pair must be handed back through release.
func acquireScratch(width int, col color.NRGBA, pct float64) *scratch {
	s := scratchPool.Get().(*scratch)

	if cap(s.overlay) < width*4 {
		s.overlay = make([]float64, width*4)
		s.amount = make([]float64, width)
	}
	s.overlay = s.overlay[:width*4]
	s.amount = s.amount[:width]

	var (
		r = float64(col.R) / 255
		g = float64(col.G) / 255
		b = float64(col.B) / 255
		a = float64(col.A) / 255
	)

	for i := 0; i < width; i++ {
		s.overlay[i*4+0] = r
		s.overlay[i*4+1] = g
		s.overlay[i*4+2] = b
		s.overlay[i*4+3] = a
		s.amount[i] = pct
	}
	return s
}

// release returns the buffers to the pool. The buffers must not be touched
// afterwards, so the caller has to make sure the workers joined already.
func (s *scratch) release() {
	scratchPool.Put(s)
}

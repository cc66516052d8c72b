package backdrop

import (
	"image"
	"testing"
)

func Benchmark_ApplyBackgroundColor(b *testing.B) {
	img := newPatternImage(1920, 1080)
	opts := &GraphicsOptions{
		BlendPercentage: 0.5,
		BlendMode:       Normal,
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := ApplyBackgroundColor(img, red, opts, img.Bounds()); err != nil {
			b.Fatalf("error applying the background color: %v", err)
		}
	}
}

func Benchmark_ApplyBackgroundColorSingleWorker(b *testing.B) {
	img := newPatternImage(1920, 1080)
	opts := &GraphicsOptions{
		BlendPercentage: 0.5,
		BlendMode:       Multiply,
		Workers:         1,
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := ApplyBackgroundColor(img, red, opts, image.Rect(0, 0, 960, 540)); err != nil {
			b.Fatalf("error applying the background color: %v", err)
		}
	}
}

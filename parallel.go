package backdrop

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/esimov/backdrop/utils"
)

// forEachRowChunk splits the region rows into contiguous chunks and runs fn
// over each chunk in parallel. Every chunk owns a disjoint set of rows, so
// the workers never write the same memory location. The call returns only
// after all the workers have finished.
//
// A panic raised inside a worker is recovered and converted into a
// RowRangeError naming the failing row range; the remaining workers still
// run to completion and the first failure wins.
func forEachRowChunk(region image.Rectangle, workers int, fn func(y0, y1 int)) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rows := region.Dy()
	if workers > rows {
		workers = rows
	}
	chunk := (rows + workers - 1) / workers

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		err error
	)

	for y := region.Min.Y; y < region.Max.Y; y += chunk {
		y0, y1 := y, utils.Min(y+chunk, region.Max.Y)

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					if err == nil {
						err = &RowRangeError{StartRow: y0, EndRow: y1, Err: fmt.Errorf("%v", r)}
					}
					mu.Unlock()
				}
			}()
			fn(y0, y1)
		}()
	}
	wg.Wait()

	return err
}

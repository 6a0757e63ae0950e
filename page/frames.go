package page

import "sync"

const DEFAULT_WORKERS = 1

// Frame is a page pose ready for rendering
type Frame struct {
	Index       int
	Angle       float64
	Transform   string // CSS matrix3d() value
	Left, Right float64
}

// Frames poses p once per angle, across workers goroutines.
// Every frame builds its own Transform; result order follows angles.
func Frames(p Page, angles []float64, workers int) []Frame {
	workers = max(DEFAULT_WORKERS, workers)

	frames := make([]Frame, len(angles))
	for i, angle := range angles {
		frames[i] = Frame{Index: i, Angle: angle}
	}

	task(workers, frames, func(frame *Frame) {
		t := p.Pose(frame.Angle)
		frame.Transform = t.Serialize()
		frame.Left, frame.Right = bounds(t, p.PageWidth)
	})

	return frames
}

// Sweep returns n angles evenly spaced from from to to, both included.
func Sweep(from, to float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{from}
	}

	angles := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range angles {
		angles[i] = from + step*float64(i)
	}
	angles[n-1] = to

	return angles
}

// task runs fn on every element of data, split in contiguous chunks.
func task[T any](workersCount int, data []T, fn func(data *T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, dataSize)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(&data[i])
			}
		}(start, end)
	}
	wg.Wait()
}

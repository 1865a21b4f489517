package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"

	"github.com/miminashca/Ray-Tracing/pkg/core"
)

// SplitTiles divides a width x height image into non-overlapping tiles of
// at most tileSize x tileSize pixels
func SplitTiles(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(
				x, y,
				min(x+tileSize, width),
				min(y+tileSize, height),
			))
		}
	}
	return tiles
}

// WorkerPool renders the tiles of a frame in parallel. Every pixel's path is
// independent, so workers share only the read-only scene snapshot and write
// disjoint regions of the frame buffer.
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
}

// NewWorkerPool creates a pool with the given parallelism (0 = CPU count)
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{raytracer: raytracer, numWorkers: numWorkers}
}

// RenderFrame renders one frame estimate into the frame buffer. On
// cancellation the remaining tiles are skipped and the context error is
// returned; callers must discard the partial frame rather than commit it.
func (wp *WorkerPool) RenderFrame(ctx context.Context, frameIndex, tileSize int, frame []core.Vec3) error {
	tiles := SplitTiles(wp.raytracer.width, wp.raytracer.height, tileSize)

	tasks := make(chan image.Rectangle, len(tiles))
	for _, tile := range tiles {
		tasks <- tile
	}
	close(tasks)

	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range tasks {
				select {
				case <-ctx.Done():
					return
				default:
				}
				wp.raytracer.RenderBounds(tile, frameIndex, frame)
			}
		}()
	}
	wg.Wait()

	return ctx.Err()
}

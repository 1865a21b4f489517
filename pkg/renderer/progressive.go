package renderer

import (
	"context"
	"image"
	"time"

	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/scene"
)

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize   int // Size of each tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	Sampling   SamplingConfig
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:   64,
		NumWorkers: 0,
		Sampling:   DefaultSamplingConfig(),
	}
}

// FrameStats describes one completed progressive frame
type FrameStats struct {
	FrameIndex      int           // Index of the committed frame
	SamplesPerPixel int           // Samples taken per pixel this frame
	TotalSamples    int           // Accumulated samples per pixel so far
	RenderTime      time.Duration // Wall time for this frame
}

// ProgressiveRenderer renders successive frames of a static scene and folds
// each one into a persistent accumulation buffer, progressively reducing
// variance. Frames are committed in strictly increasing order; Reset must be
// called whenever the camera or scene changes.
type ProgressiveRenderer struct {
	raytracer *Raytracer
	pool      *WorkerPool
	accum     *AccumulationBuffer
	frame     []core.Vec3 // Scratch buffer for the current frame estimate
	config    ProgressiveConfig
	logger    core.Logger
}

// nopLogger discards all renderer output
type nopLogger struct{}

func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Debugf(format string, args ...interface{}) {}

// NewProgressiveRenderer creates a progressive renderer for a scene snapshot
func NewProgressiveRenderer(sc *scene.Scene, width, height int, config ProgressiveConfig, logger core.Logger) *ProgressiveRenderer {
	if logger == nil {
		logger = nopLogger{}
	}
	raytracer := NewRaytracer(sc, width, height, config.Sampling)
	return &ProgressiveRenderer{
		raytracer: raytracer,
		pool:      NewWorkerPool(raytracer, config.NumWorkers),
		accum:     NewAccumulationBuffer(width, height),
		frame:     make([]core.Vec3, width*height),
		config:    config,
		logger:    logger,
	}
}

// RenderFrame renders the next frame, commits it into the accumulation
// buffer, and returns the tone-mapped accumulated image. A cancelled frame
// is abandoned without touching the accumulated history.
func (pr *ProgressiveRenderer) RenderFrame(ctx context.Context) (*image.RGBA, FrameStats, error) {
	frameIndex := pr.accum.FrameIndex()
	start := time.Now()

	if err := pr.pool.RenderFrame(ctx, frameIndex, pr.config.TileSize, pr.frame); err != nil {
		return nil, FrameStats{}, err
	}
	if err := pr.accum.Commit(pr.frame); err != nil {
		return nil, FrameStats{}, err
	}

	stats := FrameStats{
		FrameIndex:      frameIndex,
		SamplesPerPixel: pr.config.Sampling.SamplesPerPixel,
		TotalSamples:    pr.accum.FrameIndex() * pr.config.Sampling.SamplesPerPixel,
		RenderTime:      time.Since(start),
	}
	pr.logger.Debugf("frame %d: %d samples/pixel in %v (total %d)",
		stats.FrameIndex, stats.SamplesPerPixel, stats.RenderTime, stats.TotalSamples)

	return pr.accum.ToImage(), stats, nil
}

// FrameIndex returns the number of committed frames since the last reset
func (pr *ProgressiveRenderer) FrameIndex() int {
	return pr.accum.FrameIndex()
}

// Reset discards accumulated history after a camera or scene change
func (pr *ProgressiveRenderer) Reset() {
	pr.accum.Reset()
}

package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/miminashca/Ray-Tracing/pkg/core"
)

// AccumulationBuffer keeps one running-average radiance value per pixel
// across frames. Each committed frame moves the average toward the frame
// estimate by 1/(frameIndex+1), which converges to the expected radiance as
// long as scene and camera stay static. Frames must be committed in
// strictly increasing frame order; Reset discards the history whenever prior
// samples become invalid.
type AccumulationBuffer struct {
	width, height int
	pixels        []core.Vec3
	frameIndex    int
}

// NewAccumulationBuffer creates an empty accumulation buffer
func NewAccumulationBuffer(width, height int) *AccumulationBuffer {
	return &AccumulationBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// FrameIndex returns the number of frames committed since the last reset
func (b *AccumulationBuffer) FrameIndex() int {
	return b.frameIndex
}

// Commit blends a complete frame estimate into the running average
func (b *AccumulationBuffer) Commit(frame []core.Vec3) error {
	if len(frame) != len(b.pixels) {
		return fmt.Errorf("frame size %d does not match buffer size %d", len(frame), len(b.pixels))
	}

	weight := 1.0 / float64(b.frameIndex+1)
	for i := range b.pixels {
		b.pixels[i] = b.pixels[i].Add(frame[i].Subtract(b.pixels[i]).Multiply(weight))
	}
	b.frameIndex++
	return nil
}

// Reset clears the accumulated average and returns the frame index to zero
func (b *AccumulationBuffer) Reset() {
	for i := range b.pixels {
		b.pixels[i] = core.Vec3{}
	}
	b.frameIndex = 0
}

// Pixel returns the accumulated radiance for pixel (x, y)
func (b *AccumulationBuffer) Pixel(x, y int) core.Vec3 {
	return b.pixels[y*b.width+x]
}

// ToImage converts the accumulated radiance to a gamma-corrected RGBA image
func (b *AccumulationBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			img.SetRGBA(x, y, vec3ToColor(b.pixels[y*b.width+x]))
		}
	}
	return img
}

// vec3ToColor converts linear radiance to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

package tracer

import (
	"github.com/achilleasa/polaris-rt/scene"
	"github.com/achilleasa/polaris-rt/types"
)

// Map pixel (x, y) to a camera screen-plane coordinate. The frame center
// maps to (0, 0); row 0 is the top of the screen plane.
func ScreenCoords(x, y, frameW, frameH uint32, pixelScale float32) (float32, float32) {
	sx := (float32(x) - float32(frameW/2)) * pixelScale
	sy := (float32(frameH/2) - float32(y)) * pixelScale
	return sx, sy
}

// Cast ray into the scene and shade the nearest hit. The second return
// value is false if the ray does not hit anything.
func TracePixel(sc *scene.Scene, shader Shader, ray types.Ray) (types.Colour, bool) {
	hits := sc.Intersect(ray)
	if len(hits) == 0 {
		return types.Colour{}, false
	}
	return shader.Shade(sc, hits[0]), true
}

// Trace all pixels in rows [blockY, blockY+blockH) of the render target.
// Pixels whose rays miss keep their current (background) value.
func traceBlock(target *RenderTarget, blockY, blockH uint32) {
	camera := target.Scene.Camera
	for y := blockY; y < blockY+blockH; y++ {
		rowOffset := y * target.FrameW
		for x := uint32(0); x < target.FrameW; x++ {
			sx, sy := ScreenCoords(x, y, target.FrameW, target.FrameH, target.PixelScale)
			if colour, hit := TracePixel(target.Scene, target.Shader, camera.RayFromPosition(sx, sy)); hit {
				target.FrameBuffer[rowOffset+x] = colour
			}
		}
	}
}

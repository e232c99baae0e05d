package tracer

import (
	"time"

	"github.com/achilleasa/polaris-rt/scene"
	"github.com/achilleasa/polaris-rt/types"
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// The render target shared by all tracers working on the same frame. Each
// tracer only writes to the rows of the blocks assigned to it.
type RenderTarget struct {
	Scene  *scene.Scene
	Shader Shader

	// Frame dims.
	FrameW uint32
	FrameH uint32

	// World-space size of a pixel on the camera screen plane.
	PixelScale float32

	// Row-major frame buffer with FrameW * FrameH entries.
	FrameBuffer []types.Colour
}

// Tracer statistics.
type Stats struct {
	// The rendered block height
	BlockH uint32

	// The time for rendering this block
	RenderTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Shutdown and cleanup tracer.
	Close()

	// Get the tracers computation speed estimate compared to a
	// baseline (single cpu core) implementation.
	SpeedEstimate() float32

	// Attach the tracer to a render target and start processing requests.
	Setup(target RenderTarget) error

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Retrieve last frame statistics.
	Stats() *Stats
}

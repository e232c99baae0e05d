package renderer

import "runtime"

// The world-space size of a screen pixel used when Options.PixelScale is 0.
const DefaultPixelScale float32 = 0.008

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of tracers to render with. If 0, one tracer per cpu is used.
	NumTracers uint32

	// World-space size of a pixel on the camera screen plane.
	PixelScale float32
}

func (opts *Options) setDefaults() {
	if opts.NumTracers == 0 {
		opts.NumTracers = uint32(runtime.NumCPU())
	}
	// Each tracer needs at least one row to work on
	if opts.NumTracers > opts.FrameH {
		opts.NumTracers = opts.FrameH
	}
	if opts.PixelScale == 0 {
		opts.PixelScale = DefaultPixelScale
	}
}

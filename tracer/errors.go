package tracer

import "errors"

var (
	ErrAlreadyAttached    = errors.New("tracer: already attached to a render target")
	ErrNoSceneData        = errors.New("tracer: no scene data")
	ErrNoCamera           = errors.New("tracer: scene has no camera")
	ErrNoShader           = errors.New("tracer: no shader specified")
	ErrInvalidFrameBuffer = errors.New("tracer: frame buffer does not match frame dimensions")
	ErrBlockOutOfBounds   = errors.New("tracer: block request exceeds frame height")
)

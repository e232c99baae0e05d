package tracer

import (
	"sync"
	"time"

	"github.com/achilleasa/polaris-rt/log"
)

type cpuTracer struct {
	sync.Mutex
	wg sync.WaitGroup

	logger log.Logger

	// The tracer's id.
	id string

	// The frame being rendered.
	target *RenderTarget

	// A channel for receiving block requests from the renderer.
	blockReqChan chan BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	stats Stats
}

// Create a new tracer that renders blocks on a dedicated go-routine.
func NewCPUTracer(id string) Tracer {
	return &cpuTracer{
		logger: log.New(id),
		id:     id,
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// All cpu tracers run at the same baseline speed.
func (tr *cpuTracer) SpeedEstimate() float32 {
	return 1.0
}

// Retrieve last frame statistics.
func (tr *cpuTracer) Stats() *Stats {
	return &tr.stats
}

// Attach tracer to render target and start processing incoming block requests.
func (tr *cpuTracer) Setup(target RenderTarget) error {
	tr.Lock()
	defer tr.Unlock()

	if tr.target != nil {
		return ErrAlreadyAttached
	}
	if err := validateTarget(&target); err != nil {
		return err
	}

	tr.target = &target
	tr.startWorker()
	return nil
}

// Enqueue block request. The call blocks until the worker picks up the request.
func (tr *cpuTracer) Enqueue(blockReq BlockRequest) {
	tr.blockReqChan <- blockReq
}

// Shutdown tracer and wait for its worker to exit.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	if tr.closeChan == nil {
		return
	}

	close(tr.closeChan)
	tr.wg.Wait()
	tr.closeChan = nil
	tr.target = nil
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	tr.blockReqChan = make(chan BlockRequest)
	tr.closeChan = make(chan struct{})

	readyChan := make(chan struct{})
	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		var blockReq BlockRequest
		var startTime time.Time
		close(readyChan)
		for {
			select {
			case blockReq = <-tr.blockReqChan:
				if blockReq.BlockY+blockReq.BlockH > tr.target.FrameH {
					blockReq.ErrChan <- ErrBlockOutOfBounds
					continue
				}

				startTime = time.Now()
				traceBlock(tr.target, blockReq.BlockY, blockReq.BlockH)

				// Update stats
				tr.stats.BlockH = blockReq.BlockH
				tr.stats.RenderTime = time.Since(startTime)
				tr.logger.Debugf("rendered rows [%d, %d) in %s", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, tr.stats.RenderTime)

				blockReq.DoneChan <- blockReq.BlockH
			case <-tr.closeChan:
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

func validateTarget(target *RenderTarget) error {
	switch {
	case target.Scene == nil:
		return ErrNoSceneData
	case target.Scene.Camera == nil:
		return ErrNoCamera
	case target.Shader == nil:
		return ErrNoShader
	case target.FrameW == 0 || target.FrameH == 0 || len(target.FrameBuffer) != int(target.FrameW*target.FrameH):
		return ErrInvalidFrameBuffer
	}
	return nil
}

package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/achilleasa/polaris-rt/log"
	"github.com/achilleasa/polaris-rt/scene"
	"github.com/achilleasa/polaris-rt/tracer"
	"github.com/olekukonko/tablewriter"
)

type Renderer interface {
	// Render frame.
	Render() error

	// Get the last rendered frame.
	Frame() *Image

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

type TracerStat struct {
	// The tracer id.
	Id string

	// The block height and the percentage of total frame area it represents.
	BlockH       uint32
	FramePercent float32

	// Render time for assigned block
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual tracer stats.
	Tracers []TracerStat

	// Total render time for entire frame.
	RenderTime time.Duration
}

// Build a tabular representation of the frame statistics.
func (fs FrameStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Render time"})
	for _, stat := range fs.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fs.RenderTime.String()})
	table.Render()

	return buf.String()
}

// A renderer that splits each frame into row blocks and renders them in
// parallel using a pool of cpu tracers.
type defaultRenderer struct {
	logger log.Logger

	scene     *scene.Scene
	shader    tracer.Shader
	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer

	frame   *Image
	options Options

	blockAssignments []uint32
	stats            FrameStats
}

// Create a new renderer for scene sc using the specified block scheduler and shader.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, shader tracer.Shader, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}

	frame, err := NewImage(opts.FrameW, opts.FrameH, sc.BgColor)
	if err != nil {
		return nil, err
	}

	opts.setDefaults()
	r := &defaultRenderer{
		logger:    log.New("renderer"),
		scene:     sc,
		shader:    shader,
		scheduler: scheduler,
		frame:     frame,
		options:   opts,
	}

	target := tracer.RenderTarget{
		Scene:       sc,
		Shader:      shader,
		FrameW:      opts.FrameW,
		FrameH:      opts.FrameH,
		PixelScale:  opts.PixelScale,
		FrameBuffer: frame.Pixels,
	}
	for idx := uint32(0); idx < opts.NumTracers; idx++ {
		tr := tracer.NewCPUTracer(fmt.Sprintf("cpu-%02d", idx))
		if err = tr.Setup(target); err != nil {
			r.logger.Warningf("skipping tracer %s due to setup error: %s", tr.Id(), err.Error())
			continue
		}
		r.tracers = append(r.tracers, tr)
	}

	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}
	r.logger.Infof("attached %d tracers", len(r.tracers))

	return r, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Get the last rendered frame.
func (r *defaultRenderer) Frame() *Image {
	return r.frame
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Render frame.
func (r *defaultRenderer) Render() error {
	if len(r.tracers) == 0 {
		return ErrNoTracers
	}

	start := time.Now()

	// Reset frame to the background colour
	for idx := range r.frame.Pixels {
		r.frame.Pixels[idx] = r.scene.BgColor
	}

	r.blockAssignments = r.scheduler.Schedule(r.tracers, r.options.FrameH)
	r.logger.Debugf("block assignments: %v", r.blockAssignments)

	doneChan := make(chan uint32, len(r.tracers))
	errChan := make(chan error, len(r.tracers))
	var blockY uint32
	var pending int
	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		if blockH == 0 {
			continue
		}

		tr.Enqueue(tracer.BlockRequest{
			BlockY:   blockY,
			BlockH:   blockH,
			DoneChan: doneChan,
			ErrChan:  errChan,
		})
		blockY += blockH
		pending++
	}

	// Wait for all tracers to finish
	var err error
	for ; pending > 0; pending-- {
		select {
		case <-doneChan:
		case blockErr := <-errChan:
			if err == nil {
				err = blockErr
			}
		}
	}
	if err != nil {
		return err
	}

	r.updateStats(time.Since(start))
	return nil
}

func (r *defaultRenderer) updateStats(renderTime time.Duration) {
	r.stats.RenderTime = renderTime
	r.stats.Tracers = make([]TracerStat, 0, len(r.tracers))
	for idx, tr := range r.tracers {
		if r.blockAssignments[idx] == 0 {
			continue
		}
		stats := tr.Stats()
		r.stats.Tracers = append(r.stats.Tracers, TracerStat{
			Id:           tr.Id(),
			BlockH:       stats.BlockH,
			FramePercent: 100 * float32(stats.BlockH) / float32(r.options.FrameH),
			RenderTime:   stats.RenderTime,
		})
	}
	r.logger.Debugf("rendered %s in %s", r.frame, renderTime)
}

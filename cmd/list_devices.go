package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/achilleasa/polaris-rt/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the cpu tracers that the renderer attaches by default.
func ListDevices(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Tracer", "Type", "Speed"})
	for idx := 0; idx < runtime.NumCPU(); idx++ {
		tr := tracer.NewCPUTracer(fmt.Sprintf("cpu-%02d", idx))
		table.Append([]string{tr.Id(), "CPU", fmt.Sprintf("%3.1f", tr.SpeedEstimate())})
		tr.Close()
	}
	table.Render()

	logger.Noticef("system provides %d cpu tracer(s):\n%s", runtime.NumCPU(), buf.String())
	return nil
}

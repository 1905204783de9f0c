// SPDX-License-Identifier: MIT
// Package: sigmakit/internal/cli
//
// plot.go — `sigmactl plot`.

package cli

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/sigmakit/sigma"
)

// PlotOptions holds flags for the plot command.
type PlotOptions struct {
	*RootOptions
	Out     string
	Title   string
	Overlay string
	Log     bool
	Width   float64 // inches
	Height  float64 // inches
}

// plotFormats are the extensions plot.Save understands.
var plotFormats = []string{".png", ".svg", ".pdf", ".eps", ".jpg", ".jpeg", ".tif", ".tiff"}

// NewPlotCommand creates the plot command.
func NewPlotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlotOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "plot [values...]",
		Short: "Draw a schedule against its step index",
		Long: `Draw a schedule as sigma over step and save it to --out. The image
format follows the file extension (png, svg, pdf, eps, jpg, tif).

--overlay draws a second schedule in red for comparison.

Examples:
  sigmactl synthesize karras --steps 30 | sigmactl plot --out karras.png
  sigmactl plot --out cmp.svg --overlay "14.6 5 1 0.03" 14.6 7 2 0.03
  sigmactl plot --out log.pdf --log 14.6 3 0.5 0.03`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(opts, cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Out, "out", "o", "", "output image path (required)")
	_ = cmd.MarkFlagRequired("out")
	f.StringVar(&opts.Title, "title", "sigma schedule", "plot title")
	f.StringVar(&opts.Overlay, "overlay", "", "second schedule to draw")
	f.BoolVar(&opts.Log, "log", false, "logarithmic sigma axis; values must be > 0")
	f.Float64Var(&opts.Width, "width", 6, "image width in inches")
	f.Float64Var(&opts.Height, "height", 4, "image height in inches")

	return cmd
}

// PlotResult is the payload of the plot command.
type PlotResult struct {
	Path   string `json:"path"`
	Points int    `json:"points"`
}

func (r PlotResult) String() string { return fmt.Sprintf("wrote %s (%d points)", r.Path, r.Points) }

func runPlot(opts *PlotOptions, cmd *cobra.Command, args []string) error {
	s := newSession(opts.RootOptions, cmd)

	if err := opts.check(); err != nil {
		return s.out.Fail(ExitCommandError, err)
	}
	primary, err := s.readValues(cmd, args)
	if err != nil {
		return err
	}
	overlay, err := s.optionalValues(opts.Overlay)
	if err != nil {
		return err
	}
	series := []sigma.Sequence{primary}
	if !overlay.IsEmpty() {
		series = append(series, overlay)
	}

	p, err := opts.build(series)
	if err != nil {
		return s.out.Fail(ExitFailure, err)
	}
	s.logger.Debug("saving plot", "path", opts.Out, "series", len(series))
	if err := p.Save(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, opts.Out); err != nil {
		_ = s.out.Error(ErrCodeIO, err.Error(), nil)
		return WrapExitError(ExitCommandError, "saving plot", err)
	}
	return s.out.Success(PlotResult{Path: opts.Out, Points: primary.Len()})
}

func (o *PlotOptions) check() error {
	ext := strings.ToLower(filepath.Ext(o.Out))
	known := false
	for _, f := range plotFormats {
		known = known || f == ext
	}
	if !known {
		return sigma.Errorf("plot", "out", o.Out, "extension in "+strings.Join(plotFormats, " "), sigma.ErrInvalidArgument)
	}
	if !(o.Width > 0) || !(o.Height > 0) {
		return sigma.Errorf("plot", "size", [2]float64{o.Width, o.Height}, "> 0", sigma.ErrInvalidArgument)
	}
	return nil
}

var seriesColors = []color.RGBA{
	{R: 50, G: 50, B: 255, A: 255},
	{R: 255, A: 255},
}

func (o *PlotOptions) build(series []sigma.Sequence) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "step"
	p.Y.Label.Text = "sigma"
	p.Add(plotter.NewGrid())

	for i, seq := range series {
		if seq.IsEmpty() {
			return nil, sigma.Errorf("plot", "series", i, "non-empty", sigma.ErrInsufficientData)
		}
		if o.Log && !(seq.Min() > 0) {
			return nil, sigma.Errorf("plot", "min", seq.Min(), "> 0 on a log axis", sigma.ErrDomain)
		}
		vals := seq.Values()
		pts := make(plotter.XYs, len(vals))
		for j, v := range vals {
			pts[j].X = float64(j)
			pts[j].Y = v
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, err
		}
		line.Color = seriesColors[i]
		line.LineStyle.Width = vg.Points(1.5)
		points.Color = seriesColors[i]
		p.Add(line, points)
	}

	if o.Log {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	return p, nil
}

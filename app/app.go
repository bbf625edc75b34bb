package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/emfield/entity"
	"github.com/AnkushinDaniil/emfield/entity/format"
	"github.com/AnkushinDaniil/emfield/entity/mode"
	"github.com/AnkushinDaniil/emfield/entity/parameters"
)

const pageTitle = "Electric and magnetic field magnitude versus distance"

type App struct {
	Output string
	Params *parameters.Parameters
	Out    io.Writer
}

func New(output string, params *parameters.Parameters, out io.Writer) *App {
	return &App{
		Output: output,
		Params: params,
		Out:    out,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"mode":     a.Params.Mode,
		"format":   a.Params.Format,
		"output":   a.OutputPath(),
		"charge":   a.Params.Charge,
		"current":  a.Params.Current,
		"distance": a.Params.Distance,
	}).Debug("App started")

	switch a.Params.Mode {
	case mode.Demo:
		if err := a.WriteReport(a.Out); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	case mode.Sweep:
		return a.runSweep(ctx)
	default:
		return fmt.Errorf("unsupported mode: %v", a.Params.Mode)
	}
}

// OutputPath is the sweep destination, defaulting to Fields.<format>.
func (a *App) OutputPath() string {
	if a.Output != "" {
		return a.Output
	}
	return "Fields" + a.Params.Format.Ext()
}

// WriteReport prints the demonstration: initial vectors with their lengths, both computed
// magnitudes at Params.Distance and the component-wise sums.
func (a *App) WriteReport(w io.Writer) error {
	e1, e2 := entity.NewElectricField(0, 1e5, 1e3), entity.NewElectricField(1e4, 2e5, 3e3)
	b1, b2 := entity.NewMagneticField(0, 2, 1), entity.NewMagneticField(3, 1, 4)

	var sb strings.Builder
	sb.WriteString("Initial Fields:\n")
	fmt.Fprintf(&sb, "%s |v| = %s\n", e1.FieldVector, entity.FormatValue(e1.Norm()))
	fmt.Fprintf(&sb, "%s |v| = %s\n", b1.FieldVector, entity.FormatValue(b1.Norm()))

	r := a.Params.Distance
	e1.ComputeFromPointCharge(a.Params.Charge, r)
	fmt.Fprintf(&sb, "\nE at r = %s: %s |E| = %s N/C\n",
		entity.FormatValue(r), e1, entity.FormatValue(e1.Magnitude()))

	b1.ComputeFromCurrent(a.Params.Current, r)
	fmt.Fprintf(&sb, "B at r = %s: %s |B| = %s T\n",
		entity.FormatValue(r), b1, entity.FormatValue(b1.Magnitude()))

	sb.WriteString("\nSummed Fields:\n")
	fmt.Fprintln(&sb, e1.Add(e2))
	fmt.Fprintln(&sb, b1.Add(b2))

	_, err := io.WriteString(w, sb.String())
	return err
}

func (a *App) runSweep(ctx context.Context) error {
	result, err := entity.Sweep(ctx, a.Params)
	if err != nil {
		return fmt.Errorf("failed to sweep distances: %w", err)
	}

	f, err := os.Create(a.OutputPath())
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	switch a.Params.Format {
	case format.HTML:
		page := a.createPage(result)
		log.Info("Chart created")
		if err := page.Render(f); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
	case format.Csv:
		if err := WriteCSV(f, result); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %v", a.Params.Format)
	}
	log.WithFields(log.Fields{
		"time": time.Since(renderTime),
		"file": a.OutputPath(),
	}).Info("Sweep rendered and saved")

	return nil
}

func WriteCSV(w io.Writer, result *entity.SweepResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"distance_m", "electric_n_per_c", "magnetic_t"}); err != nil {
		return err
	}
	for i, d := range result.Distances {
		record := []string{
			strconv.FormatFloat(d, 'g', -1, 64),
			strconv.FormatFloat(result.Electric.Value(i), 'g', -1, 64),
			strconv.FormatFloat(result.Magnetic.Value(i), 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (a *App) createPage(result *entity.SweepResult) *components.Page {
	startTime := time.Now()
	defer func() {
		log.WithFields(log.Fields{
			"time":   time.Since(startTime),
			"points": len(result.Distances),
		}).Debug("Creating chart")
	}()

	page := components.NewPage()
	page.PageTitle = pageTitle
	page.AddCharts(
		createChart("Electric field (Gauss' Law)", "E, N/C", result.Distances, result.Electric),
		createChart("Magnetic field (Ampère's Law)", "B, T", result.Distances, result.Magnetic),
	)
	return page
}

func createChart(title, yName string, distances []float64, series *entity.Series) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "500px",
			PageTitle:       pageTitle,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "5%"}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "fields",
					Title: "Save as image",
				},
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "r, m"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  yName,
			Type:  yAxisType(series),
			Scale: opts.Bool(true),
		}),
	)

	line.SetXAxis(distances)
	line.AddSeries(series.Name(), series.Data())
	return line
}

// yAxisType is logarithmic unless some point is zero or negative, which a log
// axis cannot draw (negative charge, reversed current).
func yAxisType(series *entity.Series) string {
	for i := 0; i < series.Len(); i++ {
		if series.Value(i) <= 0 {
			return "value"
		}
	}
	return "log"
}

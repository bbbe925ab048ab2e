package util

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mihai-snyk/demo/pkg/framework"
)

// Resolution of the reference front drawn behind the obtained points.
const trueFrontResolution = 500

// PlotResults writes an HTML scatter of a 2-objective result set. The
// problem's true Pareto front, when known, is layered underneath as small
// circles so convergence is visible at a glance. Without an explicit output
// path the file lands in the working directory under a name derived from the
// problem and algorithm.
func PlotResults(results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string, outputPath ...string) error {
	if err := checkObjectives(results, 2, problem); err != nil {
		return err
	}

	chart := charts.NewScatter()
	chart.SetGlobalOptions(append(baseOptions(problem, algorithmName),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      axisLabel(0),
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      axisLabel(1),
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)...)

	if front := problem.TrueParetoFront(trueFrontResolution); front != nil {
		reference := make([]opts.ScatterData, len(front))
		for i, p := range front {
			reference[i] = opts.ScatterData{Value: p, Symbol: "circle", SymbolSize: 3}
		}
		chart.AddSeries("True Pareto Front", reference)
	}

	obtained := make([]opts.ScatterData, len(results))
	for i, p := range results {
		obtained[i] = opts.ScatterData{Value: p, Symbol: "triangle", SymbolSize: 8}
	}
	chart.AddSeries(fmt.Sprintf("%s Solutions", algorithmName), obtained).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	name := fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithmName)
	return renderHTML(chart, name, outputPath)
}

// PlotResults3D is the 3-objective counterpart of PlotResults, rendering the
// same two series on a rotatable 3-D scatter.
func PlotResults3D(results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string, outputPath ...string) error {
	if err := checkObjectives(results, 3, problem); err != nil {
		return err
	}

	chart := charts.NewScatter3D()
	chart.SetGlobalOptions(append(baseOptions(problem, algorithmName),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: axisLabel(0)}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: axisLabel(1)}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: axisLabel(2)}),
	)...)

	if front := problem.TrueParetoFront(trueFrontResolution); front != nil {
		chart.AddSeries("True Pareto Front", chart3DData(front))
	}
	chart.AddSeries(fmt.Sprintf("%s Solutions", algorithmName), chart3DData(results))

	name := fmt.Sprintf("%s_%s_results_3d.html", problem.Name(), algorithmName)
	return renderHTML(chart, name, outputPath)
}

// baseOptions holds the chart options the 2-D and 3-D renderers share.
func baseOptions(problem framework.Problem, algorithmName string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Results for %s Benchmark", algorithmName, problem.Name()),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	}
}

func axisLabel(i int) string {
	return fmt.Sprintf("f%d(x)", i+1)
}

func chart3DData(points []framework.ObjectiveSpacePoint) []opts.Chart3DData {
	data := make([]opts.Chart3DData, len(points))
	for i, p := range points {
		data[i] = opts.Chart3DData{Value: []interface{}{p[0], p[1], p[2]}}
	}
	return data
}

func checkObjectives(results []framework.ObjectiveSpacePoint, want int, problem framework.Problem) error {
	if len(results) == 0 {
		return fmt.Errorf("no result points to plot for %s", problem.Name())
	}
	if got := len(results[0]); got != want {
		return fmt.Errorf("%s results carry %d objectives, need %d to plot", problem.Name(), got, want)
	}
	return nil
}

// renderHTML resolves the optional output path override and writes the chart.
func renderHTML(chart interface{ Render(io.Writer) error }, defaultName string, outputPath []string) error {
	name := defaultName
	if len(outputPath) > 0 && outputPath[0] != "" {
		name = outputPath[0]
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return chart.Render(f)
}

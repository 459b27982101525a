// Package chart renders the draw statistics as a 2×2 panel PNG: main-number
// frequency bars, bonus-number pie, per-draw sum trend line, and parity-ratio
// bars. Panels whose source data is empty are left blank rather than failing
// the whole figure.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"os/exec"
	"runtime"
	"sort"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/lottoscope/lottoscope/internal/logger"
	"github.com/lottoscope/lottoscope/internal/models"
	"github.com/lottoscope/lottoscope/internal/stats"
)

var (
	barFill    = drawing.ColorFromHex("87ceeb") // sky blue
	parityFill = drawing.ColorFromHex("f08080") // light coral
	lineStroke = drawing.ColorFromHex("1f77b4")
)

// Renderer produces the analysis figure for a set of draw records.
type Renderer struct {
	outputPath  string
	panelWidth  int
	panelHeight int
}

// NewRenderer creates a renderer writing the figure to outputPath, with each
// of the four panels sized panelWidth×panelHeight pixels.
func NewRenderer(outputPath string, panelWidth, panelHeight int) *Renderer {
	return &Renderer{
		outputPath:  outputPath,
		panelWidth:  panelWidth,
		panelHeight: panelHeight,
	}
}

// Render derives the chart data from records and writes the composed figure,
// overwriting any previous file. No file is written when there are no records
// to chart.
func (r *Renderer) Render(records []models.DrawRecord) error {
	if len(records) == 0 {
		logger.Info("No draw data to chart, skipping figure")
		return nil
	}

	mainFreq, bonusFreq := stats.Frequency(records)
	patterns := stats.Patterns(records)

	panels := [4][]byte{}
	var err error

	if panels[0], err = r.frequencyPanel(mainFreq); err != nil {
		return fmt.Errorf("frequency panel: %w", err)
	}
	if panels[1], err = r.bonusPanel(bonusFreq); err != nil {
		return fmt.Errorf("bonus panel: %w", err)
	}
	if panels[2], err = r.sumPanel(patterns); err != nil {
		return fmt.Errorf("sum panel: %w", err)
	}
	if panels[3], err = r.parityPanel(patterns); err != nil {
		return fmt.Errorf("parity panel: %w", err)
	}

	figure, err := r.compose(panels)
	if err != nil {
		return fmt.Errorf("compose figure: %w", err)
	}

	out, err := os.Create(r.outputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, figure); err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}

	logger.Info("Chart figure written to %s", r.outputPath)
	return nil
}

// OutputPath returns the path the figure is written to.
func (r *Renderer) OutputPath() string {
	return r.outputPath
}

// Open launches the platform image viewer on the rendered figure. Best
// effort: a missing opener only logs a warning.
func (r *Renderer) Open() {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", r.outputPath)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", r.outputPath)
	default:
		cmd = exec.Command("xdg-open", r.outputPath)
	}
	if err := cmd.Start(); err != nil {
		logger.Warn("Failed to open figure viewer: %v", err)
	}
}

// frequencyPanel renders the main-number frequency bar chart, bars keyed by
// number ascending.
func (r *Renderer) frequencyPanel(freq models.FrequencyTable) ([]byte, error) {
	if len(freq) == 0 {
		return nil, nil
	}

	numbers := freq.Numbers()
	sort.Ints(numbers)

	bars := make([]chart.Value, 0, len(numbers))
	maxCount := 0
	for _, n := range numbers {
		if freq[n] > maxCount {
			maxCount = freq[n]
		}
		bars = append(bars, chart.Value{
			Value: float64(freq[n]),
			Label: strconv.Itoa(n),
			Style: chart.Style{FillColor: barFill, StrokeColor: barFill},
		})
	}

	width, spacing := barLayout(r.panelWidth, len(bars))
	bc := chart.BarChart{
		Title:      "Main Number Frequency",
		Width:      r.panelWidth,
		Height:     r.panelHeight,
		BarWidth:   width,
		BarSpacing: spacing,
		// An explicit range keeps constant-valued bars renderable.
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount + 1)},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// bonusPanel renders the bonus-number pie chart with percentage labels.
func (r *Renderer) bonusPanel(freq models.FrequencyTable) ([]byte, error) {
	if len(freq) == 0 {
		return nil, nil
	}

	total := freq.Total()
	numbers := freq.Numbers()
	sort.Ints(numbers)

	values := make([]chart.Value, 0, len(numbers))
	for _, n := range numbers {
		pct := float64(freq[n]) / float64(total) * 100
		values = append(values, chart.Value{
			Value: float64(freq[n]),
			Label: fmt.Sprintf("%d (%.1f%%)", n, pct),
		})
	}

	pc := chart.PieChart{
		Title:  "Bonus Number Frequency",
		Width:  r.panelWidth,
		Height: r.panelHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sumPanel renders the per-draw sum trend line, x-axis labeled by ordinal
// draw position. A line needs at least two points; fewer leaves the panel
// blank.
func (r *Renderer) sumPanel(patterns []models.PatternSet) ([]byte, error) {
	if len(patterns) < 2 {
		return nil, nil
	}

	xs := make([]float64, 0, len(patterns))
	ys := make([]float64, 0, len(patterns))
	ticks := make([]chart.Tick, 0, len(patterns))
	minSum, maxSum := patterns[0].Sum, patterns[0].Sum
	for i, p := range patterns {
		x := float64(i + 1)
		xs = append(xs, x)
		ys = append(ys, float64(p.Sum))
		ticks = append(ticks, chart.Tick{Value: x, Label: fmt.Sprintf("#%d", i+1)})
		if p.Sum < minSum {
			minSum = p.Sum
		}
		if p.Sum > maxSum {
			maxSum = p.Sum
		}
	}

	c := chart.Chart{
		Title:  "Sum Trend",
		Width:  r.panelWidth,
		Height: r.panelHeight,
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		// Padding keeps the range nonzero even when every draw sums alike.
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: float64(minSum - 5), Max: float64(maxSum + 5)},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: lineStroke,
					StrokeWidth: 2,
					DotColor:    lineStroke,
					DotWidth:    4,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// parityPanel renders the odd/even ratio distribution bars, labeled by ratio
// string.
func (r *Renderer) parityPanel(patterns []models.PatternSet) ([]byte, error) {
	histogram := stats.RatioHistogram(stats.OddEvenRatios(patterns))
	if len(histogram) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(histogram))
	maxCount := 0
	for _, rc := range histogram {
		if rc.Count > maxCount {
			maxCount = rc.Count
		}
		bars = append(bars, chart.Value{
			Value: float64(rc.Count),
			Label: rc.Ratio,
			Style: chart.Style{FillColor: parityFill, StrokeColor: parityFill},
		})
	}

	width, spacing := barLayout(r.panelWidth, len(bars))
	bc := chart.BarChart{
		Title:      "Odd/Even Ratio Distribution",
		Width:      r.panelWidth,
		Height:     r.panelHeight,
		BarWidth:   width,
		BarSpacing: spacing,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount + 1)},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// compose lays the four panels out row-major from top-left on a white
// canvas. A nil panel leaves its quadrant blank.
func (r *Renderer) compose(panels [4][]byte) (image.Image, error) {
	figure := image.NewRGBA(image.Rect(0, 0, r.panelWidth*2, r.panelHeight*2))
	draw.Draw(figure, figure.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	offsets := [4]image.Point{
		{0, 0},
		{r.panelWidth, 0},
		{0, r.panelHeight},
		{r.panelWidth, r.panelHeight},
	}

	for i, panel := range panels {
		if panel == nil {
			continue
		}
		img, err := png.Decode(bytes.NewReader(panel))
		if err != nil {
			return nil, fmt.Errorf("decode panel %d: %w", i, err)
		}
		target := image.Rectangle{
			Min: offsets[i],
			Max: offsets[i].Add(image.Point{r.panelWidth, r.panelHeight}),
		}
		draw.Draw(figure, target, img, img.Bounds().Min, draw.Src)
	}

	return figure, nil
}

// barLayout sizes bars and their spacing so the given bar count fits the
// panel. go-chart's default spacing assumes a handful of bars; the main
// frequency panel can hold up to 50.
func barLayout(panelWidth, bars int) (width, spacing int) {
	if bars == 0 {
		return 1, 1
	}
	per := panelWidth / (bars + 1)
	if per < 4 {
		per = 4
	}
	width = per * 6 / 10
	if width < 2 {
		width = 2
	}
	if width > 60 {
		width = 60
	}
	spacing = per - width
	if spacing < 1 {
		spacing = 1
	}
	return width, spacing
}

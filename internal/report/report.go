// Package report formats computed draw statistics as a human-readable text
// report. It contains no business logic: every figure it prints comes from
// the stats package, recomputed fresh on each call.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/lottoscope/lottoscope/internal/models"
	"github.com/lottoscope/lottoscope/internal/stats"
)

const (
	headerRule  = "============================================================"
	sectionRule = "----------------------------------------"
	minorRule   = "------------------------------"
)

// Presenter writes draw analysis reports to an output stream.
type Presenter struct {
	w io.Writer
}

// NewPresenter creates a presenter writing to w.
func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

// Write prints the full statistics report for the loaded records. An empty
// record list prints a single "no data" line and returns.
func (p *Presenter) Write(records []models.DrawRecord, runID string, origin models.Origin, generatedAt time.Time) {
	if len(records) == 0 {
		fmt.Fprintln(p.w, "No draw data available for analysis")
		return
	}

	fmt.Fprintln(p.w, headerRule)
	fmt.Fprintln(p.w, "MEGA Lottery Draw Trend Report")
	fmt.Fprintln(p.w, headerRule)
	fmt.Fprintf(p.w, "Run ID:    %s\n", runID)
	fmt.Fprintf(p.w, "Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(p.w, "Draws:     %d (%s)\n\n", len(records), origin)

	p.writeDraws(records)

	main, bonus := stats.Frequency(records)
	p.writeFrequency("Main number frequency:", "Number", main)
	p.writeHotCold(main)
	p.writeFrequency("Bonus number frequency:", "Bonus", bonus)

	patterns := stats.Patterns(records)
	p.writePatterns(patterns)
}

func (p *Presenter) writeDraws(records []models.DrawRecord) {
	fmt.Fprintln(p.w, "Recent draws:")
	fmt.Fprintln(p.w, sectionRule)
	for _, record := range records {
		fmt.Fprintf(p.w, "Draw %d: %v + bonus %v\n", record.DrawID, record.SortedNumbers(), record.Bonus)
	}
	fmt.Fprintln(p.w)
}

func (p *Presenter) writeFrequency(title, label string, table models.FrequencyTable) {
	if len(table) == 0 {
		return
	}

	fmt.Fprintln(p.w, title)
	fmt.Fprintln(p.w, minorRule)
	numbers := table.Numbers()
	sort.Ints(numbers)
	for _, n := range numbers {
		fmt.Fprintf(p.w, "%s %2d: %d\n", label, n, table[n])
	}
	fmt.Fprintln(p.w)
}

func (p *Presenter) writeHotCold(main models.FrequencyTable) {
	hot, cold := stats.HotCold(main, 5)
	if hot == nil {
		return
	}

	fmt.Fprintln(p.w, "Hot numbers (most frequent):")
	for _, nc := range hot {
		fmt.Fprintf(p.w, "  number %d: %d draws\n", nc.Number, nc.Count)
	}
	fmt.Fprintln(p.w)

	fmt.Fprintln(p.w, "Cold numbers (least frequent):")
	for _, nc := range cold {
		fmt.Fprintf(p.w, "  number %d: %d draws\n", nc.Number, nc.Count)
	}
	fmt.Fprintln(p.w)
}

func (p *Presenter) writePatterns(patterns []models.PatternSet) {
	if len(patterns) == 0 {
		return
	}

	fmt.Fprintln(p.w, "Pattern analysis:")
	fmt.Fprintln(p.w, minorRule)

	fmt.Fprintln(p.w, "Odd/even distribution:")
	for _, rc := range stats.RatioHistogram(stats.OddEvenRatios(patterns)) {
		fmt.Fprintf(p.w, "  %s: %d draws\n", rc.Ratio, rc.Count)
	}
	fmt.Fprintln(p.w)

	fmt.Fprintln(p.w, "Low/high distribution:")
	for _, rc := range stats.RatioHistogram(stats.LowHighRatios(patterns)) {
		fmt.Fprintf(p.w, "  %s: %d draws\n", rc.Ratio, rc.Count)
	}
	fmt.Fprintln(p.w)

	s := stats.Sums(patterns)
	fmt.Fprintf(p.w, "Sum range:  %d - %d\n", s.Min, s.Max)
	fmt.Fprintf(p.w, "Mean sum:   %.1f\n", s.Mean)
	fmt.Fprintf(p.w, "Median sum: %.1f\n\n", s.Median)

	fmt.Fprintln(p.w, "Consecutive pairs distribution:")
	for _, rc := range stats.ConsecutiveHistogram(patterns) {
		fmt.Fprintf(p.w, "  %d consecutive pairs: %d draws\n", rc.Runs, rc.Count)
	}
	fmt.Fprintln(p.w)
}

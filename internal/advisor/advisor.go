// Package advisor turns the computed statistics into a short trend summary
// with betting suggestions. The suggestions are descriptive, not predictive,
// and every summary ends with a fixed disclaimer saying so.
package advisor

import (
	"fmt"
	"io"
	"strings"

	"github.com/lottoscope/lottoscope/internal/models"
	"github.com/lottoscope/lottoscope/internal/stats"
)

const headerRule = "============================================================"

// SumRangeSpread is the half-width of the suggested sum range around the
// observed mean, truncated to integers.
const SumRangeSpread = 10

// Disclaimer is appended verbatim to every trend summary.
const Disclaimer = `Important notes:
1. Lottery draws are random; historical data is for reference only
2. Bet responsibly and never beyond your means
3. This tool is for entertainment and educational use only
4. Official draw results always prevail`

// Advise writes the trend summary for the loaded records to w. An empty
// record list prints an early message and returns.
func Advise(w io.Writer, records []models.DrawRecord) {
	io.WriteString(w, Summary(records))
}

// Summary builds the trend summary as a string, so it can be printed and
// delivered to Telegram from the same text.
func Summary(records []models.DrawRecord) string {
	var b strings.Builder

	fmt.Fprintln(&b, headerRule)
	fmt.Fprintln(&b, "Trend Summary and Betting Suggestions")
	fmt.Fprintln(&b, headerRule)

	if len(records) == 0 {
		fmt.Fprintln(&b, "Insufficient data for trend analysis")
		return b.String()
	}

	main, _ := stats.Frequency(records)
	patterns := stats.Patterns(records)

	parity := stats.RatioHistogram(stats.OddEvenRatios(patterns))
	magnitude := stats.RatioHistogram(stats.LowHighRatios(patterns))
	sums := stats.Sums(patterns)

	fmt.Fprintln(&b, "Observed trends:")
	fmt.Fprintf(&b, "  Most common odd/even ratio: %s (%d draws)\n", parity[0].Ratio, parity[0].Count)
	fmt.Fprintf(&b, "  Most common low/high ratio: %s (%d draws)\n", magnitude[0].Ratio, magnitude[0].Count)
	fmt.Fprintf(&b, "  Mean sum: %.1f\n\n", sums.Mean)

	hot, cold := stats.HotCold(main, 5)

	fmt.Fprintln(&b, "Suggestions:")
	fmt.Fprintln(&b, "  Hot numbers to watch:")
	for _, nc := range top(hot, 3) {
		fmt.Fprintf(&b, "    number %d (%d draws)\n", nc.Number, nc.Count)
	}
	fmt.Fprintln(&b, "  Cold numbers to watch:")
	for _, nc := range top(cold, 3) {
		fmt.Fprintf(&b, "    number %d (%d draws)\n", nc.Number, nc.Count)
	}

	low, high := SuggestedSumRange(sums.Mean)
	fmt.Fprintf(&b, "  Suggested sum range: %d - %d\n\n", low, high)

	fmt.Fprintln(&b, Disclaimer)
	return b.String()
}

// SuggestedSumRange brackets the mean sum by SumRangeSpread on each side,
// truncating the mean to an integer first.
func SuggestedSumRange(mean float64) (low, high int) {
	m := int(mean)
	return m - SumRangeSpread, m + SumRangeSpread
}

func top(entries []models.NumberCount, n int) []models.NumberCount {
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// Package stats computes descriptive statistics over loaded draw records:
// frequency tables, hot/cold rankings, and per-draw structural patterns.
//
// Every function is a pure function of its input. Nothing is cached between
// calls, so calling the analysis functions in any order yields identical
// results for the same record list.
package stats

import (
	"fmt"
	"sort"

	"github.com/lottoscope/lottoscope/internal/models"
)

// LowHighThreshold splits the 1–50 number universe into low (≤25) and
// high (>25) halves for the magnitude ratio.
const LowHighThreshold = 25

// Frequency counts occurrences of every main and bonus number across the
// loaded records. Both tables are nil when no records are loaded; callers
// treat that as a no-op, not an error.
func Frequency(records []models.DrawRecord) (main, bonus models.FrequencyTable) {
	if len(records) == 0 {
		return nil, nil
	}

	main = make(models.FrequencyTable)
	bonus = make(models.FrequencyTable)
	for _, record := range records {
		for _, n := range record.Numbers {
			main[n]++
		}
		for _, b := range record.Bonus {
			bonus[b]++
		}
	}
	return main, bonus
}

// Patterns derives one PatternSet per record, in input order, from each
// draw's sorted main numbers.
func Patterns(records []models.DrawRecord) []models.PatternSet {
	if len(records) == 0 {
		return nil
	}

	patterns := make([]models.PatternSet, 0, len(records))
	for _, record := range records {
		numbers := record.SortedNumbers()

		odd := 0
		low := 0
		sum := 0
		for _, n := range numbers {
			if n%2 == 1 {
				odd++
			}
			if n <= LowHighThreshold {
				low++
			}
			sum += n
		}

		consecutive := 0
		gaps := make([]int, 0, len(numbers)-1)
		for i := 0; i+1 < len(numbers); i++ {
			gap := numbers[i+1] - numbers[i]
			gaps = append(gaps, gap)
			if gap == 1 {
				consecutive++
			}
		}

		patterns = append(patterns, models.PatternSet{
			DrawID:      record.DrawID,
			OddEven:     fmt.Sprintf("%d:%d", odd, len(numbers)-odd),
			LowHigh:     fmt.Sprintf("%d:%d", low, len(numbers)-low),
			Sum:         sum,
			Consecutive: consecutive,
			Gaps:        gaps,
		})
	}
	return patterns
}

// HotCold ranks the table's numbers by occurrence count. Hot numbers are the
// n most frequent (highest count first), cold numbers the n least frequent
// (lowest count first). Ties are broken by ascending number so that the
// ranking is deterministic. With fewer than n distinct numbers both lists
// contain every entry, so they may overlap; that is accepted, not an error.
func HotCold(table models.FrequencyTable, n int) (hot, cold []models.NumberCount) {
	if len(table) == 0 {
		return nil, nil
	}

	entries := make([]models.NumberCount, 0, len(table))
	for number, count := range table {
		entries = append(entries, models.NumberCount{Number: number, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Number < entries[j].Number
	})

	if n > len(entries) {
		n = len(entries)
	}

	hot = make([]models.NumberCount, n)
	copy(hot, entries[:n])

	// Coldest first: reverse the tail, keeping ascending number order
	// within equal counts.
	cold = make([]models.NumberCount, 0, n)
	tail := entries[len(entries)-n:]
	for i := len(tail) - 1; i >= 0; i-- {
		cold = append(cold, tail[i])
	}
	sort.Slice(cold, func(i, j int) bool {
		if cold[i].Count != cold[j].Count {
			return cold[i].Count < cold[j].Count
		}
		return cold[i].Number < cold[j].Number
	})

	return hot, cold
}

// Sums summarizes the per-draw sum distribution. Returns the zero value when
// no patterns are supplied.
func Sums(patterns []models.PatternSet) models.SumStats {
	if len(patterns) == 0 {
		return models.SumStats{}
	}

	sums := make([]int, 0, len(patterns))
	total := 0
	for _, p := range patterns {
		sums = append(sums, p.Sum)
		total += p.Sum
	}
	sort.Ints(sums)

	var median float64
	mid := len(sums) / 2
	if len(sums)%2 == 0 {
		median = float64(sums[mid-1]+sums[mid]) / 2
	} else {
		median = float64(sums[mid])
	}

	return models.SumStats{
		Min:    sums[0],
		Max:    sums[len(sums)-1],
		Mean:   float64(total) / float64(len(sums)),
		Median: median,
	}
}

// RatioHistogram groups identical ratio strings and orders the groups by
// descending count. Equal counts keep first-seen order, matching the way
// the ratios accumulate across draws.
func RatioHistogram(ratios []string) []models.RatioCount {
	if len(ratios) == 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, ratio := range ratios {
		if _, seen := counts[ratio]; !seen {
			order = append(order, ratio)
		}
		counts[ratio]++
	}

	histogram := make([]models.RatioCount, 0, len(order))
	for _, ratio := range order {
		histogram = append(histogram, models.RatioCount{Ratio: ratio, Count: counts[ratio]})
	}
	sort.SliceStable(histogram, func(i, j int) bool {
		return histogram[i].Count > histogram[j].Count
	})
	return histogram
}

// OddEvenRatios extracts the parity ratio strings from a pattern list, in order.
func OddEvenRatios(patterns []models.PatternSet) []string {
	ratios := make([]string, 0, len(patterns))
	for _, p := range patterns {
		ratios = append(ratios, p.OddEven)
	}
	return ratios
}

// LowHighRatios extracts the magnitude ratio strings from a pattern list, in order.
func LowHighRatios(patterns []models.PatternSet) []string {
	ratios := make([]string, 0, len(patterns))
	for _, p := range patterns {
		ratios = append(ratios, p.LowHigh)
	}
	return ratios
}

// ConsecutiveHistogram counts how many draws exhibit each consecutive-pair
// count, ordered ascending by that count.
func ConsecutiveHistogram(patterns []models.PatternSet) []models.RunCount {
	if len(patterns) == 0 {
		return nil
	}

	counts := make(map[int]int)
	for _, p := range patterns {
		counts[p.Consecutive]++
	}

	runs := make([]int, 0, len(counts))
	for r := range counts {
		runs = append(runs, r)
	}
	sort.Ints(runs)

	histogram := make([]models.RunCount, 0, len(runs))
	for _, r := range runs {
		histogram = append(histogram, models.RunCount{Runs: r, Count: counts[r]})
	}
	return histogram
}

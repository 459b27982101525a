package models

// FrequencyTable maps a number to its occurrence count across all loaded
// draws. Tables are rebuilt from the record list on every analysis call and
// never cached, so analysis order cannot leak state between calls.
type FrequencyTable map[int]int

// Total returns the sum of all occurrence counts in the table.
func (t FrequencyTable) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// Numbers returns the distinct numbers present in the table, unordered.
func (t FrequencyTable) Numbers() []int {
	numbers := make([]int, 0, len(t))
	for n := range t {
		numbers = append(numbers, n)
	}
	return numbers
}

// NumberCount pairs a number with its occurrence count, used for hot/cold
// rankings and chart values.
type NumberCount struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// RatioCount pairs a ratio string (e.g. "3:2") with the number of draws
// exhibiting it.
type RatioCount struct {
	Ratio string `json:"ratio"`
	Count int    `json:"count"`
}

// RunCount pairs a consecutive-pair count with the number of draws
// exhibiting it.
type RunCount struct {
	Runs  int `json:"runs"`
	Count int `json:"count"`
}

// PatternSet holds the structural patterns derived from one draw's sorted
// main numbers. One PatternSet exists per DrawRecord, in input order.
type PatternSet struct {
	DrawID      int    `json:"draw_id"`
	OddEven     string `json:"odd_even"` // odd count : even count
	LowHigh     string `json:"low_high"` // count ≤25 : count >25
	Sum         int    `json:"sum"`
	Consecutive int    `json:"consecutive"` // adjacent sorted pairs differing by 1
	Gaps        []int  `json:"gaps"`        // differences between adjacent sorted numbers
}

// SumStats summarizes the per-draw sum distribution.
type SumStats struct {
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

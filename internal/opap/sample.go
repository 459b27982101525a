package opap

import (
	"time"

	"github.com/lottoscope/lottoscope/internal/models"
)

// SampleDraws returns the fixed 10-draw demonstration sample used when the
// API cannot be reached. The records span consecutive evenings and are the
// same on every call, so analysis of the fallback path is deterministic.
func SampleDraws() []models.DrawRecord {
	sample := []struct {
		id      int
		numbers []int
		bonus   []int
	}{
		{1001, []int{3, 12, 25, 38, 45}, []int{7}},
		{1002, []int{8, 19, 27, 33, 41}, []int{12}},
		{1003, []int{5, 16, 22, 35, 44}, []int{9}},
		{1004, []int{11, 18, 29, 36, 42}, []int{6}},
		{1005, []int{2, 14, 23, 31, 39}, []int{15}},
		{1006, []int{7, 17, 26, 34, 43}, []int{11}},
		{1007, []int{9, 20, 28, 37, 46}, []int{4}},
		{1008, []int{4, 13, 21, 32, 40}, []int{8}},
		{1009, []int{6, 15, 24, 30, 38}, []int{13}},
		{1010, []int{10, 19, 25, 33, 41}, []int{5}},
	}

	records := make([]models.DrawRecord, 0, len(sample))
	for i, s := range sample {
		records = append(records, models.DrawRecord{
			DrawID:   s.id,
			Numbers:  s.numbers,
			Bonus:    s.bonus,
			DrawTime: time.Date(2024, time.January, 15+i, 20, 0, 0, 0, time.UTC),
		})
	}
	return records
}

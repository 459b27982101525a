package models

import (
	"testing"
	"time"
)

func TestDrawRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  DrawRecord
		wantErr bool
	}{
		{
			name: "valid record",
			record: DrawRecord{
				DrawID:   1001,
				Numbers:  []int{3, 12, 25, 38, 45},
				Bonus:    []int{7},
				DrawTime: time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC),
			},
			wantErr: false,
		},
		{
			name: "valid without bonus",
			record: DrawRecord{
				DrawID:  1002,
				Numbers: []int{1, 2, 3, 4, 50},
			},
			wantErr: false,
		},
		{
			name: "non-positive draw ID",
			record: DrawRecord{
				Numbers: []int{3, 12, 25, 38, 45},
			},
			wantErr: true,
		},
		{
			name: "too few main numbers",
			record: DrawRecord{
				DrawID:  1003,
				Numbers: []int{3, 12, 25, 38},
			},
			wantErr: true,
		},
		{
			name: "too many main numbers",
			record: DrawRecord{
				DrawID:  1004,
				Numbers: []int{3, 12, 25, 38, 45, 46},
			},
			wantErr: true,
		},
		{
			name: "main number out of range",
			record: DrawRecord{
				DrawID:  1005,
				Numbers: []int{3, 12, 25, 38, 51},
			},
			wantErr: true,
		},
		{
			name: "main number below range",
			record: DrawRecord{
				DrawID:  1006,
				Numbers: []int{0, 12, 25, 38, 45},
			},
			wantErr: true,
		},
		{
			name: "bonus out of range",
			record: DrawRecord{
				DrawID:  1007,
				Numbers: []int{3, 12, 25, 38, 45},
				Bonus:   []int{51},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSortedNumbersDoesNotMutate(t *testing.T) {
	record := DrawRecord{
		DrawID:  1001,
		Numbers: []int{45, 3, 38, 12, 25},
	}

	sorted := record.SortedNumbers()

	want := []int{3, 12, 25, 38, 45}
	for i, n := range want {
		if sorted[i] != n {
			t.Errorf("SortedNumbers()[%d] = %d, want %d", i, sorted[i], n)
		}
	}

	// Original order must survive
	if record.Numbers[0] != 45 {
		t.Errorf("SortedNumbers mutated the record: Numbers[0] = %d, want 45", record.Numbers[0])
	}
}

func TestFrequencyTableTotal(t *testing.T) {
	table := FrequencyTable{3: 2, 12: 1, 25: 3}
	if got := table.Total(); got != 6 {
		t.Errorf("Total() = %d, want 6", got)
	}

	var empty FrequencyTable
	if got := empty.Total(); got != 0 {
		t.Errorf("Total() on nil table = %d, want 0", got)
	}
}

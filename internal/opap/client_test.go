package opap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lottoscope/lottoscope/internal/models"
)

const validBody = `{
	"content": [
		{"drawId": 2001, "winningNumbers": {"list": [3, 12, 25, 38, 45]}, "bonus": [7], "drawTime": "2024-02-01T20:00:00"},
		{"drawId": 2002, "winningNumbers": {"list": [8, 19, 27, 33, 41]}, "bonus": [12], "drawTime": "2024-02-02T20:00:00"}
	]
}`

func TestFetchRecentDraws(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("status"); got != "DRAW" {
			t.Errorf("status query = %q, want DRAW", got)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("limit query = %q, want 10", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	records, err := client.FetchRecentDraws(context.Background(), 10)
	if err != nil {
		t.Fatalf("FetchRecentDraws failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].DrawID != 2001 {
		t.Errorf("DrawID = %d, want 2001", records[0].DrawID)
	}
	if len(records[0].Numbers) != 5 {
		t.Errorf("Expected 5 main numbers, got %d", len(records[0].Numbers))
	}
	if records[0].Bonus[0] != 7 {
		t.Errorf("Bonus = %v, want [7]", records[0].Bonus)
	}
	want := time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC)
	if !records[0].DrawTime.Equal(want) {
		t.Errorf("DrawTime = %v, want %v", records[0].DrawTime, want)
	}
}

func TestFetchRecentDrawsErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"content": [`))
			},
		},
		{
			name: "invalid draw rejects whole batch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"content": [
					{"drawId": 2001, "winningNumbers": {"list": [3, 12, 25, 38, 45]}, "bonus": [7], "drawTime": "2024-02-01T20:00:00"},
					{"drawId": 2002, "winningNumbers": {"list": [3, 12, 25]}, "bonus": [7], "drawTime": "2024-02-02T20:00:00"}
				]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, 5*time.Second)
			records, err := client.FetchRecentDraws(context.Background(), 10)
			if err == nil {
				t.Error("Expected error, got nil")
			}
			if records != nil {
				t.Errorf("Expected no records on error, got %d", len(records))
			}
		})
	}
}

func TestFetchRecentDrawsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(validBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond)
	if _, err := client.FetchRecentDraws(context.Background(), 10); err == nil {
		t.Error("Expected timeout error, got nil")
	}
}

func TestLoadFallsBackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	result := Load(context.Background(), client, 10)

	if result.Origin != models.OriginFallback {
		t.Errorf("Origin = %q, want %q", result.Origin, models.OriginFallback)
	}
	if len(result.Records) != 10 {
		t.Errorf("Expected 10 fallback records, got %d", len(result.Records))
	}
}

func TestLoadUsesFetchedRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(validBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	result := Load(context.Background(), client, 10)

	if result.Origin != models.OriginFetched {
		t.Errorf("Origin = %q, want %q", result.Origin, models.OriginFetched)
	}
	if len(result.Records) != 2 {
		t.Errorf("Expected 2 fetched records, got %d", len(result.Records))
	}
}

func TestSampleDrawsIsDeterministic(t *testing.T) {
	first := SampleDraws()
	second := SampleDraws()

	if len(first) != 10 || len(second) != 10 {
		t.Fatalf("Expected 10 sample draws, got %d and %d", len(first), len(second))
	}

	for i := range first {
		if first[i].DrawID != second[i].DrawID {
			t.Errorf("Draw %d: IDs differ between calls", i)
		}
		for j := range first[i].Numbers {
			if first[i].Numbers[j] != second[i].Numbers[j] {
				t.Errorf("Draw %d: numbers differ between calls", i)
			}
		}
	}
}

func TestSampleDrawsAreValid(t *testing.T) {
	for _, record := range SampleDraws() {
		if err := record.Validate(); err != nil {
			t.Errorf("Sample draw %d invalid: %v", record.DrawID, err)
		}
		if len(record.Bonus) != 1 {
			t.Errorf("Sample draw %d: expected 1 bonus number, got %d", record.DrawID, len(record.Bonus))
		}
	}
}

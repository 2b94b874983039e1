// Package testutil provides shared test infrastructure for the boarding
// simulator. It holds the golden dataset types and assertion helpers used
// across sim/ and cmd/ test packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase represents a single boarding run from the golden dataset.
type GoldenTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Ordering   string        `json:"ordering"`
	Seed       int64         `json:"seed"`
	Metrics    GoldenMetrics `json:"metrics"`
	FirstSeats []string      `json:"first_seats"` // expected prefix of the boarding order, by seat
}

// GoldenMetrics represents the expected outcome of a golden run.
type GoldenMetrics struct {
	Passengers int   `json:"passengers"`
	Iterations int64 `json:"iterations"`
	Moves      int   `json:"moves"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// SeatsOf returns the assigned seats of items, in order.
func SeatsOf[T interface{ AssignedSeat() string }](items []T) []string {
	seats := make([]string, len(items))
	for i, it := range items {
		seats[i] = it.AssignedSeat()
	}
	return seats
}

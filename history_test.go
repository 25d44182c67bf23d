package genart

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHistoryRecord(t *testing.T) {
	var h History
	if h.Len() != 0 {
		t.Fatalf("empty history Len = %d", h.Len())
	}
	h.Record(1, 5000, 7500.5)
	h.Record(2, 4800, 7100.25)
	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	if h.Gen[1] != 2 || h.Best[1] != 4800 || h.Mean[1] != 7100.25 {
		t.Errorf("row 1 = (%v, %v, %v), want (2, 4800, 7100.25)", h.Gen[1], h.Best[1], h.Mean[1])
	}
}

func TestHistorySavePlotEmpty(t *testing.T) {
	var h History
	if err := h.SavePlot(filepath.Join(t.TempDir(), "empty.png")); err == nil {
		t.Error("SavePlot on empty history succeeded, want error")
	}
}

func TestHistorySavePlot(t *testing.T) {
	var h History
	for g := 1; g <= 50; g++ {
		h.Record(g, int64(100000-g*500), float64(150000-g*400))
	}
	path := filepath.Join(t.TempDir(), "fitness.png")
	if err := h.SavePlot(path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

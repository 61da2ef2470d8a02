package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rtreharne/fishdata/internal/domain"
)

func plotDataset() *domain.Dataset {
	ds := &domain.Dataset{Variable: "Weight (g)"}
	for i, g := range []string{"Control", "Low", "High"} {
		for j := 0; j < 20; j++ {
			ds.Observations = append(ds.Observations, domain.Observation{
				ID:    "X",
				Group: g,
				Value: 100 + float64(i*5) + float64(j),
			})
		}
	}
	return ds
}

func TestBoxPlot(t *testing.T) {
	p, err := BoxPlot(plotDataset())
	if err != nil {
		t.Fatalf("BoxPlot failed: %v", err)
	}
	if p.Title.Text != "Weight (g) by Group" {
		t.Errorf("unexpected title: %q", p.Title.Text)
	}
	if p.Y.Label.Text != "Weight (g)" {
		t.Errorf("unexpected Y label: %q", p.Y.Label.Text)
	}
}

func TestBoxPlotEmptyDataset(t *testing.T) {
	if _, err := BoxPlot(&domain.Dataset{Variable: "Weight"}); err == nil {
		t.Fatal("expected error for empty dataset")
	}
}

func TestSaveBoxPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxplot.png")
	if err := SaveBoxPlot(plotDataset(), path); err != nil {
		t.Fatalf("SaveBoxPlot failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestSaveBoxPlotBadPath(t *testing.T) {
	err := SaveBoxPlot(plotDataset(), filepath.Join(t.TempDir(), "missing", "boxplot.png"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

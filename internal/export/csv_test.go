package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rtreharne/fishdata/internal/domain"
)

func sampleDataset() *domain.Dataset {
	return &domain.Dataset{
		Variable: "Weight (g)",
		Observations: []domain.Observation{
			{ID: "A1B2C3D4", Group: "Control", Value: 98.76},
			{ID: "E5F6G7H8", Group: "Control", Value: 120},
			{ID: "J9K0M1N2", Group: "Treatment", Value: 103.5},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleDataset()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	want := [][]string{
		{"ID", "Group", "Weight (g)"},
		{"A1B2C3D4", "Control", "98.76"},
		{"E5F6G7H8", "Control", "120"},
		{"J9K0M1N2", "Treatment", "103.5"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("unexpected records:\ngot  %v\nwant %v", records, want)
	}
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	ds := &domain.Dataset{
		Variable: "Length, mm",
		Observations: []domain.Observation{
			{ID: "00000001", Group: "Control", Value: 1.5},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, ds); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"Length, mm"`) {
		t.Errorf("variable with comma not quoted: %q", buf.String())
	}
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSVFile(path, sampleDataset()); err != nil {
		t.Fatalf("WriteCSVFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "ID,Group,Weight (g)" {
		t.Errorf("unexpected header: %q", lines[0])
	}
}

func TestWriteCSVFileBadPath(t *testing.T) {
	err := WriteCSVFile(filepath.Join(t.TempDir(), "missing", "out.csv"), sampleDataset())
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

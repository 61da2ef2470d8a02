// Package export writes datasets to files for use in spreadsheets and
// statistics packages.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rtreharne/fishdata/internal/domain"
)

// WriteCSV writes the dataset with a header row of ID, Group and the
// variable name. Values are formatted with the shortest decimal
// representation that round-trips, so rounded values stay readable.
func WriteCSV(w io.Writer, ds *domain.Dataset) error {
	writer := csv.NewWriter(w)

	header := []string{"ID", "Group", ds.Variable}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, o := range ds.Observations {
		row := []string{o.ID, o.Group, strconv.FormatFloat(o.Value, 'f', -1, 64)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes the dataset to path, creating or truncating it.
func WriteCSVFile(path string, ds *domain.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := WriteCSV(f, ds); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

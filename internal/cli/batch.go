package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rtreharne/fishdata/internal/domain"
)

var batchCmd = &cobra.Command{
	Use:   "batch <scenarios.json>",
	Short: "Generate several datasets from a scenario file",
	Long: `Generate a set of datasets described by a JSON scenario file, for
example one unique dataset per student.

The file holds an optional "defaults" object with the same fields as the
generate flags, an optional base "seed", and a "datasets" array of entries
overriding the defaults. An entry may set "copies" to replicate itself with
numbered output files. Entries without an explicit output write to
<name>.csv. Seeds derive from the base seed plus a running counter, so a
seeded scenario file always produces the same class set.

Example scenario file:
  {
    "seed": 2026,
    "defaults": {"variable": "Weight (g)", "n_per_group": 30},
    "datasets": [
      {"name": "practical_a", "groups": ["Control", "Treated"]},
      {"name": "practical_b", "groups": ["Control", "Low", "High"], "copies": 25}
    ]
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

// scenarioFile is the top-level shape of a batch scenario file.
type scenarioFile struct {
	Seed     uint64          `json:"seed,omitempty"`
	Defaults *scenarioEntry  `json:"defaults,omitempty"`
	Datasets []scenarioEntry `json:"datasets"`
}

// scenarioEntry overrides generation defaults for one dataset. Pointer
// fields distinguish "absent" from an explicit zero value. Name, copies and
// seed only have meaning on entries, not on defaults.
type scenarioEntry struct {
	Name   string  `json:"name,omitempty"`
	Copies int     `json:"copies,omitempty"`
	Seed   *uint64 `json:"seed,omitempty"`

	Variable     *string  `json:"variable,omitempty"`
	Groups       []string `json:"groups,omitempty"`
	NPerGroup    *int     `json:"n_per_group,omitempty"`
	Distribution *string  `json:"distribution,omitempty"`
	Significant  *bool    `json:"significant,omitempty"`
	Mean         *float64 `json:"mean,omitempty"`
	SD           *float64 `json:"sd,omitempty"`
	MaxChange    *float64 `json:"max_change,omitempty"`
	Precision    *int     `json:"precision,omitempty"`
	IDs          *string  `json:"ids,omitempty"`
	Output       *string  `json:"output,omitempty"`
	Plot         *bool    `json:"plot,omitempty"`
	PlotFile     *string  `json:"plot_file,omitempty"`
}

func loadScenarios(path string) (*scenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var file scenarioFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	return &file, nil
}

// applyEntry copies every set field of the entry onto the config.
func applyEntry(cfg *domain.Config, e *scenarioEntry) error {
	if e == nil {
		return nil
	}
	if e.Variable != nil {
		cfg.Variable = *e.Variable
	}
	if e.Groups != nil {
		cfg.Groups = e.Groups
	}
	if e.NPerGroup != nil {
		cfg.NPerGroup = *e.NPerGroup
	}
	if e.Distribution != nil {
		dist, err := domain.ParseDistribution(*e.Distribution)
		if err != nil {
			return err
		}
		cfg.Distribution = dist
	}
	if e.Significant != nil {
		cfg.Significant = *e.Significant
	}
	if e.Mean != nil {
		cfg.Mean = *e.Mean
	}
	if e.SD != nil {
		cfg.SD = *e.SD
	}
	if e.MaxChange != nil {
		cfg.MaxChange = *e.MaxChange
	}
	if e.Precision != nil {
		cfg.Precision = *e.Precision
	}
	if e.IDs != nil {
		cfg.IDMode = domain.IDMode(*e.IDs)
	}
	if e.Output != nil {
		cfg.Output = *e.Output
	}
	if e.Plot != nil {
		cfg.Plot = *e.Plot
	}
	if e.PlotFile != nil {
		cfg.PlotFile = *e.PlotFile
	}
	return nil
}

// numberedPath inserts a copy number before the file extension.
func numberedPath(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%02d%s", strings.TrimSuffix(path, ext), n, ext)
}

func runBatch(cmd *cobra.Command, args []string) error {
	file, err := loadScenarios(args[0])
	if err != nil {
		return err
	}
	if len(file.Datasets) == 0 {
		return fmt.Errorf("scenario file has no datasets")
	}

	ctx := context.Background()
	svc := openServices(ctx)
	defer svc.close()

	baseSeed := resolveSeed(file.Seed)

	var ordinal uint64
	total := 0
	for di := range file.Datasets {
		entry := &file.Datasets[di]

		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("dataset_%02d", di+1)
		}

		cfg := domain.DefaultConfig()
		if err := applyEntry(&cfg, file.Defaults); err != nil {
			return fmt.Errorf("defaults: %w", err)
		}
		if err := applyEntry(&cfg, entry); err != nil {
			return fmt.Errorf("dataset %s: %w", name, err)
		}

		// Without an explicit output the entry name drives the file names,
		// so entries never overwrite each other.
		if entry.Output == nil && (file.Defaults == nil || file.Defaults.Output == nil) {
			cfg.Output = name + ".csv"
		}
		if cfg.Plot && entry.PlotFile == nil && (file.Defaults == nil || file.Defaults.PlotFile == nil) {
			cfg.PlotFile = name + "_boxplot.png"
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("dataset %s: %w", name, err)
		}

		copies := entry.Copies
		if copies < 1 {
			copies = 1
		}
		outputBase, plotBase := cfg.Output, cfg.PlotFile

		for c := 0; c < copies; c++ {
			if entry.Seed != nil {
				cfg.Seed = *entry.Seed + uint64(c)
			} else {
				cfg.Seed = baseSeed + ordinal
			}
			if copies > 1 {
				cfg.Output = numberedPath(outputBase, c+1)
				cfg.PlotFile = numberedPath(plotBase, c+1)
			}

			label := name
			if copies > 1 {
				label = fmt.Sprintf("%s copy %d", name, c+1)
			}

			start := time.Now()
			ds, err := produceDataset(cfg)
			if err != nil {
				return fmt.Errorf("dataset %s: %w", label, err)
			}

			fmt.Printf("Generated %s (%d rows, seed %d)\n", cfg.Output, ds.Len(), cfg.Seed)
			recordRun(ctx, svc.runs, cfg, ds.Len())
			exportMetrics(ctx, svc.metrics, cfg, ds.Len(), time.Since(start))

			ordinal++
			total++
		}
	}

	fmt.Printf("Batch complete: %d datasets\n", total)
	return nil
}

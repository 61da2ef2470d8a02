package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fishdata",
	Short: "Synthetic dataset generator for statistics teaching",
	Long: `fishdata generates synthetic tabular datasets for statistics classes.

Each dataset has one row per observation with a unique ID, a group label and
a measured value. Group means are separated by a bounded random margin, so a
whole class can practise the same analysis on distinct but comparable data.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

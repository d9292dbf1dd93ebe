package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/raykavin/bootsnrun"
	"github.com/raykavin/bootsnrun/pkg/statistic"
	"github.com/spf13/cobra"
	"github.com/xhit/go-str2duration/v2"
)

// Command line flags
var (
	// Run command flags
	inputFile   string
	iterations  int
	seed        int64
	confidence  float64
	statNames   []string
	percentiles []int
	parallelism int
	progress    bool
	timeout     string
)

// namedStatistics maps the --stat flag values to statistic functions.
var namedStatistics = map[string]statistic.Statistic{
	"mean":     statistic.Mean,
	"median":   statistic.Median,
	"stddev":   statistic.StdDev,
	"variance": statistic.Variance,
	"sum":      statistic.Sum,
	"min":      statistic.Min,
	"max":      statistic.Max,
}

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "bootsnrun",
		Short:   "Bootstrap resampling for numeric samples",
		Version: "1.0.0",
	}

	// Add commands
	rootCmd.AddCommand(buildRunCmd())

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Bootstrap statistics over a sample of numbers",
		Long: "Reads one number per line from a file or stdin, bootstraps the requested " +
			"statistics and prints their confidence intervals and distributions.",
		RunE: runBootstrap,
	}

	// Add flags
	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file with one number per line (default stdin)")
	runCmd.Flags().IntVarP(&iterations, "iterations", "n", 10000, "Number of resamples to draw")
	runCmd.Flags().Int64VarP(&seed, "seed", "s", -1, "Random seed (negative for time-based)")
	runCmd.Flags().Float64VarP(&confidence, "confidence", "c", 0.95, "Confidence level for intervals")
	runCmd.Flags().StringSliceVar(&statNames, "stat", []string{"mean"}, "Statistics to bootstrap (mean, median, stddev, variance, sum, min, max)")
	runCmd.Flags().IntSliceVarP(&percentiles, "percentile", "p", []int{95}, "Percentile statistics to bootstrap")
	runCmd.Flags().IntVarP(&parallelism, "parallelism", "w", 1, "Number of resampling workers")
	runCmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar")
	runCmd.Flags().StringVarP(&timeout, "timeout", "t", "", "Abort the run after this duration (e.g. 30s, 2m)")

	return runCmd
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	sample, err := readSample(inputFile)
	if err != nil {
		return err
	}

	options := []bootsnrun.Option{
		bootsnrun.WithIterations(iterations),
		bootsnrun.WithConfidence(confidence),
		bootsnrun.WithParallelism(parallelism),
		bootsnrun.WithProgress(progress),
	}

	if seed >= 0 {
		options = append(options, bootsnrun.WithSeed(seed))
	}

	for _, name := range statNames {
		fn, ok := namedStatistics[name]
		if !ok {
			return fmt.Errorf("unknown statistic: %s", name)
		}
		options = append(options, bootsnrun.WithStatistic(name, fn))
	}
	for _, p := range percentiles {
		options = append(options, bootsnrun.WithPercentile(p))
	}

	study, err := bootsnrun.NewStudy(sample, options...)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if timeout != "" {
		duration, err := str2duration.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout: %w", err)
		}

		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	report, err := study.Run(ctx)
	if err != nil {
		return err
	}

	report.Summary(os.Stdout)
	return nil
}

// readSample reads one float per line from the given file, or stdin
// when path is empty. Blank lines are skipped.
func readSample(path string) ([]float64, error) {
	var reader io.Reader = os.Stdin
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	var sample []float64
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", line, err)
		}
		sample = append(sample, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return sample, nil
}

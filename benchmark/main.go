// Package main provides a performance benchmarking tool for the gitwrapped CLI.
// It measures execution times for each card layout across a directory of
// repositories, running each command multiple times, treating the first
// successful run as cold and averaging the rest as warm, and writes CSV output.
//
// Prerequisites:
// - gitwrapped binary installed and available in PATH
// - Test repositories cloned under the specified base directory
//
// Usage: go run benchmark/main.go [repo-base-dir] [year]
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Root     string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RepoBase string
	Year     string
	Timeout  time.Duration
	Runs     int
	Commands []string
}

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Printf("Usage: %s [repo-base-dir] [year]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		RepoBase: os.Args[1],
		Year:     fmt.Sprint(time.Now().Year() - 1),
		Timeout:  5 * time.Minute,
		Runs:     4,
		Commands: []string{"card", "repos"},
	}
	if len(os.Args) == 3 {
		config.Year = os.Args[2]
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the gitwrapped binary and the base directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("gitwrapped"); err != nil {
		return fmt.Errorf("gitwrapped binary not found in PATH")
	}
	info, err := os.Stat(config.RepoBase)
	if err != nil {
		return fmt.Errorf("base directory %s: %w", config.RepoBase, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("base directory %s is not a directory", config.RepoBase)
	}
	return nil
}

// runBenchmarks executes every command against the base directory
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: root %s, year %s, %v timeout, %d runs\n",
		config.RepoBase, config.Year, config.Timeout, config.Runs)

	for _, command := range config.Commands {
		fmt.Printf("Running %s\n", command)
		cold, warm := runBenchmark(config, command)

		coldTime, warmTime := "TIMEOUT", "TIMEOUT"
		if cold > 0 {
			coldTime = fmt.Sprintf("%.3fs", cold)
		}
		if len(warm) > 0 {
			var sum float64
			for _, t := range warm {
				sum += t
			}
			warmTime = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
		}
		fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTime, warmTime)

		results = append(results, BenchmarkResult{
			Root:     config.RepoBase,
			Command:  command,
			ColdTime: coldTime,
			WarmTime: warmTime,
		})
	}

	return results
}

// runBenchmark executes a gitwrapped command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, command string) (coldTime float64, warmTimes []float64) {
	image := filepath.Join(os.TempDir(), "gitwrapped_benchmark_"+command+".png")
	args := []string{command, config.RepoBase, "--year", config.Year, "--image", image, "--color", "no"}

	var times []float64
	for range config.Runs {
		start := time.Now()

		cmd := exec.Command("gitwrapped", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Collected") && strings.Contains(outputStr, "Image saved to")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("gitwrapped_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"root", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Root, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-6s: Cold: %s, Warm: %s\n", result.Command, result.ColdTime, result.WarmTime)
	}
}

package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSummary outputs the aggregate, dispatching based on the output format configured.
func PrintSummary(agg schema.AggregateStat, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, agg)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVSummary(w, agg)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeParquetStats(w, nil, agg, cfg)
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, agg, duration)
		}, "Wrote summary"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// PrintRepoStats outputs every repository followed by the aggregate,
// dispatching based on the output format configured.
func PrintRepoStats(stats []schema.RepoStat, agg schema.AggregateStat, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONRepoStats(w, stats, agg)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRepoStats(w, stats)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeParquetStats(w, stats, agg, cfg)
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeRepoTable(w, stats, GetMaxTableNameWidth(cfg)); err != nil {
				return err
			}
			return writeSummaryTable(w, agg, duration)
		}, "Wrote tables"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// writeRepoTable prints one row per repository using the tablewriter API.
func writeRepoTable(w io.Writer, stats []schema.RepoStat, nameWidth int) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Repository", "Commits", "Month", "Day", "Language"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, s := range stats {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(s.Repo, nameWidth),
			strconv.Itoa(s.Commits),
			schema.FormatMonth(s.MostActiveMonth),
			schema.FormatDay(s.MostActiveDay),
			schema.FormatLanguage(s.TopLanguage),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeSummaryTable prints the aggregate as a two-column table plus a footer line.
func writeSummaryTable(w io.Writer, agg schema.AggregateStat, duration time.Duration) error {
	_, _ = contract.HeaderColor.Fprintf(w, "\nGlobal Stats (%d):\n", agg.Year)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	data := [][]string{
		{"Total Commits", strconv.Itoa(agg.TotalCommits)},
		{"Most Active Month", schema.FormatMonth(agg.MostActiveMonth)},
		{"Most Active Day", schema.FormatDay(agg.MostActiveDay)},
		{"Top Language", schema.FormatLanguage(agg.TopLanguage)},
		{"Avg Commits/Repo", formatFloat(agg.AvgCommits)},
		{"Median Commits/Repo", formatFloat(agg.MedianCommits)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Collected %d repositories in %v.\n", agg.Repos, duration)
	return nil
}

// Package parquet provides data structures and functions for exporting
// statistics of a run to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/gitwrapped/schema"
	"github.com/parquet-go/parquet-go"
)

// Row scopes.
const (
	RepoScope      = "repo"
	AggregateScope = "aggregate"
)

// StatRow is one row of an export. Repository rows and the aggregate row share
// the same table; columns that only apply to one scope are nullable.
type StatRow struct {
	// Scope is either RepoScope or AggregateScope
	Scope string `parquet:"scope,snappy"`

	// Year is the calendar year the statistics cover
	Year int32 `parquet:"year,snappy"`

	// Repo is the repository name (null for the aggregate row)
	Repo *string `parquet:"repo,optional,snappy"`

	// Path is the repository path, or the scanned root for the aggregate row
	Path string `parquet:"path,snappy"`

	// Commits is the number of commits in the year
	Commits int32 `parquet:"commits,snappy"`

	// MostActiveMonth is 1-12 (null when there were no commits)
	MostActiveMonth *int32 `parquet:"most_active_month,optional,snappy"`

	// MostActiveDay is the weekday name (null when there were no commits)
	MostActiveDay *string `parquet:"most_active_day,optional,snappy"`

	// TopLanguage is the dominant file extension, possibly empty
	TopLanguage string `parquet:"top_language,snappy"`

	// Repos is the number of repositories aggregated (aggregate row only)
	Repos *int32 `parquet:"repos,optional,snappy"`

	// AvgCommits is the mean commits per repository (aggregate row only)
	AvgCommits *float64 `parquet:"avg_commits,optional,snappy"`

	// MedianCommits is the median commits per repository (aggregate row only)
	MedianCommits *float64 `parquet:"median_commits,optional,snappy"`

	// ExportTime is when the export was produced (stored as TIMESTAMP)
	ExportTime time.Time `parquet:"export_time,snappy"`
}

// ConvertRepoStats converts repository statistics to export rows.
func ConvertRepoStats(stats []schema.RepoStat, year int, exportTime time.Time) []StatRow {
	rows := make([]StatRow, len(stats))
	for i, s := range stats {
		repo := s.Repo
		rows[i] = StatRow{
			Scope:           RepoScope,
			Year:            int32(year),
			Repo:            &repo,
			Path:            s.Path,
			Commits:         int32(s.Commits),
			MostActiveMonth: monthValue(s.MostActiveMonth),
			MostActiveDay:   dayValue(s.MostActiveDay),
			TopLanguage:     s.TopLanguage,
			ExportTime:      exportTime,
		}
	}
	return rows
}

// ConvertAggregate converts the aggregate of a run rooted at root to an export row.
func ConvertAggregate(agg schema.AggregateStat, root string, exportTime time.Time) StatRow {
	repos := int32(agg.Repos)
	avg := agg.AvgCommits
	median := agg.MedianCommits
	return StatRow{
		Scope:           AggregateScope,
		Year:            int32(agg.Year),
		Path:            root,
		Commits:         int32(agg.TotalCommits),
		MostActiveMonth: monthValue(agg.MostActiveMonth),
		MostActiveDay:   dayValue(agg.MostActiveDay),
		TopLanguage:     agg.TopLanguage,
		Repos:           &repos,
		AvgCommits:      &avg,
		MedianCommits:   &median,
		ExportTime:      exportTime,
	}
}

func monthValue(m schema.Option[time.Month]) *int32 {
	if v, ok := m.Get(); ok {
		n := int32(v)
		return &n
	}
	return nil
}

func dayValue(d schema.Option[time.Weekday]) *string {
	if v, ok := d.Get(); ok {
		s := v.String()
		return &s
	}
	return nil
}

// WriteStats writes rows as a Parquet file to w.
func WriteStats(w io.Writer, rows []StatRow) error {
	// The schema is derived from the StatRow struct tags
	writer := parquet.NewGenericWriter[StatRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	// Close flushes the row groups and writes the footer
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteStatsParquet writes rows to a new Parquet file at outputPath.
func WriteStatsParquet(rows []StatRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return WriteStats(file, rows)
}

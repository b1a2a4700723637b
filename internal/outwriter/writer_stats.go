package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/internal/parquet"
	"github.com/huangsam/gitwrapped/schema"
)

// summaryHeader is the CSV header for the aggregate.
var summaryHeader = []string{
	"year",
	"repos",
	"total_commits",
	"most_active_month",
	"most_active_day",
	"top_language",
	"avg_commits",
	"median_commits",
}

// repoHeader is the CSV header for repository rows.
var repoHeader = []string{
	"rank",
	"repo",
	"path",
	"commits",
	"most_active_month",
	"most_active_day",
	"top_language",
}

// writeCSVSummary writes the aggregate as a single CSV row.
func writeCSVSummary(w io.Writer, agg schema.AggregateStat) error {
	return writeCSVWithHeader(w, summaryHeader, func(cw *csv.Writer) error {
		return cw.Write([]string{
			strconv.Itoa(agg.Year),
			strconv.Itoa(agg.Repos),
			strconv.Itoa(agg.TotalCommits),
			csvMonth(agg.MostActiveMonth),
			csvDay(agg.MostActiveDay),
			agg.TopLanguage,
			formatFloat(agg.AvgCommits),
			formatFloat(agg.MedianCommits),
		})
	})
}

// writeCSVRepoStats writes one CSV row per repository.
func writeCSVRepoStats(w io.Writer, stats []schema.RepoStat) error {
	return writeCSVWithHeader(w, repoHeader, func(cw *csv.Writer) error {
		for i, s := range stats {
			row := []string{
				strconv.Itoa(i + 1),
				s.Repo,
				s.Path,
				strconv.Itoa(s.Commits),
				csvMonth(s.MostActiveMonth),
				csvDay(s.MostActiveDay),
				s.TopLanguage,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// csvMonth leaves absent months empty so the column stays numeric.
func csvMonth(m schema.Option[time.Month]) string {
	if v, ok := m.Get(); ok {
		return strconv.Itoa(int(v))
	}
	return ""
}

func csvDay(d schema.Option[time.Weekday]) string {
	if v, ok := d.Get(); ok {
		return v.String()
	}
	return ""
}

// writeJSONRepoStats writes repositories and their aggregate as one document.
func writeJSONRepoStats(w io.Writer, stats []schema.RepoStat, agg schema.AggregateStat) error {
	type jsonRepoStats struct {
		Repos     []schema.RepoStat    `json:"repos"`
		Aggregate schema.AggregateStat `json:"aggregate"`
	}
	if stats == nil {
		stats = []schema.RepoStat{}
	}
	return writeJSON(w, jsonRepoStats{Repos: stats, Aggregate: agg})
}

// writeParquetStats exports repository rows followed by the aggregate row.
func writeParquetStats(w io.Writer, stats []schema.RepoStat, agg schema.AggregateStat, cfg *contract.Config) error {
	now := time.Now()
	rows := parquet.ConvertRepoStats(stats, agg.Year, now)
	rows = append(rows, parquet.ConvertAggregate(agg, cfg.RootPath, now))
	return parquet.WriteStats(w, rows)
}

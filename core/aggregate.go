package core

import (
	"time"

	"github.com/huangsam/gitwrapped/core/algo"
	"github.com/huangsam/gitwrapped/schema"
	"github.com/montanaflynn/stats"
)

// Aggregate combines per-repository statistics into one summary for year.
// It has no side effects, so calling it twice on the same input gives the
// same result. Modes only consider present values; ties go to the first
// repository in stats.
func Aggregate(year int, repoStats []schema.RepoStat) schema.AggregateStat {
	agg := schema.AggregateStat{
		Year:        year,
		Repos:       len(repoStats),
		TopLanguage: schema.UnknownLanguage,
	}
	if len(repoStats) == 0 {
		return agg
	}

	months := algo.NewTally[time.Month]()
	days := algo.NewTally[time.Weekday]()
	langs := algo.NewTally[string]()
	commits := make(stats.Float64Data, 0, len(repoStats))

	for _, s := range repoStats {
		agg.TotalCommits += s.Commits
		commits = append(commits, float64(s.Commits))
		if m, ok := s.MostActiveMonth.Get(); ok {
			months.Add(m)
		}
		if d, ok := s.MostActiveDay.Get(); ok {
			days.Add(d)
		}
		langs.Add(s.TopLanguage)
	}

	if m, ok := months.Mode(); ok {
		agg.MostActiveMonth = schema.Some(m)
	}
	if d, ok := days.Mode(); ok {
		agg.MostActiveDay = schema.Some(d)
	}
	if lang, ok := langs.Mode(); ok {
		agg.TopLanguage = lang
	}

	// Errors only occur on empty input, which is handled above.
	agg.AvgCommits, _ = stats.Mean(commits)
	agg.MedianCommits, _ = stats.Median(commits)
	return agg
}

// Package schema has models and constants shared by all parts of gitwrapped.
package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

// Activity is the commit activity of a repository that has at least one commit in range.
type Activity struct {
	Commits int          // Number of commits in range, always > 0
	Month   time.Month   // Month with the most commits
	Day     time.Weekday // Weekday with the most commits
}

// RepoStat holds the yearly statistics of a single repository.
// Values are built with NewRepoStat and never mutated afterwards.
type RepoStat struct {
	Repo            string               `json:"repo"`              // Final path segment of the repository
	Path            string               `json:"path"`              // Absolute path of the repository
	Commits         int                  `json:"commits"`           // Commits found in range
	MostActiveMonth Option[time.Month]   `json:"most_active_month"` // Present iff Commits > 0
	MostActiveDay   Option[time.Weekday] `json:"-"`                 // Present iff Commits > 0
	TopLanguage     string               `json:"top_language"`      // Most common extension or UnknownLanguage
}

// NewRepoStat builds a RepoStat. A repository without commits in range passes
// None for activity, which leaves the month and day absent.
func NewRepoStat(repo, path string, activity Option[Activity], topLanguage string) RepoStat {
	stat := RepoStat{
		Repo:        repo,
		Path:        path,
		TopLanguage: topLanguage,
	}
	if a, ok := activity.Get(); ok && a.Commits > 0 {
		stat.Commits = a.Commits
		stat.MostActiveMonth = Some(a.Month)
		stat.MostActiveDay = Some(a.Day)
	}
	return stat
}

// AggregateStat is the global summary derived from all RepoStat records of a run.
type AggregateStat struct {
	Year            int                  `json:"year"`
	Repos           int                  `json:"repos"`
	TotalCommits    int                  `json:"total_commits"`
	MostActiveMonth Option[time.Month]   `json:"most_active_month"`
	MostActiveDay   Option[time.Weekday] `json:"-"`
	TopLanguage     string               `json:"top_language"`
	AvgCommits      float64              `json:"avg_commits"`
	MedianCommits   float64              `json:"median_commits"`
}

// FormatMonth renders a month as its number, or AbsentValue.
func FormatMonth(m Option[time.Month]) string {
	if v, ok := m.Get(); ok {
		return fmt.Sprintf("%d", int(v))
	}
	return AbsentValue
}

// FormatDay renders a weekday by name, or AbsentValue.
func FormatDay(d Option[time.Weekday]) string {
	if v, ok := d.Get(); ok {
		return v.String()
	}
	return AbsentValue
}

// FormatLanguage renders an extension bucket for display.
func FormatLanguage(lang string) string {
	if lang == NoExtension {
		return "(no extension)"
	}
	return lang
}

// dayName maps a weekday Option to its name so JSON carries "Tuesday" rather than 2.
func dayName(d Option[time.Weekday]) Option[string] {
	if v, ok := d.Get(); ok {
		return Some(v.String())
	}
	return None[string]()
}

// MarshalJSON writes the weekday by name.
func (s RepoStat) MarshalJSON() ([]byte, error) {
	type plain RepoStat
	return json.Marshal(struct {
		plain
		MostActiveDay Option[string] `json:"most_active_day"`
	}{plain(s), dayName(s.MostActiveDay)})
}

// MarshalJSON writes the weekday by name.
func (a AggregateStat) MarshalJSON() ([]byte, error) {
	type plain AggregateStat
	return json.Marshal(struct {
		plain
		MostActiveDay Option[string] `json:"most_active_day"`
	}{plain(a), dayName(a.MostActiveDay)})
}

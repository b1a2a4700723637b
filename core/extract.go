package core

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/gitwrapped/core/algo"
	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/schema"
)

// ExtractRepoStat builds the statistics of one repository for cfg.Year.
// Commit timestamps come from client; the top language comes from a walk of
// the working tree at repoPath.
func ExtractRepoStat(ctx context.Context, cfg *contract.Config, client contract.GitClient, repoPath string) (schema.RepoStat, error) {
	output, err := client.GetCommitDates(ctx, repoPath, cfg.StartTime, cfg.EndTime)
	if err != nil {
		return schema.RepoStat{}, err
	}
	dates, err := parseCommitDates(output)
	if err != nil {
		return schema.RepoStat{}, fmt.Errorf("repository %q: %w", repoPath, err)
	}
	lang, err := topLanguage(repoPath, cfg.Marker, cfg.Excludes)
	if err != nil {
		return schema.RepoStat{}, err
	}
	return schema.NewRepoStat(filepath.Base(repoPath), repoPath, summarizeActivity(dates), lang), nil
}

// parseCommitDates reads one ISO-8601 timestamp per line, skipping blank lines.
// Each timestamp keeps the offset it was recorded with.
func parseCommitDates(output []byte) ([]time.Time, error) {
	var dates []time.Time
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, line)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", contract.ErrMalformedTimestamp, line)
		}
		dates = append(dates, ts)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrMalformedTimestamp, err)
	}
	return dates, nil
}

// summarizeActivity tallies months and weekdays. Ties go to the value seen
// first, which is the most recent commit in git log order.
func summarizeActivity(dates []time.Time) schema.Option[schema.Activity] {
	if len(dates) == 0 {
		return schema.None[schema.Activity]()
	}
	months := algo.NewTally[time.Month]()
	days := algo.NewTally[time.Weekday]()
	for _, d := range dates {
		months.Add(d.Month())
		days.Add(d.Weekday())
	}
	month, _ := months.Mode()
	day, _ := days.Mode()
	return schema.Some(schema.Activity{Commits: len(dates), Month: month, Day: day})
}

// topLanguage walks the working tree and returns the most frequent file
// extension. Hidden files, the marker directory and excluded paths are skipped.
func topLanguage(repoPath, marker string, excludes []string) (string, error) {
	exts := algo.NewTally[string]()
	err := filepath.WalkDir(repoPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == repoPath {
			return nil
		}
		rel, relErr := filepath.Rel(repoPath, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if d.Name() == marker || contract.ShouldIgnore(rel+"/", excludes) {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), schema.HiddenPrefix) || contract.ShouldIgnore(rel, excludes) {
			return nil
		}
		exts.Add(extensionOf(d.Name()))
		return nil
	})
	if err != nil {
		return "", err
	}
	if lang, ok := exts.Mode(); ok {
		return lang, nil
	}
	return schema.UnknownLanguage, nil
}

// extensionOf returns the text after the last dot of name, or an empty
// string when there is none.
func extensionOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return schema.NoExtension
}

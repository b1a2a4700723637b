package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gwparquet "github.com/huangsam/gitwrapped/internal/parquet"
)

func sampleStats() []schema.RepoStat {
	return []schema.RepoStat{
		schema.NewRepoStat("alpha", "/src/alpha",
			schema.Some(schema.Activity{Commits: 3, Month: time.March, Day: time.Tuesday}), "go"),
		schema.NewRepoStat("beta", "/src/beta", schema.None[schema.Activity](), ""),
	}
}

func sampleAggregate() schema.AggregateStat {
	return schema.AggregateStat{
		Year:            2024,
		Repos:           2,
		TotalCommits:    3,
		MostActiveMonth: schema.Some(time.March),
		MostActiveDay:   schema.Some(time.Tuesday),
		TopLanguage:     "go",
		AvgCommits:      1.5,
		MedianCommits:   1.5,
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestWriteCSVSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSVSummary(&buf, sampleAggregate()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, summaryHeader, records[0])
	assert.Equal(t, []string{"2024", "2", "3", "3", "Tuesday", "go", "1.5", "1.5"}, records[1])
}

func TestWriteCSVSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	empty := schema.AggregateStat{Year: 2024, TopLanguage: schema.UnknownLanguage}
	require.NoError(t, writeCSVSummary(&buf, empty))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"2024", "0", "0", "", "", "Unknown", "0.0", "0.0"}, records[1])
}

func TestWriteCSVRepoStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSVRepoStats(&buf, sampleStats()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, repoHeader, records[0])
	assert.Equal(t, []string{"1", "alpha", "/src/alpha", "3", "3", "Tuesday", "go"}, records[1])
	assert.Equal(t, []string{"2", "beta", "/src/beta", "0", "", "", ""}, records[2])
}

func TestWriteJSONRepoStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONRepoStats(&buf, sampleStats(), sampleAggregate()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	repos, ok := decoded["repos"].([]any)
	require.True(t, ok)
	require.Len(t, repos, 2)
	beta := repos[1].(map[string]any)
	assert.Nil(t, beta["most_active_month"])
	assert.Nil(t, beta["most_active_day"])

	agg, ok := decoded["aggregate"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), agg["total_commits"])
	assert.Equal(t, "Tuesday", agg["most_active_day"])
}

func TestWriteJSONRepoStats_NoRepos(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONRepoStats(&buf, nil, schema.AggregateStat{}))
	assert.Contains(t, buf.String(), `"repos": []`)
}

func TestWriteSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSummaryTable(&buf, sampleAggregate(), 2*time.Second))

	out := buf.String()
	assert.Contains(t, out, "Global Stats (2024)")
	assert.Contains(t, out, "Total Commits")
	assert.Contains(t, out, "Tuesday")
	assert.Contains(t, out, "Collected 2 repositories in 2s.")
}

func TestWriteRepoTable(t *testing.T) {
	var buf bytes.Buffer
	stats := sampleStats()
	stats = append(stats, schema.NewRepoStat("a-really-long-repository-name", "/src/long", schema.None[schema.Activity](), "md"))
	require.NoError(t, writeRepoTable(&buf, stats, 12))

	out := buf.String()
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "(no extension)")
	assert.Contains(t, out, "None")
	assert.Contains(t, out, "...tory-name")
	assert.NotContains(t, out, "a-really-long-repository-name")
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		width    int
		expected int
	}{
		{width: 40, expected: 12},
		{width: 80, expected: 25},
		{width: 200, expected: 50},
	}
	for _, tt := range tests {
		cfg := &contract.Config{Width: tt.width}
		assert.Equal(t, tt.expected, GetMaxTableNameWidth(cfg), "width %d", tt.width)
	}
}

func TestPrintSummary_ToFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "summary.json")
		cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path}
		require.NoError(t, PrintSummary(sampleAggregate(), cfg, time.Second))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"top_language": "go"`)
	})

	t.Run("text", func(t *testing.T) {
		path := filepath.Join(dir, "summary.txt")
		cfg := &contract.Config{Output: schema.TextOut, OutputFile: path}
		require.NoError(t, PrintSummary(sampleAggregate(), cfg, time.Second))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(data), "Most Active Month"))
	})

	t.Run("bad path", func(t *testing.T) {
		cfg := &contract.Config{Output: schema.CSVOut, OutputFile: filepath.Join(dir, "missing", "x.csv")}
		assert.Error(t, PrintSummary(sampleAggregate(), cfg, time.Second))
	})
}

func TestPrintRepoStats_Parquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.parquet")
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: path, RootPath: "/src"}

	require.NoError(t, NewOutWriter().WriteRepos(sampleStats(), sampleAggregate(), cfg, time.Second))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[gwparquet.StatRow](file)
	defer func() { _ = reader.Close() }()
	assert.Equal(t, int64(3), reader.NumRows(), "two repositories plus the aggregate")
}

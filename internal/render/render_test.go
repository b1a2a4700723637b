package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/schema"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

func testConfig() contract.RenderConfig {
	return contract.RenderConfig{
		CardWidth:     schema.DefaultCardWidth,
		CardHeight:    schema.DefaultCardHeight,
		Padding:       schema.DefaultPadding,
		Background:    color.RGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff},
		CardColor:     color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		BorderColor:   color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
		TextColor:     color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		FontSize:      schema.DefaultFontSize,
		TitleFontSize: schema.DefaultTitleFontSize,
	}
}

func sampleAggregate() schema.AggregateStat {
	return schema.AggregateStat{
		Year:            2024,
		Repos:           2,
		TotalCommits:    42,
		MostActiveMonth: schema.Some(time.March),
		MostActiveDay:   schema.Some(time.Tuesday),
		TopLanguage:     "go",
	}
}

func decodeConfig(t *testing.T, path string) (image.Config, string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg, format
}

func TestRenderGlobal_Dimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	r := NewRenderer(testConfig())

	require.NoError(t, r.RenderGlobal(sampleAggregate(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	cfg, format := decodeConfig(t, path)
	assert.Equal(t, "png", format)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 400+2*20, cfg.Height)
}

func TestRenderRepos_Dimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repos.png")
	stats := []schema.RepoStat{
		schema.NewRepoStat("alpha", "/src/alpha",
			schema.Some(schema.Activity{Commits: 3, Month: time.March, Day: time.Tuesday}), "go"),
		schema.NewRepoStat("beta", "/src/beta", schema.None[schema.Activity](), schema.UnknownLanguage),
		schema.NewRepoStat("gamma", "/src/gamma", schema.None[schema.Activity](), ""),
	}

	require.NoError(t, NewRenderer(testConfig()).RenderRepos(stats, path))

	cfg, _ := decodeConfig(t, path)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, (400+20)*3+20, cfg.Height)
}

func TestRender_Formats(t *testing.T) {
	tests := []struct {
		file   string
		format string
	}{
		{"card.png", "png"},
		{"card.jpg", "jpeg"},
		{"card.JPEG", "jpeg"},
		{"card.gif", "gif"},
		{"card.bmp", "bmp"},
		{"card.tiff", "tiff"},
		{"card.tif", "tiff"},
	}

	r := NewRenderer(testConfig())
	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, r.RenderGlobal(sampleAggregate(), path))
			cfg, format := decodeConfig(t, path)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, 800, cfg.Width)
			assert.Equal(t, 440, cfg.Height)
		})
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.webp")
	err := NewRenderer(testConfig()).RenderGlobal(sampleAggregate(), path)
	assert.ErrorIs(t, err, contract.ErrUnsupportedFormat)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing should be written for an unknown format")
}

func TestRender_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, NewRenderer(testConfig()).RenderGlobal(sampleAggregate(), path))

	_, format := decodeConfig(t, path)
	assert.Equal(t, "png", format)
}

func TestRender_BadFont(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cfg := testConfig()
		cfg.FontPath = filepath.Join(dir, "missing.ttf")
		err := NewRenderer(cfg).RenderGlobal(sampleAggregate(), filepath.Join(dir, "a.png"))
		assert.ErrorIs(t, err, contract.ErrFontLoad)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("not a font", func(t *testing.T) {
		bogus := filepath.Join(dir, "bogus.ttf")
		require.NoError(t, os.WriteFile(bogus, []byte("definitely not a font"), 0o644))
		cfg := testConfig()
		cfg.FontPath = bogus
		err := NewRenderer(cfg).RenderGlobal(sampleAggregate(), filepath.Join(dir, "b.png"))
		assert.ErrorIs(t, err, contract.ErrFontLoad)
	})
}

func TestRender_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "card.png")
	err := NewRenderer(testConfig()).RenderGlobal(sampleAggregate(), path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot create image file")
}

func TestPaint_Layout(t *testing.T) {
	cfg := testConfig()
	img, err := NewRenderer(cfg).paint([]card{globalCard(sampleAggregate())})
	require.NoError(t, err)

	assert.Equal(t, cfg.Background, img.RGBAAt(5, 5), "outside the card is background")
	assert.Equal(t, cfg.BorderColor, img.RGBAAt(20, 200), "left edge of the card is border")
	assert.Equal(t, cfg.CardColor, img.RGBAAt(700, 400), "inside the card is card color")
	assert.Equal(t, cfg.Background, img.RGBAAt(790, 430), "right padding is background")
}

func TestLoadFont_Cached(t *testing.T) {
	first, err := loadFont("", false)
	require.NoError(t, err)
	second, err := loadFont("", false)
	require.NoError(t, err)
	assert.Same(t, first, second)

	bold, err := loadFont("", true)
	require.NoError(t, err)
	assert.NotSame(t, first, bold)
}

func TestCards(t *testing.T) {
	g := globalCard(sampleAggregate())
	assert.Equal(t, "Global Git Stats (2024)", g.title)
	assert.Equal(t, []string{
		"Total Commits: 42",
		"Most Active Month: 3",
		"Most Active Day: Tuesday",
		"Top Language: go",
	}, g.lines)
	assert.Equal(t, globalLineStep, g.step)

	empty := repoCard(schema.NewRepoStat("empty", "/src/empty", schema.None[schema.Activity](), ""))
	assert.Equal(t, "Repository: empty", empty.title)
	assert.Equal(t, []string{
		"Commits: 0",
		"Most Active Month: None",
		"Most Active Day: None",
		"Top Language: (no extension)",
	}, empty.lines)
	assert.Equal(t, repoLineStep, empty.step)
}

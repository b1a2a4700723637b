// Package render draws statistics as card images.
package render

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/schema"
)

// Vertical distance between the title and each following line.
const (
	globalLineStep = 60
	repoLineStep   = 50
)

// Renderer implements contract.CardRenderer with a fixed layout.
type Renderer struct {
	cfg contract.RenderConfig
}

var _ contract.CardRenderer = &Renderer{} // Compile-time check

// NewRenderer creates a renderer for the given layout. Fonts are loaded on
// first use so that a bad font path only fails once there is something to draw.
func NewRenderer(cfg contract.RenderConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// card is the text content of one rectangle on the canvas.
type card struct {
	title string
	lines []string
	step  int
}

func globalCard(agg schema.AggregateStat) card {
	return card{
		title: fmt.Sprintf("Global Git Stats (%d)", agg.Year),
		lines: []string{
			fmt.Sprintf("Total Commits: %d", agg.TotalCommits),
			fmt.Sprintf("Most Active Month: %s", schema.FormatMonth(agg.MostActiveMonth)),
			fmt.Sprintf("Most Active Day: %s", schema.FormatDay(agg.MostActiveDay)),
			fmt.Sprintf("Top Language: %s", schema.FormatLanguage(agg.TopLanguage)),
		},
		step: globalLineStep,
	}
}

func repoCard(s schema.RepoStat) card {
	return card{
		title: fmt.Sprintf("Repository: %s", s.Repo),
		lines: []string{
			fmt.Sprintf("Commits: %d", s.Commits),
			fmt.Sprintf("Most Active Month: %s", schema.FormatMonth(s.MostActiveMonth)),
			fmt.Sprintf("Most Active Day: %s", schema.FormatDay(s.MostActiveDay)),
			fmt.Sprintf("Top Language: %s", schema.FormatLanguage(s.TopLanguage)),
		},
		step: repoLineStep,
	}
}

// RenderGlobal writes a single card summarizing agg to path.
func (r *Renderer) RenderGlobal(agg schema.AggregateStat, path string) error {
	return r.renderCards([]card{globalCard(agg)}, path)
}

// RenderRepos writes one card per repository to path, stacked top to bottom.
func (r *Renderer) RenderRepos(stats []schema.RepoStat, path string) error {
	cards := make([]card, 0, len(stats))
	for _, s := range stats {
		cards = append(cards, repoCard(s))
	}
	return r.renderCards(cards, path)
}

// renderCards validates the target format before doing any drawing.
func (r *Renderer) renderCards(cards []card, path string) error {
	format, ok := schema.ImageFormatFromPath(path)
	if !ok {
		return fmt.Errorf("%w: %q", contract.ErrUnsupportedFormat, path)
	}
	img, err := r.paint(cards)
	if err != nil {
		return err
	}
	return saveImage(img, path, format)
}

// paint draws cards onto a new canvas sized (H+P)*n+P pixels high.
func (r *Renderer) paint(cards []card) (*image.RGBA, error) {
	ff, err := loadFaces(r.cfg)
	if err != nil {
		return nil, err
	}
	defer ff.Close()

	cfg := r.cfg
	img := image.NewRGBA(image.Rect(0, 0, cfg.CardWidth, cfg.CanvasHeight(len(cards))))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	y := cfg.Padding
	for _, c := range cards {
		rect := image.Rect(cfg.Padding, y, cfg.CardWidth-cfg.Padding, y+cfg.CardHeight)
		fillRect(img, rect, cfg)
		x := cfg.Padding * 2
		top := y + cfg.Padding
		drawText(img, ff.title, cfg, x, top, c.title)
		for i, line := range c.lines {
			drawText(img, ff.text, cfg, x, top+(i+1)*c.step, line)
		}
		y += cfg.CardHeight + cfg.Padding
	}
	return img, nil
}

// fillRect paints rect with the card color inside a 1px border.
func fillRect(img *image.RGBA, rect image.Rectangle, cfg contract.RenderConfig) {
	draw.Draw(img, rect, image.NewUniform(cfg.BorderColor), image.Point{}, draw.Src)
	draw.Draw(img, rect.Inset(1), image.NewUniform(cfg.CardColor), image.Point{}, draw.Src)
}

// drawText draws s with its top edge at y. Text beyond the canvas is clipped.
func drawText(img *image.RGBA, face font.Face, cfg contract.RenderConfig, x, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(cfg.TextColor),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

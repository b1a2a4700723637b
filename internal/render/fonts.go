package render

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/huangsam/gitwrapped/internal/contract"
)

// fontCacheSize bounds the number of parsed font files kept in memory.
const fontCacheSize = 8

// Cache keys for the embedded Go fonts. File paths never start with a colon.
const (
	embeddedRegularKey = ":go-regular"
	embeddedBoldKey    = ":go-bold"
)

// fontDPI makes one point equal one pixel, so sizes read as pixel heights.
const fontDPI = 72

// fontCache holds parsed fonts keyed by path. Parsing is the expensive step;
// faces are cheap to derive from a parsed font.
var fontCache = newFontCache()

func newFontCache() *lru.Cache {
	c, err := lru.New(fontCacheSize)
	if err != nil {
		panic(fmt.Sprintf("cannot create font cache: %v", err))
	}
	return c
}

// loadFont returns the parsed font at path. An empty path selects the embedded
// Go font, in its bold cut when bold is set.
func loadFont(path string, bold bool) (*opentype.Font, error) {
	key := path
	if path == "" {
		key = embeddedRegularKey
		if bold {
			key = embeddedBoldKey
		}
	}
	if cached, ok := fontCache.Get(key); ok {
		return cached.(*opentype.Font), nil
	}

	var data []byte
	switch key {
	case embeddedRegularKey:
		data = goregular.TTF
	case embeddedBoldKey:
		data = gobold.TTF
	default:
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", contract.ErrFontLoad, path, err)
		}
		data = raw
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", contract.ErrFontLoad, path, err)
	}
	fontCache.Add(key, parsed)
	return parsed, nil
}

// newFace derives a sized face from a parsed font.
func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: size %.1f: %w", contract.ErrFontLoad, size, err)
	}
	return face, nil
}

// faces holds the two faces a card is drawn with.
type faces struct {
	title font.Face
	text  font.Face
}

func (f faces) Close() {
	_ = f.title.Close()
	_ = f.text.Close()
}

// loadFaces prepares the title and text faces for cfg.
func loadFaces(cfg contract.RenderConfig) (faces, error) {
	titleFont, err := loadFont(cfg.FontPath, true)
	if err != nil {
		return faces{}, err
	}
	textFont, err := loadFont(cfg.FontPath, false)
	if err != nil {
		return faces{}, err
	}
	title, err := newFace(titleFont, cfg.TitleFontSize)
	if err != nil {
		return faces{}, err
	}
	text, err := newFace(textFont, cfg.FontSize)
	if err != nil {
		_ = title.Close()
		return faces{}, err
	}
	return faces{title: title, text: text}, nil
}

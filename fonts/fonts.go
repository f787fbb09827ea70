package fonts

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	GoRegular FontName = "goregular"
	GoBold    FontName = "gobold"
	Hint      FontName = "hint"
)

// builtin maps font names to TTF data shipped with x/image
var builtin = map[FontName][]byte{
	GoRegular: goregular.TTF,
	GoBold:    gobold.TTF,
}

func (f FontName) Get() (font.Face, error) {
	return getFont(f)
}

// LineHeight is the distance between baselines of consecutive lines, line
// gap included. truetype faces report the em size as Height, which can be
// less than ascent plus descent; the glyph extent is the floor.
func LineHeight(face font.Face) float64 {
	m := face.Metrics()
	h := m.Height
	if extent := m.Ascent + m.Descent; extent > h {
		h = extent
	}
	return float64(h) / 64
}

var (
	mu    sync.RWMutex
	fonts = map[FontName]font.Face{}
)

// LoadBuiltinAs registers one of the fonts shipped with x/image under name.
func LoadBuiltinAs(name, source FontName, size float64) error {
	ttf, ok := builtin[source]
	if !ok {
		return fmt.Errorf("font %s is not a builtin font", source)
	}
	return LoadFontWithSize(name, ttf, size)
}

// LoadResource registers the font identified by resource, which is either a
// builtin font name or a path to a TTF file.
func LoadResource(resource string, size float64) error {
	name := FontName(resource)
	if _, ok := builtin[name]; ok {
		return LoadBuiltinAs(name, name, size)
	}
	ttf, err := os.ReadFile(resource)
	if err != nil {
		return fmt.Errorf("font %s: %w", resource, err)
	}
	return LoadFontWithSize(name, ttf, size)
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

// LoadFontWithSize parses a TrueType font and registers a face for it.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	if size <= 0 {
		return fmt.Errorf("font %s: size must be positive, got %v", name, size)
	}
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("font %s: %w", name, err)
	}

	mu.Lock()
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	mu.Unlock()
	return nil
}

func getFont(name FontName) (font.Face, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := fonts[name]
	if !ok {
		return nil, fmt.Errorf("font %s not found", name)
	}
	return f, nil
}

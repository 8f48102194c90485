package assets

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/matzehuels/tileboard/pkg/errors"
	"github.com/matzehuels/tileboard/pkg/fonts"
)

// Font is a parsed TrueType font.
type Font struct {
	Name string
	ttf  *truetype.Font
}

// LoadFont resolves a font by path or installed name (empty for the
// built-in font) and parses it.
func LoadFont(name string) (*Font, error) {
	src, err := fonts.Resolve(name)
	if err != nil {
		return nil, err
	}
	return ParseFont(src.Name, src.Data)
}

// ParseFont parses TrueType data. The name is used in error messages.
func ParseFont(name string, data []byte) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetLoad, err, "unable to load font: %s", name)
	}
	return &Font{Name: name, ttf: ttf}, nil
}

// Face returns a face rendering the font at size pixels. The caller closes it.
func (f *Font) Face(size int) font.Face {
	return truetype.NewFace(f.ttf, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Measurer measures text set in a font face.
type Measurer struct {
	Face font.Face
}

// TextWidth returns the advance width of s in whole pixels, rounded up.
func (m Measurer) TextWidth(s string) int {
	return font.MeasureString(m.Face, s).Ceil()
}

// Fingerprint identifies the font file by path, size and modification time,
// for use in cache keys. The embedded font is identified by name.
func (f *Font) Fingerprint() string {
	info, err := os.Stat(f.Name)
	if err != nil {
		return "font=" + f.Name
	}
	return fmt.Sprintf("font=%s:%d:%d", f.Name, info.Size(), info.ModTime().UnixNano())
}

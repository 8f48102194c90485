package render

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/tileboard/pkg/errors"
)

// ParseColor parses a hex color: #RGB, #RRGGBB or #RRGGBBAA. The leading #
// is optional.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	alpha := uint8(0xff)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidOption, err, "invalid color: %q", s)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}
	if len(hex) != 4 && len(hex) != 7 {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidOption, "invalid color: %q", s)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidOption, err, "invalid color: %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// FormatColor returns the #RRGGBB form of c, with an alpha suffix when c is
// not opaque.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cf := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	if n.A == 0xff {
		return strings.ToUpper(cf.Hex())
	}
	return strings.ToUpper(cf.Hex()) + strings.ToUpper(strconv.FormatUint(uint64(n.A)|0x100, 16)[1:])
}

func mustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

package render

import (
	"image/color"

	"github.com/matzehuels/tileboard/pkg/layout"
)

// Default colors.
var (
	DefaultOutlineColor     = mustColor("#000000")
	DefaultBorderColor      = mustColor("#FFFFFF")
	DefaultBorderFontColor  = mustColor("#000000")
	DefaultHoleColor        = mustColor("#EEEEEE")
	DefaultLightSquareColor = mustColor("#FFCE9E")
	DefaultDarkSquareColor  = mustColor("#D18B47")
	DefaultCrossColor       = mustColor("#FF0000")
	DefaultDotColor         = mustColor("#0000FF")
)

// Options selects and styles the layers of a diagram.
type Options struct {
	OuterOutline      bool
	OuterOutlineColor color.Color

	Border          bool
	BorderColor     color.Color
	BorderFontColor color.Color
	BorderUppercase bool

	InnerOutline      bool
	InnerOutlineColor color.Color

	Checkerboard bool
	Holes        bool
	HoleColor    color.Color
	LightColor   color.Color
	DarkColor    color.Color

	Pieces bool

	Crosses    []string
	CrossColor color.Color
	Dots       []string
	DotColor   color.Color
}

// DefaultOptions returns options with every layer enabled and the default
// palette.
func DefaultOptions() Options {
	return Options{
		OuterOutline:      true,
		OuterOutlineColor: DefaultOutlineColor,
		Border:            true,
		BorderColor:       DefaultBorderColor,
		BorderFontColor:   DefaultBorderFontColor,
		InnerOutline:      true,
		InnerOutlineColor: DefaultOutlineColor,
		Checkerboard:      true,
		Holes:             true,
		HoleColor:         DefaultHoleColor,
		LightColor:        DefaultLightSquareColor,
		DarkColor:         DefaultDarkSquareColor,
		Pieces:            true,
		CrossColor:        DefaultCrossColor,
		DotColor:          DefaultDotColor,
	}
}

// LayoutLayers returns the bands the layout engine has to reserve space for.
func (o Options) LayoutLayers() layout.Layers {
	return layout.Layers{
		OuterOutline: o.OuterOutline,
		Border:       o.Border,
		InnerOutline: o.InnerOutline,
	}
}

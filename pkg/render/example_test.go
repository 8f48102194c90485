package render_test

import (
	"fmt"

	"github.com/matzehuels/tileboard/pkg/render"
)

func ExampleLayers() {
	opts := render.DefaultOptions()
	opts.Border = false
	opts.Dots = []string{"e4"}

	for _, l := range render.Layers(opts) {
		fmt.Println(l.Name())
	}
	// Output:
	// outer-outline
	// inner-outline
	// holes
	// checkerboard
	// pieces
	// dots
}

func ExampleParseColor() {
	c, _ := render.ParseColor("#FFCE9E")
	fmt.Println(c.R, c.G, c.B, c.A)
	fmt.Println(render.FormatColor(c))
	// Output:
	// 255 206 158 255
	// #FFCE9E
}

package pipeline

import (
	"context"

	"github.com/matzehuels/tileboard/pkg/render"
)

// Render draws the scene with the validated options and returns PNG bytes.
func Render(ctx context.Context, scene *render.Scene, opts Options) ([]byte, error) {
	img, err := render.RenderContext(ctx, scene, render.Layers(opts.RenderOptions()))
	if err != nil {
		return nil, err
	}
	return render.EncodePNG(img)
}

// layerNames lists the layers that will be drawn, for logs and hooks.
func layerNames(opts Options) []string {
	layers := render.Layers(opts.RenderOptions())
	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = l.Name()
	}
	return names
}

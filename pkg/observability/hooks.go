// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. A [Hooks] value is handed to each
// pipeline runner, which calls it with events about parsing, layout,
// rendering, cache use and asset loading.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Let each runner carry its own set, so two runners never share state
//
// # Usage
//
// Pass hooks to a runner:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	runner.Hooks = observability.Hooks{Pipeline: &myPipelineHooks{}}
//
// The runner fills unset members with no-ops and emits events:
//
//	h.Pipeline.OnParseStart(ctx, position)
//	// ... do parsing ...
//	h.Pipeline.OnParseComplete(ctx, position, cols, rows, duration, err)
package observability

import (
	"context"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the render pipeline.
type PipelineHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, position string)
	OnParseComplete(ctx context.Context, position string, cols, rows int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, cols, rows, tile int)
	OnLayoutComplete(ctx context.Context, width, height int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, layers []string)
	OnRenderComplete(ctx context.Context, layers []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Asset Hooks
// =============================================================================

// AssetHooks receives events from sprite and font loading.
type AssetHooks interface {
	// OnTilesetLoaded records a tileset load. count is the number of sprites.
	OnTilesetLoaded(ctx context.Context, dir string, count int, duration time.Duration, err error)

	// OnFontLoaded records a font load.
	OnFontLoaded(ctx context.Context, name string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string) {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int, int, int)                      {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, int, time.Duration, error)  {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopAssetHooks is a no-op implementation of AssetHooks.
type NoopAssetHooks struct{}

func (NoopAssetHooks) OnTilesetLoaded(context.Context, string, int, time.Duration, error) {}
func (NoopAssetHooks) OnFontLoaded(context.Context, string, time.Duration, error)         {}

// =============================================================================
// Hook Sets
// =============================================================================

// Hooks groups the receivers of one runner's events. A nil member ignores
// its events.
type Hooks struct {
	Pipeline PipelineHooks
	Cache    CacheHooks
	Assets   AssetHooks
}

// Noop returns hooks that ignore every event.
func Noop() Hooks {
	return Hooks{
		Pipeline: NoopPipelineHooks{},
		Cache:    NoopCacheHooks{},
		Assets:   NoopAssetHooks{},
	}
}

// WithDefaults returns h with every nil member replaced by its no-op.
func (h Hooks) WithDefaults() Hooks {
	if h.Pipeline == nil {
		h.Pipeline = NoopPipelineHooks{}
	}
	if h.Cache == nil {
		h.Cache = NoopCacheHooks{}
	}
	if h.Assets == nil {
		h.Assets = NoopAssetHooks{}
	}
	return h
}

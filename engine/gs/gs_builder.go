package gs

import (
	"github.com/Ang-Andrew/emotion-cube/common"
)

// RasterizerBuilderOption is a functional option applied to a Rasterizer during construction.
type RasterizerBuilderOption func(g *rasterizer)

// WithPipelineKey overrides the cache key used for the passthrough pipeline.
//
// Parameters:
//   - key: the pipeline cache key, empty values are ignored
//
// Returns:
//   - RasterizerBuilderOption: the option to apply
func WithPipelineKey(key string) RasterizerBuilderOption {
	return func(g *rasterizer) {
		g.pipelineKey = common.Coalesce(key, g.pipelineKey)
	}
}

package filltess

import (
	"github.com/gogpu/filltess/internal/sweep"
	"github.com/gogpu/filltess/tess"
)

// Option configures a FilledPath during creation.
type Option func(*config)

// config holds the tuning knobs of the spatial hierarchy and the
// tessellation oracle.
type config struct {
	maxRecursion    int
	pointsPerSubset int
	maxAspect       float64
	oracle          tess.Tessellator
}

func defaultConfig() config {
	return config{
		maxRecursion:    12,
		pointsPerSubset: 64,
		maxAspect:       4.0,
		oracle:          sweep.New(),
	}
}

// WithMaxRecursion bounds the depth of the spatial hierarchy.
func WithMaxRecursion(depth int) Option {
	return func(c *config) {
		c.maxRecursion = depth
	}
}

// WithPointsPerSubset sets the point count at or below which a sub-path
// is no longer split.
func WithPointsPerSubset(n int) Option {
	return func(c *config) {
		c.pointsPerSubset = n
	}
}

// WithAspectRatioGuard sets the bounding-box aspect ratio above which a
// split always runs across the long axis, regardless of point balance.
// A non-positive ratio disables the guard.
func WithAspectRatioGuard(ratio float64) Option {
	return func(c *config) {
		c.maxAspect = ratio
	}
}

// WithTessellator injects a custom tessellation oracle. Use this to
// substitute a different triangulation back end; the default is the
// bundled trapezoidal sweep.
func WithTessellator(t tess.Tessellator) Option {
	return func(c *config) {
		if t != nil {
			c.oracle = t
		}
	}
}

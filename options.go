package tokenlayer

import "github.com/google/uuid"

// Option configures a Layer during creation.
//
// Example:
//
//	layer, err := tokenlayer.FromImage(img, 512, 512, tint, false,
//	    tokenlayer.WithConfig(cfg),
//	    tokenlayer.WithRayMasker(myRayMasker),
//	)
type Option func(*layerOptions)

// layerOptions holds optional configuration for Layer creation.
type layerOptions struct {
	config        Config
	rayMasker     RayMasker
	newID         func() string
	density       int
	minCanvasSize int
}

// defaultOptions returns the default layer options.
func defaultOptions() layerOptions {
	return layerOptions{
		config:        DefaultConfig(),
		newID:         uuid.NewString,
		density:       DefaultMaskDensity,
		minCanvasSize: MinCanvasSize,
	}
}

func applyOptions(opts []Option) layerOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithConfig sets the host configuration (crop mode, mask algorithm,
// preview backdrop).
func WithConfig(cfg Config) Option {
	return func(o *layerOptions) {
		o.config = cfg
	}
}

// WithRayMasker injects the ray-cast mask generator used when
// Config.UseRayCastMask is set. Without it the built-in RayCastMask is used.
func WithRayMasker(fn RayMasker) Option {
	return func(o *layerOptions) {
		o.rayMasker = fn
	}
}

// WithIDGenerator replaces the default UUID layer ids.
func WithIDGenerator(fn func() string) Option {
	return func(o *layerOptions) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithMaskDensity sets the contour tracing grid size. Values below 1 are ignored.
func WithMaskDensity(density int) Option {
	return func(o *layerOptions) {
		if density > 0 {
			o.density = density
		}
	}
}

// WithMinCanvasSize overrides MinCanvasSize for FromImage.
func WithMinCanvasSize(size int) Option {
	return func(o *layerOptions) {
		if size > 0 {
			o.minCanvasSize = size
		}
	}
}

package boxblur

// SmootherConfig defines the blur parameters of a Smoother.
type SmootherConfig struct {
	WindowRows int // window size for the row pass (along each row)
	WindowCols int // window size for the column pass (along each column)
	Passes     int // number of row+column repetitions
}

// SmootherOption mutates a SmootherConfig.
type SmootherOption func(*SmootherConfig)

// DefaultSmootherConfig returns the default blur parameters for a
// numRows x numCols matrix: window sizes derived from the dimensions via
// WindowSizeForDimension and DefaultPasses repetitions.
func DefaultSmootherConfig(numRows, numCols int) SmootherConfig {
	return SmootherConfig{
		WindowRows: WindowSizeForDimension(numCols),
		WindowCols: WindowSizeForDimension(numRows),
		Passes:     DefaultPasses,
	}
}

// WithWindowSizes sets the window sizes for the row and column passes.
func WithWindowSizes(alongRows, alongCols int) SmootherOption {
	return func(cfg *SmootherConfig) {
		if alongRows > 0 {
			cfg.WindowRows = alongRows
		}
		if alongCols > 0 {
			cfg.WindowCols = alongCols
		}
	}
}

// WithPasses sets the number of row+column blur repetitions.
func WithPasses(passes int) SmootherOption {
	return func(cfg *SmootherConfig) {
		if passes >= 0 {
			cfg.Passes = passes
		}
	}
}

// ApplySmootherOptions applies zero or more options to the default config.
func ApplySmootherOptions(numRows, numCols int, opts ...SmootherOption) SmootherConfig {
	cfg := DefaultSmootherConfig(numRows, numCols)

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Smoother applies the iterated box blur to same-sized matrices,
// reusing one internally owned scratch buffer across calls. It is not
// safe for concurrent use; create one Smoother per goroutine.
type Smoother struct {
	numRows, numCols int
	cfg              SmootherConfig
	scratch          []float64
}

// NewSmoother returns a Smoother for numRows x numCols matrices.
// Window sizes default to WindowSizeForDimension of the opposite
// dimension and may be overridden via options.
func NewSmoother(numRows, numCols int, opts ...SmootherOption) (*Smoother, error) {
	if numRows < 1 || numCols < 1 {
		return nil, ErrInvalidDimensions
	}

	cfg := ApplySmootherOptions(numRows, numCols, opts...)

	if cfg.WindowRows < 1 || cfg.WindowRows > numCols {
		return nil, ErrInvalidWindowSize
	}
	if cfg.WindowCols < 1 || cfg.WindowCols > numRows {
		return nil, ErrInvalidWindowSize
	}
	if cfg.Passes < 0 {
		return nil, ErrInvalidPasses
	}

	return &Smoother{
		numRows: numRows,
		numCols: numCols,
		cfg:     cfg,
		scratch: make([]float64, numRows*numCols),
	}, nil
}

// Config returns the blur parameters in effect.
func (s *Smoother) Config() SmootherConfig {
	return s.cfg
}

// Smooth blurs the matrix in buf in place, using the Smoother's scratch
// buffer for the ping-pong passes. buf must hold at least
// numRows*numCols elements. Zero-alloc after construction.
func (s *Smoother) Smooth(buf []float64) error {
	return Smooth(buf, s.scratch, s.numRows, s.numCols,
		s.cfg.WindowRows, s.cfg.WindowCols, s.cfg.Passes)
}

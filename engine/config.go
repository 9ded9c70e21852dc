package engine

// Config collects the construction-time knobs an Engine needs. Zero
// value is invalid; use DefaultConfig and override from there (the
// cmd/subtickctl CLI binds these fields to viper so they can come from
// flags, environment variables or a TOML file).
type Config struct {
	Width, Height int

	// ChunkSize is the activity-hint granularity CheckChunk/ChunkOff
	// operate at.
	ChunkSize int

	// OptSize is the number of per-cell optimization scratch bytes the
	// built-in generators (and any custom cell kinds) get.
	OptSize int

	// WorkerLimit caps how many tasks an ErrgroupPool runs concurrently.
	// 0 means unlimited.
	WorkerLimit int

	// SingleThreaded forces every subtick (and the per-tick reset) to
	// run on the calling goroutine, matching spec.md §4.3's
	// "TSC_SINGLE_THREAD build" rule.
	SingleThreaded bool

	// Turbo drops the single-update-per-tick guarantee and skips the
	// per-tick reset and generator optimization bookkeeping entirely, in
	// exchange for speed (spec.md §4.4, §4.5, §9). Defaults to false,
	// the safer behavior.
	Turbo bool

	// ExtraGraphicsInfo gates whether the per-tick reset fires the
	// GraphicsHook's trashedCellCount reset. When false, a hook attached
	// via SetGraphicsHook is never invoked by Reset.
	ExtraGraphicsInfo bool

	// TraceSubticks turns on debug-level traversal-order logging.
	TraceSubticks bool
}

// DefaultConfig returns the configuration cmd/subtickctl falls back to
// when no flags, environment variables or config file override it.
func DefaultConfig() Config {
	return Config{
		Width:       150,
		Height:      150,
		ChunkSize:   DefaultChunkSize,
		OptSize:     4,
		WorkerLimit: 0,
		Turbo:       false,
	}
}

// Validate checks the fields NewEngine cannot safely default around.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return wrapf(ErrInvalidGridSize, "got width=%d height=%d", c.Width, c.Height)
	}
	if c.OptSize < 0 {
		return wrapf(ErrInvalidOptSize, "got %d", c.OptSize)
	}
	if c.ChunkSize <= 0 {
		return wrapf(ErrInvalidChunk, "got %d", c.ChunkSize)
	}
	return nil
}

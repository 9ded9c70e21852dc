package engine

import "go.uber.org/zap"

// Engine owns one simulation's grid, cell-kind registry, subtick
// registry and worker pool, and drives ticks over them. Rather than a
// process-wide `subticks` global and a static scratch buffer, every
// piece of mutable state here belongs to one Engine value (spec.md §9's
// "no hidden singletons" redesign note). Nothing stops a process from
// running several Engines side by side.
type Engine struct {
	cfg      Config
	grid     *ChunkGrid
	kinds    *KindRegistry
	registry *Registry
	pool     WorkerPool
	builtins BuiltinKinds
	graphics GraphicsHook
	log      *zap.Logger

	tick int
}

// NewEngine validates cfg, allocates a ChunkGrid, and bootstraps the
// built-in mover/generator/rotator subticks into a fresh Registry
// (spec.md §4.5/§4.6).
func NewEngine(cfg Config, log *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	kinds := NewKindRegistry()
	grid := NewChunkGrid(cfg.Width, cfg.Height, cfg.ChunkSize, cfg.OptSize, kinds)
	registry := NewRegistry("core")

	var pool WorkerPool
	if cfg.SingleThreaded {
		pool = InlinePool{}
	} else {
		pool = NewErrgroupPool(cfg.WorkerLimit)
	}

	e := &Engine{
		cfg:      cfg,
		grid:     grid,
		kinds:    kinds,
		registry: registry,
		pool:     pool,
		log:      log,
	}
	e.builtins = Bootstrap(registry, kinds, grid, cfg.Turbo)

	log.Info("engine constructed",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("turbo", cfg.Turbo),
		zap.Bool("singleThreaded", cfg.SingleThreaded),
	)
	return e, nil
}

// Grid returns the engine's grid, for scenario setup and rendering.
func (e *Engine) Grid() *ChunkGrid { return e.grid }

// Kinds returns the engine's cell-kind registry, for registering
// additional kinds beyond the built-ins.
func (e *Engine) Kinds() *KindRegistry { return e.kinds }

// Registry returns the engine's subtick registry, for adding custom
// subticks beyond the built-in generate/rotate/move set.
func (e *Engine) Registry() *Registry { return e.registry }

// Builtins returns the kind IDs Bootstrap registered.
func (e *Engine) Builtins() BuiltinKinds { return e.builtins }

// SetGraphicsHook attaches the rendering-side reset collaborator
// (spec.md §4.4). Passing nil detaches it.
func (e *Engine) SetGraphicsHook(hook GraphicsHook) { e.graphics = hook }

// SetPool overrides the engine's worker pool, so the same registry/grid
// can be run through an InlinePool or an ErrgroupPool, e.g. for a
// bit-equality comparison (spec.md §8's parallel-equivalence property).
func (e *Engine) SetPool(pool WorkerPool) { e.pool = pool }

// TickCount returns how many ticks Tick has completed.
func (e *Engine) TickCount() int { return e.tick }

// Tick runs one advancement of the simulation (spec.md §4.6): reset every
// cell's ephemeral state (unless turbo), then dispatch every subtick in
// ascending priority order.
func (e *Engine) Tick() {
	Reset(e.grid, e.pool, e.cfg.SingleThreaded, e.cfg.Turbo, e.cfg.ExtraGraphicsInfo, e.graphics)

	for _, s := range e.registry.Subticks() {
		if e.cfg.TraceSubticks {
			e.log.Debug("running subtick",
				zap.String("name", s.Name()),
				zap.Float64("priority", s.Priority()),
				zap.Bool("parallel", s.Parallel()),
			)
		}
		RunSubtick(e.grid, e.kinds, e.pool, s, e.cfg.Turbo, e.cfg.SingleThreaded)
	}

	e.tick++
}

// Run advances the simulation n ticks.
func (e *Engine) Run(n int) {
	for i := 0; i < n; i++ {
		e.Tick()
	}
}

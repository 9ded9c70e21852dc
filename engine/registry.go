package engine

import (
	"fmt"
	"sort"
)

// Subtick is a named, prioritized phase within a tick: it updates the
// cell kinds in ids according to mode's traversal, optionally sharded
// across the worker pool with the given spacing.
type Subtick struct {
	name     string
	priority float64
	spacing  int
	parallel bool
	mode     Mode
	ids      []CellKind
	seq      int // insertion sequence, for stable tie-breaking
}

func (s *Subtick) Name() string      { return s.name }
func (s *Subtick) Priority() float64 { return s.priority }
func (s *Subtick) Spacing() int      { return s.spacing }
func (s *Subtick) Parallel() bool    { return s.parallel }
func (s *Subtick) Mode() Mode        { return s.mode }

func (s *Subtick) hasID(id CellKind) bool {
	for _, i := range s.ids {
		if i == id {
			return true
		}
	}
	return false
}

// SubtickHandle is a stable reference to a registered Subtick. It wraps
// the Subtick's own pointer identity rather than a slice index, so unlike
// the original engine's raw pointers into a realloc'd array, a handle
// never dangles or needs re-validation after the registry grows and
// resorts (spec.md §5's "callers must not retain raw pointers across
// additions" concern, solved structurally instead of by convention).
type SubtickHandle struct {
	sub *Subtick
}

// Valid reports whether h refers to a registered subtick.
func (h SubtickHandle) Valid() bool { return h.sub != nil }

// Registry is the engine-owned, per-process-lifetime list of Subtick
// descriptors, kept sorted by ascending priority (stable on ties). There
// is no process-wide global here: every list is a value any number of
// Engines can own independently (spec.md §9's "no hidden singletons"
// note).
type Registry struct {
	modID   string
	subs    []*Subtick
	nextSeq int
	byName  map[string]*Subtick // qualified (mod, name) -> subtick
}

// NewRegistry returns an empty Registry whose subticks are namespaced
// under modID, the padding spec.md §3 describes ("Names are interned
// after being padded with the registering mod's identifier"). Two
// registrations under the same modID and name are idempotent: the second
// returns the first's handle rather than creating a duplicate, which is
// how spec.md's "collisions must be impossible between equal (mod, name)
// pairs" invariant is enforced here.
func NewRegistry(modID string) *Registry {
	return &Registry{modID: modID, byName: make(map[string]*Subtick)}
}

// Subticks returns the registry's subticks in ascending priority order.
// The slice is owned by the registry; callers must not retain it across
// further Add* calls.
func (r *Registry) Subticks() []*Subtick { return r.subs }

func (r *Registry) qualify(name string) string {
	return fmt.Sprintf("%s\x00%s", r.modID, name)
}

func (r *Registry) add(name string, priority float64, spacing int, parallel bool, mode Mode) SubtickHandle {
	qname := r.qualify(name)
	if existing, ok := r.byName[qname]; ok {
		return SubtickHandle{sub: existing}
	}
	s := &Subtick{
		name:     qname,
		priority: priority,
		spacing:  spacing,
		parallel: parallel,
		mode:     mode,
		seq:      r.nextSeq,
	}
	r.nextSeq++
	r.byName[qname] = s
	r.subs = append(r.subs, s)
	r.resort()
	return SubtickHandle{sub: s}
}

// resort re-sorts the registry by ascending priority, stable on ties so
// equal-priority subticks retain their insertion order (spec.md §3's
// "Subticks are sorted by priority before every run; stable on equal
// priorities" invariant). A plain stable sort replaces the original's
// iterative quicksort over an explicit heap-backed stack, which existed
// only to dodge C recursion-depth limits; Go's sort.SliceStable needs no
// such workaround (see DESIGN.md).
func (r *Registry) resort() {
	sort.SliceStable(r.subs, func(i, j int) bool {
		return r.subs[i].priority < r.subs[j].priority
	})
}

// AddTicked registers a ticked-mode subtick and returns its handle.
func (r *Registry) AddTicked(name string, priority float64, spacing int, parallel bool) SubtickHandle {
	return r.add(name, priority, spacing, parallel, TickedMode{})
}

// AddTracked registers a tracked-mode subtick and returns its handle.
func (r *Registry) AddTracked(name string, priority float64, spacing int, parallel bool) SubtickHandle {
	return r.add(name, priority, spacing, parallel, TrackedMode{})
}

// AddNeighbour registers a neighbour-mode subtick and returns its handle.
func (r *Registry) AddNeighbour(name string, priority float64, spacing int, parallel bool) SubtickHandle {
	return r.add(name, priority, spacing, parallel, NeighbourMode{})
}

// AddCustom registers a custom-mode subtick with the given ordered
// traversal steps and returns its handle.
func (r *Registry) AddCustom(name string, priority float64, spacing int, parallel bool, orders []OrderRecord) SubtickHandle {
	return r.add(name, priority, spacing, parallel, CustomMode{Orders: orders})
}

// AddCell attaches a cell kind to the subtick referenced by h. A no-op if
// h is invalid.
func (r *Registry) AddCell(h SubtickHandle, id CellKind) {
	if h.sub == nil {
		return
	}
	if h.sub.hasID(id) {
		return
	}
	h.sub.ids = append(h.sub.ids, id)
}

// Find looks up a subtick by its unqualified name within this registry's
// mod namespace.
func (r *Registry) Find(name string) SubtickHandle {
	if s, ok := r.byName[r.qualify(name)]; ok {
		return SubtickHandle{sub: s}
	}
	return SubtickHandle{}
}

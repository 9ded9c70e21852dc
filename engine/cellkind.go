package engine

// CellKindTable is the dispatch record a cell kind registers: the update
// callback the scheduler invokes, plus whatever opaque payload that
// callback needs. This is the cell-kind registry's external surface:
// grid ownership and persistence stay outside this package, this is
// only the update-dispatch surface the scheduler depends on.
type CellKindTable struct {
	// Update receives the source cell, the source coordinate (sx, sy),
	// the anchor coordinate (ax, ay), and the table's payload. The
	// anchor equals (sx, sy) for every mode except neighbour, where the
	// anchor is the cell being inspected and the source is the
	// dispatched neighbour.
	Update func(cell *Cell, sx, sy, ax, ay int, payload any)

	// Payload is opaque data threaded through to Update unchanged.
	Payload any

	// Pushable controls whether Grid.Push may displace a cell of this
	// kind as part of a push chain. Movers and generators push through
	// anything pushable; walls are the canonical non-pushable kind.
	Pushable bool
}

// KindRegistry is the idempotent allocator of cell kind identifiers and
// their dispatch tables: newTable(id) allocates or returns a table,
// getTable(cell) looks one up and may return nil.
type KindRegistry struct {
	names  map[string]CellKind
	tables map[CellKind]*CellKindTable
	next   CellKind
}

// NewKindRegistry returns a registry with Empty (kind 0) pre-registered
// as a pushable, update-less kind: a push chain walking through empty
// cells never even reaches this table, since Push stops at the first
// Empty ID it meets, but the table still needs a definite Pushable
// value to satisfy the CellKindTable contract.
func NewKindRegistry() *KindRegistry {
	r := &KindRegistry{
		names:  make(map[string]CellKind),
		tables: make(map[CellKind]*CellKindTable),
		next:   1,
	}
	r.names["empty"] = Empty
	r.tables[Empty] = &CellKindTable{Pushable: true}
	return r
}

// Intern returns the stable CellKind for name, allocating one and an
// empty dispatch table on first use. Idempotent: calling it twice with
// the same name returns the same kind.
func (r *KindRegistry) Intern(name string) CellKind {
	if id, ok := r.names[name]; ok {
		return id
	}
	id := r.next
	r.next++
	r.names[name] = id
	r.tables[id] = &CellKindTable{Pushable: true}
	return id
}

// NewTable returns the dispatch table for id, allocating a default
// (pushable, update-less) one if id was never interned by name.
func (r *KindRegistry) NewTable(id CellKind) *CellKindTable {
	if t, ok := r.tables[id]; ok {
		return t
	}
	t := &CellKindTable{Pushable: true}
	r.tables[id] = t
	return t
}

// GetTable returns the dispatch table for cell.ID, or nil if the kind was
// never registered.
func (r *KindRegistry) GetTable(cell *Cell) *CellKindTable {
	return r.tables[cell.ID]
}

// Pushable reports whether a cell of kind id may be displaced by a push
// chain. Unregistered kinds are treated as pushable empties.
func (r *KindRegistry) Pushable(id CellKind) bool {
	t, ok := r.tables[id]
	if !ok {
		return true
	}
	return t.Pushable
}

package engine

// GraphicsHook is the external, rendering-side collaborator the reset
// phase touches once per tick: spec.md §4.4 calls out a
// "trashedCellCount" counter reset that belongs entirely to the graphics
// layer. The scheduler only ever calls ResetTrashedCount; it never reads
// the counter back.
type GraphicsHook interface {
	ResetTrashedCount()
}

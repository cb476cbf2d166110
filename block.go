package tangle

// Block is a named, ordered sequence of Segments, assembled from one or
// more "#+NAME: <name>" definitions that share that name. A Block's
// identity is its name: every reference to the same name, whether parsed
// before or after a definition, resolves to the same *Block instance (see
// Registry.GetOrCreate).
type Block struct {
	Name string

	// Segments accumulates across every "#+NAME: <name>" definition that
	// shares Name, in the order those definitions and their contents were
	// parsed.
	Segments []Segment

	// DefinitionCount is the number of "#+NAME:" occurrences that named
	// this block. The parser creates Blocks only for "#+NAME:" lines, so
	// every parsed Block has DefinitionCount >= 1; a "<<name>>" reference
	// creates no Block and is resolved by name at expansion time.
	DefinitionCount uint32

	// Used is set true by the Expander the first time this block is
	// reached while emitting any File Binding.
	Used bool

	// DefinedAt is the position of this block's first "#+NAME:"
	// definition, used by the usage checker and by error messages.
	DefinedAt Position

	ID uint64
}

// AppendSegment appends seg to the block's segment list.
func (b *Block) AppendSegment(seg Segment) {
	b.Segments = append(b.Segments, seg)
}

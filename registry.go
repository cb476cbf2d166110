package tangle

// Registry maps block names to Blocks with stable identity: every
// definition of a name extends the same instance, and a reference looked
// up at expansion time finds that instance whatever the parse order.
// Its iteration order is never observed externally: traversal is always
// driven through a FileList's root blocks, not through the registry.
type Registry struct {
	blocks map[string]*Block
	nextID uint64
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{blocks: make(map[string]*Block)}
}

// GetOrCreate returns the Block for name, creating an empty Block on the
// first call for that name. Subsequent calls return the identical *Block.
// The parser calls it only for "#+NAME:" definitions; "<<name>>"
// references are resolved later through Lookup.
func (r *Registry) GetOrCreate(name string) *Block {
	if b, ok := r.blocks[name]; ok {
		return b
	}
	r.nextID++
	b := &Block{Name: name, ID: r.nextID}
	r.blocks[name] = b
	return b
}

// Lookup returns the Block for name without creating one, and whether it
// was found.
func (r *Registry) Lookup(name string) (*Block, bool) {
	b, ok := r.blocks[name]
	return b, ok
}

// Len returns the number of distinct block names registered.
func (r *Registry) Len() int { return len(r.blocks) }

// Range calls f once for every registered Block. Iteration order is
// unspecified (map order); callers must not depend on it.
func (r *Registry) Range(f func(*Block)) {
	for _, b := range r.blocks {
		f(b)
	}
}

package tangle

// FileBinding pairs an output path with the Block that is its expansion
// root.
type FileBinding struct {
	OutputPath string
	Root       *Block
}

// FileList is an ordered sequence of FileBindings. Emission order matches
// insertion order.
type FileList struct {
	bindings []FileBinding
}

// Append records a new file binding, in order.
func (fl *FileList) Append(path string, root *Block) {
	fl.bindings = append(fl.bindings, FileBinding{OutputPath: path, Root: root})
}

// Bindings returns the file bindings in insertion order.
func (fl *FileList) Bindings() []FileBinding {
	return fl.bindings
}

// Len returns the number of file bindings.
func (fl *FileList) Len() int { return len(fl.bindings) }

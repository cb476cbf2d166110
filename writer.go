package tangle

import (
	"fmt"
	"io"
)

// Expander performs the depth-first expansion: for each File Binding, open
// its output and recursively emit its root Block, resolving References
// through a Registry.
type Expander struct {
	cfg      *Config
	registry *Registry
}

// NewExpander returns an Expander that resolves references against
// registry under cfg's policy.
func NewExpander(cfg *Config, registry *Registry) *Expander {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Expander{cfg: cfg, registry: registry}
}

// ExpandAll expands every binding in files, in order, one at a time,
// stopping at the first error: a failed write is fatal to that file and to
// the run.
func (e *Expander) ExpandAll(files *FileList) error {
	for _, fb := range files.Bindings() {
		if err := e.ExpandFile(fb); err != nil {
			return err
		}
	}
	return nil
}

// ExpandFile writes fb's fully expanded root block to its output path.
func (e *Expander) ExpandFile(fb FileBinding) (rerr error) {
	w, err := e.cfg.Fs.Create(fb.OutputPath)
	if err != nil {
		return &IOError{Path: fb.OutputPath, Cause: err}
	}
	defer func() {
		if cerr := w.Close(); rerr == nil && cerr != nil {
			rerr = &IOError{Path: fb.OutputPath, Cause: cerr}
		}
	}()

	visited := make(map[*Block]bool)
	if err := e.expandBlock(w, fb.Root, visited, Position{}); err != nil {
		return err
	}
	return nil
}

// expandBlock writes b's segments, recursing through References. refPos is
// the position of the reference that led here, used in cycle diagnostics.
func (e *Expander) expandBlock(w io.Writer, b *Block, visited map[*Block]bool, refPos Position) error {
	if visited[b] {
		return &CycleError{Name: b.Name, Pos: refPos}
	}
	visited[b] = true
	defer delete(visited, b)

	b.Used = true

	for _, seg := range b.Segments {
		switch seg.Kind {
		case SegmentText:
			if err := e.writeText(w, seg); err != nil {
				return err
			}
		case SegmentReference:
			if err := e.writeReference(w, seg, visited); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Expander) writeText(w io.Writer, seg Segment) error {
	if e.cfg.Debug {
		if _, err := fmt.Fprintf(w, "#line %d %q\n", seg.Pos.Line, seg.Pos.File); err != nil {
			return &IOError{Path: seg.Pos.File, Cause: err}
		}
	}
	if _, err := io.WriteString(w, seg.Body); err != nil {
		return &IOError{Path: seg.Pos.File, Cause: err}
	}
	return nil
}

func (e *Expander) writeReference(w io.Writer, seg Segment, visited map[*Block]bool) error {
	target, ok := e.registry.Lookup(seg.Body)
	if !ok {
		e.cfg.logf("Warning: could not find reference segment %q, referenced from %s", seg.Body, seg.Pos)
		if e.cfg.Warnings == WarningsError {
			return &UnresolvedReferenceError{Name: seg.Body, Pos: seg.Pos}
		}
		return nil
	}
	return e.expandBlock(w, target, visited, seg.Pos)
}

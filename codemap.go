package tangle

import (
	"fmt"
	"io"
	"strings"
)

// WriteCodeMap renders every File Binding's expansion tree as a
// human-readable org document. It is a read-only traversal: it never sets
// Used and never fails on an unresolved reference, instead silently
// omitting the nested rendering for names with no definition.
func WriteCodeMap(w io.Writer, files *FileList, registry *Registry) error {
	if _, err := io.WriteString(w, "#+TITLE: Code Map\n"); err != nil {
		return err
	}
	for _, fb := range files.Bindings() {
		if _, err := fmt.Fprintf(w, "* %s\n", fb.OutputPath); err != nil {
			return err
		}
		if err := writeCodeMapBlock(w, fb.Root, registry, 0); err != nil {
			return err
		}
	}
	return nil
}

func writeCodeMapBlock(w io.Writer, b *Block, registry *Registry, level int) error {
	if level != 0 {
		if _, err := fmt.Fprintf(w, "%s %s\n", strings.Repeat("*", level+1), b.Name); err != nil {
			return err
		}
	}

	for i, seg := range b.Segments {
		switch seg.Kind {
		case SegmentText:
			if err := writeCodeMapSegment(w, b.Name, i, seg); err != nil {
				return err
			}
		case SegmentReference:
			if target, ok := registry.Lookup(seg.Body); ok {
				if err := writeCodeMapBlock(w, target, registry, level+1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeCodeMapSegment(w io.Writer, blockName string, index int, seg Segment) error {
	if seg.Body != "" {
		if _, err := fmt.Fprintf(w, "%s:%d\n", seg.Pos.File, seg.Pos.Line); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "#+NAME: %s_%d\n", blockName, index); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "#+BEGIN_SRC\n"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, seg.Body); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "#+END_SRC"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return nil
}

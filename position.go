package tangle

import "fmt"

// Position locates a span of input text for diagnostics: the source file
// name plus a 1-based line number where the span begins.
type Position struct {
	File string
	Line int
}

// String renders a Position as "file:line", omitting the file when empty.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

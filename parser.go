package tangle

import "strings"

// parseState is the per-document state of the parser's FSM.
type parseState int

const (
	stateOrgMode parseState = iota
	stateExpectingBegin
	stateCodeMode
)

const (
	nameKeyword     = "#+NAME"
	beginSrcKeyword = "#+BEGIN_SRC"
	endSrcKeyword   = "#+END_SRC"
	tangleArg       = ":tangle"
)

// Parser drives a line-oriented state machine across one or more
// documents, populating a shared Registry and FileList. A Parser is a
// plain struct: nothing it holds is shared process-wide, so independent
// parses (e.g. successive runs from the file watcher in cmd/tangle) never
// interfere.
type Parser struct {
	cfg      *Config
	registry *Registry
	files    *FileList
	nextSeg  uint64
}

// NewParser returns a Parser with a fresh Registry and FileList. A nil cfg
// is replaced with NewConfig().
func NewParser(cfg *Config) *Parser {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Parser{cfg: cfg, registry: NewRegistry(), files: &FileList{}}
}

// Registry returns the block registry populated so far.
func (p *Parser) Registry() *Registry { return p.registry }

// Files returns the file bindings collected so far, in document order.
func (p *Parser) Files() *FileList { return p.files }

// ParseDocument parses one document's bytes and merges its blocks and file
// bindings into the Parser's shared Registry and FileList, in the order
// this method is called. It returns the first fatal ParseError
// encountered, if any; content already parsed from other documents is
// retained.
func (p *Parser) ParseDocument(file string, data []byte) error {
	buf := NewBuffer(file, data)
	sc := buf.NewScanner()

	state := stateOrgMode
	var curBlock *Block

	accumulating := false
	var accumStart, accumStartLine int

	flush := func(endOffset int) {
		if !accumulating {
			return
		}
		accumulating = false
		if endOffset <= accumStart {
			return
		}
		p.nextSeg++
		curBlock.AppendSegment(Segment{
			Kind: SegmentText,
			Body: sc.Slice(accumStart, endOffset),
			Pos:  Position{File: file, Line: accumStartLine},
			ID:   p.nextSeg,
		})
	}

	for sc.Next() {
		line := sc.Text()
		pos := Position{File: file, Line: sc.Num()}

		switch state {
		case stateOrgMode:
			if len(line) < len(nameKeyword)+1 || !strings.HasPrefix(line, nameKeyword) {
				continue
			}
			if line[len(nameKeyword)] != ':' {
				return &ParseError{Pos: pos, Message: "expected ':' after #+NAME"}
			}
			name := parseBlockName(line)
			curBlock = p.registry.GetOrCreate(name)
			if curBlock.DefinitionCount == 0 {
				curBlock.DefinedAt = pos
			}
			curBlock.DefinitionCount++
			state = stateExpectingBegin

		case stateExpectingBegin:
			if !strings.HasPrefix(line, beginSrcKeyword) {
				return &ParseError{Pos: pos, Message: "expected #+BEGIN_SRC"}
			}
			if tangleTo, ok := parseTangleArg(line); ok {
				p.files.Append(tangleTo, curBlock)
			}
			state = stateCodeMode
			accumulating = false

		case stateCodeMode:
			if strings.HasPrefix(line, endSrcKeyword) {
				flush(sc.Start())
				state = stateOrgMode
				continue
			}
			if name, ok := parseReferenceLine(line); ok {
				flush(sc.Start())
				p.nextSeg++
				curBlock.AppendSegment(Segment{
					Kind: SegmentReference,
					Body: name,
					Pos:  pos,
					ID:   p.nextSeg,
				})
				continue
			}
			if !accumulating {
				accumulating = true
				accumStart = sc.Start()
				accumStartLine = sc.Num()
			}
		}
	}

	switch state {
	case stateExpectingBegin:
		return &ParseError{Pos: Position{File: file, Line: sc.Num()}, Message: "expected #+BEGIN_SRC, reached end of file"}
	case stateCodeMode:
		return &ParseError{Pos: Position{File: file, Line: sc.Num()}, Message: "unterminated code block, reached end of file"}
	}
	return nil
}

// parseBlockName extracts <name> from a "#+NAME: <name>" line: the
// remainder after the colon, with leading spaces and the trailing newline
// trimmed. The name runs to the end of the line, so it may itself contain
// internal spaces.
func parseBlockName(line string) string {
	rest := line[len(nameKeyword)+1:]
	rest = strings.TrimLeft(rest, " ")
	rest = strings.TrimSuffix(rest, "\n")
	return rest
}

// parseTangleArg looks for a ":tangle <path>" header argument on a
// "#+BEGIN_SRC" line and returns the path, if present.
func parseTangleArg(line string) (string, bool) {
	rest := strings.TrimSuffix(line, "\n")
	fields := strings.Fields(rest[len(beginSrcKeyword):])
	for i, f := range fields {
		if f == tangleArg && i+1 < len(fields) {
			return fields[i+1], true
		}
	}
	return "", false
}

// parseReferenceLine reports whether line is a reference marker: its
// non-whitespace content is exactly "<<name>>" with name containing no '>'
// or newline.
func parseReferenceLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 5 || !strings.HasPrefix(trimmed, "<<") || !strings.HasSuffix(trimmed, ">>") {
		return "", false
	}
	name := trimmed[2 : len(trimmed)-2]
	if name == "" || strings.ContainsAny(name, ">\n") {
		return "", false
	}
	return name, true
}

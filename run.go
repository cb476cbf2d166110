package tangle

// Source is one document to feed to a Run: a file name and its raw bytes.
type Source struct {
	Name string
	Data []byte
}

// Result collects everything a Run produced, for callers that want to
// inspect the registry or file list afterward (e.g. to also write a code
// map).
type Result struct {
	Registry *Registry
	Files    *FileList
	Unused   []*UnusedBlockError
}

// Run parses every source in order, then — unless cfg.TangleCode is false
// — expands every discovered File Binding and runs the usage checker.
// When cfg.TangleCode is false, neither expansion nor the usage check
// runs, and Result.Unused is nil. It stops and returns at the first fatal error (a ParseError, an
// IOError, an UnresolvedReferenceError under WarningsError, a CycleError,
// or an UnusedBlockError under WarningsError).
func Run(cfg *Config, sources []Source) (*Result, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	p := NewParser(cfg)
	for _, src := range sources {
		if err := p.ParseDocument(src.Name, src.Data); err != nil {
			return &Result{Registry: p.Registry(), Files: p.Files()}, err
		}
	}

	if !cfg.TangleCode {
		return &Result{Registry: p.Registry(), Files: p.Files()}, nil
	}

	exp := NewExpander(cfg, p.Registry())
	if err := exp.ExpandAll(p.Files()); err != nil {
		return &Result{Registry: p.Registry(), Files: p.Files()}, err
	}

	unused, err := CheckUnused(cfg, p.Registry())
	return &Result{Registry: p.Registry(), Files: p.Files(), Unused: unused}, err
}

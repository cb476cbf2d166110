package tangle

// CheckUnused reports every Block with Used == false after a run's
// expansion has completed. It must run after Expander.ExpandAll, since
// that is what sets Used.
//
// Unlike the unresolved-reference warning in writer.go, which always logs
// regardless of policy, the usage check itself is a no-op under
// WarningsNone: it is an opt-in pass, not a default diagnostic.
//
// It returns the collected warnings (for callers that want to format or
// count them) and, if cfg.Warnings == WarningsError, the first one as a
// non-nil error.
func CheckUnused(cfg *Config, registry *Registry) ([]*UnusedBlockError, error) {
	if cfg.Warnings == WarningsNone {
		return nil, nil
	}

	var warnings []*UnusedBlockError
	registry.Range(func(b *Block) {
		if b.Used {
			return
		}
		warnings = append(warnings, &UnusedBlockError{Name: b.Name, Pos: b.DefinedAt})
	})

	for _, w := range warnings {
		cfg.logf("Warning: block %q unused, first declared at %s", w.Name, w.Pos)
	}

	if cfg.Warnings == WarningsError && len(warnings) > 0 {
		return warnings, warnings[0]
	}
	return warnings, nil
}

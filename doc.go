// Package tangle implements a literate-programming tangler: it reads one
// or more org-style source documents, extracts named fenced code blocks
// and the cross-block references between them, and emits output source
// files by fully expanding those references.
//
// The parse/expand pipeline is:
//
//	Parser.ParseDocument (once per document, in order)
//	  -> populates a Registry (block name -> *Block) and a FileList
//	Expander.ExpandAll
//	  -> walks the FileList, recursively writing each root Block
//	CheckUnused
//	  -> reports any Block the Expander never reached
//
// A Config threads the run's policy (debug line markers, warning mode,
// whether to tangle at all, the logger, the filesystem) through every
// stage instead of relying on process-wide state.
package tangle

package tangle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCodeMapRendersNestedReferences(t *testing.T) {
	cfg, _ := newMemConfig()
	p := NewParser(cfg)
	require.NoError(t, p.ParseDocument("doc.org", []byte(
		"#+NAME: main\n"+
			"#+BEGIN_SRC :tangle out.txt\n"+
			"<<helper>>\n"+
			"#+END_SRC\n"+
			"\n"+
			"#+NAME: helper\n"+
			"#+BEGIN_SRC\n"+
			"x\n"+
			"#+END_SRC\n",
	)))

	var sb strings.Builder
	require.NoError(t, WriteCodeMap(&sb, p.Files(), p.Registry()))

	out := sb.String()
	assert.Contains(t, out, "* out.txt")
	assert.Contains(t, out, "** helper")
	assert.Contains(t, out, "x\n")
}

func TestWriteCodeMapSkipsUnresolvedReferences(t *testing.T) {
	cfg, _ := newMemConfig()
	p := NewParser(cfg)
	require.NoError(t, p.ParseDocument("doc.org", []byte(
		"#+NAME: main\n"+
			"#+BEGIN_SRC :tangle out.txt\n"+
			"<<missing>>\n"+
			"#+END_SRC\n",
	)))

	var sb strings.Builder
	err := WriteCodeMap(&sb, p.Files(), p.Registry())
	require.NoError(t, err)
	assert.NotContains(t, sb.String(), "missing")
}

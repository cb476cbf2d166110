package tangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerLinesIncludeNewline(t *testing.T) {
	buf := NewBuffer("doc.org", []byte("one\ntwo\nthree"))
	sc := buf.NewScanner()

	var lines []string
	for sc.Next() {
		lines = append(lines, sc.Text())
	}
	assert.Equal(t, []string{"one\n", "two\n", "three"}, lines)
}

func TestScannerNumIsOneBased(t *testing.T) {
	buf := NewBuffer("doc.org", []byte("a\nb\n"))
	sc := buf.NewScanner()

	sc.Next()
	assert.Equal(t, 1, sc.Num())
	sc.Next()
	assert.Equal(t, 2, sc.Num())
	assert.False(t, sc.Next())
}

func TestScannerSliceSpansMultipleLines(t *testing.T) {
	buf := NewBuffer("doc.org", []byte("aaa\nbbb\nccc\n"))
	sc := buf.NewScanner()

	sc.Next()
	start := sc.Start()
	sc.Next()
	sc.Next()
	end := sc.End()

	assert.Equal(t, "aaa\nbbb\nccc\n", sc.Slice(start, end))
}

func TestScannerEmptyBuffer(t *testing.T) {
	buf := NewBuffer("doc.org", nil)
	sc := buf.NewScanner()
	assert.False(t, sc.Next())
}

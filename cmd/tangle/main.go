// Command tangle is the literate-programming tangler's CLI front end: it
// reads one or more org-style documents, expands their named code blocks,
// and writes the files named by #+BEGIN_SRC's :tangle argument.
package main

import (
	"github.com/alecthomas/kong"
)

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("tangle"),
		kong.Description("Expand literate org documents into tangled source files"),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

package fsio

import (
	"io"

	"github.com/spf13/afero"
)

// Afero adapts any afero.Fs into an Opener. It is the seam used by tests
// (backed by afero.NewMemMapFs()) and by any caller that already threads
// an afero.Fs through its own code.
type Afero struct {
	Fs afero.Fs
}

// NewAfero wraps fs as an Opener.
func NewAfero(fs afero.Fs) *Afero {
	return &Afero{Fs: fs}
}

func (a *Afero) Open(name string) (io.ReadCloser, error) {
	return a.Fs.Open(name)
}

func (a *Afero) Create(name string) (io.WriteCloser, error) {
	return a.Fs.Create(name)
}

package fsio

import (
	"io"
	"os"

	"github.com/google/renameio"
)

// AtomicOS is the Opener the real CLI uses: reads are plain os.Open, and
// writes go through renameio so a crash or a write error never leaves a
// half-written output file at the destination path.
type AtomicOS struct{}

func (AtomicOS) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (AtomicOS) Create(name string) (io.WriteCloser, error) {
	pf, err := renameio.TempFile("", name)
	if err != nil {
		return nil, err
	}
	return &atomicFile{pf: pf}, nil
}

// atomicFile commits its renameio.PendingFile on Close, replacing the
// destination only once every byte has been written successfully.
type atomicFile struct {
	pf *renameio.PendingFile
}

func (f *atomicFile) Write(p []byte) (int, error) {
	return f.pf.Write(p)
}

func (f *atomicFile) Close() (rerr error) {
	defer func() {
		if cerr := f.pf.Cleanup(); rerr == nil {
			rerr = cerr
		}
	}()
	return f.pf.CloseAtomicallyReplace()
}

package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans writes out to every writer, so logs can go to
// stdout and the rotated log file at once.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.Writers = append(cw.Writers, w)
		}
	}
	return cw
}

// Write returns the bytes written by the first healthy writer; errors of
// the others are combined.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	written := -1
	var err error
	for _, w := range cw.Writers {
		n, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		if written < 0 {
			written = n
		}
	}
	if written < 0 {
		return 0, err
	}
	return written, err
}

// Package follow implements tail-style following of a growing file.
package follow

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/spf13/afero"
)

// DefaultInterval is the poll interval used when none is configured.
const DefaultInterval = 200 * time.Millisecond

// lookbackBytes is how far back from the end of the file the initial
// window starts.
const lookbackBytes = 4096

// Follower prints newly appended lines of a file until its context is
// cancelled. Lines already present within the lookback window are printed
// once up front.
type Follower struct {
	FS  afero.Fs
	Out io.Writer

	// Interval between polls once the end of the file is reached.
	// Zero means DefaultInterval.
	Interval time.Duration
}

// Follow blocks, printing whole lines of path as they appear, and returns
// nil once ctx is cancelled. Opening errors are returned to the caller;
// the follow attempt is simply abandoned.
func (f *Follower) Follow(ctx context.Context, path string) error {
	fd, err := f.FS.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	end, err := fd.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	start := end - lookbackBytes
	if start < 0 {
		start = 0
	}
	if _, err := fd.Seek(start, io.SeekStart); err != nil {
		return err
	}

	interval := f.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	reader := bufio.NewReader(fd)

	// A partial line is held back until its newline arrives so every line
	// is emitted exactly once.
	var pending []byte
	for {
		chunk, err := reader.ReadBytes('\n')
		pending = append(pending, chunk...)

		switch {
		case err == nil:
			if _, err := f.Out.Write(pending); err != nil {
				return err
			}
			pending = pending[:0]

		case err == io.EOF:
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(interval):
			}

		default:
			return err
		}
	}
}

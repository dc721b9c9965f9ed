// Package stdio keeps the process stdout reserved for the single result line.
//
// Native libraries such as whisper.cpp print progress and warnings straight
// to file descriptors 1 and 2, bypassing os.Stdout. Isolate moves those
// descriptors away and hands back private copies of the original streams.
package stdio

import "os"

type Streams struct {
	Stdout *os.File // the original stdout, for the result line
	Stderr *os.File // the original stderr, for our own logs

	restore func() error
}

// Restore points fd 1 and 2 back at the original streams.
func (s *Streams) Restore() error {
	if s.restore == nil {
		return nil
	}
	err := s.restore()
	s.restore = nil
	return err
}

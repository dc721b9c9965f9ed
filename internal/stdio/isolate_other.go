//go:build !unix

package stdio

import "os"

// Isolate is a no-op off unix: native output cannot be rerouted there.
func Isolate(_ bool) (*Streams, error) {
	return &Streams{Stdout: os.Stdout, Stderr: os.Stderr}, nil
}

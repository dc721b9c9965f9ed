//go:build !cgo

package audioconv

import (
	"errors"
	"io"
)

func decodeOggOpus(_ io.Reader) ([]float32, error) {
	return nil, errors.New("opus decoding requires cgo (build with CGO_ENABLED=1)")
}

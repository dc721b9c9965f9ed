//go:build !cgo

package stt

import "errors"

func openWhisper(_ string, _ Options) (Model, error) {
	return nil, errors.New("local whisper backend requires cgo (build with CGO_ENABLED=1)")
}

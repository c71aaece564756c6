// Package qr turns menu payloads into QR code images.
package qr

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	qrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEncoding = errors.New("qr encoding failed")
	ErrIO       = errors.New("qr image write failed")
)

const (
	DefaultBoxSize = 10
	DefaultOutput  = "menu_qr.png"
)

// Encoder settings. The quiet zone is always four modules wide unless
// NoBorder is set.
type Encoder struct {
	Level    qrcode.RecoveryLevel
	BoxSize  int // pixels per module
	NoBorder bool
}

// NewEncoder returns the fixed menu settings: low error correction, 10px
// modules, 4-module border, black on white.
func NewEncoder() Encoder {
	return Encoder{Level: qrcode.Low, BoxSize: DefaultBoxSize}
}

// Encode returns the PNG bytes for payload.
func (e Encoder) Encode(payload string) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrEncoding)
	}
	code, err := qrcode.New(payload, e.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	code.ForegroundColor = color.Black
	code.BackgroundColor = color.White
	code.DisableBorder = e.NoBorder

	box := e.BoxSize
	if box <= 0 {
		box = DefaultBoxSize
	}
	// negative size means pixels per module
	png, err := code.PNG(-box)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return png, nil
}

// WriteFile encodes payload and overwrites path with the image.
func (e Encoder) WriteFile(payload, path string) error {
	png, err := e.Encode(payload)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

package qrcode

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the PNG edge length in pixels.
const DefaultSize = 256

// Encoder renders confirmation codes as PNG QR images.
type Encoder struct {
	Size int
}

// NewEncoder returns an Encoder producing size x size images.
func NewEncoder(size int) *Encoder {
	if size <= 0 {
		size = DefaultSize
	}
	return &Encoder{Size: size}
}

// PNG encodes content at medium error correction.
func (e *Encoder) PNG(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, e.Size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

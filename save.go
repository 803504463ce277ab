package sketch

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
)

// Format is an export image encoding.
type Format uint8

const (
	// FormatPNG is lossless and preserves alpha.
	FormatPNG Format = iota

	// FormatJPEG is lossy and always opaque.
	FormatJPEG
)

// jpegQuality is the JPEG encoder quality used for exports.
const jpegQuality = 90

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}

// ParseFormat parses "png", "jpeg" or "jpg", case insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	}
	return FormatPNG, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Sink persists or transmits an exported image and returns where it went.
type Sink interface {
	Persist(img image.Image, format Format) (path string, err error)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	if p, ok := img.(*Pixmap); ok {
		img = p.Image()
	}
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

// EncodeBase64 encodes img and returns it as standard base64 text.
func EncodeBase64(img image.Image, format Format) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// WriteFramed writes img as PNG preceded by its length as a 4-byte
// big-endian integer, the framing used to stream exports over a socket.
func WriteFramed(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatPNG); err != nil {
		return err
	}
	if buf.Len() > 1<<31-1 {
		return fmt.Errorf("sketch: encoded image too large to frame (%d bytes)", buf.Len())
	}
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(buf.Len()))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("sketch: write frame header: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("sketch: write frame body: %w", err)
	}
	return nil
}

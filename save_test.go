package sketch

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestEncodePNGPreservesAlpha(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 1, RGBA8(255, 0, 0, 128))

	var buf bytes.Buffer
	if err := Encode(&buf, pm, FormatPNG); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	got := FromColor(img.At(1, 1))
	if got.A != 128 || got.R < 254 {
		t.Errorf("decoded pixel = %v, want half-transparent red", got)
	}
	if FromColor(img.At(0, 0)).A != 0 {
		t.Error("transparent pixel should stay transparent")
	}
}

func TestEncodeJPEG(t *testing.T) {
	pm := NewPixmap(16, 16)
	pm.Clear(White)

	var buf bytes.Buffer
	if err := Encode(&buf, pm, FormatJPEG); err != nil {
		t.Fatal(err)
	}
	img, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("decoded size = %v", b)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, NewPixmap(1, 1), Format(9))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(unknown) = %v, want ErrUnknownFormat", err)
	}
}

func TestEncodeBase64(t *testing.T) {
	s, err := EncodeBase64(NewPixmap(2, 2), FormatPNG)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(raw, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("decoded base64 is not a PNG stream")
	}
}

func TestWriteFramed(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFramed(&buf, NewPixmap(3, 3)); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if len(b) < 4 {
		t.Fatal("frame too short")
	}
	n := binary.BigEndian.Uint32(b[:4])
	if int(n) != len(b)-4 {
		t.Errorf("length prefix = %d, body = %d bytes", n, len(b)-4)
	}
	if _, err := png.Decode(bytes.NewReader(b[4:])); err != nil {
		t.Errorf("frame body is not a PNG: %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ext  string
	}{
		{"png", FormatPNG, ".png"},
		{"PNG", FormatPNG, ".png"},
		{"jpeg", FormatJPEG, ".jpg"},
		{"jpg", FormatJPEG, ".jpg"},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want || got.Ext() != tt.ext {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(gif) = %v, want ErrUnknownFormat", err)
	}
}

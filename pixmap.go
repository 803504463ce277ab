package sketch

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/sketch/internal/blend"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, rows packed
// without padding. The zero pixel is fully transparent.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// Verify at compile time that Pixmap can be drawn into by image/draw.
var _ draw.Image = (*Pixmap)(nil)

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// pixmapFromRGBA wraps img without copying. img must have its origin at
// (0, 0) and a stride of exactly 4*width.
func pixmapFromRGBA(img *image.RGBA) *Pixmap {
	b := img.Bounds()
	return &Pixmap{width: b.Dx(), height: b.Dy(), data: img.Pix}
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	draw.Draw(pm.Image(), pm.Bounds(), img, b.Min, draw.Src)
	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Image returns an *image.RGBA sharing p's pixel memory. Writes through
// either value are visible in both.
func (p *Pixmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Clone returns a deep copy of p.
func (p *Pixmap) Clone() *Pixmap {
	return &Pixmap{width: p.width, height: p.height, data: append([]uint8(nil), p.data...)}
}

// Equal reports whether p and q have the same size and identical pixels.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if p.width != q.width || p.height != q.height {
		return false
	}
	for i := range p.data {
		if p.data[i] != q.data[i] {
			return false
		}
	}
	return true
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = c.Premultiply()
}

// GetPixel returns the non-premultiplied color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return FromColor(p.RGBAAt(x, y))
}

// RGBAAt returns the premultiplied color of a single pixel.
func (p *Pixmap) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	r, g, b, a := c.Premultiply()
	blend.Fill(p.data, r, g, b, a)
}

// ClearRect resets the pixels inside r to transparent.
func (p *Pixmap) ClearRect(r image.Rectangle) {
	r = r.Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.data[(y*p.width+r.Min.X)*4 : (y*p.width+r.Max.X)*4]
		clear(row)
	}
}

// Reset makes every pixel transparent.
func (p *Pixmap) Reset() {
	clear(p.data)
}

// composite blends a solid color into p through an 8-bit coverage mask.
// Mask pixel (x, y) lands on p at at + (x, y); parts outside p are
// skipped.
func (p *Pixmap) composite(mask *image.Alpha, at image.Point, c Color, mode blend.BlendMode) {
	mb := mask.Bounds()
	dr := image.Rectangle{Min: at, Max: at.Add(mb.Size())}.Intersect(p.Bounds())
	if dr.Empty() {
		return
	}
	sr, sg, sb, sa := c.Premultiply()
	off := dr.Min.Sub(at)
	w := dr.Dx()
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		mi := mask.PixOffset(mb.Min.X+off.X, mb.Min.Y+off.Y+y-dr.Min.Y)
		di := (y*p.width + dr.Min.X) * 4
		blend.Span(p.data[di:di+4*w], mask.Pix[mi:mi+w], sr, sg, sb, sa, mode)
	}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	v := color.RGBAModel.Convert(c).(color.RGBA)
	i := (y*p.width + x) * 4
	p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = v.R, v.G, v.B, v.A
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

package sprite

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
)

// ErrInvalidDimensions is returned when an image spec has a negative size.
var ErrInvalidDimensions = errors.New("sprite: invalid image dimensions")

// ColorMode identifies the pixel format of a sprite and its images.
type ColorMode uint8

const (
	// ColorModeRGB stores straight (non-premultiplied) RGBA, 8 bits per channel.
	ColorModeRGB ColorMode = iota
)

// String returns the name of the color mode.
func (m ColorMode) String() string {
	if m == ColorModeRGB {
		return "RGB"
	}
	return "Unknown"
}

// ImageSpec describes the canvas of a sprite or the shape of an image.
type ImageSpec struct {
	ColorMode ColorMode
	Width     int
	Height    int
	MaskColor color.NRGBA
}

// NewImageSpec returns an RGB spec of the given size with a transparent
// mask color.
func NewImageSpec(width, height int) ImageSpec {
	return ImageSpec{ColorMode: ColorModeRGB, Width: width, Height: height}
}

// Bounds returns the rectangle (0, 0, Width, Height).
func (s ImageSpec) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// Validate reports whether the spec can back an image.
func (s ImageSpec) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return ErrInvalidDimensions
	}
	return nil
}

// Image is a rectangular pixel buffer owned by cels and by operations that
// need scratch space. Pixels are stored as straight alpha RGBA.
//
// Image implements image.Image so it can be handed to the standard library,
// golang.org/x/image/draw and imaging without conversion.
type Image struct {
	id   ObjectID
	spec ImageSpec
	pix  *image.NRGBA
}

// NewImage creates a transparent image with the given spec.
// It panics if the spec has negative dimensions.
func NewImage(spec ImageSpec) *Image {
	if err := spec.Validate(); err != nil {
		panic(err)
	}
	return &Image{
		id:   newObjectID(),
		spec: spec,
		pix:  image.NewNRGBA(spec.Bounds()),
	}
}

// NewImageSize creates a transparent RGB image of the given size.
func NewImageSize(width, height int) *Image {
	return NewImage(NewImageSpec(width, height))
}

// ImageFromImage copies any image.Image into a new RGB image whose origin is
// the top-left corner of img.Bounds().
func ImageFromImage(img image.Image) *Image {
	b := img.Bounds()
	dst := NewImageSize(b.Dx(), b.Dy())
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.pix.Pix[y*dst.pix.Stride:], src.Pix[i:i+b.Dx()*4])
		}
		return dst
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			dst.pix.SetNRGBA(x, y, c)
		}
	}
	return dst
}

// ID returns the unique identifier of the image.
func (m *Image) ID() ObjectID {
	return m.id
}

// Spec returns the image spec.
func (m *Image) Spec() ImageSpec {
	return m.spec
}

// Width returns the width of the image.
func (m *Image) Width() int {
	return m.spec.Width
}

// Height returns the height of the image.
func (m *Image) Height() int {
	return m.spec.Height
}

// MaskColor returns the color that denotes an empty pixel.
func (m *Image) MaskColor() color.NRGBA {
	return m.spec.MaskColor
}

// NRGBA returns the backing buffer. Writes through it bypass undo.
func (m *Image) NRGBA() *image.NRGBA {
	return m.pix
}

// Pixel returns the color at (x, y), or the mask color outside the image.
func (m *Image) Pixel(x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}).In(m.pix.Rect) {
		return m.spec.MaskColor
	}
	return m.pix.NRGBAAt(x, y)
}

// SetPixel sets the color at (x, y). Out of range writes are ignored.
func (m *Image) SetPixel(x, y int, c color.NRGBA) {
	m.pix.SetNRGBA(x, y, c)
}

// Clear fills the entire image with a color.
func (m *Image) Clear(c color.NRGBA) {
	m.Fill(m.pix.Rect, c)
}

// Fill fills r, clipped to the image, with a color.
func (m *Image) Fill(r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(m.pix.Rect)
	if r.Empty() {
		return
	}
	row := m.pix.Pix[m.pix.PixOffset(r.Min.X, r.Min.Y):m.pix.PixOffset(r.Min.X, r.Min.Y)+r.Dx()*4]
	for i := 0; i < len(row); i += 4 {
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = c.A
	}
	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		i := m.pix.PixOffset(r.Min.X, y)
		copy(m.pix.Pix[i:i+len(row)], row)
	}
}

// Clone returns a deep copy of the image with a new identifier.
func (m *Image) Clone() *Image {
	dst := NewImage(m.spec)
	copy(dst.pix.Pix, m.pix.Pix)
	return dst
}

// Crop returns a new image covering r, expressed in this image's
// coordinates. r may extend past the image; the uncovered area is filled
// with bg.
func (m *Image) Crop(r image.Rectangle, bg color.NRGBA) *Image {
	spec := m.spec
	spec.Width, spec.Height = r.Dx(), r.Dy()
	dst := NewImage(spec)

	src := r.Intersect(m.pix.Rect)
	if src != r {
		dst.Clear(bg)
	}
	if src.Empty() {
		return dst
	}
	n := src.Dx() * 4
	for y := src.Min.Y; y < src.Max.Y; y++ {
		si := m.pix.PixOffset(src.Min.X, y)
		di := dst.pix.PixOffset(src.Min.X-r.Min.X, y-r.Min.Y)
		copy(dst.pix.Pix[di:di+n], m.pix.Pix[si:si+n])
	}
	return dst
}

// ShrinkBounds returns the smallest rectangle containing every pixel that is
// not the mask color. The boolean is false when the image holds no such
// pixel, in which case the rectangle is empty.
func (m *Image) ShrinkBounds(mask color.NRGBA) (image.Rectangle, bool) {
	r := m.pix.Rect
	top := r.Min.Y
	for ; top < r.Max.Y; top++ {
		if !m.rowIsMask(top, r.Min.X, r.Max.X, mask) {
			break
		}
	}
	if top == r.Max.Y {
		return image.Rectangle{}, false
	}
	bottom := r.Max.Y - 1
	for bottom > top && m.rowIsMask(bottom, r.Min.X, r.Max.X, mask) {
		bottom--
	}
	left := r.Min.X
	for left < r.Max.X && m.colIsMask(left, top, bottom+1, mask) {
		left++
	}
	right := r.Max.X - 1
	for right > left && m.colIsMask(right, top, bottom+1, mask) {
		right--
	}
	return image.Rect(left, top, right+1, bottom+1), true
}

func (m *Image) rowIsMask(y, x0, x1 int, mask color.NRGBA) bool {
	for x := x0; x < x1; x++ {
		if !isMask(m.pix.NRGBAAt(x, y), mask) {
			return false
		}
	}
	return true
}

func (m *Image) colIsMask(x, y0, y1 int, mask color.NRGBA) bool {
	for y := y0; y < y1; y++ {
		if !isMask(m.pix.NRGBAAt(x, y), mask) {
			return false
		}
	}
	return true
}

// isMask reports whether c counts as the mask color. Any fully transparent
// pixel matches a transparent mask regardless of its RGB channels.
func isMask(c, mask color.NRGBA) bool {
	if mask.A == 0 {
		return c.A == 0
	}
	return c == mask
}

// Equal reports whether both images have the same size and pixels.
func (m *Image) Equal(o *Image) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil {
		return false
	}
	return m.pix.Rect == o.pix.Rect && bytes.Equal(m.pix.Pix, o.pix.Pix)
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	return m.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return m.pix.Rect
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// Set implements draw.Image.
func (m *Image) Set(x, y int, c color.Color) {
	m.pix.Set(x, y, c)
}

var _ draw.Image = (*Image)(nil)

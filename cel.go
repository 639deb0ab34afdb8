package sprite

import "image"

// CelData is the content a cel displays: an image, its position on the
// canvas and its opacity. Linked cels share one *CelData, so a change made
// through any of them is seen by all.
type CelData struct {
	id       ObjectID
	image    *Image
	position image.Point
	opacity  uint8
}

// NewCelData creates cel data holding img at the canvas origin, fully opaque.
func NewCelData(img *Image) *CelData {
	return &CelData{id: newObjectID(), image: img, opacity: 255}
}

// ID returns the unique identifier of the data.
func (d *CelData) ID() ObjectID { return d.id }

// Image returns the image shown by the data.
func (d *CelData) Image() *Image { return d.image }

// SetImage replaces the image shown by the data.
func (d *CelData) SetImage(img *Image) { d.image = img }

// Position returns the top-left corner of the image on the canvas.
func (d *CelData) Position() image.Point { return d.position }

// SetPosition moves the image on the canvas.
func (d *CelData) SetPosition(p image.Point) { d.position = p }

// Opacity returns the data opacity, 0-255.
func (d *CelData) Opacity() uint8 { return d.opacity }

// SetOpacity sets the data opacity.
func (d *CelData) SetOpacity(opacity uint8) { d.opacity = opacity }

// Bounds returns the canvas area covered by the image.
func (d *CelData) Bounds() image.Rectangle {
	if d.image == nil {
		return image.Rectangle{Min: d.position, Max: d.position}
	}
	return image.Rectangle{
		Min: d.position,
		Max: d.position.Add(image.Pt(d.image.Width(), d.image.Height())),
	}
}

// Clone returns a private copy of the data, including a copy of the image.
func (d *CelData) Clone() *CelData {
	c := &CelData{id: newObjectID(), position: d.position, opacity: d.opacity}
	if d.image != nil {
		c.image = d.image.Clone()
	}
	return c
}

// Cel is the content of one layer at one frame.
type Cel struct {
	id     ObjectID
	frame  int
	zIndex int
	data   *CelData
	layer  *ImageLayer
}

// NewCel creates a detached cel at frame showing img at the canvas origin.
func NewCel(frame int, img *Image) *Cel {
	return NewLinkedCel(frame, NewCelData(img))
}

// NewLinkedCel creates a detached cel at frame sharing data with other cels.
func NewLinkedCel(frame int, data *CelData) *Cel {
	return &Cel{id: newObjectID(), frame: frame, data: data}
}

// ID returns the unique identifier of the cel.
func (c *Cel) ID() ObjectID { return c.id }

// Frame returns the frame the cel belongs to.
func (c *Cel) Frame() int { return c.frame }

// Data returns the (possibly shared) content of the cel.
func (c *Cel) Data() *CelData { return c.data }

// SetData points the cel at other content. Linking and unlinking go
// through here.
func (c *Cel) SetData(data *CelData) { c.data = data }

// Image returns the image the cel shows.
func (c *Cel) Image() *Image { return c.data.image }

// Position returns the top-left corner of the cel on the canvas.
func (c *Cel) Position() image.Point { return c.data.position }

// SetPosition moves the cel. Linked cels move together.
func (c *Cel) SetPosition(p image.Point) { c.data.position = p }

// X returns the horizontal position of the cel.
func (c *Cel) X() int { return c.data.position.X }

// Y returns the vertical position of the cel.
func (c *Cel) Y() int { return c.data.position.Y }

// Opacity returns the cel opacity, 0-255.
func (c *Cel) Opacity() uint8 { return c.data.opacity }

// SetOpacity sets the cel opacity. Linked cels change together.
func (c *Cel) SetOpacity(opacity uint8) { c.data.opacity = opacity }

// ZIndex returns the paint order offset of the cel within its frame.
// Zero keeps the layer stacking order.
func (c *Cel) ZIndex() int { return c.zIndex }

// SetZIndex sets the paint order offset of the cel.
func (c *Cel) SetZIndex(z int) { c.zIndex = z }

// Bounds returns the canvas area covered by the cel.
func (c *Cel) Bounds() image.Rectangle { return c.data.Bounds() }

// Layer returns the layer holding the cel, or nil when detached.
func (c *Cel) Layer() Layer {
	if c.layer == nil {
		return nil
	}
	return c.layer.self
}

// ImageLayer returns the pixel storage of the layer holding the cel, or nil
// when detached. For a tilemap layer this is its embedded image layer.
func (c *Cel) ImageLayer() *ImageLayer { return c.layer }

// Links returns the number of other cels of the same layer that share the
// cel data. A detached cel has no links.
func (c *Cel) Links() int {
	if c.layer == nil {
		return 0
	}
	n := 0
	for _, other := range c.layer.cels {
		if other != c && other.data == c.data {
			n++
		}
	}
	return n
}

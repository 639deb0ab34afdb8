// Package scene loads sprite documents from YAML scene descriptions.
//
// A scene lists layers bottom to top. Cels are either solid rectangles,
// PNG files relative to the scene file, or links to the cel of another
// frame of the same layer:
//
//	width: 16
//	height: 16
//	frames: 2
//	background_color: "#ffffff"
//	layers:
//	  - name: bg
//	    background: true
//	    cels: [{frame: 0, color: "#ff0000"}]
//	  - name: top
//	    opacity: 128
//	    blend: multiply
//	    cels:
//	      - {frame: 0, x: 2, y: 2, w: 4, h: 4, color: "#0000ff"}
//	      - {frame: 1, link: 0}
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"

	"github.com/gogpu/sprite"
)

// ErrInvalidScene is returned when a scene is well-formed YAML but does
// not describe a valid sprite.
var ErrInvalidScene = errors.New("scene: invalid scene")

type (
	// Scene is the top-level document of a scene file.
	Scene struct {
		Width           int     `yaml:"width" validate:"min=1"`
		Height          int     `yaml:"height" validate:"min=1"`
		Frames          int     `yaml:"frames" validate:"min=1"`
		BackgroundColor string  `yaml:"background_color,omitempty"`
		Layers          []Layer `yaml:"layers" validate:"dive"`
	}

	// Layer describes an image, tilemap or group layer.
	Layer struct {
		Name       string  `yaml:"name"`
		Background bool    `yaml:"background,omitempty"`
		Group      bool    `yaml:"group,omitempty"`
		Hidden     bool    `yaml:"hidden,omitempty"`
		Opacity    *int    `yaml:"opacity,omitempty" validate:"omitempty,min=0,max=255"`
		Blend      string  `yaml:"blend,omitempty"`
		Tileset    *int    `yaml:"tileset,omitempty" validate:"omitempty,min=0"`
		Cels       []Cel   `yaml:"cels,omitempty" validate:"dive"`
		Layers     []Layer `yaml:"layers,omitempty" validate:"dive"`
	}

	// Cel describes the content of a layer at one frame.
	Cel struct {
		Frame   int    `yaml:"frame" validate:"min=0"`
		X       int    `yaml:"x,omitempty"`
		Y       int    `yaml:"y,omitempty"`
		W       int    `yaml:"w,omitempty" validate:"min=0"`
		H       int    `yaml:"h,omitempty" validate:"min=0"`
		Color   string `yaml:"color,omitempty"`
		Image   string `yaml:"image,omitempty"`
		Link    *int   `yaml:"link,omitempty" validate:"omitempty,min=0"`
		Z       int    `yaml:"z,omitempty"`
		Opacity *int   `yaml:"opacity,omitempty" validate:"omitempty,min=0,max=255"`
	}
)

// Decode parses a scene. Unknown fields are rejected.
func Decode(data []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if err := gencfg.Validate(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return &s, nil
}

// Load reads the scene file at path and builds its document. Cel images
// are resolved relative to the directory of path.
func Load(path string) (*sprite.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return s.Build(filepath.Dir(path))
}

// Build creates the document described by s. baseDir resolves relative
// cel image paths.
func (s *Scene) Build(baseDir string) (*sprite.Document, error) {
	spr := sprite.New(sprite.NewImageSpec(s.Width, s.Height), s.Frames)
	doc := sprite.NewDocument(spr)
	if s.BackgroundColor != "" {
		c, err := sprite.ParseHexColor(s.BackgroundColor)
		if err != nil {
			return nil, fmt.Errorf("%w: background_color: %w", ErrInvalidScene, err)
		}
		doc.SetBgColor(c)
	}

	b := builder{spr: spr, baseDir: baseDir}
	for i := range s.Layers {
		if err := b.addLayer(spr.Root(), &s.Layers[i], i == 0); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

type builder struct {
	spr     *sprite.Sprite
	baseDir string
}

func (b *builder) addLayer(parent *sprite.GroupLayer, ls *Layer, bottom bool) error {
	var layer sprite.Layer
	switch {
	case ls.Group:
		if ls.Background || len(ls.Cels) > 0 || ls.Tileset != nil {
			return fmt.Errorf("%w: group %q cannot have cels, a tileset or the background flag", ErrInvalidScene, ls.Name)
		}
		g := sprite.NewGroupLayer(b.spr)
		for i := range ls.Layers {
			if err := b.addLayer(g, &ls.Layers[i], false); err != nil {
				return err
			}
		}
		layer = g
	case len(ls.Layers) > 0:
		return fmt.Errorf("%w: layer %q has children but is not a group", ErrInvalidScene, ls.Name)
	case ls.Tileset != nil:
		layer = sprite.NewTilemapLayer(b.spr, *ls.Tileset)
	default:
		layer = sprite.NewImageLayer(b.spr)
	}

	layer.SetName(ls.Name)
	layer.SetVisible(!ls.Hidden)
	if ls.Opacity != nil {
		layer.SetOpacity(uint8(*ls.Opacity))
	}
	if ls.Blend != "" {
		mode, err := sprite.ParseBlendMode(ls.Blend)
		if err != nil {
			return fmt.Errorf("%w: layer %q: %w", ErrInvalidScene, ls.Name, err)
		}
		layer.SetBlendMode(mode)
	}

	if ls.Background {
		il, ok := layer.(*sprite.ImageLayer)
		if !ok || !bottom || parent != b.spr.Root() {
			return fmt.Errorf("%w: only the bottom top-level image layer can be the background, not %q", ErrInvalidScene, ls.Name)
		}
		il.SetBackground(true)
	}

	if cels := sprite.AsImageLayer(layer); cels != nil {
		for i := range ls.Cels {
			if err := b.addCel(cels, &ls.Cels[i]); err != nil {
				return fmt.Errorf("layer %q: %w", ls.Name, err)
			}
		}
	}

	parent.AddLayer(layer)
	return nil
}

func (b *builder) addCel(layer *sprite.ImageLayer, cs *Cel) error {
	if cs.Frame >= b.spr.TotalFrames() {
		return fmt.Errorf("%w: cel frame %d out of range", ErrInvalidScene, cs.Frame)
	}
	if layer.Cel(cs.Frame) != nil {
		return fmt.Errorf("%w: duplicate cel at frame %d", ErrInvalidScene, cs.Frame)
	}

	sources := 0
	for _, set := range []bool{cs.Color != "", cs.Image != "", cs.Link != nil} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("%w: cel at frame %d needs exactly one of color, image or link", ErrInvalidScene, cs.Frame)
	}

	var cel *sprite.Cel
	switch {
	case cs.Link != nil:
		target := layer.Cel(*cs.Link)
		if target == nil {
			return fmt.Errorf("%w: cel at frame %d links to frame %d which has no cel yet", ErrInvalidScene, cs.Frame, *cs.Link)
		}
		cel = sprite.NewLinkedCel(cs.Frame, target.Data())
	case cs.Image != "":
		img, err := b.loadImage(cs.Image)
		if err != nil {
			return err
		}
		cel = sprite.NewCel(cs.Frame, img)
		cel.SetPosition(image.Pt(cs.X, cs.Y))
	default:
		c, err := sprite.ParseHexColor(cs.Color)
		if err != nil {
			return fmt.Errorf("%w: cel at frame %d: %w", ErrInvalidScene, cs.Frame, err)
		}
		w, h := cs.W, cs.H
		if w == 0 {
			w = b.spr.Width() - cs.X
		}
		if h == 0 {
			h = b.spr.Height() - cs.Y
		}
		if w <= 0 || h <= 0 {
			return fmt.Errorf("%w: cel at frame %d is empty", ErrInvalidScene, cs.Frame)
		}
		img := sprite.NewImageSize(w, h)
		img.Clear(c)
		cel = sprite.NewCel(cs.Frame, img)
		cel.SetPosition(image.Pt(cs.X, cs.Y))
	}

	// A linked cel shares position and opacity with its source.
	if cs.Link == nil && cs.Opacity != nil {
		cel.SetOpacity(uint8(*cs.Opacity))
	}
	cel.SetZIndex(cs.Z)
	layer.AddCel(cel)
	return nil
}

func (b *builder) loadImage(name string) (*sprite.Image, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(b.baseDir, path)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load cel image: %w", err)
	}
	return sprite.ImageFromImage(img), nil
}

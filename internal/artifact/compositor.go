package artifact

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TemplateSize is the edge length of the final tag image.
const TemplateSize = 400

const (
	qrOffsetX = 100
	qrOffsetY = 138

	captionX    = 200
	captionY    = 370
	captionSize = 18
)

// ErrTemplateMissing marks an absent template asset. It is a recoverable,
// user-visible condition: the record is already stored, only the tag image
// could not be produced.
var ErrTemplateMissing = errors.New("template image missing")

// Compositor overlays a QR bitmap and a purchase-date caption onto the
// branded template at fixed coordinates.
type Compositor struct {
	templatePath string
	face         font.Face
}

// NewCompositor builds a compositor for the given template. fontPath may
// name a preferred TTF for the caption; selection is a capability check
// with two fallbacks, so construction never fails on fonts.
func NewCompositor(templatePath, fontPath string) *Compositor {
	return &Compositor{
		templatePath: templatePath,
		face:         loadCaptionFace(fontPath),
	}
}

// loadCaptionFace tries the preferred on-disk font, then the embedded Go
// Bold face, then the basic bitmap face.
func loadCaptionFace(fontPath string) font.Face {
	if fontPath != "" {
		if data, err := os.ReadFile(fontPath); err == nil {
			if face, err := parseFace(data); err == nil {
				return face
			}
		}
	}
	if face, err := parseFace(gobold.TTF); err == nil {
		return face
	}
	return basicfont.Face7x13
}

func parseFace(ttf []byte) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Composite produces the final tag bitmap: template resampled to
// TemplateSize, QR pasted with its top-left corner at (qrOffsetX,
// qrOffsetY), caption centered on (captionX, captionY). No partial result
// is returned on error.
func (c *Compositor) Composite(qr image.Image, purchaseDate string) (image.Image, error) {
	f, err := os.Open(c.templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", c.templatePath, ErrTemplateMissing)
		}
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode template %s: %w", c.templatePath, err)
	}

	frame := resample(src, TemplateSize, TemplateSize)

	paste := image.Rect(qrOffsetX, qrOffsetY, qrOffsetX+qr.Bounds().Dx(), qrOffsetY+qr.Bounds().Dy())
	draw.Draw(frame, paste, qr, qr.Bounds().Min, draw.Over)

	c.drawCaption(frame, "Purchase Date: "+purchaseDate)
	return frame, nil
}

// drawCaption centers text on the caption anchor, both axes.
func (c *Compositor) drawCaption(dst *image.RGBA, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: c.face,
	}
	width := d.MeasureString(text)
	metrics := c.face.Metrics()
	d.Dot = fixed.Point26_6{
		X: fixed.I(captionX) - width/2,
		Y: fixed.I(captionY) + (metrics.Ascent-metrics.Descent)/2,
	}
	d.DrawString(text)
}

package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
)

// Frame is one still image of an animation clip. The pixel size is
// carried alongside the image so collision and animation code can run
// without touching the GPU-backed image at all.
type Frame struct {
	Image  *ebiten.Image
	Width  int
	Height int
}

// Spritesheet wraps one decoded sheet image and extracts scaled
// sub-images from it. Stateless after load.
type Spritesheet struct {
	img image.Image
}

// NewSpritesheet decodes the image at path inside fsys.
func NewSpritesheet(fsys fs.FS, path string) (*Spritesheet, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open spritesheet: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode spritesheet: %w", err)
	}

	return &Spritesheet{img: img}, nil
}

// Extract copies the sub-rectangle [x,y,w,h] onto a transparent
// background and, when scale > 0, resizes it to round(w*scale) x
// round(h*scale) with nearest-neighbour filtering.
func (s *Spritesheet) Extract(x, y, w, h int, scale float64) Frame {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), s.img, image.Pt(x, y), xdraw.Over)

	if scale > 0 && scale != 1 {
		sw := int(math.Round(float64(w) * scale))
		sh := int(math.Round(float64(h) * scale))
		scaled := image.NewRGBA(image.Rect(0, 0, sw, sh))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), dst, dst.Bounds(), xdraw.Over, nil)
		dst = scaled
	}

	return Frame{
		Image:  ebiten.NewImageFromImage(dst),
		Width:  dst.Bounds().Dx(),
		Height: dst.Bounds().Dy(),
	}
}

// ExtractStrip extracts count frames laid out left to right starting at
// (startX, y), advancing the x-origin by w+spacing per frame. The
// returned slice order is playback order.
func (s *Spritesheet) ExtractStrip(startX, y, w, h, count, spacing int, scale float64) []Frame {
	frames := make([]Frame, 0, count)
	for _, r := range StripRects(startX, y, w, h, count, spacing) {
		frames = append(frames, s.Extract(r.Min.X, r.Min.Y, w, h, scale))
	}
	return frames
}

// StripRects returns the source rectangles of a horizontal frame strip.
func StripRects(startX, y, w, h, count, spacing int) []image.Rectangle {
	rects := make([]image.Rectangle, 0, count)
	x := startX
	for i := 0; i < count; i++ {
		rects = append(rects, image.Rect(x, y, x+w, y+h))
		x += w + spacing
	}
	return rects
}

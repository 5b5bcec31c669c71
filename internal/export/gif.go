package export

import (
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/statsoc/backdrop/internal/viz"
)

const (
	gifCharW = 8
	gifCharH = 16
)

// GIFRecorder accumulates canvas frames and writes a looping GIF. Each
// frame's palette is built from the inks actually present, capped at the
// format's 256 colors.
type GIFRecorder struct {
	frames []*image.Paletted
}

func NewGIFRecorder() *GIFRecorder { return &GIFRecorder{} }

// FrameCount reports the number of captured frames.
func (r *GIFRecorder) FrameCount() int { return len(r.frames) }

// Capture rasterizes the canvas into a paletted frame.
func (r *GIFRecorder) Capture(c *viz.Canvas) {
	palette := color.Palette{color.Black}
	index := map[string]uint8{}

	lookup := func(k viz.Ink) uint8 {
		hex := k.Hex()
		if hex == "#000000" {
			hex = "#9a9ab0"
			k = viz.NewInk(0.6, 0.6, 0.69)
		}
		if idx, ok := index[hex]; ok {
			return idx
		}
		if len(palette) >= 256 {
			return uint8(len(palette) - 1)
		}
		palette = append(palette, color.RGBA{
			R: uint8(k.R * 255), G: uint8(k.G * 255), B: uint8(k.B * 255), A: 255,
		})
		idx := uint8(len(palette) - 1)
		index[hex] = idx
		return idx
	}

	imgW, imgH := c.W*gifCharW, c.H*gifCharH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), nil)

	dotW, dotH := gifCharW/2, gifCharH/4
	for row := 0; row < c.H; row++ {
		for col := 0; col < c.W; col++ {
			pattern := c.DotPattern(col, row)
			if pattern == 0 {
				continue
			}
			_, ink := c.Cell(col, row)
			ci := lookup(ink)
			baseX, baseY := col*gifCharW, row*gifCharH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&svgDotBits[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, ci)
						}
					}
				}
			}
		}
	}
	img.Palette = palette
	r.frames = append(r.frames, img)
}

// Save writes the captured frames as a looping GIF.
func (r *GIFRecorder) Save(path string) error {
	if len(r.frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 3)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}

package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/goban"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `Move 10000, hash 0xffffffff`

	// delays are in 100ths of a second
	frameDelay = 50
	lastDelay  = 300
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var globPalette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

var _ goban.OutputEncoder = &Encoder{}

// Encoder renders boards as frames of an animated GIF. It implements goban.OutputEncoder.
//
// Frames are buffered in memory until Flush is called.
type Encoder struct {
	H, W int
	font.Drawer

	out *gif.GIF
	io.Writer
	face font.Face

	maxH, maxW  int // maxHeight and maxWidth
	padH, padW  int // padding so everything don't start at the topleft
	initialized bool
}

// NewGifEncoder with height and width
func NewGifEncoder(h, w int) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: w,
		padH: 10,
		padW: 10,

		Drawer: font.Drawer{
			Src: image.Black,
		},
		out: &gif.GIF{LoopCount: -1},
	}
}

// Encode a frame
func (enc *Encoder) Encode(f goban.Frame) error {
	if f.Board == nil {
		return errors.New("Cannot encode a frame without a board")
	}
	repr := strings.TrimRight(fmt.Sprintf("%s", f.Board), "\n")
	lines := strings.Split(repr, "\n")

	if !enc.initialized {
		// lazy init of specifications
		enc.face = truetype.NewFace(regular, &truetype.Options{
			Size:    fontsize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		enc.Drawer.Src = image.Black
		enc.Drawer.Face = enc.face

		// first calculate how long the max length will be
		maxW := maxInt(font.MeasureString(enc.Face, lines[0]).Ceil(), font.MeasureString(enc.Face, dummyLongString).Ceil())
		dy := lineHeight()
		w := maxW + 2*enc.padW
		h := (len(lines)+3)*dy + 2*enc.padH // + 3 is for the caption, the move line and the top margin

		w = minInt(w, enc.maxW)
		h = minInt(h, enc.maxH)

		if w == enc.maxW {
			enc.padW = 0
		}
		if h == enc.maxH {
			enc.padH = 0
		}

		enc.H = h
		enc.W = w
		enc.initialized = true
	}

	bg := image.White
	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), bg, image.Point{}, draw.Src)
	dy := lineHeight()
	y := enc.padH + dy
	enc.Dst = im
	for _, s := range lines {
		enc.Dot = fixed.P(enc.padW, y)
		enc.DrawString(s)
		y += dy
	}
	if f.Caption != "" {
		enc.Dot = fixed.P(enc.padW, y)
		enc.DrawString(f.Caption)
		y += dy
	}
	enc.Dot = fixed.P(enc.padW, y)
	enc.DrawString(fmt.Sprintf("Move %d, hash %#08x", f.Move, uint32(f.Board.Hash())))

	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, frameDelay)
	return nil
}

// Len returns the number of frames encoded so far.
func (enc *Encoder) Len() int { return len(enc.out.Image) }

// Flush writes the gif into the writer. The last frame is held a little longer.
func (enc *Encoder) Flush() error {
	if enc.Writer == nil {
		return errors.New("No writer to flush the gif into")
	}
	if len(enc.out.Image) == 0 {
		return errors.New("No frames to flush")
	}
	enc.out.Delay[len(enc.out.Delay)-1] = lastDelay
	return errors.WithStack(gif.EncodeAll(enc.Writer, enc.out))
}

func lineHeight() int { return int(math.Ceil(fontsize * lineheight * dpi / 72)) }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

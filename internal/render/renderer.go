// Package render rasterizes a finished termscreen.Screen into an RGBA
// image: one pass to size and fill the canvas, a pass to paint the window
// chrome a Decoration contributes, one pass per cell to draw background,
// glyph, underline, and strikethrough, and finally the cursor.
package render

import (
	"image"
	"image/color"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/lhenry-dev/shellshot-go/internal/shellshoterr"
	"github.com/lhenry-dev/shellshot-go/internal/termscreen"
)

// Config controls how a Screen is rasterized.
type Config struct {
	Font       font.Face // defaults to basicfont.Face7x13 if nil
	CellWidth  int       // derived from font metrics if zero
	CellHeight int       // derived from font metrics if zero
	Palette    *[256]struct{ R, G, B uint8 }
	DefaultFG  color.RGBA
	DefaultBG  color.RGBA
	ShowCursor bool
	Decoration Decoration
}

// LoadFont parses TrueType/OpenType font bytes at the given point size.
func LoadFont(data []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, shellshoterr.Wrap(shellshoterr.ErrFontLoad, "parsing embedded font", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, shellshoterr.Wrap(shellshoterr.ErrFontLoad, "building font face", err)
	}
	return face, nil
}

// LoadFontFromReader reads and parses a font from r.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, shellshoterr.Wrap(shellshoterr.ErrFontLoad, "reading font data", err)
	}
	return LoadFont(data, size)
}

// LoadFontFile loads a font from a filesystem path.
func LoadFontFile(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, shellshoterr.Wrap(shellshoterr.ErrFontLoad, path, err)
	}
	defer f.Close()
	return LoadFontFromReader(f, size)
}

// Render rasterizes screen into an RGBA image per cfg, with the
// decoration's window chrome painted around it.
func Render(screen *termscreen.Screen, cfg Config) (*image.RGBA, error) {
	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth, cellHeight := cfg.CellWidth, cfg.CellHeight
	if cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7
		}
	}
	if cellHeight == 0 {
		cellHeight = face.Metrics().Height.Ceil()
	}

	palette := cfg.Palette
	if palette == nil {
		palette = &termscreen.Palette
	}
	defaultFG, defaultBG := cfg.DefaultFG, cfg.DefaultBG
	if (defaultFG == color.RGBA{}) {
		defaultFG = color.RGBA{R: 229, G: 229, B: 229, A: 255}
	}
	if (defaultBG == color.RGBA{}) {
		defaultBG = color.RGBA{A: 255}
	}

	cols, rows := screen.Dimensions()

	decoration := cfg.Decoration
	if decoration == nil {
		decoration = None{}
	}
	metrics := decoration.ComputeMetrics(cellHeight)

	gridWidth := cols * cellWidth
	gridHeight := rows * cellHeight
	imgWidth := gridWidth + 2*metrics.Padding + 2*metrics.BorderWidth
	imgHeight := gridHeight + 2*metrics.Padding + 2*metrics.BorderWidth + metrics.TitleBarHeight

	img, err := newCanvas(imgWidth, imgHeight)
	if err != nil {
		return nil, err
	}

	originX := metrics.BorderWidth + metrics.Padding
	originY := metrics.BorderWidth + metrics.Padding + metrics.TitleBarHeight

	fillRect(img, 0, 0, imgWidth, imgHeight, defaultBG)
	decoration.DrawWindow(img, metrics, imgWidth, imgHeight)

	lines := screen.ScreenLines()
	for row, cells := range lines {
		for col, cell := range cells {
			if cell.Width == 0 {
				continue // trailing spacer half of a wide character
			}
			drawCell(img, face, cell, originX+col*cellWidth, originY+row*cellHeight, cellWidth, cellHeight, imgHeight, palette, defaultFG, defaultBG)
		}
	}

	if cfg.ShowCursor {
		x, y := screen.CursorPosition()
		drawCursor(img, originX+x*cellWidth, originY+y*cellHeight, cellWidth, cellHeight)
	}

	return img, nil
}

func newCanvas(w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, shellshoterr.New(shellshoterr.ErrCanvasInit, "non-positive image dimensions")
	}
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			img.SetRGBA(px, py, c)
		}
	}
}

func drawCell(img *image.RGBA, face font.Face, cell termscreen.Cell, x, y, cellWidth, cellHeight, imgHeight int, palette *[256]struct{ R, G, B uint8 }, defaultFG, defaultBG color.RGBA) {
	pen := cell.Pen
	fg := resolveColor(pen.Foreground, true, palette, defaultFG, defaultBG)
	bg := resolveColor(pen.Background, false, palette, defaultFG, defaultBG)

	if pen.Inverse {
		fg, bg = bg, fg
	}
	if pen.Intensity == termscreen.IntensityDim {
		fg = dim(fg)
	}

	fillRect(img, x, y, cellWidth, cellHeight, bg)

	if pen.Invisible || cell.Char == 0 || cell.Char == ' ' {
		return
	}

	baseline := y + face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(string(cell.Char))

	if pen.Underline != termscreen.UnderlineNone {
		underlineColor := fg
		if pen.UnderlineColor.Kind != termscreen.ColorDefault {
			underlineColor = resolveColor(pen.UnderlineColor, true, palette, defaultFG, defaultBG)
		}
		underlineY := baseline + 2
		if underlineY < imgHeight {
			for px := x; px < x+cellWidth; px++ {
				img.SetRGBA(px, underlineY, underlineColor)
			}
		}
	}

	if pen.Strikethrough {
		strikeY := y + cellHeight/2
		for px := x; px < x+cellWidth; px++ {
			img.SetRGBA(px, strikeY, fg)
		}
	}
}

func drawCursor(img *image.RGBA, x, y, cellWidth, cellHeight int) {
	bounds := img.Bounds()
	for py := y; py < y+cellHeight; py++ {
		for px := x; px < x+cellWidth; px++ {
			if !(image.Pt(px, py).In(bounds)) {
				continue
			}
			existing := img.RGBAAt(px, py)
			img.SetRGBA(px, py, color.RGBA{
				R: 255 - existing.R,
				G: 255 - existing.G,
				B: 255 - existing.B,
				A: 255,
			})
		}
	}
}

// resolveColor turns a termscreen.Color into a concrete RGBA: the default
// foreground/background, the palette table entry, or the true-color
// channels. A true color's palette fallback hint is not consulted, since
// this renderer always draws true color directly.
func resolveColor(c termscreen.Color, fg bool, palette *[256]struct{ R, G, B uint8 }, defaultFG, defaultBG color.RGBA) color.RGBA {
	switch c.Kind {
	case termscreen.ColorDefault:
		if fg {
			return defaultFG
		}
		return defaultBG
	case termscreen.ColorPalette:
		p := palette[c.PaletteIndex]
		return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
	case termscreen.ColorTrueColor:
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	default:
		if fg {
			return defaultFG
		}
		return defaultBG
	}
}

// dim blends a color toward black by the same factor xterm's "faint"
// intensity uses, via go-colorful so the blend happens in a perceptual
// color space rather than a flat per-channel multiply.
func dim(c color.RGBA) color.RGBA {
	cf, _ := colorful.MakeColor(c)
	blended := cf.BlendLab(colorful.Color{}, 0.34)
	r, g, b := blended.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

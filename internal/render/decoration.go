package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// WindowMetrics are the chrome measurements derived from the glyph
// height: how much blank space surrounds the text grid and how tall the
// title bar strip is, if any.
type WindowMetrics struct {
	Padding        int
	BorderWidth    int
	TitleBarHeight int
}

// Decoration is a closed capability set for window chrome, a tagged
// variant dispatched by method rather than an open interface hierarchy:
// every implementation the renderer accepts lives in this package.
type Decoration interface {
	// BuildCommandLine formats the executed command for a title bar or
	// banner; implementations that don't render one may return "".
	BuildCommandLine(argv []string) string
	// ComputeMetrics derives padding/border/title-bar sizes from the
	// glyph cell height.
	ComputeMetrics(cellHeight int) WindowMetrics
	// DefaultFgColor is the color used for any chrome text.
	DefaultFgColor() color.RGBA
	// GetColorPalette returns the 256-entry palette this decoration's
	// chrome (not the terminal grid) is drawn with.
	GetColorPalette() *[256]struct{ R, G, B uint8 }
	// Font returns the face used to draw chrome text, or nil to inherit
	// the grid's font.
	Font() font.Face
	// DrawWindow paints the chrome (border, title bar, background) onto
	// img, which is already sized to metrics.
	DrawWindow(img *image.RGBA, metrics WindowMetrics, width, height int)
}

// None is the no-chrome decoration: the rendered image is exactly the
// text grid, no border or title bar.
type None struct{}

func (None) BuildCommandLine(argv []string) string { return "" }

func (None) ComputeMetrics(cellHeight int) WindowMetrics {
	return WindowMetrics{}
}

func (None) DefaultFgColor() color.RGBA {
	return color.RGBA{R: 229, G: 229, B: 229, A: 255}
}

func (None) GetColorPalette() *[256]struct{ R, G, B uint8 } {
	return nil
}

func (None) Font() font.Face { return nil }

func (None) DrawWindow(img *image.RGBA, metrics WindowMetrics, width, height int) {}

// Classic is the macOS-style window chrome: a border, a title bar with
// traffic-light dots, and the executed command line as the title.
type Classic struct {
	Command []string
}

func (c Classic) BuildCommandLine(argv []string) string {
	cmd := argv
	if len(c.Command) > 0 {
		cmd = c.Command
	}
	out := ""
	for i, a := range cmd {
		if i > 0 {
			out += " "
		}
		out += a
	}
	return out
}

func (Classic) ComputeMetrics(cellHeight int) WindowMetrics {
	return WindowMetrics{
		Padding:        cellHeight / 2,
		BorderWidth:    2,
		TitleBarHeight: cellHeight + cellHeight/2,
	}
}

func (Classic) DefaultFgColor() color.RGBA {
	return color.RGBA{R: 229, G: 229, B: 229, A: 255}
}

func (Classic) GetColorPalette() *[256]struct{ R, G, B uint8 } {
	return nil
}

func (Classic) Font() font.Face { return basicfont.Face7x13 }

func (c Classic) DrawWindow(img *image.RGBA, metrics WindowMetrics, width, height int) {
	titleBar := color.RGBA{R: 60, G: 60, B: 60, A: 255}
	for y := 0; y < metrics.TitleBarHeight; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, titleBar)
		}
	}

	border := color.RGBA{R: 20, G: 20, B: 20, A: 255}
	for i := 0; i < metrics.BorderWidth; i++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, i, border)
			img.SetRGBA(x, height-1-i, border)
		}
		for y := 0; y < height; y++ {
			img.SetRGBA(i, y, border)
			img.SetRGBA(width-1-i, y, border)
		}
	}

	dotColors := []color.RGBA{
		{R: 237, G: 106, B: 94, A: 255},  // red
		{R: 245, G: 191, B: 79, A: 255},  // yellow
		{R: 97, G: 194, B: 91, A: 255},   // green
	}
	dotRadius := metrics.TitleBarHeight / 6
	if dotRadius < 2 {
		dotRadius = 2
	}
	cy := metrics.TitleBarHeight / 2
	for i, dc := range dotColors {
		cx := metrics.BorderWidth + dotRadius*3*(i+1)
		fillCircle(img, cx, cy, dotRadius, dc)
	}

	if title := c.BuildCommandLine(nil); title != "" {
		face := c.Font()
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c.DefaultFgColor()),
			Face: face,
			Dot:  fixed.P(metrics.BorderWidth+dotRadius*3*(len(dotColors)+1), cy+face.Metrics().Ascent.Ceil()/2),
		}
		d.DrawString(title)
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				img.SetRGBA(cx+x, cy+y, c)
			}
		}
	}
}

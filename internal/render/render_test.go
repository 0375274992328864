package render

import (
	"image/color"
	"testing"

	"github.com/lhenry-dev/shellshot-go/internal/termscreen"
)

func TestRenderProducesGridSizedImage(t *testing.T) {
	screen := termscreen.New(10, 2)
	screen.WriteString("hi")

	img, err := Render(screen, Config{Decoration: None{}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		t.Fatalf("got zero-sized image: %v", bounds)
	}
}

func TestRenderClassicDecorationAddsChrome(t *testing.T) {
	screen := termscreen.New(10, 2)

	plain, err := Render(screen, Config{Decoration: None{}})
	if err != nil {
		t.Fatalf("Render (none): %v", err)
	}
	decorated, err := Render(screen, Config{Decoration: Classic{Command: []string{"echo", "hi"}}})
	if err != nil {
		t.Fatalf("Render (classic): %v", err)
	}

	if decorated.Bounds().Dy() <= plain.Bounds().Dy() {
		t.Fatalf("expected classic decoration to add title-bar height: plain=%d decorated=%d",
			plain.Bounds().Dy(), decorated.Bounds().Dy())
	}
}

func TestRenderCursorInvertsPixels(t *testing.T) {
	screen := termscreen.New(3, 1)
	img, err := Render(screen, Config{
		Decoration: None{},
		ShowCursor: true,
		DefaultBG:  color.RGBA{R: 10, G: 20, B: 30, A: 255},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := img.RGBAAt(0, 0)
	want := color.RGBA{R: 245, G: 235, B: 225, A: 255}
	if got != want {
		t.Fatalf("got %+v, want %+v (inverted background)", got, want)
	}
}

func TestBuildCommandLineJoinsArgv(t *testing.T) {
	d := Classic{Command: []string{"sh", "-c", "echo hi"}}
	if got, want := d.BuildCommandLine(nil), "sh -c echo hi"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

package main

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quillaja/nbody2d/sim"
)

func near(a, b int) bool { return abs(a-b) <= 1 }

func TestToScreen(t *testing.T) {
	fr, err := newFrameRenderer(t.TempDir(), mgl64.Vec2{1000, 500}, 400)
	if err != nil {
		t.Fatal(err)
	}
	if fr.height != 200 {
		t.Fatalf("height = %d, want 200", fr.height)
	}
	tests := []struct {
		p    mgl64.Vec2
		x, y int
	}{
		{mgl64.Vec2{0, 0}, 0, 0},
		{mgl64.Vec2{500, 250}, 200, 100},
		{mgl64.Vec2{250, 400}, 100, 160},
	}
	for _, tt := range tests {
		x, y := fr.toScreen(tt.p)
		if !near(x, tt.x) || !near(y, tt.y) {
			t.Fatalf("toScreen(%v) = %d,%d want %d,%d", tt.p, x, y, tt.x, tt.y)
		}
	}
}

func TestRendererWritesFrame(t *testing.T) {
	dir := t.TempDir()
	fr, err := newFrameRenderer(dir, mgl64.Vec2{1000, 1000}, 100)
	if err != nil {
		t.Fatal(err)
	}
	body := sim.DefaultBody()
	body.Color = color.RGBA{0, 0, 255, 255}
	body.Vel = mgl64.Vec2{1, 0}

	ch := make(chan *frameJob, 1)
	ch <- &frameJob{Frame: 7, Bodies: []sim.Body{body}}
	close(ch)
	if err := fr.run(ch); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(filepath.Join(dir, "0000000007.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.RGBAModel.Convert(img.At(50, 45)); got != body.Color {
		t.Fatalf("pixel inside body = %v, want %v", got, body.Color)
	}
	if got := color.RGBAModel.Convert(img.At(2, 2)); got != lightgray {
		t.Fatalf("background = %v, want %v", got, lightgray)
	}
}

func TestRendererSkipsNaN(t *testing.T) {
	fr, _ := newFrameRenderer(t.TempDir(), mgl64.Vec2{100, 100}, 10)
	b := sim.DefaultBody()
	b.Pos[0] = math.NaN()
	fr.draw(&frameJob{Bodies: []sim.Body{b}})
}

func TestPlotCircleClipsToImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))

	// far larger than the image, must finish quickly and cover it all
	plotcirclefilled(img, red, 4, 3, 1<<40)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if got := img.RGBAAt(x, y); got != red {
				t.Fatalf("pixel %d,%d = %v, want %v", x, y, got, red)
			}
		}
	}

	// centered off the left edge: only the part inside is drawn
	img = image.NewRGBA(image.Rect(0, 0, 8, 6))
	plotcirclefilled(img, blue, -2, 3, 3)
	if got := img.RGBAAt(0, 3); got != blue {
		t.Fatalf("pixel 0,3 = %v, want %v", got, blue)
	}
	if got := img.RGBAAt(2, 3); got == blue {
		t.Fatalf("pixel 2,3 drawn outside the circle")
	}
}

func TestBadView(t *testing.T) {
	if _, err := newFrameRenderer(t.TempDir(), mgl64.Vec2{0, 100}, 10); err == nil {
		t.Fatalf("expected error for empty view")
	}
}

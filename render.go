package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
)

/*

image output section

*/

// frameRenderer draws frames of a world rectangle [0,view] (y down, as on
// screen) into PNG files.
type frameRenderer struct {
	dir           string
	width, height int
	scale         float64 // pixels per world unit
	proj          mgl64.Mat4
	tail          float64 // ticks of velocity drawn behind a body
}

func newFrameRenderer(dir string, view mgl64.Vec2, width int) (*frameRenderer, error) {
	if view.X() <= 0 || view.Y() <= 0 || width <= 0 {
		return nil, fmt.Errorf("bad view %v at width %d", view, width)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &frameRenderer{
		dir:    dir,
		width:  width,
		height: int(math.Round(float64(width) * view.Y() / view.X())),
		scale:  float64(width) / view.X(),
		proj:   mgl64.Ortho2D(0, view.X(), view.Y(), 0),
		tail:   20,
	}, nil
}

// toScreen maps a world point to pixel coordinates.
func (fr *frameRenderer) toScreen(p mgl64.Vec2) (x, y int) {
	ndc := mgl64.TransformCoordinate(p.Vec3(0), fr.proj)
	return mgl64.GLToScreenCoords(ndc.X(), ndc.Y(), fr.width, fr.height)
}

func (fr *frameRenderer) draw(job *frameJob) *image.RGBA {
	film := image.NewRGBA(image.Rect(0, 0, fr.width, fr.height))
	draw.Draw(film, film.Bounds(), image.NewUniform(lightgray), image.Point{}, draw.Src)

	for _, b := range job.Bodies {
		if !finite(b.Pos.X()) || !finite(b.Pos.Y()) {
			continue
		}
		x, y := fr.toScreen(b.Pos)
		// anything wider than the image covers it anyway
		r := int(math.Min(math.Max(1, b.Radius*fr.scale), float64(fr.width+fr.height)))
		plotcirclefilled(film, b.Color, x, y, r)

		if b.Vel.Len() > 0 && finite(b.Vel.X()) && finite(b.Vel.Y()) {
			tx, ty := fr.toScreen(b.Pos.Sub(b.Vel.Mul(fr.tail)))
			plotline(film, gray, x, y, tx, ty)
		}
	}
	return film
}

// run writes every frame received on ch to dir/%010d.png.
func (fr *frameRenderer) run(ch <-chan *frameJob) error {
	for job := range ch {
		if err := fr.write(job); err != nil {
			return err
		}
	}
	return nil
}

func (fr *frameRenderer) write(job *frameJob) error {
	file, err := os.Create(filepath.Join(fr.dir, fmt.Sprintf("%010d.png", job.Frame)))
	if err != nil {
		return err
	}
	if err := png.Encode(file, fr.draw(job)); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

var (
	lightgray = color.RGBA{192, 192, 192, 255}
	gray      = color.RGBA{128, 128, 128, 255}
	darkgray  = color.RGBA{64, 64, 64, 255}
	red       = color.RGBA{255, 0, 0, 255}
	green     = color.RGBA{0, 255, 0, 255}
	blue      = color.RGBA{0, 0, 255, 255}
	yellow    = color.RGBA{255, 255, 0, 255}
	purple    = color.RGBA{255, 0, 255, 255}
	cyan      = color.RGBA{0, 255, 255, 255}
)

// plotline draws a simple line on img from (x0,y0) to (x1,y1).
//
// This is basically a copy of a version of Bresenham's line algorithm
// from https://en.wikipedia.org/wiki/Bresenham%27s_line_algorithm.
func plotline(img draw.Image, c color.Color, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// abs cuz no integer abs function in the Go standard library.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// plotcirclefilled draws a filled circle at (x0,y0) of radius r, clipped to
// the image bounds.
func plotcirclefilled(img draw.Image, c color.Color, x0, y0, r int) {
	bounds := img.Bounds()
	rsqr := float64(r) * float64(r)
	ylo, yhi := max(y0-r, bounds.Min.Y), min(y0+r, bounds.Max.Y-1)
	for y := ylo; y <= yhi; y++ {
		dy := float64(y - y0)
		xright := int(math.Sqrt(rsqr - dy*dy))
		xlo, xhi := max(x0-xright, bounds.Min.X), min(x0+xright, bounds.Max.X-1)
		for x := xlo; x <= xhi; x++ {
			img.Set(x, y, c)
		}
	}
}

package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/phillip-keldenich/tiling-problem/geom"
	"github.com/phillip-keldenich/tiling-problem/tiling"
)

var (
	pngBorder  = color.RGBA{R: 0xa9, G: 0xa9, B: 0xa9, A: 0xff}
	pngContent = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
)

// WritePNG rasterizes sol and encodes it as PNG. Segments are stroked as
// filled quads through an x/image/vector rasterizer; vertices become
// filled diamonds of the configured radius.
func WritePNG(w io.Writer, sol tiling.Solution, opts Options) error {
	l, err := newLayout(sol, opts.Scale)
	if err != nil {
		return err
	}
	fw, fh := l.outputSize()
	pw, ph := int(math.Ceil(fw)), int(math.Ceil(fh))
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			for _, s := range cellBorder(tiling.Cell{X: x, Y: y}) {
				strokeSegment(img, l, s, pngBorder, opts.StrokeWidth)
			}
		}
	}
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			d := cellDrawing(sol, tiling.Cell{X: x, Y: y})
			for _, s := range d.Segments {
				strokeSegment(img, l, s, pngContent, opts.StrokeWidth)
			}
			for _, v := range d.Vertices {
				fillDiamond(img, l, v.At, pngContent, opts.VertexRadius)
			}
		}
	}

	return png.Encode(w, img)
}

// strokeSegment fills the rectangle swept by offsetting the segment by
// half the stroke width on both sides.
func strokeSegment(img *image.RGBA, l layout, s geom.Segment, c color.RGBA, width float64) {
	x1, y1 := l.toOutput(s.Start)
	x2, y2 := l.toOutput(s.End)
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x2+nx), float32(y2+ny))
	z.LineTo(float32(x2-nx), float32(y2-ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

// fillDiamond fills an axis-aligned diamond centered on p.
func fillDiamond(img *image.RGBA, l layout, p geom.Point, c color.RGBA, radius float64) {
	px, py := l.toOutput(p)
	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(px), float32(py-radius))
	z.LineTo(float32(px+radius), float32(py))
	z.LineTo(float32(px), float32(py+radius))
	z.LineTo(float32(px-radius), float32(py))
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

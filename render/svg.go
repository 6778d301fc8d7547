package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/phillip-keldenich/tiling-problem/geom"
	"github.com/phillip-keldenich/tiling-problem/tiling"
)

const (
	borderColor  = "#a9a9a9"
	contentColor = "#1f77b4"
)

// WriteSVG writes sol as an SVG document: cell borders first, then every
// cell's segments, then its vertices, so tile content overlays the grid.
func WriteSVG(w io.Writer, sol tiling.Solution, opts Options) error {
	l, err := newLayout(sol, opts.Scale)
	if err != nil {
		return err
	}
	ww, hh := l.outputSize()
	if _, err = fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		ftoa(ww), ftoa(hh), ftoa(ww), ftoa(hh)); err != nil {
		return err
	}

	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			for _, s := range cellBorder(tiling.Cell{X: x, Y: y}) {
				if err = writeLine(w, l, s, borderColor, opts.StrokeWidth); err != nil {
					return err
				}
			}
		}
	}
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			d := cellDrawing(sol, tiling.Cell{X: x, Y: y})
			for _, s := range d.Segments {
				if err = writeLine(w, l, s, contentColor, opts.StrokeWidth); err != nil {
					return err
				}
			}
			for _, v := range d.Vertices {
				px, py := l.toOutput(v.At)
				if _, err = fmt.Fprintf(w,
					"  <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\"/>\n",
					ftoa(px), ftoa(py), ftoa(opts.VertexRadius), contentColor); err != nil {
					return err
				}
			}
		}
	}

	_, err = io.WriteString(w, "</svg>\n")

	return err
}

func writeLine(w io.Writer, l layout, s geom.Segment, color string, width float64) error {
	x1, y1 := l.toOutput(s.Start)
	x2, y2 := l.toOutput(s.End)
	_, err := fmt.Fprintf(w,
		"  <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
		ftoa(x1), ftoa(y1), ftoa(x2), ftoa(y2), color, ftoa(width))

	return err
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

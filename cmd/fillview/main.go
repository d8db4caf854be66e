// Command fillview tessellates polygons read from stdin and renders the
// result to a PNG for visual inspection.
//
// Input is newline separated points in the form "x y", with each
// contour separated by a blank line. Contours may self-intersect,
// overlap, or nest; the winding of every region is computed, and each
// region filled by the chosen rule is drawn with a color keyed to its
// winding number. Boundary anti-aliasing edges are overlaid as thin
// outlines.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/gogpu/filltess"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 800, "image height")
		output  = flag.String("output", "fill.png", "output file")
		rule    = flag.String("rule", "nonzero", "fill rule: nonzero, oddeven, complement-nonzero, complement-oddeven")
		wires   = flag.Bool("wires", false, "outline every triangle")
		verbose = flag.Bool("v", false, "log tessellation progress")
	)
	flag.Parse()

	if *verbose {
		filltess.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	contours, err := readContours(os.Stdin)
	if err != nil {
		log.Fatalf("reading contours: %v", err)
	}
	if len(contours) == 0 {
		log.Fatal("no contours on stdin")
	}

	fillRule, err := parseRule(*rule)
	if err != nil {
		log.Fatal(err)
	}

	fp := filltess.NewFilledPath(contours)
	ids := fp.SelectSubsets(nil, filltess.IdentityMat3(), 1<<30, 1<<30)

	dc := gg.NewContext(*width, *height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	toImage := fitTransform(fp.Bounds(), *width, *height)

	for _, id := range ids {
		sub := fp.Subset(id)
		drawSubset(dc, sub, fillRule, toImage, *wires)
		if sub.TriangulationFailed() {
			log.Printf("subset %d: triangulation failure, geometry degraded", id)
		}
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Rendered %d contours in %d subsets to %s", len(contours), len(ids), *output)
}

func drawSubset(dc *gg.Context, sub filltess.Subset, rule filltess.FillRule, toImage filltess.Mat3, wires bool) {
	fill := sub.FillData()
	covered := fill.FillRuleRange(rule)

	for _, w := range fill.Windings() {
		r, ok := fill.WindingRange(w)
		if !ok || r.Start < covered.Start || r.End > covered.End {
			continue
		}
		cr, cg, cb := windingColor(w)
		dc.SetRGBA(cr, cg, cb, 0.9)
		for i := r.Start; i+2 < r.End; i += 3 {
			drawTriangle(dc, fill, toImage, i)
			dc.Fill()
		}
		if wires {
			dc.SetRGBA(0, 0, 0, 0.4)
			dc.SetLineWidth(0.5)
			for i := r.Start; i+2 < r.End; i += 3 {
				drawTriangle(dc, fill, toImage, i)
				dc.Stroke()
			}
		}
	}

	fuzz := sub.FuzzData()
	dc.SetRGBA(0.8, 0.1, 0.1, 0.6)
	dc.SetLineWidth(1)
	for _, w := range sub.Windings() {
		_, idx, ok := fuzz.WindingChunk(w)
		if !ok {
			continue
		}
		// Each pair of a quad's long-side vertices shares an edge
		// endpoint; draw the base edge of every quad triangle pair.
		for i := idx.Start; i+5 < idx.End; i += 6 {
			a := fuzz.Attributes[fuzz.Indices[i]]
			b := fuzz.Attributes[fuzz.Indices[i+2]]
			p0 := toImage.TransformPoint(filltess.Pt(float64(a.X), float64(a.Y)))
			p1 := toImage.TransformPoint(filltess.Pt(float64(b.X), float64(b.Y)))
			dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
			dc.Stroke()
		}
	}
}

func drawTriangle(dc *gg.Context, fill *filltess.FillData, toImage filltess.Mat3, i int) {
	for k := 0; k < 3; k++ {
		v := fill.Attributes[fill.Indices[i+k]]
		p := toImage.TransformPoint(filltess.Pt(float64(v.X), float64(v.Y)))
		if k == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.ClosePath()
}

// windingColor assigns a distinct hue per winding number; zero is gray.
func windingColor(w int) (r, g, b float64) {
	if w == 0 {
		return 0.85, 0.85, 0.85
	}
	palette := [][3]float64{
		{0.2, 0.5, 0.9},
		{0.9, 0.6, 0.2},
		{0.3, 0.8, 0.4},
		{0.7, 0.3, 0.8},
		{0.9, 0.8, 0.2},
		{0.2, 0.8, 0.8},
	}
	k := w
	if k < 0 {
		k = -k
	}
	c := palette[(k-1)%len(palette)]
	if w < 0 {
		return c[2], c[0], c[1]
	}
	return c[0], c[1], c[2]
}

// fitTransform maps the path bounds into the image with a 5% margin,
// flipping y so larger y draws upward.
func fitTransform(bounds filltess.Rect, w, h int) filltess.Mat3 {
	margin := 0.05
	sx := float64(w) * (1 - 2*margin) / bounds.Width()
	sy := float64(h) * (1 - 2*margin) / bounds.Height()
	s := sx
	if sy < s {
		s = sy
	}
	c := bounds.Center()
	return filltess.TranslateMat3(float64(w)/2, float64(h)/2).
		Mul(filltess.ScaleMat3(s, -s)).
		Mul(filltess.TranslateMat3(-c.X, -c.Y))
}

func readContours(in *os.File) ([][]filltess.Point, error) {
	var contours [][]filltess.Point
	var pts []filltess.Point

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(pts) > 0 {
				contours = append(contours, pts)
				pts = nil
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad point line %q", line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, err
		}
		pts = append(pts, filltess.Pt(x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(pts) > 0 {
		contours = append(contours, pts)
	}
	return contours, nil
}

func parseRule(s string) (filltess.FillRule, error) {
	switch s {
	case "nonzero":
		return filltess.FillRuleNonZero, nil
	case "oddeven":
		return filltess.FillRuleOddEven, nil
	case "complement-nonzero":
		return filltess.FillRuleComplementNonZero, nil
	case "complement-oddeven":
		return filltess.FillRuleComplementOddEven, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}

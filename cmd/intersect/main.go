package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quantpath/planar/geom"
)

// Demo of the polygon intersector. Input on stdin should be newline
// separated points in the form "x y", with the two polygons separated by a
// blank line. The components of the intersection are printed in the same
// format; with -draw, they are also rendered to a PNG and echoed to the
// terminal.
func main() {
	draw := flag.String("draw", "", "render the result to this PNG path")
	scale := flag.Float64("scale", 20, "pixels per coordinate unit when drawing")
	flag.Parse()

	polygons := readPolygons(os.Stdin)
	if len(polygons) != 2 {
		fmt.Fprintf(os.Stderr, "expected exactly 2 polygons on stdin, got %d\n", len(polygons))
		os.Exit(1)
	}

	components, err := geom.Intersection(polygons[0], polygons[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "intersection failed:", err)
		os.Exit(1)
	}

	fmt.Printf("%d component(s)\n", len(components))
	for _, c := range components {
		for _, p := range c.Points {
			fmt.Printf("%g %g\n", p.X, p.Y)
		}
		fmt.Println()
	}

	if *draw != "" && len(components) > 0 {
		if err := geom.DebugDraw(components, *scale, *draw); err != nil {
			fmt.Fprintln(os.Stderr, "draw failed:", err)
			os.Exit(1)
		}
	}
}

func readPolygons(in *os.File) []geom.Polygon {
	polygons := []geom.Polygon{}
	scanner := bufio.NewScanner(in)
	points := []geom.Point{}
	for scanner.Scan() {
		line := scanner.Text()

		// A blank line after collected points ends the current polygon.
		if strings.TrimSpace(line) == "" {
			if len(points) > 0 {
				polygons = append(polygons, geom.Polygon{Points: points})
				points = []geom.Point{}
			}
			continue
		}
		points = append(points, parsePoint(line))
	}
	if len(points) > 0 {
		polygons = append(polygons, geom.Polygon{Points: points})
	}
	return polygons
}

func parsePoint(line string) geom.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fmt.Fprintf(os.Stderr, "bad point line %q\n", line)
		os.Exit(1)
	}
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return geom.Point{X: x, Y: y}
}

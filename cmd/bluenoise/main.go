// Command bluenoise thins an XYZ point cloud (or a generated candidate set)
// to a target count with a blue-noise distribution.
//
// Usage:
//
//	bluenoise -target 1000 -in candidates.xyz -out thinned.xyz
//	bluenoise -target 1000 -quality 2 -seed 42 -out thinned.xyz -plot thinned.png
//
// With no -in file, candidates are generated uniformly at random inside the
// unit cube; -quality controls how much oversampling is done before
// elimination, mirroring the add-on workflow the algorithm comes from.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	bluenoise "github.com/theoldben/blue-noise-particles"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	var (
		inPath   = flag.String("in", "", "input XYZ file (one 'x y z' per line); empty = generate candidates")
		outPath  = flag.String("out", "", "output XYZ file; empty = stdout")
		target   = flag.Int("target", 1000, "number of samples to keep")
		quality  = flag.Float64("quality", 2, "oversampling factor when generating candidates")
		surface  = flag.Bool("surface", false, "treat candidates as lying on a 2D surface")
		area     = flag.Float64("area", 0, "reference surface area for -surface mode (0 = unknown)")
		index    = flag.String("index", string(bluenoise.IndexKDTree), "spatial index: kdtree or gonum")
		workers  = flag.Int("workers", 0, "goroutines for initial weight computation (0 = all CPUs)")
		seed     = flag.Int64("seed", 1, "random seed for candidate generation")
		plotPath = flag.String("plot", "", "optional scatter plot PNG of the survivors (X/Y projection)")
	)
	flag.Parse()

	points, err := loadCandidates(*inPath, *target, *quality, *seed)
	if err != nil {
		log.Fatalf("loading candidates: %v", err)
	}

	cfg := bluenoise.DefaultConfig()
	cfg.IsVolume = !*surface
	cfg.MeshArea = *area
	cfg.Index = bluenoise.IndexKind(*index)
	cfg.Workers = *workers

	result, err := bluenoise.Eliminate(points, *target, cfg)
	if err != nil {
		log.Fatalf("eliminate: %v", err)
	}
	fmt.Fprintf(os.Stderr, "eliminated %d -> %d samples (rmax=%.5g rmin=%.5g)\n",
		len(points), len(result.Points), result.RMax, result.RMin)

	if err := writeOutput(*outPath, result.Points); err != nil {
		log.Fatalf("writing output: %v", err)
	}

	if *plotPath != "" {
		if err := plotSurvivors(*plotPath, result.Points); err != nil {
			log.Fatalf("plotting survivors: %v", err)
		}
	}
}

// loadCandidates reads points from path, or generates ceil(quality*target)
// random candidates in the unit cube when path is empty.
func loadCandidates(path string, target int, quality float64, seed int64) ([]bluenoise.Point, error) {
	if path == "" {
		n := int(float64(target) * quality)
		if n < target {
			n = target
		}
		rng := rand.New(rand.NewSource(seed))
		box := r3.Box{Max: r3.Vec{X: 1, Y: 1, Z: 1}}
		return bluenoise.SampleVolume(box, n, rng), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readXYZ(f)
}

// readXYZ parses whitespace-separated "x y z" lines. Blank lines and lines
// starting with '#' are skipped. Identifiers are assigned by line order.
func readXYZ(r io.Reader) ([]bluenoise.Point, error) {
	var points []bluenoise.Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want 3 coordinates, got %d", lineNo, len(fields))
		}
		var coords [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid coordinate %q: %w", lineNo, fields[i], err)
			}
			coords[i] = v
		}
		points = append(points, bluenoise.Point{
			ID:  len(points),
			Pos: r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

func writeOutput(path string, points []bluenoise.Point) error {
	if path == "" {
		return writeXYZ(os.Stdout, points)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeXYZ(f, points); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeXYZ(w io.Writer, points []bluenoise.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%g %g %g\n", p.Pos.X, p.Pos.Y, p.Pos.Z); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// plotSurvivors writes an X/Y scatter of the survivors for a quick visual
// check of the distribution.
func plotSurvivors(path string, points []bluenoise.Point) error {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = p.Pos.X
		xys[i].Y = p.Pos.Y
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.Radius = vg.Points(1.5)

	pl := plot.New()
	pl.Title.Text = "blue-noise survivors"
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"
	pl.Add(sc)
	return pl.Save(6*vg.Inch, 6*vg.Inch, path)
}

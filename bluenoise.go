package bluenoise

import (
	"fmt"
	"math"
	"runtime"
)

// IndexKind selects the spatial index implementation.
type IndexKind string

const (
	IndexKDTree IndexKind = "kdtree"
	IndexGonum  IndexKind = "gonum"
)

// Config controls weighted sample elimination.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Alpha is the falloff kernel exponent. Larger values concentrate a
	// point's weight on its closest neighbors. Must be > 0. Default: 8.
	Alpha float64

	// Gamma and Beta shape the rmin heuristic
	// rmin = rmax * (1 - (target/N)^Gamma) * Beta. rmin is computed and
	// reported but not enforced during elimination. Both must be > 0.
	// Defaults: Gamma 1.5, Beta 0.65.
	Gamma float64
	Beta  float64

	// IsVolume marks the candidates as filling a 3D volume. Set to false
	// for candidates emitted on a 2D surface; combined with MeshArea this
	// enables the tighter surface packing bound for rmax. Default: true.
	IsVolume bool

	// MeshArea is the reference surface area for surface-mode candidates.
	// 0 means unknown, in which case only the bounding-volume bound is
	// used. Ignored in volume mode. Must be >= 0 and finite. Default: 0.
	MeshArea float64

	// Index selects the spatial index implementation. IndexKDTree is the
	// built-in array-form KD-tree; IndexGonum uses gonum's spatial/kdtree.
	// Both produce identical elimination order. Default: IndexKDTree.
	Index IndexKind

	// LeafSize controls the maximum number of points in a KD-tree leaf
	// node. Only used by IndexKDTree. Default: 40.
	LeafSize int

	// Workers controls the number of goroutines for the initial weight
	// computation. The elimination loop itself is always sequential.
	// 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int
}

// DefaultConfig returns a Config with the reference constants.
func DefaultConfig() Config {
	return Config{
		Alpha:    8,
		Gamma:    1.5,
		Beta:     0.65,
		IsVolume: true,
		Index:    IndexKDTree,
		LeafSize: 40,
	}
}

// Result contains the output of one elimination run.
type Result struct {
	// Points are the surviving samples, ascending by identifier.
	Points []Point

	// IDs are the surviving identifiers, ascending. IDs[i] == Points[i].ID.
	IDs []int

	// RMax is the falloff radius derived from the candidate geometry:
	// points farther apart than 2*RMax never influence each other.
	RMax float64

	// RMin is the heuristic minimum-separation bound. It is reported for
	// tuning but not enforced by elimination. Zero when no elimination ran.
	RMin float64
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Alpha == 0 {
		cfg.Alpha = 8
	}
	if cfg.Gamma == 0 {
		cfg.Gamma = 1.5
	}
	if cfg.Beta == 0 {
		cfg.Beta = 0.65
	}
	if cfg.Index == "" {
		cfg.Index = IndexKDTree
	}
	if cfg.LeafSize == 0 {
		cfg.LeafSize = 40
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not.
func validateConfig(cfg *Config) error {
	if cfg.Alpha <= 0 || math.IsNaN(cfg.Alpha) || math.IsInf(cfg.Alpha, 0) {
		return fmt.Errorf("bluenoise: Alpha must be > 0 and finite, got %v: %w", cfg.Alpha, ErrInvalidInput)
	}
	if cfg.Gamma <= 0 || math.IsNaN(cfg.Gamma) || math.IsInf(cfg.Gamma, 0) {
		return fmt.Errorf("bluenoise: Gamma must be > 0 and finite, got %v: %w", cfg.Gamma, ErrInvalidInput)
	}
	if cfg.Beta <= 0 || math.IsNaN(cfg.Beta) || math.IsInf(cfg.Beta, 0) {
		return fmt.Errorf("bluenoise: Beta must be > 0 and finite, got %v: %w", cfg.Beta, ErrInvalidInput)
	}
	if cfg.MeshArea < 0 || math.IsNaN(cfg.MeshArea) || math.IsInf(cfg.MeshArea, 0) {
		return fmt.Errorf("bluenoise: MeshArea must be >= 0 and finite, got %v: %w", cfg.MeshArea, ErrInvalidInput)
	}
	switch cfg.Index {
	case IndexKDTree, IndexGonum:
		// valid
	default:
		return fmt.Errorf("bluenoise: invalid Index %q: %w", cfg.Index, ErrInvalidInput)
	}
	if cfg.LeafSize < 1 {
		return fmt.Errorf("bluenoise: LeafSize must be >= 1, got %d: %w", cfg.LeafSize, ErrInvalidInput)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("bluenoise: Workers must be >= 0, got %d: %w", cfg.Workers, ErrInvalidInput)
	}
	return nil
}

// validatePoints checks the caller contract: a non-empty set of uniquely
// identified points with finite coordinates.
func validatePoints(points []Point) error {
	if len(points) == 0 {
		return fmt.Errorf("bluenoise: no candidate points: %w", ErrInvalidInput)
	}
	seen := make(map[int]struct{}, len(points))
	for _, p := range points {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("bluenoise: duplicate point identifier %d: %w", p.ID, ErrInvalidInput)
		}
		seen[p.ID] = struct{}{}
		if !finiteVec(p.Pos) {
			return fmt.Errorf("bluenoise: non-finite coordinate on point %d: %w", p.ID, ErrInvalidInput)
		}
	}
	return nil
}

// Eliminate reduces points to targetSamples survivors via weighted sample
// elimination. The input is never mutated. When targetSamples is zero the
// result is empty; when it is >= len(points) every input point survives
// unchanged.
func Eliminate(points []Point, targetSamples int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	if targetSamples < 0 {
		return nil, fmt.Errorf("bluenoise: target sample count must be >= 0, got %d: %w",
			targetSamples, ErrInvalidInput)
	}

	if targetSamples == 0 {
		return &Result{Points: []Point{}, IDs: []int{}}, nil
	}
	if targetSamples >= len(points) {
		return passThrough(points), nil
	}

	eng, err := newEngine(points, targetSamples, cfg)
	if err != nil {
		return nil, err
	}
	eng.run()

	surv := eng.survivors()
	ids := make([]int, len(surv))
	for i, p := range surv {
		ids[i] = p.ID
	}
	return &Result{Points: surv, IDs: ids, RMax: eng.rmax, RMin: eng.rmin}, nil
}

// passThrough returns every input point unchanged, ascending by identifier.
func passThrough(points []Point) *Result {
	surv := make([]Point, len(points))
	copy(surv, points)
	sortPointsByID(surv)
	ids := make([]int, len(surv))
	for i, p := range surv {
		ids[i] = p.ID
	}
	return &Result{Points: surv, IDs: ids}
}

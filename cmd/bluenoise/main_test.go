package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadXYZ_ParsesAndSkips(t *testing.T) {
	input := `# comment header
0 0 0
1.5 -2 3e-1

# another comment
4 5 6
`
	points, err := readXYZ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	if points[1].Pos.X != 1.5 || points[1].Pos.Y != -2 || points[1].Pos.Z != 0.3 {
		t.Errorf("points[1].Pos = %+v, want {1.5 -2 0.3}", points[1].Pos)
	}
	for i, p := range points {
		if p.ID != i {
			t.Errorf("points[%d].ID = %d, want %d", i, p.ID, i)
		}
	}
}

func TestReadXYZ_Errors(t *testing.T) {
	if _, err := readXYZ(strings.NewReader("1 2\n")); err == nil {
		t.Error("short line: want error, got nil")
	}
	if _, err := readXYZ(strings.NewReader("1 2 x\n")); err == nil {
		t.Error("bad float: want error, got nil")
	}
}

func TestXYZ_RoundTrip(t *testing.T) {
	input := "0.25 -1 2\n3 4.5 -6\n"
	points, err := readXYZ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var buf bytes.Buffer
	if err := writeXYZ(&buf, points); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != input {
		t.Errorf("round trip = %q, want %q", buf.String(), input)
	}
}

func TestLoadCandidates_GeneratesOversampledSet(t *testing.T) {
	points, err := loadCandidates("", 100, 2.5, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 250 {
		t.Errorf("got %d candidates, want 250 (target*quality)", len(points))
	}
	for _, p := range points {
		v := p.Pos
		if v.X < 0 || v.X > 1 || v.Y < 0 || v.Y > 1 || v.Z < 0 || v.Z > 1 {
			t.Fatalf("candidate %d = %+v outside unit cube", p.ID, v)
		}
	}
}

func TestLoadCandidates_QualityNeverUndersamples(t *testing.T) {
	points, err := loadCandidates("", 100, 0.5, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 100 {
		t.Errorf("got %d candidates, want clamp to target 100", len(points))
	}
}

package world

import "testing"

func TestGrid_GetSetBounds(t *testing.T) {
	g := NewGrid[int](3, 2)
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.Width(), g.Height())
	}
	if !g.Set(Pt(2, 1), 7) {
		t.Fatal("Set(2,1) = false, want true")
	}
	if got := g.Get(Pt(2, 1)); got != 7 {
		t.Errorf("Get(2,1) = %d, want 7", got)
	}
	if g.Set(Pt(3, 0), 1) {
		t.Error("Set out of bounds = true, want false")
	}
	if got := g.Get(Pt(-1, 0)); got != 0 {
		t.Errorf("Get out of bounds = %d, want zero value", got)
	}
}

func TestGrid_Neighbors(t *testing.T) {
	g := NewGrid[bool](3, 3)
	if n := g.Neighbors(Pt(1, 1)); len(n) != 4 {
		t.Errorf("center neighbors = %d, want 4", len(n))
	}
	if n := g.Neighbors(Pt(0, 0)); len(n) != 2 {
		t.Errorf("corner neighbors = %d, want 2", len(n))
	}
	if !g.IsOnPerimeter(Pt(0, 1)) || g.IsOnPerimeter(Pt(1, 1)) {
		t.Error("IsOnPerimeter mismatch")
	}
}

func TestDirection_DeltaAndOpposite(t *testing.T) {
	for _, d := range AllDirections() {
		p := Pt(5, 5).Add(d).Add(d.Opposite())
		if p != Pt(5, 5) {
			t.Errorf("%v then opposite = %v, want (5, 5)", d, p)
		}
	}
	if dx, dy := None.Delta(); dx != 0 || dy != 0 {
		t.Errorf("None.Delta() = %d,%d, want 0,0", dx, dy)
	}
	if dx, dy := North.Delta(); dx != 0 || dy != -1 {
		t.Errorf("North.Delta() = %d,%d, want 0,-1", dx, dy)
	}
}

func TestDistances(t *testing.T) {
	if got := ChebyshevDist(-3, 2); got != 3 {
		t.Errorf("ChebyshevDist(-3,2) = %v, want 3", got)
	}
	if got := EuclideanDist(3, 4); got != 5 {
		t.Errorf("EuclideanDist(3,4) = %v, want 5", got)
	}
	if got := ManhattanDist(Pt(0, 0), Pt(-2, 3)); got != 5 {
		t.Errorf("ManhattanDist = %d, want 5", got)
	}
}

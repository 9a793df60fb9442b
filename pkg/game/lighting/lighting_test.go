package lighting

import (
	"testing"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/camera"
)

func TestAlpha_Boundaries(t *testing.T) {
	o := Default()

	for _, on := range []bool{false, true} {
		r := o.Radius(on)
		if got := o.Alpha(0, on); got != 0 {
			t.Errorf("flashlight=%v: Alpha(0) = %d, want 0", on, got)
		}
		if got := o.Alpha(r, on); got != o.MaxAlpha {
			t.Errorf("flashlight=%v: Alpha(radius) = %d, want %d", on, got, o.MaxAlpha)
		}
		if got := o.Alpha(r*3, on); got != o.MaxAlpha {
			t.Errorf("flashlight=%v: Alpha(far) = %d, want %d", on, got, o.MaxAlpha)
		}
	}
}

func TestAlpha_Ramp(t *testing.T) {
	o := Overlay{BaseRadius: 10, FlashlightRadius: 20, MaxAlpha: 200, FadeStart: 0.5}

	tests := []struct {
		d    float64
		want uint8
	}{
		{4, 0},
		{5, 0},
		{7.5, 100},
		{9, 160},
		{10, 200},
	}
	for _, tt := range tests {
		if got := o.Alpha(tt.d, false); got != tt.want {
			t.Errorf("Alpha(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}

	// Monotonic between the lit area and the edge
	prev := uint8(0)
	for d := 0.0; d <= 12; d += 0.25 {
		a := o.Alpha(d, false)
		if a < prev {
			t.Fatalf("Alpha decreased at d=%v: %d < %d", d, a, prev)
		}
		prev = a
	}
}

func TestFlashlightExtendsLitArea(t *testing.T) {
	o := Default()
	for d := 0.0; d <= o.FlashlightRadius; d += 0.1 {
		if o.Alpha(d, true) > o.Alpha(d, false) {
			t.Fatalf("flashlight darker than base at d=%v", d)
		}
	}
	// Somewhere past the base radius the flashlight must make a difference
	if o.Alpha(o.BaseRadius, true) >= o.Alpha(o.BaseRadius, false) {
		t.Error("flashlight did not light the base radius edge")
	}
}

func TestMetric(t *testing.T) {
	if d := Euclidean.Distance(3, 4); d != 5 {
		t.Errorf("Euclidean = %v", d)
	}
	if d := Chebyshev.Distance(3, -4); d != 4 {
		t.Errorf("Chebyshev = %v", d)
	}
	if m, err := ParseMetric("chebyshev"); err != nil || m != Chebyshev {
		t.Errorf("ParseMetric = %v, %v", m, err)
	}
	if _, err := ParseMetric("taxicab"); err == nil {
		t.Error("ParseMetric(taxicab) should fail")
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
	bad := Default()
	bad.FlashlightRadius = bad.BaseRadius
	if err := bad.Validate(); err == nil {
		t.Error("flashlight radius equal to base radius should fail")
	}
}

func TestForWindow(t *testing.T) {
	o := Default()
	win := camera.TileWindow{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	s := o.ForWindow(win, 5.5, 5.5, false)

	if a := s.At(world.Pt(5, 5)); a != 0 {
		t.Errorf("player tile alpha = %d, want 0", a)
	}
	if a := s.At(world.Pt(0, 0)); a != o.MaxAlpha {
		t.Errorf("corner alpha = %d, want %d", a, o.MaxAlpha)
	}
	if a := s.At(world.Pt(20, 20)); a != 255 {
		t.Errorf("outside window = %d, want 255", a)
	}

	cheb := o
	cheb.Metric = Chebyshev
	// (6,6) is 1 tile away diagonally in Chebyshev, ~1.41 in Euclidean
	if cheb.AlphaAt(world.Pt(6, 6), 5.5, 5.5, false) >= o.AlphaAt(world.Pt(6, 6), 5.5, 5.5, false) {
		t.Error("Chebyshev should treat diagonal neighbours as closer")
	}
}

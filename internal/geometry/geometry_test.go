package geometry

import "testing"

func closeTo(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if got < want-tol || got > want+tol {
		t.Errorf("%s = %.8g, want %.8g (tol %.2g)", name, got, want, tol)
	}
}

func TestRectangleWidthAndArea(t *testing.T) {
	r, err := NewRectangle(0, 200, 300)
	if err != nil {
		t.Fatalf("NewRectangle: %v", err)
	}
	closeTo(t, "Width(100)", r.Width(100), 300, 1e-9)
	closeTo(t, "Width(-1)", r.Width(-1), 0, 1e-9)
	closeTo(t, "Width(201)", r.Width(201), 0, 1e-9)
	closeTo(t, "Area", r.Area(), 300*200, 1e-6)
}

func TestRectangleInvertedEdgesRejected(t *testing.T) {
	if _, err := NewRectangle(100, 0, 300); err == nil {
		t.Fatal("expected error for inverted edges")
	}
}

func TestRectangleNegativeWidthRejected(t *testing.T) {
	if _, err := NewRectangle(0, 100, -5); err == nil {
		t.Fatal("expected error for negative width")
	}
}

func TestRectangleSplit(t *testing.T) {
	r, _ := NewRectangle(0, 200, 300)
	sub, err := r.Split(50, 150)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	closeTo(t, "sub.Area", sub.Area(), 300*100, 1e-6)
}

func TestTrapezoidWidthLinear(t *testing.T) {
	// Flange narrowing from 400 at top to 200 at bottom over 100mm depth.
	tz, err := NewTrapezoid(0, 100, 400, 200)
	if err != nil {
		t.Fatalf("NewTrapezoid: %v", err)
	}
	closeTo(t, "Width(0)", tz.Width(0), 400, 1e-9)
	closeTo(t, "Width(100)", tz.Width(100), 200, 1e-9)
	closeTo(t, "Width(50)", tz.Width(50), 300, 1e-9)
	// Trapezoid area = average width * height.
	closeTo(t, "Area", tz.Area(), 300*100, 1e-6)
}

func TestTrapezoidSplitPreservesLinearWidth(t *testing.T) {
	tz, _ := NewTrapezoid(0, 100, 400, 200)
	sub, err := tz.Split(25, 75)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	closeTo(t, "sub.Width(25)", sub.Width(25), tz.Width(25), 1e-6)
	closeTo(t, "sub.Width(75)", sub.Width(75), tz.Width(75), 1e-6)
}

func TestCircleIsPointMass(t *testing.T) {
	c, err := NewCircle(20, 0, 150)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}
	if !c.IsPoint() {
		t.Fatal("circle must report IsPoint() == true")
	}
	wantArea := 3.14159265358979 * 20 * 20 / 4
	closeTo(t, "Area", c.Area(), wantArea, 1e-3)
	closeTo(t, "CentroidZ", c.CentroidZ(), 150, 1e-9)
}

func TestCircleSplitOutOfRangeZeroesArea(t *testing.T) {
	c, _ := NewCircle(20, 0, 150)
	sub, err := c.Split(0, 100)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	closeTo(t, "out-of-range sub.Area", sub.Area(), 0, 1e-9)
}

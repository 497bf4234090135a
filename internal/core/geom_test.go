package core

import "testing"

type box Rect

func (b box) Bounds() Rect { return Rect(b) }

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestOverlapsAnyBuffer(t *testing.T) {
	others := []box{
		box(NewRect(100, 100, 32, 32)),
		box(NewRect(300, 300, 32, 32)),
	}

	tests := []struct {
		name     string
		rect     Rect
		buffer   float64
		match    func(box) bool
		expected bool
	}{
		{"touching, no buffer", NewRect(132, 100, 10, 10), 0, nil, false},
		{"touching, with buffer", NewRect(132, 100, 10, 10), 16, nil, true},
		{"gap wider than half buffer", NewRect(141, 100, 10, 10), 16, nil, false},
		{"gap narrower than half buffer", NewRect(139, 100, 10, 10), 16, nil, true},
		{"predicate excludes the hit", NewRect(110, 110, 5, 5), 0, func(b box) bool { return b.X > 200 }, false},
		{"predicate keeps the hit", NewRect(310, 310, 5, 5), 0, func(b box) bool { return b.X > 200 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OverlapsAny(tc.rect, tc.buffer, others, tc.match); got != tc.expected {
				t.Errorf("OverlapsAny() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectWithin(t *testing.T) {
	bounds := NewRect(0, 0, 100, 50)

	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"inside", NewRect(10, 10, 10, 10), true},
		{"flush top-left", NewRect(0, 0, 10, 10), true},
		{"flush bottom-right", NewRect(90, 40, 10, 10), true},
		{"past left", NewRect(-1, 10, 10, 10), false},
		{"past bottom", NewRect(10, 41, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Within(bounds); got != tc.expected {
				t.Errorf("Within() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", c.X, c.Y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{3.0, 0.0, -20.0, 0.0}, // inverted range collapses to min
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
	if AbsF(-2.5) != 2.5 || AbsF(2.5) != 2.5 {
		t.Error("AbsF returned wrong value")
	}
}

package utils

import (
	"math"
	"testing"
)

func TestSign(t *testing.T) {
	testCases := []struct {
		x        int
		expected int
	}{
		{12, 1},
		{-3, -1},
		{0, 0},
	}
	for _, tc := range testCases {
		if result := Sign(tc.x); result != tc.expected {
			t.Errorf("Sign(%d) = %d, want %d", tc.x, result, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	testCases := []struct {
		name            string
		value, min, max int
		expected        int
	}{
		{"inside", 300, 0, 536, 300},
		{"below", -20, 0, 536, 0},
		{"above", 900, 0, 536, 536},
		{"on lower edge", 0, 0, 536, 0},
		{"on upper edge", 536, 0, 536, 536},
		{"inverted range collapses to min", 5, 10, 0, 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := Clamp(tc.value, tc.min, tc.max); result != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.value, tc.min, tc.max, result, tc.expected)
			}
		})
	}
}

func TestToRadians(t *testing.T) {
	if got := ToRadians(45); math.Abs(got-math.Pi/4) > 1e-12 {
		t.Errorf("ToRadians(45) = %v, want %v", got, math.Pi/4)
	}
	if got := ToRadians(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("ToRadians(180) = %v, want %v", got, math.Pi)
	}
}

func TestNormalizeAngle(t *testing.T) {
	testCases := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{"already normal", math.Pi / 4, math.Pi / 4},
		{"minus five quarters", -5 * math.Pi / 4, 3 * math.Pi / 4},
		{"full turn", 2 * math.Pi, 0},
		{"minus pi maps to pi", -math.Pi, math.Pi},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeAngle(tc.angle)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tc.angle, got, tc.expected)
			}
			if math.Abs(math.Cos(got)-math.Cos(tc.angle)) > 1e-9 || math.Abs(math.Sin(got)-math.Sin(tc.angle)) > 1e-9 {
				t.Errorf("NormalizeAngle(%v) changed direction", tc.angle)
			}
		})
	}
}

func TestCheckPointWithinBounds(t *testing.T) {
	type CheckPointWithinBoundsTestCase struct {
		x                  int
		y                  int
		topSide            [2]int
		bottomOppositeSide [2]int
		expected           bool
	}

	testCases := []CheckPointWithinBoundsTestCase{
		{5, 5, [2]int{0, 0}, [2]int{10, 10}, true},
		{15, 15, [2]int{0, 0}, [2]int{10, 10}, false},
		{-5, -5, [2]int{-10, -10}, [2]int{0, 0}, true},
		{0, 0, [2]int{-10, -10}, [2]int{0, 0}, true},
	}

	for _, test := range testCases {
		result := CheckPointWithinBounds(test.x, test.y, test.topSide, test.bottomOppositeSide)
		if result != test.expected {
			t.Errorf("Expected %v for point %d,%d within bounds %v,%v, got %v", test.expected, test.x, test.y, test.topSide, test.bottomOppositeSide, result)
		}
	}
}

func TestSubtractVectors(t *testing.T) {
	testCases := []struct {
		vectorA  [2]int
		vectorB  [2]int
		expected [2]int
		name     string
	}{
		{[2]int{1, 1}, [2]int{1, 1}, [2]int{0, 0}, "Subtracting same vectors"},
		{[2]int{1, 2}, [2]int{2, 3}, [2]int{-1, -1}, "Subtracting different vectors"},
		{[2]int{-1, -1}, [2]int{1, 1}, [2]int{-2, -2}, "Subtracting negative vectors"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := SubtractVectors(tc.vectorA, tc.vectorB)
			if result != tc.expected {
				t.Errorf("SubtractVectors(%v, %v) = %v, want %v", tc.vectorA, tc.vectorB, result, tc.expected)
			}
		})
	}
}

func TestSumVectors(t *testing.T) {
	testCases := []struct {
		vectorA  [2]int
		vectorB  [2]int
		expected [2]int
		name     string
	}{
		{[2]int{1, 1}, [2]int{1, 1}, [2]int{2, 2}, "Summing same vectors"},
		{[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 5}, "Summing different vectors"},
		{[2]int{-1, -1}, [2]int{1, 1}, [2]int{0, 0}, "Summing negative vectors"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := SumVectors(tc.vectorA, tc.vectorB)
			if result != tc.expected {
				t.Errorf("SumVectors(%v, %v) = %v, want %v", tc.vectorA, tc.vectorB, result, tc.expected)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	type DistanceTestCase struct {
		x1, y1, x2, y2 int
		expected       float64
	}

	testCases := []DistanceTestCase{
		{1, 1, 2, 2, 1.4142135623730951},
		{0, 0, 3, 4, 5.0},
		{-2, -3, -2, -3, 0},
		{1, 1, 1, 1, 0},
	}

	for _, test := range testCases {
		result := Distance(test.x1, test.y1, test.x2, test.y2)
		if result != test.expected {
			t.Errorf("Expected %v for point1(%d,%d) and point2(%d,%d), got %v", test.expected, test.x1, test.y1, test.x2, test.y2, result)
		}
	}
}

func TestMagnitude(t *testing.T) {
	if got := Magnitude([2]int{-6, 8}); got != 10 {
		t.Errorf("Magnitude([-6 8]) = %v, want 10", got)
	}
}

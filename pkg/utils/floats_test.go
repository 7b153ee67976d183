package utils

import (
	"testing"
)

func TestArgmax(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{"single", []float64{1}, 0},
		{"max in middle", []float64{0.1, 0.7, 0.2}, 1},
		{"ties broken by lowest index", []float64{0.2, 0.5, 0.5, 0.1}, 1},
		{"all equal", []float64{0.25, 0.25, 0.25, 0.25}, 0},
		{"max at end", []float64{0.1, 0.2, 0.7}, 2},
		{"negative values", []float64{-3, -1, -2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Argmax(tt.values); got != tt.want {
				t.Errorf("Argmax(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

func TestSumInt(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{"empty", nil, 0},
		{"whole numbers", []float64{3, 2, 1}, 6},
		{"truncates", []float64{1.4, 1.4}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumInt(tt.values); got != tt.want {
				t.Errorf("SumInt(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

func TestMean(t *testing.T) {
	mean := Mean([][]float64{{1, 2}, {3, 4}}, 2)
	if mean[0] != 2 || mean[1] != 3 {
		t.Errorf("Mean = %v, want [2 3]", mean)
	}

	zero := Mean(nil, 3)
	for _, v := range zero {
		if v != 0 {
			t.Errorf("Mean of empty input = %v, want zeros", zero)
		}
	}
}

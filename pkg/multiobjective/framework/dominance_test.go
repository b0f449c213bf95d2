package framework

import (
	"testing"
)

func TestDominanceComparator(t *testing.T) {
	tests := []struct {
		name string
		a, b *Individual
		want int
	}{
		{
			name: "a dominates b",
			a:    NewIndividual([]float64{1, 2}, 0),
			b:    NewIndividual([]float64{2, 3}, 0),
			want: -1,
		},
		{
			name: "b dominates a",
			a:    NewIndividual([]float64{2, 3}, 0),
			b:    NewIndividual([]float64{2, 2}, 0),
			want: 1,
		},
		{
			name: "incomparable",
			a:    NewIndividual([]float64{1, 5}, 0),
			b:    NewIndividual([]float64{5, 1}, 0),
			want: 0,
		},
		{
			name: "equal objectives",
			a:    NewIndividual([]float64{3, 3}, 0),
			b:    NewIndividual([]float64{3, 3}, 0),
			want: 0,
		},
		{
			name: "feasible beats infeasible with better objectives",
			a:    NewIndividual([]float64{9, 9}, 0),
			b:    NewIndividual([]float64{0, 0}, -0.1),
			want: -1,
		},
		{
			name: "infeasible loses to feasible",
			a:    NewIndividual([]float64{0, 0}, 2),
			b:    NewIndividual([]float64{9, 9}, 0),
			want: 1,
		},
		{
			name: "smaller violation magnitude wins",
			a:    NewIndividual([]float64{9, 9}, -0.5),
			b:    NewIndividual([]float64{0, 0}, -1.5),
			want: -1,
		},
		{
			name: "violation sign does not matter",
			a:    NewIndividual([]float64{0, 0}, 3),
			b:    NewIndividual([]float64{9, 9}, -1),
			want: 1,
		},
		{
			name: "equal violation falls back to dominance",
			a:    NewIndividual([]float64{1, 1}, -1),
			b:    NewIndividual([]float64{2, 2}, -1),
			want: -1,
		},
		{
			name: "three objectives incomparable",
			a:    NewIndividual([]float64{1, 2, 3}, 0),
			b:    NewIndividual([]float64{1, 3, 2}, 0),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DominanceComparator{}.Compare(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a.Objectives, tt.b.Objectives, got, tt.want)
			}
			if rev := (DominanceComparator{}).Compare(tt.b, tt.a); rev != -tt.want {
				t.Errorf("Compare is not antisymmetric: reverse = %d, want %d", rev, -tt.want)
			}
		})
	}
}

func TestDominatesAndEqualObjectives(t *testing.T) {
	a := NewIndividual([]float64{1, 1}, 0)
	b := NewIndividual([]float64{1, 2}, 0)
	c := NewIndividual([]float64{1, 1}, 0)

	if !Dominates(a, b) {
		t.Error("expected a to dominate b")
	}
	if Dominates(b, a) {
		t.Error("b must not dominate a")
	}
	if Dominates(a, c) || Dominates(c, a) {
		t.Error("objective-equal individuals must not dominate each other")
	}
	if !EqualObjectives(a, c) {
		t.Error("expected a and c to be equal")
	}
	if EqualObjectives(a, b) {
		t.Error("a and b differ")
	}
	c.Violation = 1
	if EqualObjectives(a, c) {
		t.Error("different violation must not be equal")
	}
}

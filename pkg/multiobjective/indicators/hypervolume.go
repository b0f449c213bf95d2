package indicators

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

// Hypervolume returns the volume of objective space dominated by front and
// bounded by refPoint, under minimization. Points that do not strictly dominate
// the reference point contribute nothing. Two objectives use an O(N log N)
// sweep; more objectives use the WFG exclusive-volume recursion.
func Hypervolume(front [][]float64, refPoint []float64) (float64, error) {
	if len(refPoint) == 0 {
		return 0, fmt.Errorf("%w: reference point", framework.ErrEmptyCollection)
	}
	if err := checkDimensions(front, len(refPoint)); err != nil {
		return 0, err
	}
	return wfg(nondominated(bounded(front, refPoint)), refPoint), nil
}

// HypervolumeWithReferenceSet computes the hypervolume of front using the
// per-objective maximum of referenceSet as the reference point.
func HypervolumeWithReferenceSet(front, referenceSet [][]float64) (float64, error) {
	refPoint, err := NadirPoint(referenceSet)
	if err != nil {
		return 0, err
	}
	return Hypervolume(front, refPoint)
}

// NadirPoint returns the per-objective maximum of points.
func NadirPoint(points [][]float64) ([]float64, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: reference set", framework.ErrEmptyCollection)
	}
	if err := checkDimensions(points, len(points[0])); err != nil {
		return nil, err
	}
	nadir := make([]float64, len(points[0]))
	column := make([]float64, len(points))
	for m := range nadir {
		for i, p := range points {
			column[i] = p[m]
		}
		nadir[m] = floats.Max(column)
	}
	return nadir, nil
}

// Contributions returns, for every point of front, the hypervolume lost if that
// point were removed. Dominated and duplicated points contribute 0.
func Contributions(front [][]float64, refPoint []float64) ([]float64, error) {
	total, err := Hypervolume(front, refPoint)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(front))
	rest := make([][]float64, 0, len(front))
	for i := range front {
		rest = rest[:0]
		rest = append(rest, front[:i]...)
		rest = append(rest, front[i+1:]...)
		without := wfg(nondominated(bounded(rest, refPoint)), refPoint)
		if c := total - without; c > 0 {
			out[i] = c
		}
	}
	return out, nil
}

func checkDimensions(points [][]float64, m int) error {
	for i, p := range points {
		if len(p) != m {
			return fmt.Errorf("%w: point %d has %d objectives, want %d", framework.ErrInvalidCondition, i, len(p), m)
		}
	}
	return nil
}

// bounded keeps the points strictly dominating refPoint.
func bounded(points [][]float64, refPoint []float64) [][]float64 {
	out := make([][]float64, 0, len(points))
	for _, p := range points {
		inside := true
		for m := range p {
			if p[m] >= refPoint[m] {
				inside = false
				break
			}
		}
		if inside {
			out = append(out, p)
		}
	}
	return out
}

// nondominated drops weakly dominated points and keeps one copy of duplicates.
func nondominated(points [][]float64) [][]float64 {
	out := make([][]float64, 0, len(points))
	for i, p := range points {
		keep := true
		for j, q := range points {
			if i == j {
				continue
			}
			if weaklyDominates(q, p) && (!equal(q, p) || j < i) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, p)
		}
	}
	return out
}

func weaklyDominates(a, b []float64) bool {
	for m := range a {
		if a[m] > b[m] {
			return false
		}
	}
	return true
}

func equal(a, b []float64) bool {
	for m := range a {
		if a[m] != b[m] {
			return false
		}
	}
	return true
}

func wfg(points [][]float64, refPoint []float64) float64 {
	switch {
	case len(points) == 0:
		return 0
	case len(refPoint) == 1:
		best := points[0][0]
		for _, p := range points[1:] {
			best = min(best, p[0])
		}
		return refPoint[0] - best
	case len(refPoint) == 2:
		return sweep2D(points, refPoint)
	}

	sum := 0.0
	for k := range points {
		sum += exclusive(points, k, refPoint)
	}
	return sum
}

func exclusive(points [][]float64, k int, refPoint []float64) float64 {
	limited := make([][]float64, 0, len(points)-k-1)
	for j := k + 1; j < len(points); j++ {
		q := make([]float64, len(refPoint))
		for m := range q {
			q[m] = max(points[k][m], points[j][m])
		}
		limited = append(limited, q)
	}
	return inclusive(points[k], refPoint) - wfg(nondominated(limited), refPoint)
}

func inclusive(p, refPoint []float64) float64 {
	volume := 1.0
	for m := range p {
		volume *= refPoint[m] - p[m]
	}
	return volume
}

func sweep2D(points [][]float64, refPoint []float64) float64 {
	sorted := make([][]float64, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] {
			return sorted[i][0] < sorted[j][0]
		}
		return sorted[i][1] < sorted[j][1]
	})

	volume := 0.0
	prevY := refPoint[1]
	for _, p := range sorted {
		if p[1] < prevY {
			volume += (refPoint[0] - p[0]) * (prevY - p[1])
			prevY = p[1]
		}
	}
	return volume
}

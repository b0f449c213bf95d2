package indicators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

func TestHypervolumeZDT1Fixture(t *testing.T) {
	front, err := ReadFrontFile("testdata/ZDT1.pf")
	require.NoError(t, err)
	require.Len(t, front, 1000)

	reference := [][]float64{{1.0, 0.1}, {0.0, 1.0}}
	hv, err := HypervolumeWithReferenceSet(front, reference)
	require.NoError(t, err)
	assert.InDelta(t, 0.6661, hv, 1e-4)
}

func TestHypervolume2D(t *testing.T) {
	front := [][]float64{{1, 3}, {2, 2}, {3, 1}}
	hv, err := Hypervolume(front, []float64{4, 4})
	require.NoError(t, err)
	// 3x1 + 2x1 + 1x1 stacked slabs
	assert.InDelta(t, 6.0, hv, 1e-12)

	// Dominated, duplicated and out-of-bounds points change nothing.
	noisy := append(front, []float64{3, 3}, []float64{2, 2}, []float64{5, 0})
	hv2, err := Hypervolume(noisy, []float64{4, 4})
	require.NoError(t, err)
	assert.InDelta(t, hv, hv2, 1e-12)
}

func TestHypervolume3DMatchesBoxes(t *testing.T) {
	tests := []struct {
		name  string
		front [][]float64
		want  float64
	}{
		{name: "single point", front: [][]float64{{0, 0, 0}}, want: 1},
		{name: "empty", front: nil, want: 0},
		{
			name:  "two overlapping boxes",
			front: [][]float64{{0, 0.5, 0.5}, {0.5, 0, 0.5}},
			// 0.5 + 0.5 - 0.25 overlap, times depth 0.5
			want: 0.375,
		},
		{
			name:  "three corners",
			front: [][]float64{{0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}},
			want:  0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hv, err := Hypervolume(tt.front, []float64{1, 1, 1})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, hv, 1e-12)
		})
	}
}

func TestHypervolumeAgreesAcrossDimensions(t *testing.T) {
	// Lifting a 2-D front with a constant third objective scales the volume by the extra depth.
	front := [][]float64{{0.1, 0.9}, {0.3, 0.4}, {0.6, 0.2}, {0.9, 0.05}}
	hv2, err := Hypervolume(front, []float64{1, 1})
	require.NoError(t, err)

	lifted := make([][]float64, len(front))
	for i, p := range front {
		lifted[i] = []float64{p[0], p[1], 0.5}
	}
	hv3, err := Hypervolume(lifted, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, hv2*0.5, hv3, 1e-12)
}

func TestHypervolumeErrors(t *testing.T) {
	_, err := Hypervolume([][]float64{{1, 2}}, nil)
	assert.ErrorIs(t, err, framework.ErrEmptyCollection)

	_, err = Hypervolume([][]float64{{1, 2, 3}}, []float64{4, 4})
	assert.ErrorIs(t, err, framework.ErrInvalidCondition)

	_, err = HypervolumeWithReferenceSet([][]float64{{1, 2}}, nil)
	assert.ErrorIs(t, err, framework.ErrEmptyCollection)
}

func TestContributions(t *testing.T) {
	front := [][]float64{{1, 3}, {2, 2}, {3, 1}, {2, 2}, {3, 3}}
	got, err := Contributions(front, []float64{4, 4})
	require.NoError(t, err)

	// Boundary points own a 1x1 exclusive box; duplicates and dominated points own nothing.
	want := []float64{1, 0, 1, 0, 0}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "point %d", i)
	}

	single, err := Contributions([][]float64{{2, 2}, {1, 1}}, []float64{4, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0, single[0], 1e-12)
	assert.InDelta(t, 9-4, single[1], 1e-12)
}

func TestNadirPoint(t *testing.T) {
	nadir, err := NadirPoint([][]float64{{1.0, 0.1}, {0.0, 1.0}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, nadir)
}

func TestReadFront(t *testing.T) {
	input := `# comment
0.5, 1.5
  2 3

4;5
`
	points, err := ReadFront(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 1.5}, {2, 3}, {4, 5}}, points)

	_, err = ReadFront(strings.NewReader("1 2\n3\n"))
	assert.ErrorIs(t, err, framework.ErrInvalidCondition)

	_, err = ReadFront(strings.NewReader("1 x\n"))
	assert.Error(t, err)

	_, err = ReadFrontFile("testdata/missing.pf")
	assert.Error(t, err)
}

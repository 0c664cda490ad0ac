package segment_test

import (
	"math/rand/v2"
	"testing"

	"github.com/davidvella/maxprod/segment"
	"github.com/davidvella/maxprod/sequence"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress(t *testing.T) {
	tests := []struct {
		name string
		seq  []float64
		want segment.Runs[float64]
	}{
		{
			name: "single above one",
			seq:  []float64{4},
			want: segment.Runs[float64]{{Product: 4, Start: 0, End: 0}},
		},
		{
			name: "all below one keeps first largest",
			seq:  []float64{0.25, 0.75, 0.5, 0.75},
			want: segment.Runs[float64]{{Product: 0.75, Start: 1, End: 1}},
		},
		{
			name: "all zero",
			seq:  []float64{0, 0, 0},
			want: segment.Runs[float64]{{Product: 0, Start: 0, End: 0}},
		},
		{
			name: "alternating runs",
			seq:  []float64{2, 0.5, 0.5, 3},
			want: segment.Runs[float64]{
				{Product: 2, Start: 0, End: 0},
				{Product: 0.25, Start: 1, End: 2},
				{Product: 3, Start: 3, End: 3},
			},
		},
		{
			name: "leading and trailing below one dropped",
			seq:  []float64{0.1, 0.5, 13, 2, 0.1, 4, 6, 7, 8, 0.1, 0.2},
			want: segment.Runs[float64]{
				{Product: 26, Start: 2, End: 3},
				{Product: 0.1, Start: 4, End: 4},
				{Product: 1344, Start: 5, End: 8},
			},
		},
		{
			name: "inner one stays in the run",
			seq:  []float64{2, 1, 3, 0.5, 5},
			want: segment.Runs[float64]{
				{Product: 6, Start: 0, End: 2},
				{Product: 0.5, Start: 3, End: 3},
				{Product: 5, Start: 4, End: 4},
			},
		},
		{
			name: "trailing ones end the run early",
			seq:  []float64{2, 1},
			want: segment.Runs[float64]{{Product: 2, Start: 0, End: 0}},
		},
		{
			name: "trailing ones join the gap",
			seq:  []float64{2, 1, 1, 0.5, 4},
			want: segment.Runs[float64]{
				{Product: 2, Start: 0, End: 0},
				{Product: 0.5, Start: 1, End: 3},
				{Product: 4, Start: 4, End: 4},
			},
		},
		{
			name: "leading ones start the run",
			seq:  []float64{0.5, 1, 2},
			want: segment.Runs[float64]{{Product: 2, Start: 1, End: 2}},
		},
		{
			name: "only ones",
			seq:  []float64{1, 1},
			want: segment.Runs[float64]{{Product: 1, Start: 0, End: 0}},
		},
		{
			name: "ones followed by below one",
			seq:  []float64{0.5, 1, 1, 0.5},
			want: segment.Runs[float64]{{Product: 1, Start: 1, End: 1}},
		},
		{
			name: "zero gap and trailing ones stretch",
			seq:  []float64{1, 0, 2, 0.5, 1},
			want: segment.Runs[float64]{
				{Product: 1, Start: 0, End: 0},
				{Product: 0, Start: 1, End: 1},
				{Product: 2, Start: 2, End: 2},
				{Product: 0.5, Start: 3, End: 3},
				{Product: 1, Start: 4, End: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segment.Compress(tt.seq)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compress() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompressEmpty(t *testing.T) {
	assert.PanicsWithValue(t, "segment: empty sequence", func() {
		segment.Compress([]float64{})
	})
}

func TestCompressFloat32(t *testing.T) {
	runs := segment.Compress([]float32{0.5, 2, 2, 0.5})
	require.Equal(t, 1, runs.Len())
	assert.Equal(t, segment.Run[float32]{Product: 4, Start: 1, End: 2}, runs[0])
}

// TestCompressInvariants checks on random input, exact ones included, that
// runs are adjacent, alternate, and carry the exact product of their span.
func TestCompressInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	values := []float64{0, 0.25, 0.5, 1, 2, 4}

	for round := 0; round < 500; round++ {
		seq := make([]float64, 1+rng.IntN(60))
		for i := range seq {
			if round%2 == 0 {
				seq[i] = rng.Float64() * 2
			} else {
				seq[i] = values[rng.IntN(len(values))]
			}
		}

		runs := segment.Compress(seq)
		require.NotZero(t, runs.Len())

		if runs.Len() == 1 && runs[0].Product < 1 {
			r := runs[0]
			assert.Equal(t, r.Start, r.End)
			for _, v := range seq {
				assert.LessOrEqual(t, v, r.Product)
			}
			continue
		}

		require.Equal(t, 1, runs.Len()%2, "list must end with an at-or-above-one run")
		prev := -1
		for i, r := range runs {
			assert.LessOrEqual(t, r.Start, r.End)
			if prev >= 0 {
				assert.Equal(t, prev+1, r.Start, "runs must be index-adjacent")
			}
			prev = r.End

			if i%2 == 0 {
				for k := r.Start; k <= r.End; k++ {
					assert.GreaterOrEqual(t, seq[k], 1.0)
				}
				assert.True(t, r.Start == r.End || seq[r.End] > 1, "run %d ends on a one", i)
				assert.True(t, r.Start == 0 || seq[r.Start-1] < 1, "run %d starts mid-stretch", i)
				assert.GreaterOrEqual(t, r.Product, 1.0)
			} else {
				assert.Less(t, r.Product, 1.0)
			}
			assert.Equal(t, sequence.Product(seq, r.Range()), r.Product)
		}
	}
}

func TestRunsAll(t *testing.T) {
	runs := segment.Runs[float64]{
		{Product: 2, Start: 0, End: 0},
		{Product: 0.5, Start: 1, End: 1},
		{Product: 3, Start: 2, End: 2},
	}

	var got []sequence.Range
	for r := range runs.All() {
		got = append(got, r.Range())
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []sequence.Range{{Start: 0, End: 0}, {Start: 1, End: 1}}, got)
}

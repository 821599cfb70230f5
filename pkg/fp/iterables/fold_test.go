package iterables

import (
	"errors"
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/fp3/pkg/fp"
	"github.com/ib-77/fp3/pkg/fp/maybe"
)

func TestAccumulate(t *testing.T) {
	t.Parallel()

	add := func(a, b int) int { return a + b }

	assert.Equal(t, []int{1, 3, 6, 10}, slices.Collect(Accumulate(Of(1, 2, 3, 4), add)))
	assert.Empty(t, slices.Collect(Accumulate(Empty[int](), add)))

	assert.Equal(t, []int{10, 11, 13, 16}, slices.Collect(AccumulateFrom(Of(1, 2, 3), add, 10)))
	assert.Equal(t, []int{10}, slices.Collect(AccumulateFrom(Empty[int](), add, 10)))
}

func TestFolds(t *testing.T) {
	t.Parallel()

	add := func(a, b int) int { return a + b }
	funcL := func(acc, j int) int { return (acc - 1) * (j + 1) }

	data1 := Of(lo.RangeFrom(1, 100)...)
	data2 := Of(lo.RangeFrom(2, 99)...)
	empty := Empty[int]()
	single := Of(42)

	t.Run("ReduceL", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			seq  func() int
			want int
		}{
			{"data1", func() int { v, _ := ReduceL(data1, add); return v }, 5050},
			{"data2", func() int { v, _ := ReduceL(data2, add); return v }, 5049},
			{"single", func() int { v, _ := ReduceL(single, add); return v }, 42},
			{"funcL", func() int { v, _ := ReduceL(Of(1, 2, 3, 4, 5), funcL); return v }, -156},
			{"funcL shorter", func() int { v, _ := ReduceL(Of(2, 3, 4, 5), funcL); return v }, 84},
		} {
			assert.Equal(t, tc.want, tc.seq(), tc.name)
		}

		_, err := ReduceL(empty, add)
		assert.ErrorIs(t, err, fp.ErrEmptyIterable)
	})

	t.Run("FoldL", func(t *testing.T) {
		assert.Equal(t, 5060, FoldL(data1, add, 10))
		assert.Equal(t, 5059, FoldL(data2, add, 10))
		assert.Equal(t, 0, FoldL(empty, add, 0))
		assert.Equal(t, 10, FoldL(empty, add, 10))
		assert.Equal(t, 52, FoldL(single, add, 10))
		assert.Equal(t, -1, FoldL(empty, funcL, -1))
	})

	t.Run("MaybeReduceL", func(t *testing.T) {
		assert.Equal(t, maybe.Present(5050), MaybeReduceL(data1, add))
		assert.Equal(t, maybe.Missing[int](), MaybeReduceL(empty, add))
		assert.Equal(t, -1, MaybeReduceL(empty, funcL).GetOr(-1))
		assert.Equal(t, 42, MaybeReduceL(single, funcL).GetOr(-1))
	})

	t.Run("TryFoldL", func(t *testing.T) {
		safeAdd := func(a, b int) (int, error) { return a + b, nil }
		noFives := func(a, b int) (int, error) {
			if b == 5 {
				return 0, errors.New("five")
			}
			return a + b, nil
		}

		assert.Equal(t, maybe.Present(5060), TryFoldL(data1, safeAdd, 10))
		assert.Equal(t, maybe.Present(10), TryFoldL(empty, safeAdd, 10))
		assert.Equal(t, maybe.Missing[int](), TryFoldL(data1, noFives, 0))
	})
}

func TestMaybeFolds_RecoverPanicsInF(t *testing.T) {
	t.Parallel()

	at := func(acc, i int) int { return acc + []int{10, 20, 30}[i] }

	assert.Equal(t, maybe.Present(50), MaybeReduceL(Of(0, 1, 2), at))
	assert.NotPanics(t, func() {
		assert.Equal(t, maybe.Missing[int](), MaybeReduceL(Of(0, 1, 5), at))
	})

	tryAt := func(acc, i int) (int, error) { return at(acc, i), nil }
	assert.Equal(t, maybe.Present(60), TryFoldL(Of(0, 1, 2), tryAt, 0))
	assert.NotPanics(t, func() {
		assert.Equal(t, maybe.Missing[int](), TryFoldL(Of(0, 7), tryAt, 0))
	})
}

func TestReduceL_DoesNotRecoverPanicsInF(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	assert.PanicsWithValue(t, boom, func() {
		_, _ = ReduceL(Of(1, 2), func(int, int) int { panic(boom) })
	})
}

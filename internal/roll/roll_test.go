package roll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminism(t *testing.T) {
	t.Run("same seed yields the same stream", func(t *testing.T) {
		a := New(42)
		b := New(42)

		for i := 0; i < 100; i++ {
			assert.Equal(t, a.Uniform(0, 1), b.Uniform(0, 1))
			assert.Equal(t, a.Dice(3, 6, 1), b.Dice(3, 6, 1))
			assert.Equal(t, a.Chance(0.5), b.Chance(0.5))
			assert.Equal(t, a.Weighted([]int{10, 20, 30}), b.Weighted([]int{10, 20, 30}))
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := New(1)
		b := New(2)

		same := true
		for i := 0; i < 20; i++ {
			if a.Uniform(0, 1) != b.Uniform(0, 1) {
				same = false
			}
		}
		assert.False(t, same)
	})

	t.Run("reseed restarts the stream", func(t *testing.T) {
		s := New(7)
		first := make([]float64, 10)
		for i := range first {
			first[i] = s.Uniform(0, 1)
		}

		s.Reseed(7)
		for i := range first {
			assert.Equal(t, first[i], s.Uniform(0, 1))
		}
		assert.Equal(t, int64(7), s.Seed())
	})
}

func TestUniform(t *testing.T) {
	s := New(1)

	for i := 0; i < 1000; i++ {
		v := s.Uniform(2, 5)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 5.0)
	}

	t.Run("degenerate range returns min", func(t *testing.T) {
		assert.Equal(t, 3.0, s.Uniform(3, 3))
		assert.Equal(t, 3.0, s.Uniform(3, 1))
	})
}

func TestDice(t *testing.T) {
	s := New(1)

	for i := 0; i < 100; i++ {
		v := s.Dice(3, 6, 2)
		assert.GreaterOrEqual(t, v, 5.0)
		assert.LessOrEqual(t, v, 20.0)
	}

	t.Run("non-positive count or sides yields offset", func(t *testing.T) {
		assert.Equal(t, 1.5, s.Dice(0, 6, 1.5))
		assert.Equal(t, 1.5, s.Dice(3, 0, 1.5))
	})
}

func TestWeighted(t *testing.T) {
	s := New(1)

	t.Run("indexes stay in range", func(t *testing.T) {
		weights := []int{10, 0, 5, 85}
		for i := 0; i < 1000; i++ {
			idx := s.Weighted(weights)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, len(weights))
			assert.NotEqual(t, 1, idx, "zero-weight entry must never be chosen")
		}
	})

	t.Run("empty or all-zero table returns 0", func(t *testing.T) {
		assert.Equal(t, 0, s.Weighted(nil))
		assert.Equal(t, 0, s.Weighted([]int{0, 0}))
		assert.Equal(t, 0, s.Weighted([]int{-5, 0}))
	})

	t.Run("single positive entry always wins", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			assert.Equal(t, 2, s.Weighted([]int{0, 0, 7}))
		}
	})
}

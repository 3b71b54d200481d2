package venum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/venum"
)

func TestAnalyzeRange(t *testing.T) {
	t.Run("declaration order vs extrema", func(t *testing.T) {
		r, err := venum.AnalyzeRange([]int32{0, 5, 6, -3, 2})
		require.NoError(t, err)
		assert.Equal(t, 5, r.Size)
		assert.Equal(t, int32(0), r.First)
		assert.Equal(t, int32(2), r.Last)
		assert.Equal(t, int32(-3), r.Min)
		assert.Equal(t, int32(6), r.Max)
		assert.Equal(t, uint64(10), r.Span)
	})

	t.Run("single value", func(t *testing.T) {
		r, err := venum.AnalyzeRange([]uint8{7})
		require.NoError(t, err)
		assert.Equal(t, venum.Range[uint8]{Size: 1, First: 7, Last: 7, Min: 7, Max: 7, Span: 1}, r)
	})

	t.Run("duplicates", func(t *testing.T) {
		r, err := venum.AnalyzeRange([]int{3, 3, 3})
		require.NoError(t, err)
		assert.Equal(t, 3, r.Size)
		assert.Equal(t, uint64(1), r.Span)
	})

	t.Run("sparse values are not an error", func(t *testing.T) {
		r, err := venum.AnalyzeRange([]int64{math.MinInt32, math.MaxInt32})
		require.NoError(t, err)
		assert.Equal(t, uint64(1)<<32, r.Span)
	})

	t.Run("full width span wraps", func(t *testing.T) {
		r, err := venum.AnalyzeRange([]uint64{0, math.MaxUint64})
		require.NoError(t, err)
		assert.Equal(t, uint64(0), r.Span)
	})

	t.Run("signed extrema", func(t *testing.T) {
		r, err := venum.AnalyzeRange([]int8{math.MinInt8, math.MaxInt8})
		require.NoError(t, err)
		assert.Equal(t, uint64(256), r.Span)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := venum.AnalyzeRange([]int{})
		require.Error(t, err)
		assert.True(t, venum.IsEmptyDefinition(err))
	})
}

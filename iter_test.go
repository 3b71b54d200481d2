package venum

import (
	"maps"
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	d, err := NewDefinition("dup.Dup", []int16{4, -1, 4}, []string{"A = 4", "B = -1", "C = 4"})
	require.NoError(t, err)

	first := slices.Collect(d.Values())
	second := slices.Collect(d.Values())
	assert.Equal(t, []int16{4, -1, 4}, first)
	assert.Equal(t, first, second)
}

func TestValuesIndependentCursors(t *testing.T) {
	d := newColor(t)
	var pairs [][2]int32
	for a := range d.Values() {
		for b := range d.Values() {
			pairs = append(pairs, [2]int32{a, b})
		}
	}
	assert.Len(t, pairs, 9)
	assert.Equal(t, [2]int32{6, 0}, pairs[6])
}

func TestValuesEarlyBreak(t *testing.T) {
	d := newColor(t)
	var got []int32
	for v := range d.Values() {
		got = append(got, v)
		if v == 5 {
			break
		}
	}
	assert.Equal(t, []int32{0, 5}, got)
	assert.Equal(t, []int32{0, 5, 6}, slices.Collect(d.Values()))
}

func TestNames(t *testing.T) {
	d := newColor(t)
	assert.Nil(t, d.names)
	first := slices.Collect(d.Names())
	assert.Equal(t, []string{"RED", "GREEN", "BLUE"}, first)
	second := slices.Collect(d.Names())
	assert.Equal(t, first, second)
	assert.Same(t, unsafe.StringData(first[0]), unsafe.StringData(second[0]))
}

func TestNamesPanicsOnAllocationFailure(t *testing.T) {
	d := newColor(t)
	d.limit = 1
	assert.PanicsWithError(t, d.ProcessNames().Error(), func() {
		for range d.Names() {
		}
	})
}

func TestAll(t *testing.T) {
	d := newColor(t)
	assert.Equal(t, map[string]int32{"RED": 0, "GREEN": 5, "BLUE": 6}, maps.Collect(d.All()))

	var names []string
	for name := range d.All() {
		names = append(names, name)
		break
	}
	assert.Equal(t, []string{"RED"}, names)
}

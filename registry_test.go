package venum_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/venum"
)

func TestRegisterIn(t *testing.T) {
	values := []int32{0, 5, 6}
	raw := []string{"RED", "GREEN = 5", "BLUE"}

	t.Run("shares one definition per identity", func(t *testing.T) {
		r := venum.NewRegistry()
		a, err := venum.RegisterIn(r, "example.com/color.Color", values, raw)
		require.NoError(t, err)
		b, err := venum.RegisterIn(r, "example.com/color.Color", values, raw)
		require.NoError(t, err)
		assert.Same(t, a, b)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("concurrent registration", func(t *testing.T) {
		r := venum.NewRegistry()
		defs := make([]*venum.Definition[int32], 16)
		var wg sync.WaitGroup
		for i := range defs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defs[i], _ = venum.RegisterIn(r, "example.com/color.Color", values, raw)
			}()
		}
		wg.Wait()
		for _, d := range defs {
			assert.Same(t, defs[0], d)
		}
	})

	t.Run("conflicting arrays", func(t *testing.T) {
		r := venum.NewRegistry()
		_, err := venum.RegisterIn(r, "example.com/color.Color", values, raw)
		require.NoError(t, err)
		_, err = venum.RegisterIn(r, "example.com/color.Color", []int32{0, 5, 7}, raw)
		require.Error(t, err)
		assert.True(t, venum.IsDefinitionError(err))
		assert.Contains(t, err.Error(), "conflicting")
	})

	t.Run("conflicting underlying type", func(t *testing.T) {
		r := venum.NewRegistry()
		_, err := venum.RegisterIn(r, "example.com/color.Color", values, raw)
		require.NoError(t, err)
		_, err = venum.RegisterIn(r, "example.com/color.Color", []int64{0, 5, 6}, raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "int32")
	})

	t.Run("empty definition", func(t *testing.T) {
		r := venum.NewRegistry()
		_, err := venum.RegisterIn[uint8](r, "example.com/empty.Empty", nil, nil)
		require.Error(t, err)
		assert.True(t, venum.IsEmptyDefinition(err))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("empty identity", func(t *testing.T) {
		_, err := venum.RegisterIn(venum.NewRegistry(), "", values, raw)
		require.Error(t, err)
		assert.True(t, venum.IsDefinitionError(err))
	})
}

func TestRegistryEntries(t *testing.T) {
	r := venum.NewRegistry()
	_, err := venum.RegisterIn(r, "b.Size", []uint8{1, 2}, []string{"S = 1", "M"})
	require.NoError(t, err)
	_, err = venum.RegisterIn(r, "a.Color", []int32{0}, []string{"RED"})
	require.NoError(t, err)

	assert.Equal(t, []venum.Entry{
		{ID: "a.Color", Underlying: "int32", Size: 1},
		{ID: "b.Size", Underlying: "uint8", Size: 2},
	}, r.Entries())

	e, ok := r.Lookup("b.Size")
	require.True(t, ok)
	assert.Equal(t, 2, e.Size)
	_, ok = r.Lookup("c.Missing")
	assert.False(t, ok)
}

func TestMustRegister(t *testing.T) {
	d := venum.MustRegister("github.com/syssam/venum_test.Weekday",
		[]uint8{1, 2, 3},
		[]string{"MON = 1", "TUE", "WED"},
	)
	assert.Same(t, d, venum.MustRegister("github.com/syssam/venum_test.Weekday",
		[]uint8{1, 2, 3},
		[]string{"MON = 1", "TUE", "WED"},
	))

	var found bool
	for _, e := range venum.Registered() {
		if e.ID == "github.com/syssam/venum_test.Weekday" {
			found = true
		}
	}
	assert.True(t, found)

	assert.Panics(t, func() {
		venum.MustRegister[int]("github.com/syssam/venum_test.Nothing", nil, nil)
	})
}

package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCase() {}
func otherSampleCase() {}

func names(cases []TestCase) []string {
	var out []string
	for _, c := range cases {
		out = append(out, c.Name)
	}
	return out
}

func TestRegistry_Add(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add("", sampleCase))
	require.NoError(t, reg.Add("", otherSampleCase))
	require.NoError(t, reg.Add("custom.Name", func() {}))

	assert.Equal(t, []string{"discovery.sampleCase", "discovery.otherSampleCase", "custom.Name"}, names(reg.Discover()))
	assert.Equal(t, 3, reg.Len())
}

func TestRegistry_AddErrors(t *testing.T) {
	t.Run("nil function", func(t *testing.T) {
		assert.Error(t, NewRegistry().Add("x.Y", nil))
	})

	t.Run("duplicate name", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Add("", sampleCase))
		assert.EqualError(t, reg.Add("", sampleCase), `test "discovery.sampleCase" already registered`)
		assert.Equal(t, 1, reg.Len())
	})
}

func TestRegistry_DiscoverReturnsCopies(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add("", sampleCase))

	first := reg.Discover()
	first[0].Name = "mutated"

	assert.Equal(t, []string{"discovery.sampleCase"}, names(reg.Discover()))
}

func TestRegistry_DiscoverIsDeterministic(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"b.B", "a.A", "c.C"} {
		require.NoError(t, reg.Add(name, sampleCase))
	}
	assert.Equal(t, names(reg.Discover()), names(reg.Discover()))
	assert.Equal(t, []string{"b.B", "a.A", "c.C"}, names(reg.Discover()))
}

func TestGlobal(t *testing.T) {
	restore := SetGlobalForTesting(NewRegistry())
	defer restore()

	Test(sampleCase)
	TestNamed("literal.Case", func() {})

	assert.Equal(t, []string{"discovery.sampleCase", "literal.Case"}, names(Discover()))
	assert.Panics(t, func() { Test(sampleCase) })
	assert.Panics(t, func() { Test(nil) })
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopCheck(Target, Options) ([]Violation, error) { return nil, nil }

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	err := r.Register(Descriptor{ID: "test/alpha", DefaultSeverity: Warn, Check: noopCheck})
	require.NoError(t, err)

	assert.True(t, r.Has("test/alpha"))
	assert.Equal(t, 1, r.Len())

	desc, ok := r.Get("test/alpha")
	require.True(t, ok)
	assert.Equal(t, "test/alpha", desc.ID)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Descriptor{ID: "test/alpha", Check: noopCheck}))

	err := r.Register(Descriptor{ID: "test/alpha", Check: noopCheck})
	require.Error(t, err)
}

func TestRegistryRejectsInvalidDescriptors(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(Descriptor{ID: "", Check: noopCheck}))
	assert.Error(t, r.Register(Descriptor{ID: "test/nil-check"}))
}

func TestRegistryIDsSorted(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"zeta/one", "alpha/two", "mid/three"} {
		require.NoError(t, r.Register(Descriptor{ID: id, Check: noopCheck}))
	}
	assert.Equal(t, []string{"alpha/two", "mid/three", "zeta/one"}, r.IDs())
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Descriptor{ID: "test/alpha", Check: noopCheck})
	assert.Panics(t, func() {
		r.MustRegister(Descriptor{ID: "test/alpha", Check: noopCheck})
	})
}

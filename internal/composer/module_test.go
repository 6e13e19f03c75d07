package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(*Context) error { return nil }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Module{Name: "b", Apply: noop}))
	require.NoError(t, r.Register(Module{Name: "a", Apply: noop}))

	m, ok := r.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "a", m.Name)
	_, ok = r.Lookup("missing")
	assert.False(t, ok)

	// Registration order is kept
	assert.Equal(t, []string{"b", "a"}, r.Names())
	assert.Len(t, r.Modules(), 2)
}

func TestRegistry_RejectsInvalidModules(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(Module{Apply: noop}))
	assert.Error(t, r.Register(Module{Name: "x"}))
	require.NoError(t, r.Register(Module{Name: "x", Apply: noop}))
	assert.Error(t, r.Register(Module{Name: "x", Apply: noop}))
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		r.MustRegister(Module{Name: "x", Apply: noop}, Module{Name: "x", Apply: noop})
	})
}

func TestRegistry_Variants(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(
		Module{Name: "solid_queue", Variant: "jobs", Apply: noop},
		Module{Name: "pundit", Apply: noop},
		Module{Name: "good_job", Variant: "jobs", Apply: noop},
		Module{Name: "statsd", Variant: "metrics", Apply: noop},
	)

	assert.Equal(t, map[string][]string{
		"jobs":    {"solid_queue", "good_job"},
		"metrics": {"statsd"},
	}, r.Variants())
	assert.Equal(t, []string{"jobs", "metrics"}, r.VariantNames())
}

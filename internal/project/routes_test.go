package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routesSkeleton = "Rails.application.routes.draw do\n  # boxcar:marker routes.draw\nend\n"

func TestRoutes_FinalizeWritesMountsInsideNamespace(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("config/routes.rb", routesSkeleton, false))
	routes := NewRoutes(tree)

	require.NoError(t, routes.Mount("admin", Mount{
		Engine:     "Blazer::Engine",
		At:         "blazer",
		Constraint: "AdminConstraint.new(:blazer?)",
		Comment:    "Blazer BI Dashboard (admin or above)",
	}))
	require.NoError(t, routes.Mount("admin", Mount{Engine: "PgHero::Engine", At: "pghero"}))
	assert.Len(t, routes.Pending("admin"), 2)

	require.NoError(t, routes.Finalize(Namespace{
		Name: "admin",
		Head: []string{"root to: 'application#index'"},
		Tail: []string{"resources :users"},
	}))
	require.NoError(t, routes.Draw("mount OkComputer::Engine, at: '/health'\n"))
	require.NoError(t, tree.StripMarkers())

	want := "Rails.application.routes.draw do\n" +
		"  namespace :admin do\n" +
		"    root to: 'application#index'\n" +
		"\n" +
		"    # Blazer BI Dashboard (admin or above)\n" +
		"    mount Blazer::Engine, at: 'blazer', constraints: AdminConstraint.new(:blazer?)\n" +
		"\n" +
		"    mount PgHero::Engine, at: 'pghero'\n" +
		"\n" +
		"    resources :users\n" +
		"  end\n" +
		"  mount OkComputer::Engine, at: '/health'\n" +
		"end\n"
	assert.Equal(t, want, readFile(t, tree, "config/routes.rb"))
	assert.True(t, routes.Finalized("admin"))
	assert.Empty(t, routes.Pending("admin"))
}

func TestRoutes_FinalizeEmptyNamespace(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("config/routes.rb", routesSkeleton, false))
	routes := NewRoutes(tree)

	require.NoError(t, routes.Finalize(Namespace{Name: "api"}))
	assert.Equal(t,
		"Rails.application.routes.draw do\n  namespace :api do\n  end\n  # boxcar:marker routes.draw\nend\n",
		readFile(t, tree, "config/routes.rb"))
}

func TestRoutes_MountAfterFinalizeFails(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("config/routes.rb", routesSkeleton, false))
	routes := NewRoutes(tree)
	require.NoError(t, routes.Finalize(Namespace{Name: "admin"}))

	var finalized *NamespaceFinalizedError
	require.ErrorAs(t, routes.Mount("admin", Mount{Engine: "X", At: "x"}), &finalized)
	require.ErrorAs(t, routes.Finalize(Namespace{Name: "admin"}), &finalized)
	assert.Equal(t, "admin", finalized.Namespace)
}

func TestRoutes_MountRequiresEngineAndPath(t *testing.T) {
	routes := NewRoutes(newTree(t))
	assert.Error(t, routes.Mount("admin", Mount{Engine: "X"}))
	assert.Error(t, routes.Mount("admin", Mount{At: "x"}))
}

func TestRoutes_FinalizeWithoutRoutesMarker(t *testing.T) {
	tree := newTree(t)
	routes := NewRoutes(tree)
	require.NoError(t, routes.Mount("admin", Mount{Engine: "X", At: "x"}))

	err := routes.Finalize(Namespace{Name: "admin"})
	assert.True(t, IsMarkerNotFound(err))
	assert.False(t, routes.Finalized("admin"))
	assert.Len(t, routes.Pending("admin"), 1)
	assert.False(t, tree.Exists("config/routes.rb"))
}

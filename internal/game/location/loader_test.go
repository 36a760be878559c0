package location_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/wonders/internal/game/location"
)

func TestDefaultCatalog(t *testing.T) {
	c := location.DefaultCatalog()
	require.Equal(t, 5, c.Len())
	assert.Equal(t, location.CitySquare, c.Start().ID)

	ids := make([]location.ID, 0, c.Len())
	for _, l := range c.All() {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []location.ID{
		location.CitySquare, location.Market, location.Harbor, location.Gardens, location.Academy,
	}, ids)

	harbor, ok := c.Get(location.Harbor)
	require.True(t, ok)
	assert.Equal(t, "Harbor", harbor.Name)
	assert.Equal(t, 3, harbor.Level)
	assert.True(t, harbor.Permits(location.ActionTrade))

	gardens, _ := c.Get(location.Gardens)
	assert.False(t, gardens.Permits(location.ActionTrade))
}

func TestLoadCatalogFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
start: gate
locations:
  - id: gate
    name: Gate
    description: |
      The city gate.
    level: 1
    actions: [explore, rest]
`), 0644))

	c, err := location.LoadCatalogFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, location.ID("gate"), c.Start().ID)
	assert.Equal(t, "The city gate.", c.Start().Description)
}

func TestLoadCatalogFromFile_Missing(t *testing.T) {
	_, err := location.LoadCatalogFromFile("/nonexistent/catalog.yaml")
	assert.Error(t, err)
}

func TestLoadCatalogFromBytes_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":      "start: [",
		"empty":         "start: a\nlocations: []\n",
		"unknown start": "start: b\nlocations:\n  - {id: a, name: A, description: d, level: 1}\n",
		"duplicate id":  "start: a\nlocations:\n  - {id: a, name: A, description: d, level: 1}\n  - {id: a, name: B, description: d, level: 1}\n",
		"zero level":    "start: a\nlocations:\n  - {id: a, name: A, description: d, level: 0}\n",
		"unknown verb":  "start: a\nlocations:\n  - {id: a, name: A, description: d, level: 1, actions: [dance]}\n",
		"missing name":  "start: a\nlocations:\n  - {id: a, description: d, level: 1}\n",
	}
	for name, doc := range cases {
		_, err := location.LoadCatalogFromBytes([]byte(doc))
		assert.Error(t, err, name)
	}
}

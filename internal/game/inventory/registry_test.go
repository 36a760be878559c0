package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/wonders/internal/game/inventory"
)

func TestDefaultShop(t *testing.T) {
	shop := inventory.DefaultShop()
	all := shop.All()
	require.Len(t, all, 3)
	assert.Equal(t, "coin-purse", all[0].ID)
	assert.Equal(t, 10, all[0].Cost)
	assert.Equal(t, 15, all[0].MaxGoldBonus)

	belt, ok := shop.Upgrade("money-belt")
	require.True(t, ok)
	assert.Equal(t, "coin-purse", belt.Requires)
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := inventory.NewRegistry()
	u := &inventory.UpgradeDef{ID: "a", Name: "A", Cost: 1}
	require.NoError(t, r.Register(u))
	assert.Error(t, r.Register(u))
}

func TestLoadShopFromBytes_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":         "upgrades: [",
		"negative cost":    "upgrades:\n  - {id: a, name: A, cost: -1}\n",
		"missing name":     "upgrades:\n  - {id: a, cost: 1}\n",
		"unknown requires": "upgrades:\n  - {id: a, name: A, cost: 1, requires: b}\n",
		"self requires":    "upgrades:\n  - {id: a, name: A, cost: 1, requires: a}\n",
	}
	for name, doc := range cases {
		_, err := inventory.LoadShopFromBytes([]byte(doc))
		assert.Error(t, err, name)
	}
}

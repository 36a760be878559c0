package activity

import (
	"fmt"

	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/inventory"
	"github.com/cory-johannsen/wonders/internal/game/location"
)

// Offer is one shop listing as seen by a particular character.
type Offer struct {
	Upgrade    *inventory.UpgradeDef
	Owned      bool
	Affordable bool
	// Locked is set when the upgrade's requirement is not yet owned.
	Locked bool
}

// Trade opens the shop at the current location and lists its offers.
// It never mutates state.
func Trade(c *character.Character, reg *location.Registry, inv *inventory.Inventory, shop *inventory.Registry) Result {
	res, ok := gate(c, reg, location.ActionTrade)
	if !ok {
		return res
	}
	for _, u := range shop.All() {
		res.Offers = append(res.Offers, Offer{
			Upgrade:    u,
			Owned:      inv.Has(u.ID),
			Affordable: c.Gold >= u.Cost,
			Locked:     u.Requires != "" && !inv.Has(u.Requires),
		})
	}
	res.Success = true
	res.Message = fmt.Sprintf("The merchants of %s show you their wares.", reg.Current().Name)
	return res
}

// CanPurchase reports whether u may be bought given what is already owned.
// It does not consider price.
func CanPurchase(inv *inventory.Inventory, u *inventory.UpgradeDef) (bool, Reason) {
	if inv.Has(u.ID) {
		return false, ReasonAlreadyOwned
	}
	if u.Requires != "" && !inv.Has(u.Requires) {
		return false, ReasonMissingRequirement
	}
	return true, ReasonNone
}

// Purchase buys the upgrade id.
//
// All checks run before any mutation; the gold deduction, cap increase and
// ownership record then happen together with no failure point between them.
//
// Postcondition: on failure c and inv are unchanged.
func Purchase(c *character.Character, reg *location.Registry, inv *inventory.Inventory, shop *inventory.Registry, id string) Result {
	res, ok := gate(c, reg, location.ActionTrade)
	if !ok {
		return res
	}
	u, found := shop.Upgrade(id)
	if !found {
		return fail(location.ActionTrade, ReasonUnknownItem, fmt.Sprintf("No one here sells %q.", id))
	}
	if allowed, reason := CanPurchase(inv, u); !allowed {
		msg := fmt.Sprintf("You already own the %s.", u.Name)
		if reason == ReasonMissingRequirement {
			req, _ := shop.Upgrade(u.Requires)
			msg = fmt.Sprintf("You need the %s before the %s.", req.Name, u.Name)
		}
		return fail(location.ActionTrade, reason, msg)
	}
	if c.Gold < u.Cost {
		return fail(location.ActionTrade, ReasonInsufficientGold,
			fmt.Sprintf("The %s costs %d gold; you have %d.", u.Name, u.Cost, c.Gold))
	}

	before := *c
	c.ModifyGold(-u.Cost)
	c.IncreaseMaxGold(u.MaxGoldBonus)
	inv.Add(u.ID)

	res.settle(before, c, 0)
	res.Message = fmt.Sprintf("You bought the %s for %d gold.", u.Name, u.Cost)
	res.logf(res.Message)
	res.Success = true
	res.Mutated = true
	return res
}

// Package inventory holds the player's owned items and the shop catalog of
// one-time upgrades they can buy.
package inventory

import "fmt"

// UpgradeDef is a purchasable, one-time upgrade.
type UpgradeDef struct {
	// ID uniquely identifies the upgrade.
	ID string
	// Name is the display name.
	Name string
	// Description explains the effect to the player.
	Description string
	// Cost is the price in gold.
	Cost int
	// MaxGoldBonus raises the character's gold cap when purchased.
	MaxGoldBonus int
	// Requires names an upgrade that must already be owned. Empty = none.
	Requires string
}

// Validate checks UpgradeDef invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (u *UpgradeDef) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("upgrade ID must not be empty")
	}
	if u.Name == "" {
		return fmt.Errorf("upgrade %q: name must not be empty", u.ID)
	}
	if u.Cost < 0 {
		return fmt.Errorf("upgrade %q: cost must be >= 0, got %d", u.ID, u.Cost)
	}
	if u.MaxGoldBonus < 0 {
		return fmt.Errorf("upgrade %q: max_gold_bonus must be >= 0, got %d", u.ID, u.MaxGoldBonus)
	}
	if u.Requires == u.ID {
		return fmt.Errorf("upgrade %q: cannot require itself", u.ID)
	}
	return nil
}

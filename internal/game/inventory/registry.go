package inventory

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content/shop.yaml
var defaultShopYAML []byte

type yamlShopFile struct {
	Upgrades []yamlUpgrade `yaml:"upgrades"`
}

type yamlUpgrade struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Cost         int    `yaml:"cost"`
	MaxGoldBonus int    `yaml:"max_gold_bonus"`
	Requires     string `yaml:"requires"`
}

// Registry holds every shop upgrade indexed by ID, in listing order.
type Registry struct {
	order    []string
	upgrades map[string]*UpgradeDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{upgrades: make(map[string]*UpgradeDef)}
}

// Register adds u to the registry.
//
// Precondition: u must not be nil.
// Postcondition: Upgrade(u.ID) returns (u, true); returns error if u is
// invalid or u.ID is already registered.
func (r *Registry) Register(u *UpgradeDef) error {
	if err := u.Validate(); err != nil {
		return fmt.Errorf("inventory: Registry.Register: %w", err)
	}
	if _, exists := r.upgrades[u.ID]; exists {
		return fmt.Errorf("inventory: Registry.Register: upgrade ID %q already registered", u.ID)
	}
	r.upgrades[u.ID] = u
	r.order = append(r.order, u.ID)
	return nil
}

// Upgrade returns the UpgradeDef for id.
func (r *Registry) Upgrade(id string) (*UpgradeDef, bool) {
	u, ok := r.upgrades[id]
	return u, ok
}

// All returns every upgrade in listing order.
func (r *Registry) All() []*UpgradeDef {
	out := make([]*UpgradeDef, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.upgrades[id])
	}
	return out
}

// LoadShopFromBytes parses a shop YAML document into a Registry.
//
// Postcondition: Returns a Registry whose Requires references all resolve,
// or a non-nil error.
func LoadShopFromBytes(data []byte) (*Registry, error) {
	var file yamlShopFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing shop YAML: %w", err)
	}
	r := NewRegistry()
	for _, yu := range file.Upgrades {
		if err := r.Register(&UpgradeDef{
			ID:           yu.ID,
			Name:         yu.Name,
			Description:  yu.Description,
			Cost:         yu.Cost,
			MaxGoldBonus: yu.MaxGoldBonus,
			Requires:     yu.Requires,
		}); err != nil {
			return nil, err
		}
	}
	for _, u := range r.All() {
		if u.Requires == "" {
			continue
		}
		if _, ok := r.upgrades[u.Requires]; !ok {
			return nil, fmt.Errorf("upgrade %q requires unknown upgrade %q", u.ID, u.Requires)
		}
	}
	return r, nil
}

// DefaultShop returns the built-in shop registry.
func DefaultShop() *Registry {
	r, err := LoadShopFromBytes(defaultShopYAML)
	if err != nil {
		panic("inventory: embedded shop invalid: " + err.Error())
	}
	return r
}

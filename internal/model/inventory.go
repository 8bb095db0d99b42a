package model

import "github.com/google/uuid"

// PalletPreset represents a reusable named pallet envelope, the way a
// warehouse has a small, fixed catalog of pallet types in circulation.
type PalletPreset struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Config PalletConfig `json:"config"`
}

// NewPalletPreset creates a new PalletPreset with a generated ID.
func NewPalletPreset(name string, cfg PalletConfig) PalletPreset {
	return PalletPreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Config: cfg,
	}
}

// Catalog holds the saved pallet presets an operator can pick from instead
// of typing dimensions by hand.
type Catalog struct {
	Pallets []PalletPreset `json:"pallets"`
}

// DefaultCatalog returns a catalog populated with common industry pallet
// envelopes.
func DefaultCatalog() Catalog {
	return Catalog{
		Pallets: []PalletPreset{
			NewPalletPreset("EUR-pallet (120x80x180cm, 1000kg)", PalletConfig{
				Length: 120, Width: 80, Height: 180, MaxWeight: 1000,
			}),
			NewPalletPreset("EUR-pallet low (120x80x100cm, 1000kg)", PalletConfig{
				Length: 120, Width: 80, Height: 100, MaxWeight: 1000,
			}),
			NewPalletPreset("US GMA pallet (121.9x101.6x180cm, 1200kg)", PalletConfig{
				Length: 121.9, Width: 101.6, Height: 180, MaxWeight: 1200,
			}),
			NewPalletPreset("Half-pallet (80x60x180cm, 500kg)", PalletConfig{
				Length: 80, Width: 60, Height: 180, MaxWeight: 500,
			}),
		},
	}
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (c *Catalog) FindByID(id string) *PalletPreset {
	for i := range c.Pallets {
		if c.Pallets[i].ID == id {
			return &c.Pallets[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (c *Catalog) FindByName(name string) *PalletPreset {
	for i := range c.Pallets {
		if c.Pallets[i].Name == name {
			return &c.Pallets[i]
		}
	}
	return nil
}

// Names returns the preset names, in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Pallets))
	for i, p := range c.Pallets {
		names[i] = p.Name
	}
	return names
}

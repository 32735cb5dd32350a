package storage

import (
	"gopkg.in/yaml.v2"
)

// The canonical set every new owner starts with. Bootstrap skips any entry
// whose name the owner already uses.
const defaultLocationDocument = `
locations:
  - name: Refrigerator
    type: fridge
    description: Main refrigerator for fresh items
  - name: Freezer
    type: freezer
    description: Freezer for frozen items
  - name: Pantry
    type: pantry
    description: Pantry for dry goods and non-perishables
  - name: Spice Rack
    type: spice_rack
    description: Spice rack for herbs and spices
  - name: Counter
    type: counter
    description: Kitchen counter for frequently used items
`

type defaultLocation struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

type defaultLocationConfiguration struct {
	Locations []defaultLocation `yaml:"locations"`
}

func defaultLocations() ([]defaultLocation, error) {
	c := &defaultLocationConfiguration{}
	err := yaml.Unmarshal([]byte(defaultLocationDocument), c)
	if err != nil {
		return nil, err
	}
	return c.Locations, nil
}

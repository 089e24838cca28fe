package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dronedash/internal/pkg/errs"
)

// NamePair is a customer first/last name combination drawn by the generator.
type NamePair struct {
	First string `yaml:"first"`
	Last  string `yaml:"last"`
}

// Pools holds the value sets the random order generator draws from.
type Pools struct {
	Cities  []string   `yaml:"cities"`
	Streets []string   `yaml:"streets"`
	Names   []NamePair `yaml:"names"`
}

// DefaultPools returns the built-in draw pools.
func DefaultPools() Pools {
	return Pools{
		Cities: []string{
			"Warszawa", "Kraków", "Gdańsk", "Wrocław", "Poznań",
			"Katowice", "Chorzów", "Sosnowiec", "Sopot", "Gdynia",
		},
		Streets: []string{
			"ul.Lipowa", "ul.Leśna", "ul.Słoneczna", "ul.Ogrodowa",
			"ul.Polna", "ul.Długa", "ul.Szkolna", "ul.Jęczmienna",
			"ul.Wiosenna", "ul.Chorzowska", "ul.Katowicka",
		},
		Names: []NamePair{
			{"Jan", "Kowalski"}, {"Anna", "Nowak"}, {"Piotr", "Zieliński"},
			{"Kasia", "Wiśniewska"}, {"Marek", "Woźniak"}, {"Agnieszka", "Kaczmarek"},
			{"Tomasz", "Mazur"}, {"Magda", "Krawczyk"}, {"Łukasz", "Piotrowski"},
			{"Ewa", "Grabowska"},
		},
	}
}

// Validate checks that every pool has at least one entry to draw from.
func (p Pools) Validate() error {
	if len(p.Cities) == 0 {
		return errs.NewValueIsRequiredError("cities")
	}
	if len(p.Streets) == 0 {
		return errs.NewValueIsRequiredError("streets")
	}
	if len(p.Names) == 0 {
		return errs.NewValueIsRequiredError("names")
	}
	return nil
}

// LoadPools reads draw pools from a YAML file.
func LoadPools(path string) (Pools, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pools{}, fmt.Errorf("read pools file: %w", err)
	}

	var pools Pools
	if err := yaml.Unmarshal(data, &pools); err != nil {
		return Pools{}, fmt.Errorf("parse pools file: %w", err)
	}

	if err := pools.Validate(); err != nil {
		return Pools{}, err
	}
	return pools, nil
}

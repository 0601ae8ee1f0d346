package balancing

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSubstitutions reads an item -> substitutes catalog from a YAML file:
//
//	Milk: [Milk Powder, Almond Milk]
//	Bread: [Buns, Rusk]
func LoadSubstitutions(filename string) (Substitutions, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	subs := Substitutions{}
	if err := yaml.NewDecoder(file).Decode(&subs); err != nil {
		return nil, fmt.Errorf("substitutions %s: %w", filename, err)
	}
	for item, alt := range subs {
		if strings.TrimSpace(item) == "" {
			return nil, fmt.Errorf("substitutions %s: empty item name", filename)
		}
		kept := alt[:0]
		for _, a := range alt {
			if a = strings.TrimSpace(a); a != "" {
				kept = append(kept, a)
			}
		}
		subs[item] = kept
	}
	return subs, nil
}

// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"automata-defense/internal/stat"
	"automata-defense/internal/types"
)

// Overrides is the YAML shape of a definitions file.
// Unit stats are keyed by kind name and then by stat name.
type Overrides struct {
	Units map[string]map[string]float64 `yaml:"units"`
}

// LoadLibrary reads a definitions file and applies it on top of the built-in catalogue.
func LoadLibrary(path string) (Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit definitions file: %w", err)
	}

	lib := NewLibrary()
	if err := lib.ApplyOverrides(file); err != nil {
		return nil, err
	}
	return lib, nil
}

// ApplyOverrides parses YAML overrides and writes them into the library.
// Nothing is written if any entry names an unknown kind or stat.
func (l Library) ApplyOverrides(data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	updated := make(Library, len(o.Units))
	for kindName, stats := range o.Units {
		kind, ok := types.ParseKind(kindName)
		if !ok {
			return fmt.Errorf("unknown unit kind %q", kindName)
		}
		def, ok := updated[kind]
		if !ok {
			def = l.Get(kind)
		}
		for statName, v := range stats {
			st, ok := stat.Parse(statName)
			if !ok {
				return fmt.Errorf("unknown stat %q for %s", statName, kindName)
			}
			def.Stats.Set(st, v)
		}
		updated[kind] = def
	}

	for k, d := range updated {
		l[k] = d
	}
	return nil
}

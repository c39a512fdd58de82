package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ModuleInfo describes one module an operator can equip.
type ModuleInfo struct {
	ID       string `json:"id"`
	IsCnOnly bool   `json:"isCnOnly"`
}

// Operator is one roster entry with the player's progress on it.
type Operator struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Class      string         `json:"class"`
	Branch     string         `json:"branch"`
	Rarity     int            `json:"rarity"`
	Potential  int            `json:"potential"`
	Elite      int            `json:"elite"`
	IsCnOnly   bool           `json:"isCnOnly"`
	SkillLevel int            `json:"skill_level"`
	Masteries  []int          `json:"masteries,omitempty"`
	Modules    map[string]int `json:"modules,omitempty"`
	ModuleData []ModuleInfo   `json:"moduleData,omitempty"`
}

// Owned reports whether the player has the operator.
func (o Operator) Owned() bool {
	return o.Potential > 0
}

// Parse decodes a roster, either a JSON array or an object keyed by operator id.
func Parse(r io.Reader) ([]Operator, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var list []Operator
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var byID map[string]Operator
	if err := json.Unmarshal(data, &byID); err != nil {
		return nil, fmt.Errorf("roster: decode: %w", err)
	}
	list = make([]Operator, 0, len(byID))
	for id, op := range byID {
		if op.ID == "" {
			op.ID = id
		}
		list = append(list, op)
	}
	sortOperators(list)
	return list, nil
}

// LoadFile reads a roster file.
func LoadFile(path string) ([]Operator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

package roster

import (
	"fmt"
	"sort"
	"strings"

	"depot-planner/core/utils"
)

// Category names a filter dimension.
type Category string

const (
	CategoryClass       Category = "CLASS"
	CategoryBranch      Category = "BRANCH"
	CategoryOwned       Category = "OWNED"
	CategoryElite       Category = "ELITE"
	CategoryRarity      Category = "RARITY"
	CategoryCN          Category = "CN"
	CategoryModuleCN    Category = "MODULECN"
	CategoryMastery     Category = "MASTERY"
	CategorySkillLevel  Category = "SKILLLEVEL"
	CategoryModuleLevel Category = "MODULELEVEL"
)

// Categories lists every category in evaluation order.
var Categories = []Category{
	CategoryClass, CategoryBranch, CategoryOwned, CategoryElite, CategoryRarity,
	CategoryCN, CategoryModuleCN, CategoryMastery, CategorySkillLevel, CategoryModuleLevel,
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("roster: unknown filter category %q", name)
}

// Filters holds the selected values per category. An empty category does not
// constrain; values within one category are alternatives. Filters is treated
// as immutable: Toggle and Clear return new values.
type Filters map[Category]map[string]struct{}

// NewFilters returns filters with every category empty.
func NewFilters() Filters {
	f := make(Filters, len(Categories))
	for _, c := range Categories {
		f[c] = map[string]struct{}{}
	}
	return f
}

func canonical(v any) string {
	s := utils.ToString(v)
	if strings.EqualFold(s, "true") || strings.EqualFold(s, "false") {
		return strings.ToLower(s)
	}
	return s
}

// Toggle adds value to category, or removes it when already selected.
func (f Filters) Toggle(category Category, value any) Filters {
	out := make(Filters, len(f))
	for c, set := range f {
		clone := make(map[string]struct{}, len(set))
		for v := range set {
			clone[v] = struct{}{}
		}
		out[c] = clone
	}
	if out[category] == nil {
		out[category] = map[string]struct{}{}
	}

	key := canonical(value)
	if _, ok := out[category][key]; ok {
		delete(out[category], key)
	} else {
		out[category][key] = struct{}{}
	}
	return out
}

// Clear returns filters with every category emptied.
func (f Filters) Clear() Filters {
	return NewFilters()
}

// Has reports whether value is selected in category.
func (f Filters) Has(category Category, value any) bool {
	_, ok := f[category][canonical(value)]
	return ok
}

// Values returns the selected values of a category, sorted.
func (f Filters) Values(category Category) []string {
	out := make([]string, 0, len(f[category]))
	for v := range f[category] {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Empty reports whether no category constrains.
func (f Filters) Empty() bool {
	for _, set := range f {
		if len(set) > 0 {
			return false
		}
	}
	return true
}

// Match reports whether op passes every non-empty category and the name search.
func (f Filters) Match(op Operator, search string) bool {
	for _, c := range Categories {
		set := f[c]
		if len(set) == 0 {
			continue
		}
		if !check(c, op, set) {
			return false
		}
	}
	return MatchName(op.Name, search)
}

func check(c Category, op Operator, set map[string]struct{}) bool {
	has := func(v any) bool {
		_, ok := set[canonical(v)]
		return ok
	}

	switch c {
	case CategoryClass:
		return has(op.Class)
	case CategoryBranch:
		return has(op.Branch)
	case CategoryOwned:
		return has(op.Owned())
	case CategoryElite:
		return has(op.Elite)
	case CategoryRarity:
		return has(op.Rarity)
	case CategoryCN:
		return has(op.IsCnOnly)
	case CategoryModuleCN:
		for _, m := range op.ModuleData {
			if has(m.IsCnOnly) {
				return true
			}
		}
		return false
	case CategorySkillLevel:
		return has(op.SkillLevel)
	case CategoryMastery:
		if op.Masteries == nil {
			return false
		}
		return matchLevels(set, op.Masteries)
	case CategoryModuleLevel:
		if op.Modules == nil {
			return false
		}
		levels := make([]int, 0, len(op.Modules))
		for _, lvl := range op.Modules {
			levels = append(levels, lvl)
		}
		return matchLevels(set, levels)
	}
	return true
}

// matchLevels: a selected 0 matches when every level is 0, any other value
// matches when some level equals it.
func matchLevels(set map[string]struct{}, levels []int) bool {
	for v := range set {
		if v == "0" {
			all := true
			for _, l := range levels {
				if l != 0 {
					all = false
					break
				}
			}
			if all {
				return true
			}
			continue
		}
		for _, l := range levels {
			if canonical(l) == v {
				return true
			}
		}
	}
	return false
}

// Apply returns the operators matching f and search, in input order.
func Apply(ops []Operator, f Filters, search string) []Operator {
	out := make([]Operator, 0, len(ops))
	for _, op := range ops {
		if f.Match(op, search) {
			out = append(out, op)
		}
	}
	return out
}

func sortOperators(ops []Operator) {
	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].Rarity != ops[j].Rarity {
			return ops[i].Rarity > ops[j].Rarity
		}
		return ops[i].Name < ops[j].Name
	})
}

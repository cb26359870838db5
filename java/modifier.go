package java

import "github.com/pkg/errors"

// Modifier is a Java declaration modifier keyword.
type Modifier string

const (
	Public       Modifier = "public"
	Protected    Modifier = "protected"
	Private      Modifier = "private"
	Static       Modifier = "static"
	Final        Modifier = "final"
	Abstract     Modifier = "abstract"
	Default      Modifier = "default"
	Transient    Modifier = "transient"
	Volatile     Modifier = "volatile"
	Synchronized Modifier = "synchronized"
	Native       Modifier = "native"
	Strictfp     Modifier = "strictfp"
)

// modifierRank fixes the order modifiers are printed in: visibility first,
// then static, final and abstract, then the remaining keywords.
var modifierRank = map[Modifier]int{
	Public:       0,
	Protected:    1,
	Private:      2,
	Static:       3,
	Final:        4,
	Abstract:     5,
	Default:      6,
	Transient:    7,
	Volatile:     8,
	Synchronized: 9,
	Native:       10,
	Strictfp:     11,
}

// IsValid reports whether m is one of the recognized modifier keywords.
func (m Modifier) IsValid() bool {
	_, ok := modifierRank[m]
	return ok
}

func hasModifier(mods []Modifier, m Modifier) bool {
	for _, candidate := range mods {
		if candidate == m {
			return true
		}
	}
	return false
}

// canonicalModifiers returns mods deduplicated and sorted into print order.
func canonicalModifiers(mods []Modifier) []Modifier {
	seen := make(map[Modifier]bool, len(mods))
	var result []Modifier
	for _, m := range mods {
		if seen[m] {
			continue
		}
		seen[m] = true
		result = append(result, m)
	}
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && modifierRank[result[j]] < modifierRank[result[j-1]]; j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result
}

func checkModifiers(mods []Modifier, allowed ...Modifier) error {
	for _, m := range mods {
		if !m.IsValid() {
			return errors.Errorf("unknown modifier %q", string(m))
		}
		if len(allowed) > 0 && !hasModifier(allowed, m) {
			return errors.Errorf("modifier %s not permitted here", m)
		}
	}
	return nil
}

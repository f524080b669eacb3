package journey

import (
	"sort"
	"strings"

	"github.com/legwise/legwise/internal/catalog"
)

// Modes is a transport-mode allow-list. A nil Modes means no restriction;
// a missing key means the mode is not allowed.
type Modes map[catalog.Mode]bool

// AllModes returns an allow-list with every mode enabled.
func AllModes() Modes {
	m := make(Modes, len(catalog.Modes()))
	for _, mode := range catalog.Modes() {
		m[mode] = true
	}
	return m
}

// Allows reports whether a segment of mode m may be used.
func (m Modes) Allows(mode catalog.Mode) bool {
	if m == nil {
		return true
	}
	switch mode {
	case catalog.ModeWalk:
		return true
	case catalog.ModeTaxi:
		return m[catalog.ModeTaxi]
	default:
		return m[mode]
	}
}

// Without returns a copy of m with the given modes disabled. Walking cannot
// be disabled. A nil m is treated as all modes allowed.
func (m Modes) Without(disabled ...catalog.Mode) Modes {
	if len(disabled) == 0 {
		return m
	}
	out := AllModes()
	if m != nil {
		out = make(Modes, len(m))
		for k, v := range m {
			out[k] = v
		}
	}
	for _, d := range disabled {
		if d != catalog.ModeWalk {
			out[d] = false
		}
	}
	return out
}

// String lists the allowed modes, sorted.
func (m Modes) String() string {
	if m == nil {
		return "*"
	}
	allowed := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			allowed = append(allowed, string(k))
		}
	}
	sort.Strings(allowed)
	return strings.Join(allowed, ",")
}

// ParseModes parses a comma separated list such as "train,bus" into an
// allow-list. Unknown names are returned separately.
func ParseModes(list string) (Modes, []string) {
	m := Modes{}
	var unknown []string
	for _, part := range strings.Split(list, ",") {
		name := catalog.Mode(strings.ToLower(strings.TrimSpace(part)))
		if name == "" {
			continue
		}
		if !name.Valid() {
			unknown = append(unknown, string(name))
			continue
		}
		m[name] = true
	}
	return m, unknown
}

// Filter keeps the combinations whose every segment is allowed. The order of
// the input is preserved. A nil allow-list returns combos unchanged.
func Filter(combos []Combination, allowed Modes) []Combination {
	if allowed == nil {
		return combos
	}

	out := make([]Combination, 0, len(combos))
	for _, c := range combos {
		if permitted(c.Pair, allowed) {
			out = append(out, c)
		}
	}
	return out
}

func permitted(p Pair, allowed Modes) bool {
	for _, s := range p.Segments() {
		if !allowed.Allows(s.Mode) {
			return false
		}
	}
	return true
}

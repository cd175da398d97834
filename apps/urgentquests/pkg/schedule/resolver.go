package schedule

import "math"

type Reason int

const (
	ReasonNone Reason = iota
	// ReasonEmpty means the cell carried no color at all.
	ReasonEmpty
	// ReasonNotRGB means the token is neither in the legend nor a numeric color.
	ReasonNotRGB
	// ReasonNoCandidates means no legend entry of the required category has an RGB value.
	ReasonNoCandidates
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "resolved"
	case ReasonEmpty:
		return "empty"
	case ReasonNotRGB:
		return "not rgb"
	case ReasonNoCandidates:
		return "no candidates"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving one cell color. Token is always the
// token that was looked up so callers can report what failed.
type Resolution struct {
	Token   string
	Name    string
	Nearest bool
	Reason  Reason
}

func (r Resolution) Resolved() bool {
	return r.Reason == ReasonNone
}

// blankColors are backgrounds of unassigned slots. They only resolve when
// the legend lists them explicitly.
//
//nolint:gochecknoglobals //static configuration
var blankColors = map[string]bool{
	"#FFFFFF":     true,
	"transparent": true,
	"none":        true,
	"inherit":     true,
	"initial":     true,
}

type Resolver struct {
	legend   *Legend
	registry *ColorRegistry
}

func NewResolver(legend *Legend, registry *ColorRegistry) *Resolver {
	return &Resolver{
		legend:   legend,
		registry: registry,
	}
}

// Resolve maps a color token to an event name. Tokens listed in the legend
// resolve exactly; other numeric colors resolve to the nearest legend entry
// of the required category, earliest entry first on ties.
func (resolver *Resolver) Resolve(token string, required Category) Resolution {
	if token == "" {
		return Resolution{Token: token, Reason: ReasonEmpty}
	}

	if entry, ok := resolver.legend.Lookup(token); ok {
		return Resolution{Token: token, Name: entry.Name}
	}

	if blankColors[token] {
		return Resolution{Token: token, Reason: ReasonEmpty}
	}

	rgb, ok := resolver.registry.Lookup(token)
	if !ok {
		rgb, ok = ParseHex(token)
	}
	if !ok {
		return Resolution{Token: token, Reason: ReasonNotRGB}
	}

	best := -1
	bestDistance := math.MaxInt
	for i, entry := range resolver.legend.Entries() {
		if !entry.HasRGB || entry.Category != required {
			continue
		}

		distance := rgb.DistanceSquared(entry.RGB)
		if distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}

	if best < 0 {
		return Resolution{Token: token, Reason: ReasonNoCandidates}
	}

	return Resolution{
		Token:   token,
		Name:    resolver.legend.Entries()[best].Name,
		Nearest: true,
	}
}

// fallbackCategory restricts which legend entries the nearest-color fallback
// may match. Slots on the hour start primary events and a half-hour slot
// after a resolved slot continues one, so secondary listings are never
// produced by the fallback even when they are closer.
const fallbackCategory = CategoryPrimary

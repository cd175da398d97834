package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

//nolint:gochecknoglobals //compiled once
var (
	rgbPattern = regexp.MustCompile(`([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})`)
	hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)
)

// KeywordColors normalizes CSS color keywords seen in legends and grids.
// Keywords missing from this table are kept verbatim as tokens.
//
//nolint:gochecknoglobals //static configuration
var KeywordColors = map[string]string{
	"black":  "#000000",
	"white":  "#FFFFFF",
	"red":    "#FF0000",
	"lime":   "#00FF00",
	"blue":   "#0000FF",
	"yellow": "#FFFF00",
	"gray":   "#808080",
	"grey":   "#808080",
}

// ColorRegistry remembers the RGB value of every numeric color token seen
// during one run. It only grows; create a new one for every run.
type ColorRegistry struct {
	colors map[string]RGB
}

func NewColorRegistry() *ColorRegistry {
	return &ColorRegistry{
		colors: map[string]RGB{},
	}
}

func (registry *ColorRegistry) Add(token string, rgb RGB) {
	registry.colors[token] = rgb
}

func (registry *ColorRegistry) Lookup(token string) (RGB, bool) {
	rgb, ok := registry.colors[token]
	return rgb, ok
}

func (registry *ColorRegistry) Len() int {
	return len(registry.colors)
}

// NormalizeColor turns a CSS color value into a token. Numeric colors become
// "#RRGGBB" and report their RGB value.
func NormalizeColor(value string) (string, RGB, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", RGB{}, false
	}

	if hex, ok := KeywordColors[value]; ok {
		value = hex
	}

	if match := rgbPattern.FindStringSubmatch(value); match != nil {
		var channels [3]uint8
		for i := range channels {
			n, err := strconv.Atoi(match[i+1])
			if err != nil || n > 255 {
				return value, RGB{}, false
			}
			channels[i] = uint8(n)
		}

		rgb := RGB{R: channels[0], G: channels[1], B: channels[2]}
		return rgb.Token(), rgb, true
	}

	if rgb, ok := ParseHex(value); ok {
		return rgb.Token(), rgb, true
	}

	return value, RGB{}, false
}

// ParseHex parses "#RRGGBB" or "#RGB".
func ParseHex(token string) (RGB, bool) {
	match := hexPattern.FindStringSubmatch(strings.TrimSpace(token))
	if match == nil {
		return RGB{}, false
	}

	digits := match[1]
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, false
	}

	//nolint:gosec //masked to a byte
	return RGB{
		R: uint8(n >> 16 & 0xFF),
		G: uint8(n >> 8 & 0xFF),
		B: uint8(n & 0xFF),
	}, true
}

func (rgb RGB) Token() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

func (rgb RGB) DistanceSquared(other RGB) int {
	dr := int(rgb.R) - int(other.R)
	dg := int(rgb.G) - int(other.G)
	db := int(rgb.B) - int(other.B)
	return dr*dr + dg*dg + db*db
}

// cellColor reads the background of a table cell from its style attribute,
// falling back to the legacy bgcolor attribute.
func cellColor(node *html.Node) string {
	if node == nil {
		return ""
	}

	for _, property := range []string{"background-color", "background"} {
		if value := styleProperty(node, property); value != "" {
			return value
		}
	}

	return strings.TrimSpace(attr(node, "bgcolor"))
}

func styleProperty(node *html.Node, name string) string {
	for _, declaration := range strings.Split(attr(node, "style"), ";") {
		property, value, found := strings.Cut(declaration, ":")
		if !found {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(property), name) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func attr(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

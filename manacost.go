package mtg

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ManaCost represents a card's cost in each kind of mana.
type ManaCost struct {
	colorless uint8
	white     uint8
	blue      uint8
	black     uint8
	red       uint8
	green     uint8
}

// ZeroManaCost is a cost with every count set to 0.
var ZeroManaCost = ManaCost{}

// NewManaCost returns a cost made of the given counts.
func NewManaCost(colorless, white, blue, black, red, green uint8) ManaCost {
	return ManaCost{
		colorless: colorless,
		white:     white,
		blue:      blue,
		black:     black,
		red:       red,
		green:     green,
	}
}

// ParseManaCost parses a cost such as "7 w bla black".
//
// The first token is the colorless amount and is mandatory ("0" when the
// cost is colored only). Each following token adds one mana of its color.
func ParseManaCost(s string) (ManaCost, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return ZeroManaCost, ErrMissingColorlessCost
	}

	colorless, err := strconv.ParseUint(tokens[0], 10, 8)
	if err != nil {
		return ZeroManaCost, errors.Wrapf(ErrInvalidColorlessCost, "%q", tokens[0])
	}

	cost := ManaCost{
		colorless: uint8(colorless),
	}

	for _, token := range tokens[1:] {
		var count *uint8

		switch strings.ToLower(token) {
		case "w", "white":
			count = &cost.white
		case "blu", "blue":
			count = &cost.blue
		case "bla", "black":
			count = &cost.black
		case "r", "red":
			count = &cost.red
		case "g", "green":
			count = &cost.green
		default:
			return ZeroManaCost, errors.Wrapf(ErrUnrecognizedManaSymbol, "%q", token)
		}

		if *count == math.MaxUint8 {
			return ZeroManaCost, errors.Wrapf(ErrManaOverflow, "%q", token)
		}
		*count++
	}

	return cost, nil
}

func (c ManaCost) Colorless() uint8 { return c.colorless }
func (c ManaCost) White() uint8     { return c.white }
func (c ManaCost) Blue() uint8      { return c.blue }
func (c ManaCost) Black() uint8     { return c.black }
func (c ManaCost) Red() uint8       { return c.red }
func (c ManaCost) Green() uint8     { return c.green }

// Total returns the converted mana cost.
func (c ManaCost) Total() int {
	return int(c.colorless) + int(c.white) + int(c.blue) + int(c.black) + int(c.red) + int(c.green)
}

// IsZero reports whether every count is 0.
func (c ManaCost) IsZero() bool {
	return c == ZeroManaCost
}

func (c ManaCost) Equal(other ManaCost) bool {
	return c == other
}

// String returns the canonical form of the cost, which ParseManaCost
// accepts back: "4 w w bla".
func (c ManaCost) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(c.colorless), 10))

	for _, color := range []struct {
		symbol string
		count  uint8
	}{
		{"w", c.white},
		{"blu", c.blue},
		{"bla", c.black},
		{"r", c.red},
		{"g", c.green},
	} {
		for i := uint8(0); i < color.count; i++ {
			b.WriteByte(' ')
			b.WriteString(color.symbol)
		}
	}

	return b.String()
}

func (c ManaCost) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ManaCost) UnmarshalText(text []byte) error {
	parsed, err := ParseManaCost(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

func (c ManaCost) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c *ManaCost) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return errors.Wrap(err, "failed to decode mana cost")
	}

	return c.UnmarshalText([]byte(s))
}

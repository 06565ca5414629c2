package mtg

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Rarity represents a card's rarity.
// Values are ordered from the most common to the rarest.
type Rarity uint8

const (
	Common Rarity = iota + 1
	Uncommon
	Rare
	Mythical
)

// ParseRarity parses a rarity code ("C", "U", "R" or "M").
// Surrounding whitespace and letter case are ignored.
func ParseRarity(s string) (Rarity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C":
		return Common, nil
	case "U":
		return Uncommon, nil
	case "R":
		return Rare, nil
	case "M":
		return Mythical, nil
	default:
		return 0, errors.Wrapf(ErrUnrecognizedRarity, "%q", s)
	}
}

// Code returns the single letter code of the rarity.
func (r Rarity) Code() string {
	switch r {
	case Common:
		return "C"
	case Uncommon:
		return "U"
	case Rare:
		return "R"
	case Mythical:
		return "M"
	default:
		return ""
	}
}

func (r Rarity) String() string {
	switch r {
	case Common:
		return "Common"
	case Uncommon:
		return "Uncommon"
	case Rare:
		return "Rare"
	case Mythical:
		return "Mythical"
	default:
		return fmt.Sprintf("Rarity(%d)", uint8(r))
	}
}

// Validate reports whether r is one of the known rarities.
func (r Rarity) Validate() error {
	if r < Common || r > Mythical {
		return errors.Wrapf(ErrUnrecognizedRarity, "%d", uint8(r))
	}

	return nil
}

func (r Rarity) MarshalText() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return []byte(r.Code()), nil
}

func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}

func (r Rarity) MarshalYAML() (interface{}, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r.Code(), nil
}

func (r *Rarity) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return errors.Wrap(err, "failed to decode rarity")
	}

	return r.UnmarshalText([]byte(s))
}

package mtg

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Kind is the tag of a Classification.
type Kind uint8

const (
	KindSorcery Kind = iota + 1
	KindRitual
	KindEnchantment
	KindTerrain
	KindArtifact
	KindCreature
	KindToken
	KindLegendary
)

func (k Kind) String() string {
	switch k {
	case KindSorcery:
		return "Sorcery"
	case KindRitual:
		return "Ritual"
	case KindEnchantment:
		return "Enchantment"
	case KindTerrain:
		return "Land"
	case KindArtifact:
		return "Artifact"
	case KindCreature:
		return "Creature"
	case KindToken:
		return "Token"
	case KindLegendary:
		return "Legendary"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Classification represents a card's type line, such as "Legendary Land"
// or "Token Creature - Soldier".
//
// Token and Legendary wrap another Classification. Creature carries its
// subtype. Every other kind carries nothing.
type Classification struct {
	kind    Kind
	subtype string
	inner   *Classification
}

var (
	Sorcery     = Classification{kind: KindSorcery}
	Ritual      = Classification{kind: KindRitual}
	Enchantment = Classification{kind: KindEnchantment}
	Terrain     = Classification{kind: KindTerrain}
	Artifact    = Classification{kind: KindArtifact}
)

// NewCreature returns a creature of the given subtype. The subtype is kept
// as is, surrounding whitespace included.
func NewCreature(subtype string) Classification {
	return Classification{kind: KindCreature, subtype: subtype}
}

func NewToken(inner Classification) Classification {
	return Classification{kind: KindToken, inner: &inner}
}

func NewLegendary(inner Classification) Classification {
	return Classification{kind: KindLegendary, inner: &inner}
}

// ParseClassification parses a type line. Recognized forms are:
//
//	Sorcery
//	Ritual
//	Enchantment
//	Artifact
//	Land, Terrain, Basic Land
//	Creature - <subtype>
//	Token <classification>
//	Legendary <classification>
//
// Matching is case-insensitive.
func ParseClassification(s string) (Classification, error) {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "sorcery":
		return Sorcery, nil
	case "ritual":
		return Ritual, nil
	case "enchantment":
		return Enchantment, nil
	case "artifact":
		return Artifact, nil
	case "land", "terrain", "basic land":
		return Terrain, nil
	}

	prefix, suffix, ok := strings.Cut(s, " ")
	if !ok {
		return Classification{}, errors.Wrapf(ErrUnrecognizedClassification, "%q", s)
	}

	switch strings.ToLower(prefix) {
	case "token":
		inner, err := ParseClassification(suffix)
		if err != nil {
			return Classification{}, err
		}
		return NewToken(inner), nil

	case "legendary":
		inner, err := ParseClassification(suffix)
		if err != nil {
			return Classification{}, err
		}
		return NewLegendary(inner), nil

	case "creature":
		label, subtype, ok := strings.Cut(s, "-")
		if !ok {
			return Classification{}, errors.Wrapf(ErrNoCreatureSubtype, "%q", s)
		}
		if !strings.EqualFold(strings.TrimSpace(label), "creature") {
			return Classification{}, errors.Wrapf(ErrExpectedCreatureAfterDash, "%q", s)
		}
		if strings.TrimSpace(subtype) == "" {
			return Classification{}, errors.Wrapf(ErrNoCreatureSubtype, "%q", s)
		}
		return NewCreature(subtype), nil

	default:
		return Classification{}, errors.Wrapf(ErrUnrecognizedClassification, "%q", s)
	}
}

func (c Classification) Kind() Kind {
	return c.kind
}

// Subtype returns the creature subtype, as stored.
// It is empty for every other kind.
func (c Classification) Subtype() string {
	return c.subtype
}

// Inner returns the wrapped classification of a Token or Legendary.
func (c Classification) Inner() (Classification, bool) {
	if c.inner == nil {
		return Classification{}, false
	}

	return *c.inner, true
}

// Depth returns the number of Token and Legendary wrappers around the
// innermost classification.
func (c Classification) Depth() int {
	depth := 0
	for c.inner != nil {
		depth++
		c = *c.inner
	}

	return depth
}

// Is reports whether c is of the given kind, or wraps a classification
// of that kind at any depth.
func (c Classification) Is(kind Kind) bool {
	for {
		if c.kind == kind {
			return true
		}
		if c.inner == nil {
			return false
		}
		c = *c.inner
	}
}

// Equal compares creature subtypes ignoring case and surrounding
// whitespace; wrappers are compared by their inner classification.
func (c Classification) Equal(other Classification) bool {
	if c.kind != other.kind {
		return false
	}

	switch c.kind {
	case KindCreature:
		return strings.EqualFold(strings.TrimSpace(c.subtype), strings.TrimSpace(other.subtype))
	case KindToken, KindLegendary:
		if c.inner == nil || other.inner == nil {
			return c.inner == other.inner
		}
		return c.inner.Equal(*other.inner)
	default:
		return true
	}
}

// String returns a type line that ParseClassification accepts back.
func (c Classification) String() string {
	switch c.kind {
	case KindCreature:
		return "Creature - " + strings.TrimSpace(c.subtype)
	case KindToken, KindLegendary:
		if c.inner == nil {
			return c.kind.String()
		}
		return c.kind.String() + " " + c.inner.String()
	default:
		return c.kind.String()
	}
}

func (c Classification) MarshalText() ([]byte, error) {
	if c.kind < KindSorcery || c.kind > KindLegendary {
		return nil, errors.Wrapf(ErrUnrecognizedClassification, "%s", c.kind)
	}

	return []byte(c.String()), nil
}

func (c *Classification) UnmarshalText(text []byte) error {
	parsed, err := ParseClassification(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

func (c Classification) MarshalYAML() (interface{}, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}

	return string(text), nil
}

func (c *Classification) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return errors.Wrap(err, "failed to decode classification")
	}

	return c.UnmarshalText([]byte(s))
}

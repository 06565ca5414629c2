// Package mtg parses card records and compares the ways cards are
// referred to.
package mtg

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	FieldSeparator = ";"

	// FieldCount is the number of fields of a card line: serial, name,
	// cost, classification, rarity and effects.
	FieldCount = 6
)

// Card is a card parsed from a line of the form
//
//	<serial>;<name>;<cost>;<classification>;<rarity>;<effects>
//
// The serial field may be empty.
type Card struct {
	serial  string
	name    string
	cost    ManaCost
	kind    Classification
	rarity  Rarity
	effects string
}

// ParseCard parses a card line. Fields are trimmed. The first failing
// field, in field order, is reported, except that the rarity is parsed
// before the classification.
func ParseCard(line string) (Card, error) {
	fields := strings.Split(line, FieldSeparator)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	field := func(i int) (string, bool) {
		if i >= len(fields) {
			return "", false
		}
		return fields[i], true
	}

	serial, _ := field(0)

	name, ok := field(1)
	if !ok || name == "" {
		return Card{}, ErrMissingName
	}

	costText, ok := field(2)
	if !ok {
		return Card{}, ErrMissingCost
	}
	cost, err := ParseManaCost(costText)
	if err != nil {
		return Card{}, errors.Wrap(err, "failed to parse cost")
	}

	kindText, ok := field(3)
	if !ok {
		return Card{}, ErrMissingClassification
	}

	rarityText, ok := field(4)
	if !ok {
		return Card{}, ErrMissingRarity
	}
	rarity, err := ParseRarity(rarityText)
	if err != nil {
		return Card{}, errors.Wrap(err, "failed to parse rarity")
	}

	kind, err := ParseClassification(kindText)
	if err != nil {
		return Card{}, errors.Wrap(err, "failed to parse classification")
	}

	effects, ok := field(5)
	if !ok {
		return Card{}, ErrMissingEffectText
	}

	if len(fields) > FieldCount {
		return Card{}, errors.Wrapf(ErrTooManyFields, "got %d", len(fields))
	}

	return Card{
		serial:  serial,
		name:    name,
		cost:    cost,
		kind:    kind,
		rarity:  rarity,
		effects: effects,
	}, nil
}

// RawSerial returns the serial field as written in the line.
func (c Card) RawSerial() (string, bool) {
	return c.serial, c.serial != ""
}

// Serial returns the decoded serial field. It reports false when the
// field is empty or does not decode.
func (c Card) Serial() (Serial, bool) {
	if c.serial == "" {
		return Serial{}, false
	}

	serial, err := ParseSerial(c.serial)
	if err != nil {
		return Serial{}, false
	}

	return serial, true
}

func (c Card) Name() string                   { return c.name }
func (c Card) Cost() ManaCost                 { return c.cost }
func (c Card) Classification() Classification { return c.kind }
func (c Card) Rarity() Rarity                 { return c.rarity }
func (c Card) Effects() string                { return c.effects }

// EffectLines splits the effect text on the escaped line breaks "\n" and
// "\r\n".
func (c Card) EffectLines() []string {
	text := strings.ReplaceAll(c.effects, `\r\n`, `\n`)
	return strings.Split(text, `\n`)
}

// Identifier returns Both(name, serial) when the card carries a serial,
// and Name(name) otherwise.
func (c Card) Identifier() Identifier {
	if c.serial != "" {
		return ByBoth(c.name, c.serial)
	}

	return ByName(c.name)
}

func (c Card) Equal(other Card) bool {
	return c.serial == other.serial &&
		c.name == other.name &&
		c.cost.Equal(other.cost) &&
		c.kind.Equal(other.kind) &&
		c.rarity == other.rarity &&
		c.effects == other.effects
}

// String returns a line that ParseCard accepts back.
func (c Card) String() string {
	return strings.Join([]string{
		c.serial,
		c.name,
		c.cost.String(),
		c.kind.String(),
		c.rarity.Code(),
		c.effects,
	}, FieldSeparator+" ")
}

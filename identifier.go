package mtg

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Identifier is the way a card is referred to: by name, by serial, or by
// both.
//
// Identifiers are compared with Matches, not with ==.
type Identifier struct {
	name      string
	hasName   bool
	serial    Serial
	hasSerial bool
}

// ByName returns an identifier holding a name only.
func ByName(name string) Identifier {
	return Identifier{name: name, hasName: true}
}

// BySerial returns an identifier holding a serial only.
// Text that does not decode as a serial is taken as a name.
func BySerial(serial string) Identifier {
	decoded, err := ParseSerial(serial)
	if err != nil {
		return ByName(serial)
	}

	return Identifier{serial: decoded, hasSerial: true}
}

// ByBoth returns an identifier holding a name and a serial.
// A serial that does not decode is dropped and only the name is kept.
func ByBoth(name, serial string) Identifier {
	id := ByName(name)

	if decoded, err := ParseSerial(serial); err == nil {
		id.serial = decoded
		id.hasSerial = true
	}

	return id
}

// ParseIdentifier returns a serial identifier when s decodes as a serial,
// and a name identifier otherwise.
func ParseIdentifier(s string) Identifier {
	return BySerial(s)
}

func (id Identifier) Name() (string, bool) {
	return id.name, id.hasName
}

func (id Identifier) Serial() (Serial, bool) {
	return id.serial, id.hasSerial
}

// Matches reports whether id and other refer to the same card: both carry
// a name and the names match ignoring case and surrounding whitespace, or
// both carry a serial and the decoded serials are equal.
//
// The relation is reflexive and symmetric but not transitive:
// Both("A", "LTR C 1") matches Name("A") and Serial("LTR C 1"), which do
// not match each other.
func (id Identifier) Matches(other Identifier) bool {
	if id.hasName && other.hasName && foldName(id.name) == foldName(other.name) {
		return true
	}
	if id.hasSerial && other.hasSerial && id.serial == other.serial {
		return true
	}

	return false
}

// Match is the function form of Identifier.Matches.
func Match(a, b Identifier) bool {
	return a.Matches(b)
}

func (id Identifier) String() string {
	switch {
	case id.hasName && id.hasSerial:
		return id.serial.String() + " (" + id.name + ")"
	case id.hasSerial:
		return id.serial.String()
	default:
		return id.name
	}
}

// A Caser must not be shared between goroutines.
func foldName(name string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}

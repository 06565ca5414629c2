package mtg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Serial is the decoded form of a card code such as "LTR C 0001":
// a series code, a rarity, and the card's number within the series.
type Serial struct {
	Series string
	Rarity Rarity
	Number uint64
}

// ParseSerial decodes "<series> <rarity> <number>". The series is
// upper-cased and leading zeros of the number are ignored, so
// "ltr c 01" and "LTR C 0001" decode to the same Serial.
func ParseSerial(s string) (Serial, error) {
	tokens := strings.Fields(s)
	if len(tokens) != 3 {
		return Serial{}, errors.Wrapf(ErrInvalidSerial, "%q: expected 3 tokens, got %d", s, len(tokens))
	}

	series := strings.ToUpper(tokens[0])
	if !isSeriesCode(series) {
		return Serial{}, errors.Wrapf(ErrInvalidSerial, "%q: malformed series code", s)
	}

	rarity, err := ParseRarity(tokens[1])
	if err != nil {
		return Serial{}, errors.Wrapf(ErrInvalidSerial, "%q: %v", s, err)
	}

	number, err := strconv.ParseUint(tokens[2], 10, 64)
	if err != nil {
		return Serial{}, errors.Wrapf(ErrInvalidSerial, "%q: malformed number", s)
	}

	return Serial{
		Series: series,
		Rarity: rarity,
		Number: number,
	}, nil
}

func isSeriesCode(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}

	return true
}

// String formats the serial with a four digit number: "LTR C 0001".
func (s Serial) String() string {
	return fmt.Sprintf("%s %s %04d", s.Series, s.Rarity.Code(), s.Number)
}

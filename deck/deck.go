package deck

import (
	"bytes"
	"encoding/base32"
	"encoding/binary"
	"io"
	"sort"

	"github.com/pkg/errors"

	mtg "github.com/m0t0k1ch1/mtg-multitool-go"
	"github.com/m0t0k1ch1/mtg-multitool-go/collection"
)

const (
	Format          uint8 = 1
	InitialVersion  uint8 = 1
	MaxKnownVersion uint8 = 1

	MaxSeriesLength int = 8
)

var (
	ErrUnknownFormat  = errors.New("unknown format")
	ErrUnknownVersion = errors.New("unknown version")
	ErrUnknownRarity  = errors.New("unknown rarity")
	ErrInvalidSeries  = errors.New("invalid series")
	ErrTrailingData   = errors.New("trailing data")

	ErrUnexpectedCardCount = errors.New("unexpected card count")
	ErrDuplicateCard       = errors.New("duplicate card")
	ErrMissingSerial       = errors.New("missing serial")
)

var base32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// CardCount represents a card and its number of copies in a deck.
type CardCount struct {
	Serial mtg.Serial `json:"serial"`
	Count  uint64     `json:"count"`
}

// Deck represents a deck.
type Deck []CardCount

// Size returns the number of cards in the deck.
func (deck Deck) Size() uint64 {
	var size uint64
	for _, cardCount := range deck {
		size += cardCount.Count
	}

	return size
}

// FromCollection returns a deck of every owned card of c.
// Owned cards must carry a serial.
func FromCollection(c *collection.Collection) (Deck, error) {
	deck := Deck{}
	index := map[mtg.Serial]int{}

	for _, entry := range c.Entries() {
		if entry.Quantity == 0 {
			continue
		}

		serial, ok := entry.Card.Serial()
		if !ok {
			return nil, errors.Wrapf(ErrMissingSerial, "%q", entry.Card.Name())
		}

		if i, ok := index[serial]; ok {
			deck[i].Count += entry.Quantity
			continue
		}

		index[serial] = len(deck)
		deck = append(deck, CardCount{
			Serial: serial,
			Count:  entry.Quantity,
		})
	}

	return deck, nil
}

type groupKey struct {
	count  uint64
	series string
	rarity mtg.Rarity
}

type group struct {
	groupKey
	numbers []uint64
}

// Encode encodes a deck to a deck code.
func Encode(deck Deck) (string, error) {
	groups, err := newSortedGroups(deck)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)

	if err := buf.WriteByte(Format<<4 | InitialVersion); err != nil {
		return "", errors.Wrap(err, "failed to write format and version")
	}

	if err := encodeGroups(buf, groups); err != nil {
		return "", errors.Wrap(err, "failed to encode groups")
	}

	return base32Encoding.EncodeToString(buf.Bytes()), nil
}

// Decode decodes a deck code to a deck.
func Decode(deckCode string) (Deck, error) {
	b, err := base32Encoding.DecodeString(deckCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to base32 decode")
	}

	buf := bytes.NewBuffer(b)

	formatAndVersionByte, err := buf.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read format and version")
	}

	if formatAndVersionByte>>4 != Format {
		return nil, ErrUnknownFormat
	}

	version := formatAndVersionByte & 0xf
	if version > MaxKnownVersion {
		return nil, ErrUnknownVersion
	}

	groupCount, err := binary.ReadUvarint(buf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uvarint representing number of groups")
	}

	deck := Deck{}
	seen := map[mtg.Serial]bool{}

	var i uint64
	for i = 0; i < groupCount; i++ {
		key, err := decodeGroupKey(buf)
		if err != nil {
			return nil, err
		}

		cardNumberCount, err := binary.ReadUvarint(buf)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read uvarint representing number of card numbers")
		}

		var j uint64
		for j = 0; j < cardNumberCount; j++ {
			cardNumber, err := binary.ReadUvarint(buf)
			if err != nil {
				return nil, errors.Wrap(err, "failed to read uvarint representing card number")
			}

			serial := mtg.Serial{
				Series: key.series,
				Rarity: key.rarity,
				Number: cardNumber,
			}
			if seen[serial] {
				return nil, errors.Wrapf(ErrDuplicateCard, "%s", serial)
			}
			seen[serial] = true

			deck = append(deck, CardCount{
				Serial: serial,
				Count:  key.count,
			})
		}
	}

	if buf.Len() > 0 {
		return nil, ErrTrailingData
	}

	return deck, nil
}

func decodeGroupKey(buf *bytes.Buffer) (groupKey, error) {
	count, err := binary.ReadUvarint(buf)
	if err != nil {
		return groupKey{}, errors.Wrap(err, "failed to read uvarint representing card count")
	}
	if count == 0 {
		return groupKey{}, ErrUnexpectedCardCount
	}

	seriesLength, err := binary.ReadUvarint(buf)
	if err != nil {
		return groupKey{}, errors.Wrap(err, "failed to read uvarint representing series length")
	}
	if seriesLength == 0 || seriesLength > uint64(MaxSeriesLength) {
		return groupKey{}, ErrInvalidSeries
	}

	series := make([]byte, seriesLength)
	if _, err := io.ReadFull(buf, series); err != nil {
		return groupKey{}, errors.Wrap(err, "failed to read series")
	}
	if err := validateSeries(string(series)); err != nil {
		return groupKey{}, err
	}

	rarityByte, err := buf.ReadByte()
	if err != nil {
		return groupKey{}, errors.Wrap(err, "failed to read rarity")
	}
	rarity := mtg.Rarity(rarityByte)
	if err := rarity.Validate(); err != nil {
		return groupKey{}, ErrUnknownRarity
	}

	return groupKey{
		count:  count,
		series: string(series),
		rarity: rarity,
	}, nil
}

func validateSeries(series string) error {
	if len(series) == 0 || len(series) > MaxSeriesLength {
		return ErrInvalidSeries
	}

	for i := 0; i < len(series); i++ {
		c := series[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return ErrInvalidSeries
		}
	}

	return nil
}

func newSortedGroups(deck Deck) ([]group, error) {
	groups := []group{}
	index := map[groupKey]int{}
	seen := map[mtg.Serial]bool{}

	for _, cardCount := range deck {
		if cardCount.Count == 0 {
			return nil, ErrUnexpectedCardCount
		}
		if err := validateSeries(cardCount.Serial.Series); err != nil {
			return nil, errors.Wrapf(err, "%q", cardCount.Serial.Series)
		}
		if err := cardCount.Serial.Rarity.Validate(); err != nil {
			return nil, ErrUnknownRarity
		}
		if seen[cardCount.Serial] {
			return nil, errors.Wrapf(ErrDuplicateCard, "%s", cardCount.Serial)
		}
		seen[cardCount.Serial] = true

		key := groupKey{
			count:  cardCount.Count,
			series: cardCount.Serial.Series,
			rarity: cardCount.Serial.Rarity,
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, group{groupKey: key})
		}
		groups[i].numbers = append(groups[i].numbers, cardCount.Serial.Number)
	}

	for _, g := range groups {
		sort.Slice(g.numbers, func(i, j int) bool {
			return g.numbers[i] < g.numbers[j]
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		if groups[i].series != groups[j].series {
			return groups[i].series < groups[j].series
		}
		return groups[i].rarity < groups[j].rarity
	})

	return groups, nil
}

func encodeGroups(w io.Writer, groups []group) error {
	if err := writeUvarint(w, uint64(len(groups))); err != nil {
		return errors.Wrap(err, "failed to write uvarint representing number of groups")
	}

	for _, g := range groups {
		if err := writeUvarint(w, g.count); err != nil {
			return errors.Wrap(err, "failed to write uvarint representing card count")
		}
		if err := writeUvarint(w, uint64(len(g.series))); err != nil {
			return errors.Wrap(err, "failed to write uvarint representing series length")
		}
		if _, err := io.WriteString(w, g.series); err != nil {
			return errors.Wrap(err, "failed to write series")
		}
		if _, err := w.Write([]byte{byte(g.rarity)}); err != nil {
			return errors.Wrap(err, "failed to write rarity")
		}
		if err := writeUvarint(w, uint64(len(g.numbers))); err != nil {
			return errors.Wrap(err, "failed to write uvarint representing number of card numbers")
		}

		for _, number := range g.numbers {
			if err := writeUvarint(w, number); err != nil {
				return errors.Wrap(err, "failed to write uvarint representing card number")
			}
		}
	}

	return nil
}

func writeUvarint(w io.Writer, x uint64) (err error) {
	b := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(b, x)
	_, err = w.Write(b[:n])
	return
}

package mtg_test

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"

	mtg "github.com/m0t0k1ch1/mtg-multitool-go"
	"github.com/m0t0k1ch1/mtg-multitool-go/internal/testutil"
)

type cardFields struct {
	Serial         string
	Name           string
	Cost           string
	Classification string
	Rarity         string
	Effects        string
}

type cardTestCase struct {
	Line   string
	Fields cardFields
}

func fieldsOf(card mtg.Card) cardFields {
	serial, _ := card.RawSerial()

	return cardFields{
		Serial:         serial,
		Name:           card.Name(),
		Cost:           card.Cost().String(),
		Classification: card.Classification().String(),
		Rarity:         card.Rarity().Code(),
		Effects:        card.Effects(),
	}
}

func TestParseCard(t *testing.T) {
	tcs, err := loadCardTestCases()
	if err != nil {
		t.Fatalf("failed to load test data: %v", err)
	}

	for _, tc := range tcs {
		t.Run(tc.Fields.Name, func(t *testing.T) {
			card, err := mtg.ParseCard(tc.Line)
			if err != nil {
				t.Errorf("failed to parse card: %v", err)
				return
			}
			testutil.Equal(t, tc.Fields, fieldsOf(card))
		})
	}
}

func TestParseCard_Idempotent(t *testing.T) {
	tcs, err := loadCardTestCases()
	if err != nil {
		t.Fatalf("failed to load test data: %v", err)
	}

	for _, tc := range tcs {
		t.Run(tc.Fields.Name, func(t *testing.T) {
			first, err := mtg.ParseCard(tc.Line)
			testutil.NoError(t, err)
			second, err := mtg.ParseCard(tc.Line)
			testutil.NoError(t, err)
			testutil.Equal(t, first, second)

			reparsed, err := mtg.ParseCard(first.String())
			testutil.NoError(t, err)
			testutil.Equal(t, first, reparsed)
		})
	}
}

func TestParseCard_Errors(t *testing.T) {
	sentinels := map[string]error{
		"MissingName":                mtg.ErrMissingName,
		"MissingCost":                mtg.ErrMissingCost,
		"MissingColorlessCost":       mtg.ErrMissingColorlessCost,
		"InvalidColorlessCost":       mtg.ErrInvalidColorlessCost,
		"UnrecognizedManaSymbol":     mtg.ErrUnrecognizedManaSymbol,
		"MissingClassification":      mtg.ErrMissingClassification,
		"MissingRarity":              mtg.ErrMissingRarity,
		"UnrecognizedRarity":         mtg.ErrUnrecognizedRarity,
		"UnrecognizedClassification": mtg.ErrUnrecognizedClassification,
		"ExpectedCreatureAfterDash":  mtg.ErrExpectedCreatureAfterDash,
		"NoCreatureSubtype":          mtg.ErrNoCreatureSubtype,
		"MissingEffectText":          mtg.ErrMissingEffectText,
		"TooManyFields":              mtg.ErrTooManyFields,
	}

	f, err := os.Open("./testdata/MalformedCardLinesTestData.txt")
	if err != nil {
		t.Fatalf("failed to open test data file: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		errName, line, ok := strings.Cut(scanner.Text(), "|")
		if !ok {
			t.Fatalf("malformed row: %q", scanner.Text())
		}

		want, ok := sentinels[errName]
		if !ok {
			t.Fatalf("unknown error name: %q", errName)
		}

		t.Run(errName+"/"+line, func(t *testing.T) {
			_, err := mtg.ParseCard(line)
			testutil.ErrorIs(t, err, want)
		})
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan test data file: %v", err)
	}
}

func TestCard_Identifier(t *testing.T) {
	card, err := mtg.ParseCard("LTR C 0001;Banish from Edoras;4 w;Sorcery;C;Exile target creature.")
	testutil.NoError(t, err)

	id := card.Identifier()
	name, ok := id.Name()
	testutil.Equal(t, true, ok)
	testutil.Equal(t, "Banish from Edoras", name)
	serial, ok := id.Serial()
	testutil.Equal(t, true, ok)
	testutil.Equal(t, mtg.Serial{Series: "LTR", Rarity: mtg.Common, Number: 1}, serial)

	testutil.Equal(t, true, id.Matches(mtg.ByName("banish from edoras")))
	testutil.Equal(t, true, id.Matches(mtg.BySerial("LTR C 1")))

	card, err = mtg.ParseCard(";Plains;0;Basic Land;C;")
	testutil.NoError(t, err)

	id = card.Identifier()
	_, ok = id.Serial()
	testutil.Equal(t, false, ok)
	_, ok = card.Serial()
	testutil.Equal(t, false, ok)
	testutil.Equal(t, true, id.Matches(mtg.ByName("PLAINS")))
}

func TestCard_EffectLines(t *testing.T) {
	card, err := mtg.ParseCard(`LTR C 0001;Banish from Edoras;4 w;Sorcery;C;Costs 2 less.\r\nExile target creature.`)
	testutil.NoError(t, err)
	testutil.Equal(t, []string{"Costs 2 less.", "Exile target creature."}, card.EffectLines())
}

func TestCard_Equal(t *testing.T) {
	a, err := mtg.ParseCard("LTR C 0001;Banish from Edoras;4 w;Sorcery;C;Exile target creature.")
	testutil.NoError(t, err)
	b, err := mtg.ParseCard("LTR C 0001 ; Banish from Edoras ; 4 white ; sorcery ; c ; Exile target creature. ")
	testutil.NoError(t, err)
	c, err := mtg.ParseCard("LTR C 0001;Banish from Edoras;4 w w;Sorcery;C;Exile target creature.")
	testutil.NoError(t, err)

	testutil.Equal(t, true, a.Equal(b))
	testutil.Equal(t, false, a.Equal(c))
}

func loadCardTestCases() ([]cardTestCase, error) {
	f, err := os.Open("./testdata/CardLinesTestData.txt")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open test data file")
	}
	defer f.Close()

	tcs := []cardTestCase{}

	var tc cardTestCase
	startsNewCard := true

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		row := scanner.Text()

		if len(row) == 0 {
			tcs = append(tcs, tc)
			tc = cardTestCase{}
			startsNewCard = true
			continue
		}

		if startsNewCard {
			tc.Line = row
			startsNewCard = false
			continue
		}

		key, value, ok := strings.Cut(row, ":")
		if !ok {
			return nil, errors.New("malformed row")
		}

		switch key {
		case "serial":
			tc.Fields.Serial = value
		case "name":
			tc.Fields.Name = value
		case "cost":
			tc.Fields.Cost = value
		case "classification":
			tc.Fields.Classification = value
		case "rarity":
			tc.Fields.Rarity = value
		case "effects":
			tc.Fields.Effects = value
		default:
			return nil, errors.Errorf("unknown field %q", key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan test data file")
	}

	return tcs, nil
}

package mtg

import (
	"github.com/pkg/errors"
)

var (
	ErrUnrecognizedRarity = errors.New("unrecognized rarity")

	ErrMissingColorlessCost   = errors.New("missing colorless cost")
	ErrInvalidColorlessCost   = errors.New("invalid colorless cost")
	ErrUnrecognizedManaSymbol = errors.New("unrecognized mana symbol")
	ErrManaOverflow           = errors.New("mana count overflow")

	ErrUnrecognizedClassification = errors.New("unrecognized classification")
	ErrExpectedCreatureAfterDash  = errors.New("expected creature before dash")
	ErrNoCreatureSubtype          = errors.New("no creature subtype")

	ErrInvalidSerial = errors.New("invalid serial")

	ErrMissingName           = errors.New("missing name")
	ErrMissingCost           = errors.New("missing cost")
	ErrMissingClassification = errors.New("missing classification")
	ErrMissingRarity         = errors.New("missing rarity")
	ErrMissingEffectText     = errors.New("missing effect text")
	ErrTooManyFields         = errors.New("too many fields")
)

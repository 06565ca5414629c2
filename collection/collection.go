package collection

import (
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/pkg/errors"

	mtg "github.com/m0t0k1ch1/mtg-multitool-go"
)

var (
	ErrCardNotFound         = errors.New("card not found")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	ErrQuantityOverflow     = errors.New("quantity overflow")
)

// Entry is a card of a collection and the number of copies owned.
type Entry struct {
	Card     mtg.Card
	Quantity uint64
}

// Collection is an ordered list of cards with the number of copies owned
// of each. Cards are looked up with mtg.Identifier.Matches and the first
// matching entry wins.
//
// A Collection is safe for concurrent use.
type Collection struct {
	mu      sync.RWMutex
	entries []Entry
	logger  *slog.Logger
}

// Option configures a Collection.
type Option func(*Collection)

// WithLogger sets the logger quantity changes are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collection) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New parses every line into a card owned 0 times. It fails on the first
// line that does not parse, and no collection is returned.
func New(lines []string, opts ...Option) (*Collection, error) {
	cards := make([]mtg.Card, 0, len(lines))

	for i, line := range lines {
		card, err := mtg.ParseCard(line)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse line %d", i+1)
		}
		cards = append(cards, card)
	}

	return FromCards(cards, opts...), nil
}

// FromCards returns a collection of the given cards, each owned 0 times.
func FromCards(cards []mtg.Card, opts ...Option) *Collection {
	c := &Collection{
		entries: make([]Entry, 0, len(cards)),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	for _, card := range cards {
		c.entries = append(c.entries, Entry{Card: card})
	}

	return c
}

func (c *Collection) find(id mtg.Identifier) int {
	for i, entry := range c.entries {
		if id.Matches(entry.Card.Identifier()) {
			return i
		}
	}

	return -1
}

// Add increases the quantity of the first card matching id.
// Cards must already be part of the collection.
func (c *Collection) Add(id mtg.Identifier, quantity uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.find(id)
	if i < 0 {
		c.logger.Warn("add rejected", "id", id.String(), "error", ErrCardNotFound)
		return errors.Wrapf(ErrCardNotFound, "%s", id)
	}

	entry := &c.entries[i]
	if entry.Quantity > math.MaxUint64-quantity {
		c.logger.Warn("add rejected", "id", id.String(), "error", ErrQuantityOverflow)
		return errors.Wrapf(ErrQuantityOverflow, "%s: %d + %d", id, entry.Quantity, quantity)
	}

	entry.Quantity += quantity
	c.logger.Debug("quantity added", "card", entry.Card.Name(), "added", quantity, "quantity", entry.Quantity)

	return nil
}

// Remove decreases the quantity of the first card matching id.
// The quantity is left unchanged when fewer copies than requested are
// owned.
func (c *Collection) Remove(id mtg.Identifier, quantity uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.find(id)
	if i < 0 {
		c.logger.Warn("remove rejected", "id", id.String(), "error", ErrCardNotFound)
		return errors.Wrapf(ErrCardNotFound, "%s", id)
	}

	entry := &c.entries[i]
	if entry.Quantity < quantity {
		c.logger.Warn("remove rejected", "id", id.String(), "error", ErrInsufficientQuantity)
		return errors.Wrapf(ErrInsufficientQuantity, "%s: %d - %d", id, entry.Quantity, quantity)
	}

	entry.Quantity -= quantity
	c.logger.Debug("quantity removed", "card", entry.Card.Name(), "removed", quantity, "quantity", entry.Quantity)

	return nil
}

// Count returns the quantity of the first card matching id.
func (c *Collection) Count(id mtg.Identifier) (uint64, bool) {
	entry, ok := c.Find(id)
	if !ok {
		return 0, false
	}

	return entry.Quantity, true
}

// Find returns the first entry matching id.
func (c *Collection) Find(id mtg.Identifier) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.find(id)
	if i < 0 {
		return Entry{}, false
	}

	return c.entries[i], true
}

// Entries returns a copy of the entries, in insertion order.
func (c *Collection) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]Entry(nil), c.entries...)
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Total returns the number of copies owned, over every entry.
func (c *Collection) Total() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total uint64
	for _, entry := range c.entries {
		total += entry.Quantity
	}

	return total
}

package market

import (
	"math/rand"

	"github.com/google/uuid"
)

// Item is one priced good in a dataset.
type Item struct {
	// Quantity is the number of units on offer.
	Quantity int

	// TotalPrice is the price of the whole lot.
	TotalPrice int

	// PricePerUnit is always TotalPrice/Quantity, derived at synthesis
	// time and never stored independently. It may be a repeating decimal.
	PricePerUnit float64
}

// Dataset is the full quiz state for one round.
type Dataset struct {
	// ID identifies the round.
	ID string

	// Items maps item identifier to its record.
	Items map[string]Item

	// Order lists the identifiers in configured display order. Formula
	// scans iterate in this order, which fixes tie-break behavior.
	Order []string

	// Total is the sum of all items' TotalPrice.
	Total int
}

// Item returns the record for the given identifier.
func (d *Dataset) Item(id string) (Item, bool) {
	it, ok := d.Items[id]
	return it, ok
}

// Synthesizer produces randomized datasets on the configured grid.
type Synthesizer struct {
	cfg Config
	rng *rand.Rand
}

// NewSynthesizer creates a Synthesizer drawing from rng.
func NewSynthesizer(cfg Config, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{cfg: cfg, rng: rng}
}

// Config returns the synthesizer's configuration.
func (s *Synthesizer) Config() Config {
	return s.cfg
}

// Synthesize builds a fresh dataset. Each item's quantity and total price
// are drawn independently by picking a step count uniformly over the grid,
// so both values stay within bounds and on their step multiples.
func (s *Synthesizer) Synthesize() *Dataset {
	cfg := s.cfg
	items := make(map[string]Item, len(cfg.Items))
	total := 0

	for _, id := range cfg.Items {
		quantitySteps := s.rng.Intn((cfg.MaxQuantity-cfg.MinQuantity)/cfg.QuantityStep + 1)
		quantity := cfg.MinQuantity + quantitySteps*cfg.QuantityStep

		priceSteps := s.rng.Intn((cfg.MaxTotal-cfg.MinTotal)/cfg.TotalStep + 1)
		totalPrice := cfg.MinTotal + priceSteps*cfg.TotalStep

		items[id] = Item{
			Quantity:     quantity,
			TotalPrice:   totalPrice,
			PricePerUnit: float64(totalPrice) / float64(quantity),
		}
		total += totalPrice
	}

	order := make([]string, len(cfg.Items))
	copy(order, cfg.Items)

	return &Dataset{
		ID:    uuid.New().String(),
		Items: items,
		Order: order,
		Total: total,
	}
}

package market

import (
	"math/rand"
	"testing"
)

func TestSynthesize_Invariants(t *testing.T) {
	cfg := DefaultConfig()
	synth := NewSynthesizer(cfg, rand.New(rand.NewSource(1)))

	for round := 0; round < 500; round++ {
		ds := synth.Synthesize()

		if len(ds.Items) != len(cfg.Items) {
			t.Fatalf("round %d: got %d items, want %d", round, len(ds.Items), len(cfg.Items))
		}

		sum := 0
		for _, id := range cfg.Items {
			it, ok := ds.Item(id)
			if !ok {
				t.Fatalf("round %d: missing item %s", round, id)
			}

			if it.Quantity < cfg.MinQuantity || it.Quantity > cfg.MaxQuantity {
				t.Errorf("round %d: item %s quantity %d out of [%d,%d]", round, id, it.Quantity, cfg.MinQuantity, cfg.MaxQuantity)
			}
			if (it.Quantity-cfg.MinQuantity)%cfg.QuantityStep != 0 {
				t.Errorf("round %d: item %s quantity %d off the step grid", round, id, it.Quantity)
			}
			if it.TotalPrice < cfg.MinTotal || it.TotalPrice > cfg.MaxTotal {
				t.Errorf("round %d: item %s total %d out of [%d,%d]", round, id, it.TotalPrice, cfg.MinTotal, cfg.MaxTotal)
			}
			if (it.TotalPrice-cfg.MinTotal)%cfg.TotalStep != 0 {
				t.Errorf("round %d: item %s total %d off the step grid", round, id, it.TotalPrice)
			}

			want := float64(it.TotalPrice) / float64(it.Quantity)
			if it.PricePerUnit != want {
				t.Errorf("round %d: item %s price per unit %v, want %v", round, id, it.PricePerUnit, want)
			}
			sum += it.TotalPrice
		}

		if ds.Total != sum {
			t.Errorf("round %d: total %d, want sum %d", round, ds.Total, sum)
		}
	}
}

func TestSynthesize_ReplacesDataset(t *testing.T) {
	synth := NewSynthesizer(DefaultConfig(), rand.New(rand.NewSource(2)))

	first := synth.Synthesize()
	second := synth.Synthesize()

	if first.ID == second.ID {
		t.Error("expected a fresh dataset ID per synthesis")
	}
	if &first.Items == &second.Items {
		t.Error("expected a fresh item map per synthesis")
	}
}

func TestSynthesize_OrderMatchesConfig(t *testing.T) {
	cfg := DefaultConfig()
	ds := NewSynthesizer(cfg, rand.New(rand.NewSource(3))).Synthesize()

	if len(ds.Order) != len(cfg.Items) {
		t.Fatalf("order length %d, want %d", len(ds.Order), len(cfg.Items))
	}
	for i, id := range cfg.Items {
		if ds.Order[i] != id {
			t.Errorf("order[%d] = %s, want %s", i, ds.Order[i], id)
		}
	}
}

func TestSynthesize_DegenerateRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinQuantity = 10
	cfg.MaxQuantity = 10
	cfg.MinTotal = 100
	cfg.MaxTotal = 100

	ds := NewSynthesizer(cfg, rand.New(rand.NewSource(4))).Synthesize()

	for id, it := range ds.Items {
		if it.Quantity != 10 || it.TotalPrice != 100 {
			t.Errorf("item %s = %+v, want quantity 10 total 100", id, it)
		}
		if it.PricePerUnit != 10 {
			t.Errorf("item %s price per unit %v, want 10", id, it.PricePerUnit)
		}
	}
}

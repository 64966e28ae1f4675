package quiz

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/avelk/marketmath/internal/market"
)

// FormulaType names one of the supported answer computations.
type FormulaType string

const (
	FormulaCheapestItem         FormulaType = "cheapestItem"
	FormulaExpensivestItem      FormulaType = "expensivestItem"
	FormulaPricePerUnit         FormulaType = "pricePerUnit"
	FormulaMoreExpensive        FormulaType = "moreExpensive"
	FormulaMoreCheap            FormulaType = "moreCheap"
	FormulaTotalPercentage      FormulaType = "totalPercentage"
	FormulaPriceDifference      FormulaType = "priceDifference"
	FormulaTotalQuantity        FormulaType = "totalQuantity"
	FormulaAverageTotalPrice    FormulaType = "averageTotalPrice"
	FormulaQuantityPercentage   FormulaType = "quantityPercentage"
	FormulaHypotheticalPrice    FormulaType = "hypotheticalPrice"
	FormulaHypotheticalQuantity FormulaType = "hypotheticalQuantity"
)

// KnownFormula reports whether typ is one of the supported formulas.
func KnownFormula(typ FormulaType) bool {
	switch typ {
	case FormulaCheapestItem, FormulaExpensivestItem, FormulaPricePerUnit,
		FormulaMoreExpensive, FormulaMoreCheap, FormulaTotalPercentage,
		FormulaPriceDifference, FormulaTotalQuantity, FormulaAverageTotalPrice,
		FormulaQuantityPercentage, FormulaHypotheticalPrice, FormulaHypotheticalQuantity:
		return true
	}
	return false
}

// AnswerKind tags the shape of a computed answer, so the matcher never has
// to infer "was this a percentage" from the answer string.
type AnswerKind int

const (
	// KindUnavailable marks an answer that could not be computed
	// (unknown formula, missing dataset). Never scorable.
	KindUnavailable AnswerKind = iota

	// KindIdentifier is an item identifier such as "A".
	KindIdentifier

	// KindInteger is a whole number.
	KindInteger

	// KindDecimal is a number rounded to two decimals.
	KindDecimal

	// KindPercent is an integer-rounded percentage rendered with a
	// trailing "%".
	KindPercent
)

// Answer is a computed expected answer.
type Answer struct {
	Kind AnswerKind

	// Text is the display form: "A", "210", "3.75", "42%".
	Text string

	// Value holds the numeric value for Integer, Decimal, and Percent
	// answers. Zero for identifiers.
	Value float64
}

// Unavailable is the sentinel returned for non-computable answers.
var Unavailable = Answer{Kind: KindUnavailable}

// IsAvailable reports whether the answer is scorable.
func (a Answer) IsAvailable() bool {
	return a.Kind != KindUnavailable
}

func identifierAnswer(id string) Answer {
	return Answer{Kind: KindIdentifier, Text: id}
}

func integerAnswer(n int) Answer {
	return Answer{Kind: KindInteger, Text: strconv.Itoa(n), Value: float64(n)}
}

func decimalAnswer(v float64) Answer {
	rounded := round2(v)
	return Answer{
		Kind:  KindDecimal,
		Text:  strconv.FormatFloat(rounded, 'f', -1, 64),
		Value: rounded,
	}
}

func percentAnswer(fraction float64) Answer {
	n := int(math.Round(fraction * 100))
	return Answer{Kind: KindPercent, Text: strconv.Itoa(n) + "%", Value: float64(n)}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Compute evaluates the named formula against the dataset and bound
// variables. Unknown formula types and missing data dependencies are
// non-fatal: both return the Unavailable sentinel, and unknown types log
// a warning.
func Compute(typ FormulaType, vars map[string]string, ds *market.Dataset) Answer {
	if ds == nil {
		return Unavailable
	}

	switch typ {
	case FormulaCheapestItem:
		return cheapestItem(ds)

	case FormulaExpensivestItem:
		return expensivestItem(ds)

	case FormulaPricePerUnit:
		it, ok := boundItem(vars, "item", ds)
		if !ok {
			return Unavailable
		}
		return decimalAnswer(it.PricePerUnit)

	case FormulaMoreExpensive:
		a, b, ok := boundPair(vars, ds)
		if !ok {
			return Unavailable
		}
		// Ties resolve to itemB.
		if ds.Items[a].PricePerUnit > ds.Items[b].PricePerUnit {
			return identifierAnswer(a)
		}
		return identifierAnswer(b)

	case FormulaMoreCheap:
		a, b, ok := boundPair(vars, ds)
		if !ok {
			return Unavailable
		}
		// Ties resolve to itemB.
		if ds.Items[a].PricePerUnit < ds.Items[b].PricePerUnit {
			return identifierAnswer(a)
		}
		return identifierAnswer(b)

	case FormulaTotalPercentage:
		it, ok := boundItem(vars, "item", ds)
		if !ok || ds.Total == 0 {
			return Unavailable
		}
		return percentAnswer(float64(it.TotalPrice) / float64(ds.Total))

	case FormulaPriceDifference:
		a, b, ok := boundPair(vars, ds)
		if !ok {
			return Unavailable
		}
		diff := math.Abs(ds.Items[a].PricePerUnit - ds.Items[b].PricePerUnit)
		return decimalAnswer(diff)

	case FormulaTotalQuantity:
		return integerAnswer(totalQuantity(ds))

	case FormulaAverageTotalPrice:
		if len(ds.Order) == 0 {
			return Unavailable
		}
		sum := 0
		for _, id := range ds.Order {
			sum += ds.Items[id].TotalPrice
		}
		return decimalAnswer(float64(sum) / float64(len(ds.Order)))

	case FormulaQuantityPercentage:
		it, ok := boundItem(vars, "item", ds)
		if !ok {
			return Unavailable
		}
		tq := totalQuantity(ds)
		if tq == 0 {
			return Unavailable
		}
		return percentAnswer(float64(it.Quantity) / float64(tq))

	case FormulaHypotheticalPrice:
		// The referenced item's per-unit price applied to every item's
		// own quantity.
		ref, ok := boundItem(vars, "item", ds)
		if !ok {
			return Unavailable
		}
		sum := 0.0
		for _, id := range ds.Order {
			sum += ref.PricePerUnit * float64(ds.Items[id].Quantity)
		}
		return integerAnswer(int(math.Round(sum)))

	case FormulaHypotheticalQuantity:
		// The referenced item's quantity applied to every item's own
		// per-unit price.
		ref, ok := boundItem(vars, "item", ds)
		if !ok {
			return Unavailable
		}
		sum := 0.0
		for _, id := range ds.Order {
			sum += ds.Items[id].PricePerUnit * float64(ref.Quantity)
		}
		return integerAnswer(int(math.Round(sum)))

	default:
		slog.Warn("unknown question type", "type", string(typ))
		return Unavailable
	}
}

// cheapestItem scans in fixed item order; the first strict minimum wins.
func cheapestItem(ds *market.Dataset) Answer {
	cheapest := ""
	minPrice := math.Inf(1)
	for _, id := range ds.Order {
		if ds.Items[id].PricePerUnit < minPrice {
			minPrice = ds.Items[id].PricePerUnit
			cheapest = id
		}
	}
	if cheapest == "" {
		return Unavailable
	}
	return identifierAnswer(cheapest)
}

// expensivestItem scans in fixed item order; the first strict maximum wins.
func expensivestItem(ds *market.Dataset) Answer {
	expensivest := ""
	maxPrice := math.Inf(-1)
	for _, id := range ds.Order {
		if ds.Items[id].PricePerUnit > maxPrice {
			maxPrice = ds.Items[id].PricePerUnit
			expensivest = id
		}
	}
	if expensivest == "" {
		return Unavailable
	}
	return identifierAnswer(expensivest)
}

func totalQuantity(ds *market.Dataset) int {
	total := 0
	for _, id := range ds.Order {
		total += ds.Items[id].Quantity
	}
	return total
}

// boundItem resolves the variable name to its item record.
func boundItem(vars map[string]string, name string, ds *market.Dataset) (market.Item, bool) {
	id, ok := vars[name]
	if !ok {
		return market.Item{}, false
	}
	return ds.Item(id)
}

// boundPair resolves the itemA/itemB pair.
func boundPair(vars map[string]string, ds *market.Dataset) (string, string, bool) {
	a, okA := vars["itemA"]
	b, okB := vars["itemB"]
	if !okA || !okB {
		return "", "", false
	}
	if _, ok := ds.Items[a]; !ok {
		return "", "", false
	}
	if _, ok := ds.Items[b]; !ok {
		return "", "", false
	}
	return a, b, true
}

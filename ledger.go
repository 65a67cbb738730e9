package inventory

import (
	"iter"
	"slices"

	"github.com/etnz/inventory/logging"
)

// SentinelItem is the reserved item name rejected by Add. It guards against
// the accidental use of an unset default argument by callers building on
// loosely typed input.
const SentinelItem = "default"

// DefaultLowThreshold is the stock level below which an item is considered low.
const DefaultLowThreshold = 5

// Ledger owns the stock map, the system's sole persisted state.
//
// Iteration over a Ledger follows insertion order: items appear in the order
// they were first added or, after a load, in the order of the document's keys.
type Ledger struct {
	stock map[string]Quantity
	order []string // insertion order of the stock keys
	log   logging.Logger
}

// NewLedger creates an empty ledger logging through log.
// A nil log discards all records.
func NewLedger(log logging.Logger) *Ledger {
	if log == nil {
		log = logging.Nop()
	}
	return &Ledger{
		stock: make(map[string]Quantity),
		log:   log,
	}
}

// Add increases the stored quantity for item by qty, creating the entry if
// absent. A negative qty is accepted and decreases the total; choosing Add
// versus Remove semantics is the caller's responsibility.
//
// An empty item name, or the reserved SentinelItem, is rejected: a warning is
// logged, the state is unchanged, and an ErrInvalidItem status is reported.
func (l *Ledger) Add(item string, qty int64) error {
	if item == "" || item == SentinelItem {
		l.log.Warn("invalid item name, must be a non-reserved non-empty string", "item", item)
		return &StockError{Kind: ErrInvalidItem, Item: item}
	}

	current, exists := l.stock[item]
	if !exists {
		l.order = append(l.order, item)
	}
	l.stock[item] = current.Add(Q(qty))
	l.log.Info("added stock", "item", item, "quantity", qty)

	l.settle(item)
	return nil
}

// Remove subtracts qty from the stored quantity for item. If the resulting
// quantity is zero or less, the entry is deleted entirely.
//
// Removing an item not in stock logs a warning, leaves the state unchanged,
// and reports an ErrNotFound status.
func (l *Ledger) Remove(item string, qty int64) error {
	current, exists := l.stock[item]
	if !exists {
		l.log.Warn("attempted to remove non-existent item", "item", item)
		return &StockError{Kind: ErrNotFound, Item: item}
	}

	l.stock[item] = current.Sub(Q(qty))
	l.settle(item)
	return nil
}

// settle enforces the ledger invariant: no entry may remain at a quantity of
// zero or less after a mutation.
func (l *Ledger) settle(item string) {
	q, exists := l.stock[item]
	if !exists || q.IsPositive() {
		return
	}
	delete(l.stock, item)
	if i := slices.Index(l.order, item); i >= 0 {
		l.order = slices.Delete(l.order, i, i+1)
	}
	l.log.Info("removed item from stock, quantity zero or less", "item", item)
}

// Quantity returns the stored quantity for item, or zero if the item is
// absent. It never fails and has no side effects.
func (l *Ledger) Quantity(item string) Quantity {
	return l.stock[item]
}

// LowStock returns the names of every item whose quantity is strictly less
// than threshold, in the ledger's iteration order. Items at exactly the
// threshold are not included.
func (l *Ledger) LowStock(threshold int64) []string {
	var low []string
	limit := Q(threshold)
	for _, item := range l.order {
		if l.stock[item].LessThan(limit) {
			low = append(low, item)
		}
	}
	return low
}

// Items returns an iterator over the stock map in the ledger's iteration order.
func (l *Ledger) Items() iter.Seq2[string, Quantity] {
	return func(yield func(string, Quantity) bool) {
		for _, item := range l.order {
			if !yield(item, l.stock[item]) {
				return
			}
		}
	}
}

// Len returns the number of items in stock.
func (l *Ledger) Len() int { return len(l.order) }

// reset replaces the stock map with an empty one.
func (l *Ledger) reset() {
	l.stock = make(map[string]Quantity)
	l.order = nil
}

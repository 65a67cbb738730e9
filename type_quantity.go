package inventory

import "github.com/shopspring/decimal"

// Quantity is a stock count. Through the mutation API it only ever holds
// integer values, but it is backed by a decimal so that a stock document
// containing non-integer numbers can be loaded as-is and round-tripped
// without loss.
type Quantity struct {
	value decimal.Decimal
}

// Q creates a Quantity from an integer count.
func Q(value int64) Quantity {
	return Quantity{value: decimal.NewFromInt(value)}
}

func (q Quantity) Equal(p Quantity) bool    { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool { return q.value.LessThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity  { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity  { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) IsNegative() bool         { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool         { return q.value.IsPositive() }
func (q Quantity) IsZero() bool             { return q.value.IsZero() }
func (q Quantity) String() string           { return q.value.String() }

// Int64 returns the integer part of the quantity.
func (q Quantity) Int64() int64 { return q.value.IntPart() }

// MarshalJSON implements the json.Marshaler interface.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}

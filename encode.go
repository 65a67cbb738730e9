package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object. The value is marshaled
// to JSON using `json.Marshal`.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}

	keyBytes, err := json.Marshal(key)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal key %q: %w", key, err)
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}

	w.Write(keyBytes)
	w.WriteString(":")
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// MarshalJSON finalizes the JSON object construction, wraps the content in
// braces, and returns the complete JSON byte slice. It satisfies the
// `json.Marshaler` interface.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')

	return final, nil
}

// EncodeStock writes the ledger's stock map to w as a single JSON object,
// keys in the ledger's iteration order, indented with 4 spaces.
func EncodeStock(w io.Writer, l *Ledger) error {
	jw := &jsonObjectWriter{}
	for item, qty := range l.Items() {
		jw.Append(item, qty)
	}
	raw, err := jw.MarshalJSON()
	if err != nil {
		return err
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "    "); err != nil {
		return err
	}
	indented.WriteByte('\n')

	_, err = w.Write(indented.Bytes())
	return err
}

// DecodeStock decodes a stock document from r into a new Ledger, preserving
// the document's key order as the ledger's iteration order.
//
// The document must be a single JSON object whose values are numbers; per the
// stock file contract no further shape validation is performed, so
// non-integer numbers are accepted as-is. If the same key appears twice, the
// last value wins and the key keeps its first position.
func DecodeStock(r io.Reader) (*Ledger, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("could not read stock document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("stock document must be a JSON object, got %v", tok)
	}

	ledger := NewLedger(nil)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("could not read item name: %w", err)
		}
		item, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("item name must be a string, got %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("could not read quantity for %q: %w", item, err)
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("quantity for %q must be a number, got %v", item, valTok)
		}
		value, err := decimal.NewFromString(num.String())
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q for %q: %w", num, item, err)
		}

		if _, seen := ledger.stock[item]; !seen {
			ledger.order = append(ledger.order, item)
		}
		ledger.stock[item] = Quantity{value: value}
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("unterminated stock document: %w", err)
	}
	// Anything after the top-level object makes the document invalid.
	if tok, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after stock document: %v", tok)
	}
	return ledger, nil
}

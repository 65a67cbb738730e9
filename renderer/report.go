// Package renderer renders inventory state as markdown. Rendering that
// markdown to a terminal is the caller's concern.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/inventory"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders every item and its quantity, in the ledger's
// iteration order, or a placeholder line if the ledger is empty.
func ReportMarkdown(l *inventory.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Items Report")

	if l.Len() == 0 {
		doc.PlainText("(Inventory is empty)")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Item", "Quantity"},
	}
	for item, qty := range l.Items() {
		table.Rows = append(table.Rows, []string{item, qty.String()})
	}
	doc.Table(table)

	return doc.String()
}

// LowMarkdown renders the names of items strictly below threshold.
func LowMarkdown(l *inventory.Ledger, threshold int64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Low Stock, below %d", threshold))

	low := l.LowStock(threshold)
	if len(low) == 0 {
		doc.PlainText("No items below the threshold.")
		return doc.String()
	}
	doc.BulletList(low...)

	return doc.String()
}

package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/inventory"
)

func TestReportMarkdown(t *testing.T) {
	ledger := inventory.NewLedger(nil)
	ledger.Add("apple", 10)
	ledger.Add("banana", 2)

	got := ReportMarkdown(ledger)

	if !strings.Contains(got, "Items Report") {
		t.Errorf("report is missing its title:\n%s", got)
	}
	for _, want := range []string{"apple", "10", "banana", "2"} {
		if !strings.Contains(got, want) {
			t.Errorf("report is missing %q:\n%s", want, got)
		}
	}
	// Insertion order: apple row before banana row.
	if strings.Index(got, "apple") > strings.Index(got, "banana") {
		t.Errorf("report rows are not in ledger order:\n%s", got)
	}
}

func TestReportMarkdown_Empty(t *testing.T) {
	got := ReportMarkdown(inventory.NewLedger(nil))

	if !strings.Contains(got, "(Inventory is empty)") {
		t.Errorf("empty report is missing the placeholder line:\n%s", got)
	}
}

func TestLowMarkdown(t *testing.T) {
	ledger := inventory.NewLedger(nil)
	ledger.Add("apple", 10)
	ledger.Add("banana", 2)

	got := LowMarkdown(ledger, 5)

	if !strings.Contains(got, "banana") {
		t.Errorf("low report is missing the low item:\n%s", got)
	}
	if strings.Contains(got, "apple") {
		t.Errorf("low report must not list items at or above the threshold:\n%s", got)
	}
}

func TestLowMarkdown_NoneLow(t *testing.T) {
	ledger := inventory.NewLedger(nil)
	ledger.Add("apple", 10)

	got := LowMarkdown(ledger, 5)

	if !strings.Contains(got, "No items below the threshold.") {
		t.Errorf("low report is missing the placeholder line:\n%s", got)
	}
}
